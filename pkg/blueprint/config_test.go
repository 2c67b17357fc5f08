package blueprint

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestParseConfig_YAML(t *testing.T) {
	data := []byte(`
stylesheets:
  screen: grid/screen
wraps:
  - elements: [text, email]
    label: span-3
    input: span-9 last
  - elements: [radio]
    label: span-3
    input: span-4
    special: span-9 last
`)
	cfg, err := ParseConfig(data, "blueprint.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := []WrapRule{
		{Elements: []string{"text", "email"}, Label: "span-3", Input: "span-9 last"},
		{Elements: []string{"radio"}, Label: "span-3", Input: "span-4", Special: "span-9 last"},
	}
	if diff := cmp.Diff(want, cfg.Wraps); diff != "" {
		t.Fatalf("wraps mismatch (-want +got):\n%s", diff)
	}
	if cfg.Stylesheets.Screen != "grid/screen" {
		t.Fatalf("expected screen override, got %q", cfg.Stylesheets.Screen)
	}
}

func TestParseConfig_JSON(t *testing.T) {
	data := []byte(`{"plugins":{"dir":"bp/plugins","include":["buttons"]},"wraps":[{"elements":["text"],"label":"a","input":"b"}]}`)
	cfg, err := ParseConfig(data, "blueprint.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Plugins.Dir != "bp/plugins" || len(cfg.Plugins.Include) != 1 {
		t.Fatalf("unexpected plugins config: %+v", cfg.Plugins)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	if _, err := ParseConfig([]byte("wraps: [{label: a}]"), "bad.yaml"); err == nil {
		t.Fatalf("expected error for rule without elements")
	}
	if _, err := ParseConfig([]byte("{"), "bad.json"); err == nil {
		t.Fatalf("expected json syntax error")
	}
}

func TestLoadConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"conf/blueprint.yml": {Data: []byte("wraps:\n  - elements: [text]\n    label: l\n    input: i\n")},
	}
	cfg, err := LoadConfig(fsys, "conf/blueprint.yml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Wraps) != 1 {
		t.Fatalf("expected one wrap rule, got %d", len(cfg.Wraps))
	}

	if _, err := LoadConfig(fsys, "missing.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDefaultConfig(t *testing.T) {
	helper := newTestHelper(t, WithForm(&captureForm{}), WithConfig(DefaultConfig()))

	for _, typ := range []string{"text", "checkbox", "textarea"} {
		if _, ok := helper.Wrap(typ); !ok {
			t.Fatalf("expected default wrap for %q", typ)
		}
	}
	if wrap, _ := helper.Wrap("radio"); wrap.Special == "" {
		t.Fatalf("expected radio to use a special wrapper")
	}
}

func TestApplyConfig_StylesheetDefaults(t *testing.T) {
	helper := newTestHelper(t, WithForm(&captureForm{}), WithConfig(Config{
		Stylesheets: StylesheetConfig{Screen: "grid/screen", IE: "grid/ie"},
		Plugins:     PluginConfig{Dir: "grid/plugins"},
	}))

	if got := helper.Setup(SetupOptions{}); !strings.Contains(got, "/css/grid/screen.css") || !strings.Contains(got, "/css/blueprint/print.css") {
		t.Fatalf("expected configured screen and default print, got %s", got)
	}
	if got := helper.IE(IEOptions{}); !strings.Contains(got, "/css/grid/ie.css") {
		t.Fatalf("expected configured ie path, got %s", got)
	}
	if got := helper.Plugins([]string{"buttons"}, PluginOptions{}); !strings.Contains(got, "/css/grid/plugins/buttons/screen.css") {
		t.Fatalf("expected configured plugin dir, got %s", got)
	}
	if got := helper.Setup(SetupOptions{Screen: "call/screen"}); !strings.Contains(got, "/css/call/screen.css") {
		t.Fatalf("expected call options to win over config, got %s", got)
	}
}
