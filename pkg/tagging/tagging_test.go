package tagging

import (
	"strings"
	"testing"

	"github.com/goliatone/go-blueprint/pkg/blueprint"
	"github.com/goliatone/go-blueprint/pkg/form"
)

func TestInput_RendersTagField(t *testing.T) {
	base, err := form.New()
	if err != nil {
		t.Fatalf("form helper: %v", err)
	}
	tags, err := New(base, "")
	if err != nil {
		t.Fatalf("tagging: %v", err)
	}

	got, err := tags.Input("Post.tags", form.InputOptions{
		Options: []form.Choice{{Value: "go"}, {Value: " "}, {Value: "css"}},
	})
	if err != nil {
		t.Fatalf("input: %v", err)
	}

	for _, fragment := range []string{
		`<input type="text" name="data[Post][tags]" id="PostTags" value="go, css"`,
		`data-role="tagging"`,
		`data-separator=","`,
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, got)
		}
	}
}

func TestInput_AsBlueprintExtension(t *testing.T) {
	base, err := form.New()
	if err != nil {
		t.Fatalf("form helper: %v", err)
	}
	tags, err := New(base, ";")
	if err != nil {
		t.Fatalf("tagging: %v", err)
	}

	helper, err := blueprint.New(blueprint.WithForm(base), blueprint.WithExtension(tags))
	if err != nil {
		t.Fatalf("blueprint: %v", err)
	}
	helper.Configure([]string{"text"}, "span-4", "span-12 last", "")

	got, err := helper.TaggedInput("Post.tags", form.InputOptions{
		Options: []form.Choice{{Value: "a"}, {Value: "b"}},
	})
	if err != nil {
		t.Fatalf("tagged input: %v", err)
	}
	if !strings.Contains(got, `<div class="span-4"><label for="PostTags">Tags</label></div><div class="span-12 last">`) {
		t.Fatalf("expected blueprint wrappers, got:\n%s", got)
	}
	if !strings.Contains(got, `value="a;b"`) {
		t.Fatalf("expected joined tags, got:\n%s", got)
	}
}

func TestNew_RequiresForm(t *testing.T) {
	if _, err := New(nil, ""); err == nil {
		t.Fatalf("expected error without form renderer")
	}
}
