package blueprint

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets/*.yaml
var embeddedPresets embed.FS

// Config is the on-disk form of a Helper's stylesheet defaults and wrap
// rules.
type Config struct {
	Stylesheets StylesheetConfig `json:"stylesheets" yaml:"stylesheets"`
	Plugins     PluginConfig     `json:"plugins" yaml:"plugins"`
	Wraps       []WrapRule       `json:"wraps" yaml:"wraps"`
}

// StylesheetConfig overrides the default stylesheet paths.
type StylesheetConfig struct {
	Screen string `json:"screen" yaml:"screen"`
	Print  string `json:"print" yaml:"print"`
	IE     string `json:"ie" yaml:"ie"`
}

// PluginConfig overrides plugin stylesheet lookup and lists the plugins to
// include by default.
type PluginConfig struct {
	Dir     string   `json:"dir" yaml:"dir"`
	File    string   `json:"file" yaml:"file"`
	Media   string   `json:"media" yaml:"media"`
	Include []string `json:"include" yaml:"include"`
}

// WrapRule applies one set of wrapper classes to several element types.
type WrapRule struct {
	Elements []string `json:"elements" yaml:"elements"`
	Label    string   `json:"label" yaml:"label"`
	Input    string   `json:"input" yaml:"input"`
	Special  string   `json:"special" yaml:"special"`
}

// ApplyConfig overrides stylesheet defaults with the non-empty values from
// cfg and runs Configure for every wrap rule in order.
func (h *Helper) ApplyConfig(cfg Config) {
	if v := strings.TrimSpace(cfg.Stylesheets.Screen); v != "" {
		h.setup.Screen = v
	}
	if v := strings.TrimSpace(cfg.Stylesheets.Print); v != "" {
		h.setup.Print = v
	}
	if v := strings.TrimSpace(cfg.Stylesheets.IE); v != "" {
		h.ie.Path = v
	}
	if v := strings.TrimSpace(cfg.Plugins.Dir); v != "" {
		h.plugins.Dir = v
	}
	if v := strings.TrimSpace(cfg.Plugins.File); v != "" {
		h.plugins.File = v
	}
	if v := strings.TrimSpace(cfg.Plugins.Media); v != "" {
		h.plugins.Media = v
	}
	for _, rule := range cfg.Wraps {
		h.Configure(rule.Elements, rule.Label, rule.Input, rule.Special)
	}
}

// LoadConfig reads a JSON or YAML configuration file from fsys.
func LoadConfig(fsys fs.FS, path string) (Config, error) {
	if fsys == nil {
		return Config{}, fmt.Errorf("blueprint: config filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("blueprint: read config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig decodes data as JSON when path ends in .json and as YAML
// otherwise, then validates the wrap rules.
func ParseConfig(data []byte, path string) (Config, error) {
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("blueprint: parse json %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("blueprint: parse yaml %s: %w", path, err)
		}
	}

	for idx, rule := range cfg.Wraps {
		if len(rule.Elements) == 0 {
			return Config{}, fmt.Errorf("blueprint: %s: wrap rule %d lists no elements", path, idx)
		}
	}
	return cfg, nil
}

// DefaultConfig returns the bundled preset: a 24 column layout with labels
// in span-4 and inputs in span-12.
func DefaultConfig() Config {
	cfg, err := LoadConfig(embeddedPresets, "presets/default.yaml")
	if err != nil {
		// The embed directive guarantees the preset exists and parses.
		panic(err)
	}
	return cfg
}
