package form

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-blueprint/pkg/html"
	rendertemplate "github.com/goliatone/go-blueprint/pkg/render/template"
	"github.com/goliatone/go-blueprint/pkg/render/template/gotemplate"
)

// DefaultSubmitLabel is used when EndOptions.Label is empty.
const DefaultSubmitLabel = "Submit"

// ErrUnsupportedType is returned by Input for control types the helper
// cannot render.
var ErrUnsupportedType = errors.New("form: unsupported input type")

var textLikeTypes = map[string]struct{}{
	"text": {}, "email": {}, "password": {}, "number": {}, "date": {},
	"datetime-local": {}, "time": {}, "month": {}, "week": {}, "url": {},
	"tel": {}, "search": {}, "color": {}, "range": {}, "file": {},
}

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk. Templates
// missing from the directory fall back to the embedded bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Helper renders form tags, labelled inputs and the closing submit button.
type Helper struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the form helper applying any provided options.
func New(options ...Option) (*Helper, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithBaseDir(cfg.templateDir),
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("form: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Helper{templates: renderer}, nil
}

// Create renders the opening form tag. An empty method means POST.
func (h *Helper) Create(action, method string, attrs html.Attributes) (string, error) {
	all := html.Attributes{}
	for key, value := range attrs {
		all[key] = value
	}
	if method = strings.ToLower(strings.TrimSpace(method)); method == "" {
		method = "post"
	}
	all["method"] = method
	if action = strings.TrimSpace(action); action != "" {
		all["action"] = action
	}
	return h.render("create", map[string]any{"attrs": all.String()})
}

// Input renders a labelled control for fieldName. The before, between and
// after slots are written verbatim around the label.
func (h *Helper) Input(fieldName string, opts InputOptions) (string, error) {
	typ := strings.ToLower(strings.TrimSpace(opts.Type))
	if typ == "" {
		typ = "text"
	}

	id := DomID(fieldName)
	data := map[string]any{
		"type":  typ,
		"name":  InputName(fieldName),
		"id":    id,
		"value": opts.Value,
		"attrs": opts.Attributes.String(),
	}

	label := opts.Label
	if label == "" {
		label = Humanize(fieldName)
	}
	if opts.HideLabel {
		label = ""
	}

	controlTemplate := ""
	switch typ {
	case "hidden":
		return h.render("controls/hidden", data)
	case "textarea", "select":
		controlTemplate = "controls/" + typ
		data["choices"] = choiceData(id, opts)
	case "checkbox":
		controlTemplate = "controls/checkbox"
		data["checked"] = opts.Checked || opts.Value == "1" || strings.EqualFold(opts.Value, "true")
	case "radio":
		controlTemplate = "controls/radio"
		data["choices"] = choiceData(id, opts)
		data["legend"] = label
		label = ""
	default:
		if _, ok := textLikeTypes[typ]; !ok {
			return "", fmt.Errorf("%w %q for field %q", ErrUnsupportedType, typ, fieldName)
		}
		controlTemplate = "controls/text"
		if typ == "password" || typ == "file" {
			data["value"] = ""
		}
	}

	control, err := h.render(controlTemplate, data)
	if err != nil {
		return "", err
	}

	divClass := "input " + typ
	var divAttrs html.Attributes
	if opts.Div != nil {
		if cls := strings.TrimSpace(opts.Div.Class); cls != "" {
			divClass = cls
		}
		divAttrs = opts.Div.Attributes
	}
	if opts.Required {
		divClass = html.AddClass(divClass, "required")
	}

	return h.render("input", map[string]any{
		"wrap":      !opts.NoDiv,
		"div_class": divClass,
		"div_attrs": divAttrs.String(),
		"id":        id,
		"label":     label,
		"before":    deref(opts.Before),
		"between":   deref(opts.Between),
		"after":     deref(opts.After),
		"control":   control,
	})
}

// End closes the form. A nil opts renders only the closing tag; otherwise a
// submit button wrapped in a div precedes it.
func (h *Helper) End(opts *EndOptions) (string, error) {
	if opts == nil {
		return h.render("end", map[string]any{"submit": false})
	}

	label := strings.TrimSpace(opts.Label)
	if label == "" {
		label = DefaultSubmitLabel
	}

	divClass := "submit"
	var divAttrs html.Attributes
	if opts.Div != nil {
		divClass = strings.TrimSpace(opts.Div.Class)
		divAttrs = opts.Div.Attributes
	}

	return h.render("end", map[string]any{
		"submit":    true,
		"wrap":      divClass != "" || len(divAttrs) > 0,
		"div_class": divClass,
		"div_attrs": divAttrs.String(),
		"label":     label,
		"name":      opts.Name,
	})
}

func (h *Helper) render(name string, data map[string]any) (string, error) {
	if h == nil || h.templates == nil {
		return "", errors.New("form: template renderer is nil")
	}
	out, err := h.templates.RenderTemplate(name, data)
	if err != nil {
		return "", fmt.Errorf("form: render %s: %w", name, err)
	}
	return out, nil
}

func choiceData(id string, opts InputOptions) []map[string]any {
	if len(opts.Options) == 0 {
		return nil
	}
	out := make([]map[string]any, 0, len(opts.Options))
	for _, choice := range opts.Options {
		label := choice.Label
		if label == "" {
			label = choice.Value
		}
		out = append(out, map[string]any{
			"id":       id + camelize(choice.Value),
			"value":    choice.Value,
			"label":    label,
			"selected": choice.Value == opts.Value,
		})
	}
	return out
}
