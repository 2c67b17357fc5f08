package html

import (
	"html"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
)

// DefaultCSSBase is prepended to relative stylesheet paths when no theme
// asset resolver is configured.
const DefaultCSSBase = "/css/"

// Attributes are rendered in sorted key order so output stays deterministic.
type Attributes map[string]string

// Option configures a Helper.
type Option func(*config)

type config struct {
	cssBase   string
	theme     *theme.RendererConfig
	sanitizer *bluemonday.Policy
}

// WithCSSBase overrides the directory prefix used for relative stylesheets.
func WithCSSBase(base string) Option {
	return func(cfg *config) {
		base = strings.TrimSpace(base)
		if base == "" {
			return
		}
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		cfg.cssBase = base
	}
}

// WithTheme resolves relative stylesheet paths through the theme's AssetURL
// function instead of the CSS base.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithSanitizer filters unescaped div content through the supplied policy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		cfg.sanitizer = policy
	}
}

// Helper renders individual HTML tags.
type Helper struct {
	cssBase   string
	theme     *theme.RendererConfig
	sanitizer *bluemonday.Policy
}

// New constructs a Helper applying any provided options.
func New(options ...Option) *Helper {
	cfg := config{cssBase: DefaultCSSBase}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &Helper{
		cssBase:   cfg.cssBase,
		theme:     cfg.theme,
		sanitizer: cfg.sanitizer,
	}
}

// CSS renders a stylesheet link tag. An empty rel defaults to "stylesheet".
// Paths are not checked for existence.
func (h *Helper) CSS(href, rel string, attrs Attributes) string {
	if rel = strings.TrimSpace(rel); rel == "" {
		rel = "stylesheet"
	}

	var builder strings.Builder
	builder.WriteString(`<link rel="`)
	builder.WriteString(html.EscapeString(rel))
	builder.WriteString(`" type="text/css" href="`)
	builder.WriteString(html.EscapeString(h.resolveCSS(href)))
	builder.WriteString(`"`)
	writeAttributes(&builder, attrs, "rel", "type", "href")
	builder.WriteString(" />")
	return builder.String()
}

// Div renders a div element. When escape is true the text is HTML escaped,
// otherwise it is written as-is or through the configured sanitizer.
func (h *Helper) Div(class, text string, attrs Attributes, escape bool) string {
	var builder strings.Builder
	builder.WriteString(h.DivStart(class, attrs))
	switch {
	case escape:
		builder.WriteString(html.EscapeString(text))
	case h.sanitizer != nil && text != "":
		builder.WriteString(h.sanitizer.Sanitize(text))
	default:
		builder.WriteString(text)
	}
	builder.WriteString("</div>")
	return builder.String()
}

// DivStart renders only the opening div tag.
func (h *Helper) DivStart(class string, attrs Attributes) string {
	var builder strings.Builder
	builder.WriteString("<div")
	if class = strings.TrimSpace(class); class != "" {
		builder.WriteString(` class="`)
		builder.WriteString(html.EscapeString(class))
		builder.WriteString(`"`)
	}
	writeAttributes(&builder, attrs, "class")
	builder.WriteString(">")
	return builder.String()
}

func (h *Helper) resolveCSS(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.Contains(href, "://") || strings.HasPrefix(href, "/") {
		return href
	}
	if path.Ext(href) == "" {
		href += ".css"
	}
	if h.theme != nil && h.theme.AssetURL != nil {
		if resolved := h.theme.AssetURL(href); resolved != "" {
			return resolved
		}
	}
	return h.cssBase + href
}

// AddClass appends token to an existing class list unless it is already
// present.
func AddClass(class, token string) string {
	token = strings.TrimSpace(token)
	class = strings.TrimSpace(class)
	if token == "" {
		return class
	}
	if class == "" {
		return token
	}
	for _, existing := range strings.Fields(class) {
		if existing == token {
			return class
		}
	}
	return class + " " + token
}

// Attr renders a single escaped attribute with a leading space. Empty values
// render nothing.
func Attr(name, value string) string {
	if value == "" {
		return ""
	}
	return " " + name + `="` + html.EscapeString(value) + `"`
}

func writeAttributes(builder *strings.Builder, attrs Attributes, skip ...string) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		if strings.TrimSpace(key) == "" || contains(skip, key) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		builder.WriteByte(' ')
		builder.WriteString(key)
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(attrs[key]))
		builder.WriteByte('"')
	}
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// String renders the attributes with a leading space per attribute.
func (a Attributes) String() string {
	var builder strings.Builder
	writeAttributes(&builder, a)
	return builder.String()
}
