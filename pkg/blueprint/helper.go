package blueprint

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/goliatone/go-blueprint/pkg/form"
	"github.com/goliatone/go-blueprint/pkg/html"
)

// Default stylesheet locations, relative to the HTML helper's CSS base.
const (
	DefaultScreen      = "blueprint/screen"
	DefaultPrint       = "blueprint/print"
	DefaultIE          = "blueprint/ie"
	DefaultPluginDir   = "blueprint/plugins"
	DefaultPluginFile  = "screen"
	DefaultPluginMedia = "screen, projection"
)

const (
	// DefaultInputType is assumed when InputOptions.Type is empty.
	DefaultInputType = "text"
	// ClearClass ends a row of floated grid columns.
	ClearClass = "clear"
)

const (
	conditionalIEOpen  = "<!--[if IE]>"
	conditionalIEClose = "<![endif]-->"
	screenMedia        = "screen, projection"
	printMedia         = "print"
	ieMedia            = "screen"
	stylesheetRelation = "stylesheet"
)

var (
	// ErrNoExtension is returned by TaggedInput when no extension renderer
	// was configured.
	ErrNoExtension = errors.New("blueprint: no input extension configured")
	// ErrUnknownType is returned by Input in strict mode when the element
	// type has no configured wrap.
	ErrUnknownType = errors.New("blueprint: element type not configured")
	// ErrIndexOutOfRange is returned by Span when positional classes or ids
	// are shorter than the texts they decorate.
	ErrIndexOutOfRange = errors.New("blueprint: index out of range")
)

// HTMLRenderer renders the tags the helper emits directly.
type HTMLRenderer interface {
	CSS(href, rel string, attrs html.Attributes) string
	Div(class, text string, attrs html.Attributes, escape bool) string
}

// InputRenderer renders a single labelled field. Extensions such as the
// tagging input implement it.
type InputRenderer interface {
	Input(fieldName string, opts form.InputOptions) (string, error)
}

// FormRenderer is the form service the helper decorates.
type FormRenderer interface {
	InputRenderer
	End(opts *form.EndOptions) (string, error)
}

// Wrap holds the wrapper classes for one element type.
type Wrap struct {
	Label   string
	Input   string
	Special string
}

// SetupOptions override the screen and print stylesheets.
type SetupOptions struct {
	Screen string
	Print  string
}

// IEOptions override the IE-only stylesheet.
type IEOptions struct {
	Path string
}

// PluginOptions override where plugin stylesheets are found.
type PluginOptions struct {
	Dir   string
	File  string
	Media string
}

// SpanOptions control how Span decorates each text. With WrapAll every div
// shares Class and ID. Otherwise Classes and IDs are indexed positionally.
type SpanOptions struct {
	WrapAll bool
	Class   string
	ID      string
	Classes []string
	IDs     []string
}

type Option func(*config)

type config struct {
	html      HTMLRenderer
	form      FormRenderer
	extension InputRenderer
	strict    bool
	settings  *Config
}

// WithHTML replaces the default HTML helper.
func WithHTML(renderer HTMLRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.html = renderer
		}
	}
}

// WithForm replaces the default form helper.
func WithForm(renderer FormRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.form = renderer
		}
	}
}

// WithExtension registers the renderer used by TaggedInput.
func WithExtension(renderer InputRenderer) Option {
	return func(cfg *config) {
		cfg.extension = renderer
	}
}

// WithStrictTypes makes Input fail for element types without a wrap instead
// of emitting empty class attributes.
func WithStrictTypes() Option {
	return func(cfg *config) {
		cfg.strict = true
	}
}

// WithConfig applies stylesheet defaults and wrap rules from a loaded
// configuration.
func WithConfig(settings Config) Option {
	return func(cfg *config) {
		cfg.settings = &settings
	}
}

// Helper decorates form and HTML rendering with Blueprint grid markup. A
// Helper is meant to be built and configured per render; Configure must not
// run concurrently with the rendering methods.
type Helper struct {
	html      HTMLRenderer
	form      FormRenderer
	extension InputRenderer
	strict    bool

	wraps   map[string]Wrap
	setup   SetupOptions
	ie      IEOptions
	plugins PluginOptions
}

// New constructs a Helper. Without WithForm the embedded form helper is used.
func New(options ...Option) (*Helper, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.html == nil {
		cfg.html = html.New()
	}
	if cfg.form == nil {
		helper, err := form.New()
		if err != nil {
			return nil, fmt.Errorf("blueprint: configure form helper: %w", err)
		}
		cfg.form = helper
	}

	h := &Helper{
		html:      cfg.html,
		form:      cfg.form,
		extension: cfg.extension,
		strict:    cfg.strict,
		wraps:     make(map[string]Wrap),
		setup:     SetupOptions{Screen: DefaultScreen, Print: DefaultPrint},
		ie:        IEOptions{Path: DefaultIE},
		plugins: PluginOptions{
			Dir:   DefaultPluginDir,
			File:  DefaultPluginFile,
			Media: DefaultPluginMedia,
		},
	}
	if cfg.settings != nil {
		h.ApplyConfig(*cfg.settings)
	}
	return h, nil
}

// Setup renders the screen and print stylesheet links.
func (h *Helper) Setup(opts SetupOptions) string {
	screen := firstNonEmpty(opts.Screen, h.setup.Screen)
	printHref := firstNonEmpty(opts.Print, h.setup.Print)

	head := h.html.CSS(screen, stylesheetRelation, html.Attributes{"media": screenMedia})
	head += h.html.CSS(printHref, stylesheetRelation, html.Attributes{"media": printMedia})
	return head
}

// IE renders the IE stylesheet inside a conditional comment.
func (h *Helper) IE(opts IEOptions) string {
	href := firstNonEmpty(opts.Path, h.ie.Path)
	return conditionalIEOpen +
		h.html.CSS(href, stylesheetRelation, html.Attributes{"media": ieMedia}) +
		conditionalIEClose
}

// Plugins renders one stylesheet link per plugin, found at Dir/name/File.
func (h *Helper) Plugins(names []string, opts PluginOptions) string {
	if len(names) == 0 {
		return ""
	}
	dir := firstNonEmpty(opts.Dir, h.plugins.Dir)
	file := firstNonEmpty(opts.File, h.plugins.File)
	media := firstNonEmpty(opts.Media, h.plugins.Media)

	var styles strings.Builder
	for _, name := range names {
		href := path.Join(dir, name, file)
		styles.WriteString(h.html.CSS(href, stylesheetRelation, html.Attributes{"media": media}))
	}
	return styles.String()
}

// Configure stores the wrapper classes for each element type. Label and input
// always replace the previous entry; a stored special class is kept unless a
// non-empty special is given. Element names are not validated.
func (h *Helper) Configure(elements []string, label, input, special string) {
	for _, element := range elements {
		wrap := Wrap{Label: label, Input: input, Special: h.wraps[element].Special}
		if special != "" {
			wrap.Special = special
		}
		h.wraps[element] = wrap
	}
}

// Wrap returns the configured wrapper classes for an element type.
func (h *Helper) Wrap(elementType string) (Wrap, bool) {
	wrap, ok := h.wraps[elementType]
	return wrap, ok
}

// Input renders a field through the form service with Blueprint wrapper divs
// in the before, between and after slots. Slots set by the caller win.
func (h *Helper) Input(fieldName string, opts form.InputOptions) (string, error) {
	opts, err := h.decorate(opts)
	if err != nil {
		return "", err
	}
	return h.form.Input(fieldName, opts)
}

// TaggedInput decorates like Input but renders through the configured
// extension.
func (h *Helper) TaggedInput(fieldName string, opts form.InputOptions) (string, error) {
	if h.extension == nil {
		return "", ErrNoExtension
	}
	opts, err := h.decorate(opts)
	if err != nil {
		return "", err
	}
	return h.extension.Input(fieldName, opts)
}

func (h *Helper) decorate(opts form.InputOptions) (form.InputOptions, error) {
	if opts.Type == "" {
		opts.Type = DefaultInputType
	}

	wrap, ok := h.wraps[opts.Type]
	if !ok && h.strict {
		return opts, fmt.Errorf("%w: %q", ErrUnknownType, opts.Type)
	}

	before := `<div class="` + wrap.Label + `">`
	if wrap.Special != "" {
		return opts.WithDefaults(
			before,
			`</div><div class="`+wrap.Special+`"><div class="`+wrap.Input+`">`,
			`</div></div>`,
		), nil
	}
	return opts.WithDefaults(
		before,
		`</div><div class="`+wrap.Input+`">`,
		`</div>`,
	), nil
}

// End closes the form. With nil opts no submit button is rendered; otherwise
// the button's wrapper div always carries the clear class.
func (h *Helper) End(opts *form.EndOptions) (string, error) {
	if opts == nil {
		return h.form.End(nil)
	}
	decorated := *opts
	if decorated.Div != nil {
		div := *decorated.Div
		div.Class = html.AddClass(div.Class, ClearClass)
		decorated.Div = &div
	} else {
		decorated.Div = &form.Div{Class: ClearClass}
	}
	return h.form.End(&decorated)
}

// EndWithLabel closes the form with a submit button labelled label.
func (h *Helper) EndWithLabel(label string) (string, error) {
	return h.End(&form.EndOptions{Label: label})
}

// Clear renders a div carrying the clear class in addition to class.
func (h *Helper) Clear(class, text string, attrs html.Attributes, escape bool) string {
	return h.html.Div(html.AddClass(class, ClearClass), text, attrs, escape)
}

// Span wraps every text in its own div. Texts are written unescaped.
//
// With WrapAll the same class and id are repeated on every div, which yields
// duplicate ids when more than one text is given. Positional mode requires
// non-nil Classes and IDs to cover every text.
func (h *Helper) Span(texts []string, opts SpanOptions) (string, error) {
	if !opts.WrapAll {
		if opts.Classes != nil && len(opts.Classes) < len(texts) {
			return "", fmt.Errorf("%w: %d classes for %d texts", ErrIndexOutOfRange, len(opts.Classes), len(texts))
		}
		if opts.IDs != nil && len(opts.IDs) < len(texts) {
			return "", fmt.Errorf("%w: %d ids for %d texts", ErrIndexOutOfRange, len(opts.IDs), len(texts))
		}
	}

	var out strings.Builder
	for i, text := range texts {
		id, class := opts.ID, opts.Class
		if !opts.WrapAll {
			id, class = indexOrEmpty(opts.IDs, i), indexOrEmpty(opts.Classes, i)
		}
		out.WriteString("<div")
		out.WriteString(html.Attr("id", id))
		out.WriteString(html.Attr("class", class))
		out.WriteString(">")
		out.WriteString(text)
		out.WriteString("</div>")
	}
	return out.String(), nil
}

func indexOrEmpty(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
