package form

import "github.com/goliatone/go-blueprint/pkg/html"

// Div configures the wrapper div rendered around an input or submit button.
type Div struct {
	Class      string
	Attributes html.Attributes
}

// Choice is a single select option or radio button.
type Choice struct {
	Value string
	Label string
}

// InputOptions describe a single field. Before, Between and After are the
// markup slots placed around the label and control. A nil slot is unset; a
// non-nil empty slot is set to the empty string.
type InputOptions struct {
	// Type selects the control: text, email, password, number, date, url,
	// tel, file, textarea, checkbox, select, radio or hidden. Empty means
	// text.
	Type string
	// Label overrides the humanized field name.
	Label     string
	HideLabel bool
	Value     string
	Checked   bool
	Required  bool
	Options   []Choice

	Before  *string
	Between *string
	After   *string

	// Div overrides the default "input <type>" wrapper class. NoDiv drops
	// the wrapper entirely.
	Div   *Div
	NoDiv bool

	Attributes html.Attributes
}

// EndOptions configure the submit button rendered before the closing form
// tag.
type EndOptions struct {
	// Label is the button value. Empty means "Submit".
	Label string
	Name  string
	Div   *Div
}

// String returns a pointer to value, for populating the markup slots.
func String(value string) *string {
	return &value
}

// WithDefaults returns a copy of opts where unset slots take the supplied
// defaults. Caller-set slots are preserved as-is.
func (opts InputOptions) WithDefaults(before, between, after string) InputOptions {
	if opts.Before == nil {
		opts.Before = String(before)
	}
	if opts.Between == nil {
		opts.Between = String(between)
	}
	if opts.After == nil {
		opts.After = String(after)
	}
	return opts
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
