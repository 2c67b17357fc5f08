// Package tagging provides a free-form tag input that plugs into the
// Blueprint helper as its input extension.
package tagging

import (
	"errors"
	"strings"

	"github.com/goliatone/go-blueprint/pkg/blueprint"
	"github.com/goliatone/go-blueprint/pkg/form"
	"github.com/goliatone/go-blueprint/pkg/html"
)

// DefaultSeparator joins tag values in the rendered input.
const DefaultSeparator = ", "

// Input renders tag fields as text inputs annotated for a client-side tagging
// widget. Existing tags come from InputOptions.Options.
type Input struct {
	form      blueprint.InputRenderer
	separator string
}

var _ blueprint.InputRenderer = (*Input)(nil)

// New wraps the form service used to render the underlying text input.
func New(base blueprint.InputRenderer, separator string) (*Input, error) {
	if base == nil {
		return nil, errors.New("tagging: form renderer is required")
	}
	if separator == "" {
		separator = DefaultSeparator
	}
	return &Input{form: base, separator: separator}, nil
}

// Input renders fieldName as a tag input. The wrapper slots in opts are
// passed through untouched.
func (i *Input) Input(fieldName string, opts form.InputOptions) (string, error) {
	tags := make([]string, 0, len(opts.Options))
	for _, choice := range opts.Options {
		value := strings.TrimSpace(choice.Value)
		if value == "" {
			continue
		}
		tags = append(tags, value)
	}

	attrs := html.Attributes{}
	for key, value := range opts.Attributes {
		attrs[key] = value
	}
	attrs["data-role"] = "tagging"
	attrs["data-separator"] = strings.TrimSpace(i.separator)

	opts.Type = "text"
	opts.Options = nil
	opts.Attributes = attrs
	if len(tags) > 0 {
		opts.Value = strings.Join(tags, i.separator)
	}
	return i.form.Input(fieldName, opts)
}
