package template

import (
	"io"
)

// TemplateRenderer is the contract the form service renders through. Output
// is returned as a string and optionally copied into out.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}
