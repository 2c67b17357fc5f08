package form

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl templates/controls/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle rooted at the templates
// directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
