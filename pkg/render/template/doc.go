// Package template defines the template rendering seam used by the form
// service. The gotemplate subpackage provides the default pongo2 engine.
package template
