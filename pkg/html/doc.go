// Package html renders the individual tags used by the Blueprint helper:
// stylesheet links and divs.
package html
