// Package blueprint decorates the form and HTML helpers with Blueprint CSS
// grid markup: stylesheet links, label/input wrapper divs, clearing divs and
// bulk text wrapping.
//
// Wrapper classes are configured per element type, either with Configure or
// from a YAML/JSON file loaded through LoadConfig:
//
//	helper, err := blueprint.New(blueprint.WithConfig(blueprint.DefaultConfig()))
//	if err != nil {
//		return err
//	}
//	helper.Configure([]string{"text", "email"}, "span-4", "span-12 last", "")
//	markup, err := helper.Input("User.email", form.InputOptions{Type: "email"})
package blueprint
