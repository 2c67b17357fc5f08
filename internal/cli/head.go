package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-blueprint/pkg/blueprint"
)

func (c *CLI) headCommand() *cobra.Command {
	var (
		flags   commonFlags
		plugins []string
		noIE    bool
	)

	cmd := &cobra.Command{
		Use:   "head",
		Short: "Print the Blueprint stylesheet links for a page header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			helper, cfg, err := flags.helper(cmd.Context(), nil)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("plugin") {
				plugins = cfg.Plugins.Include
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, helper.Setup(blueprint.SetupOptions{}))
			if !noIE {
				fmt.Fprintln(out, helper.IE(blueprint.IEOptions{}))
			}
			if markup := helper.Plugins(plugins, blueprint.PluginOptions{}); markup != "" {
				fmt.Fprintln(out, markup)
			}
			loggerFromContext(cmd.Context()).Debug("rendered head", "plugins", len(plugins))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringSliceVarP(&plugins, "plugin", "p", nil, "plugin to include (repeatable; defaults to the config's include list)")
	cmd.Flags().BoolVar(&noIE, "no-ie", false, "omit the IE conditional stylesheet")
	return cmd
}
