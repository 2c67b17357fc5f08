// Package cli implements the blueprint command-line interface.
//
// The head command prints the stylesheet links for a page header. The form
// command renders a Blueprint-wrapped form for an OpenAPI operation's request
// body. All commands accept --verbose for debug logging.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-blueprint/pkg/blueprint"
	"github.com/goliatone/go-blueprint/pkg/html"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	picker Picker
}

// New creates a CLI writing logs to w. Interactive prompts use survey.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		picker: surveyPicker{},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "blueprint",
		Short:        "Render Blueprint CSS grid markup for forms",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(contextOf(cmd), c.Logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.headCommand())
	root.AddCommand(c.formCommand())
	return root
}

// Execute runs the CLI against os.Args.
func Execute(ctx context.Context) error {
	c := New(os.Stderr, LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}

type commonFlags struct {
	configPath string
	cssBase    string
	theme      string
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML or JSON wrapper configuration (bundled preset when empty)")
	cmd.Flags().StringVar(&f.cssBase, "css-base", html.DefaultCSSBase, "prefix for relative stylesheet paths")
	cmd.Flags().StringVar(&f.theme, "theme", "", "resolve relative stylesheets under <css-base>themes/<name>/")
}

func (f *commonFlags) helper(ctx context.Context, htmlOptions []html.Option, options ...blueprint.Option) (*blueprint.Helper, blueprint.Config, error) {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return nil, blueprint.Config{}, err
	}
	logger.Debug("loaded configuration", "path", f.configPath, "wraps", len(cfg.Wraps))

	htmlOptions = append([]html.Option{html.WithCSSBase(f.cssBase)}, htmlOptions...)
	if name := strings.TrimSpace(f.theme); name != "" {
		htmlOptions = append(htmlOptions, html.WithTheme(themeConfig(name, f.cssBase)))
		logger.Debug("resolving stylesheets through theme", "theme", name)
	}

	options = append([]blueprint.Option{
		blueprint.WithHTML(html.New(htmlOptions...)),
		blueprint.WithConfig(cfg),
	}, options...)
	helper, err := blueprint.New(options...)
	if err != nil {
		return nil, blueprint.Config{}, err
	}
	return helper, cfg, nil
}

func themeConfig(name, cssBase string) *theme.RendererConfig {
	base := strings.TrimSpace(cssBase)
	if base == "" {
		base = html.DefaultCSSBase
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	prefix := base + "themes/" + name + "/"
	return &theme.RendererConfig{
		Theme: name,
		AssetURL: func(key string) string {
			return prefix + strings.TrimPrefix(key, "/")
		},
	}
}

func loadConfig(path string) (blueprint.Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return blueprint.DefaultConfig(), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return blueprint.Config{}, err
	}
	return blueprint.LoadConfig(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
