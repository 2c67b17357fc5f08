package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-blueprint/pkg/blueprint"
	"github.com/goliatone/go-blueprint/pkg/form"
	"github.com/goliatone/go-blueprint/pkg/html"
	"github.com/goliatone/go-blueprint/pkg/openapi"
	"github.com/goliatone/go-blueprint/pkg/tagging"
)

type formOptions struct {
	commonFlags
	source    string
	operation string
	model     string
	action    string
	submit    string
	tagged    []string
	separator string
	notice    string
	sanitize  bool
}

func (c *CLI) formCommand() *cobra.Command {
	opts := formOptions{}

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Render a Blueprint form for an OpenAPI operation",
		Long: `Render a Blueprint form for an OpenAPI operation.

The request body schema of the operation becomes one wrapped input per
property. When --operation is omitted and the document declares more than
one operation, an interactive picker is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runForm(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	opts.commonFlags.register(cmd)
	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "OpenAPI document (JSON or YAML)")
	cmd.Flags().StringVarP(&opts.operation, "operation", "o", "", "operation id (prompted when ambiguous)")
	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "model name used to prefix field names")
	cmd.Flags().StringVar(&opts.action, "action", "", "form action (defaults to the operation path)")
	cmd.Flags().StringVar(&opts.submit, "submit", form.DefaultSubmitLabel, "submit button label")
	cmd.Flags().StringSliceVar(&opts.tagged, "tagged", nil, "fields rendered as tagging inputs")
	cmd.Flags().StringVar(&opts.separator, "separator", tagging.DefaultSeparator, "separator for tagging inputs")
	cmd.Flags().StringVar(&opts.notice, "notice", "", "HTML shown in a clearing div above the submit button")
	cmd.Flags().BoolVar(&opts.sanitize, "sanitize", true, "filter --notice through a user-content HTML policy")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}

func (c *CLI) runForm(ctx context.Context, out io.Writer, opts formOptions) error {
	logger := loggerFromContext(ctx)

	data, err := os.ReadFile(opts.source)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	doc, err := openapi.Load(ctx, data)
	if err != nil {
		return err
	}

	id, err := c.chooseOperation(ctx, doc, opts.operation)
	if err != nil {
		return err
	}
	operation, _ := doc.Operation(id)
	fields, err := doc.Fields(id)
	if err != nil {
		return err
	}
	logger.Debug("resolved operation", "id", id, "method", operation.Method, "path", operation.Path, "fields", len(fields))

	base, err := form.New()
	if err != nil {
		return err
	}
	extension, err := tagging.New(base, opts.separator)
	if err != nil {
		return err
	}
	var htmlOptions []html.Option
	if opts.sanitize {
		htmlOptions = append(htmlOptions, html.WithSanitizer(bluemonday.UGCPolicy()))
	}
	helper, _, err := opts.helper(ctx, htmlOptions, blueprint.WithForm(base), blueprint.WithExtension(extension))
	if err != nil {
		return err
	}

	method := strings.ToLower(operation.Method)
	if method != "get" {
		method = "post"
	}
	action := opts.action
	if action == "" {
		action = operation.Path
	}
	open, err := base.Create(action, method, html.Attributes{"id": form.DomID(id) + "Form"})
	if err != nil {
		return err
	}

	var markup strings.Builder
	markup.WriteString(open)
	tagged := make(map[string]bool, len(opts.tagged))
	for _, name := range opts.tagged {
		tagged[strings.TrimSpace(name)] = true
	}
	for _, field := range fields {
		name := field.Name
		if opts.model != "" {
			name = opts.model + "." + name
		}
		render := helper.Input
		if tagged[field.Name] {
			render = helper.TaggedInput
		}
		input, err := render(name, field.InputOptions())
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		markup.WriteString(input)
	}
	if strings.TrimSpace(opts.notice) != "" {
		markup.WriteString(helper.Clear("notice", opts.notice, nil, false))
	}
	end, err := helper.EndWithLabel(opts.submit)
	if err != nil {
		return err
	}
	markup.WriteString(end)

	_, err = fmt.Fprintln(out, markup.String())
	return err
}

func (c *CLI) chooseOperation(ctx context.Context, doc *openapi.Document, requested string) (string, error) {
	if requested != "" {
		if _, ok := doc.Operation(requested); !ok {
			return "", fmt.Errorf("%w: %s", openapi.ErrOperationNotFound, requested)
		}
		return requested, nil
	}
	ids := doc.Operations()
	if len(ids) == 1 {
		return ids[0], nil
	}
	return c.picker.Pick(ctx, "Operation", ids)
}
