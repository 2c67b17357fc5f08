package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-blueprint/pkg/form"
)

// TextareaThreshold is the maxLength above which string properties render as
// a textarea.
const TextareaThreshold = 255

// ErrOperationNotFound is returned when an operation id is not in the
// document.
var ErrOperationNotFound = errors.New("openapi: operation not found")

var preferredMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// Operation summarises an operation that can be rendered as a form.
type Operation struct {
	ID      string
	Method  string
	Path    string
	Summary string
}

// Field is a single request body property mapped to a form control.
type Field struct {
	Name        string
	Type        string
	Label       string
	Description string
	Required    bool
	Default     string
	Options     []form.Choice
}

// InputOptions converts the field into options for the form service.
func (f Field) InputOptions() form.InputOptions {
	return form.InputOptions{
		Type:     f.Type,
		Label:    f.Label,
		Value:    f.Default,
		Required: f.Required,
		Options:  append([]form.Choice(nil), f.Options...),
	}
}

// Document is a loaded OpenAPI document indexed by operation id.
type Document struct {
	operations map[string]Operation
	raw        map[string]*openapi3.Operation
}

// Load parses a JSON or YAML OpenAPI document.
func Load(ctx context.Context, data []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	doc := &Document{
		operations: make(map[string]Operation),
		raw:        make(map[string]*openapi3.Operation),
	}
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			for method, operation := range item.Operations() {
				doc.add(method, path, operation)
			}
		}
	}
	if len(doc.operations) == 0 {
		return nil, errors.New("openapi: document does not contain any operations")
	}
	return doc, nil
}

func (d *Document) add(method, path string, operation *openapi3.Operation) {
	if operation == nil {
		return
	}
	id := operation.OperationID
	if id == "" {
		id = strings.ToLower(method) + ":" + path
	}
	d.operations[id] = Operation{
		ID:      id,
		Method:  strings.ToUpper(method),
		Path:    path,
		Summary: operation.Summary,
	}
	d.raw[id] = operation
}

// Operations returns the operation ids in sorted order.
func (d *Document) Operations() []string {
	ids := make([]string, 0, len(d.operations))
	for id := range d.operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Operation returns the summary for id.
func (d *Document) Operation(id string) (Operation, bool) {
	op, ok := d.operations[id]
	return op, ok
}

// Fields maps the properties of the operation's request body schema to form
// fields, sorted by property name. Operations without a body yield no fields.
func (d *Document) Fields(id string) ([]Field, error) {
	operation, ok := d.raw[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, id)
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil || len(schema.Properties) == 0 {
		return nil, nil
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil || ref.Value.ReadOnly {
			continue
		}
		_, isRequired := required[name]
		fields = append(fields, convertProperty(name, ref.Value, isRequired))
	}
	return fields, nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range preferredMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if mt := content[key]; mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func convertProperty(name string, schema *openapi3.Schema, required bool) Field {
	field := Field{
		Name:        name,
		Type:        controlType(schema),
		Label:       schema.Title,
		Description: schema.Description,
		Required:    required,
	}
	if schema.Default != nil {
		field.Default = fmt.Sprint(schema.Default)
	}
	for _, value := range schema.Enum {
		text := fmt.Sprint(value)
		field.Options = append(field.Options, form.Choice{Value: text, Label: text})
	}
	return field
}

func controlType(schema *openapi3.Schema) string {
	if len(schema.Enum) > 0 {
		return "select"
	}
	switch {
	case schema.Type.Is(openapi3.TypeBoolean):
		return "checkbox"
	case schema.Type.Is(openapi3.TypeInteger), schema.Type.Is(openapi3.TypeNumber):
		return "number"
	}
	switch schema.Format {
	case "email", "password", "date", "time", "url", "tel":
		return schema.Format
	case "date-time":
		return "datetime-local"
	case "uri":
		return "url"
	case "binary":
		return "file"
	}
	if schema.MaxLength != nil && *schema.MaxLength > TextareaThreshold {
		return "textarea"
	}
	return "text"
}
