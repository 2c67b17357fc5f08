package openapi

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-blueprint/pkg/form"
	"github.com/goliatone/go-blueprint/pkg/testsupport"
)

func loadPetstore(t *testing.T) *Document {
	t.Helper()
	data := testsupport.MustReadFixture(t, filepath.Join("testdata", "petstore.yaml"))
	doc, err := Load(context.Background(), data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return doc
}

func TestLoad_Operations(t *testing.T) {
	doc := loadPetstore(t)

	want := []string{"createPet", "delete:/pets/{id}", "listPets"}
	if diff := cmp.Diff(want, doc.Operations()); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}

	op, ok := doc.Operation("createPet")
	if !ok {
		t.Fatalf("expected createPet operation")
	}
	if op.Method != "POST" || op.Path != "/pets" || op.Summary != "Create a pet" {
		t.Fatalf("unexpected operation %+v", op)
	}
}

func TestDocument_Fields(t *testing.T) {
	doc := loadPetstore(t)

	fields, err := doc.Fields("createPet")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}

	want := []Field{
		{Name: "age", Type: "number"},
		{Name: "name", Type: "text", Label: "Pet name", Required: true},
		{Name: "notes", Type: "textarea"},
		{Name: "owner_email", Type: "email"},
		{
			Name:     "species",
			Type:     "select",
			Required: true,
			Options:  []form.Choice{{Value: "cat", Label: "cat"}, {Value: "dog", Label: "dog"}},
		},
		{Name: "vaccinated", Type: "checkbox", Default: "false"},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_FieldsWithoutBody(t *testing.T) {
	doc := loadPetstore(t)

	fields, err := doc.Fields("listPets")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if len(fields) != 0 {
		t.Fatalf("expected no fields, got %d", len(fields))
	}
}

func TestDocument_FieldsUnknownOperation(t *testing.T) {
	doc := loadPetstore(t)

	if _, err := doc.Fields("nope"); !errors.Is(err, ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()
	if _, err := Load(ctx, nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
	if _, err := Load(ctx, []byte(`{"openapi":"3.0.3","info":{"title":"x","version":"1"},"paths":{}}`)); err == nil {
		t.Fatalf("expected error for document without operations")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := Load(cancelled, []byte("{}")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestField_InputOptions(t *testing.T) {
	field := Field{Name: "species", Type: "select", Label: "Species", Required: true, Default: "cat",
		Options: []form.Choice{{Value: "cat"}}}

	opts := field.InputOptions()
	if opts.Type != "select" || opts.Label != "Species" || opts.Value != "cat" || !opts.Required || len(opts.Options) != 1 {
		t.Fatalf("unexpected input options %+v", opts)
	}
}
