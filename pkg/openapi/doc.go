// Package openapi derives form field descriptors from the request body of an
// OpenAPI 3 operation so forms can be rendered without hand-listing fields.
package openapi
