// Package schemas provides JSON Schema validation for CV records and style overrides.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/cv-as-code/internal/data"
	"github.com/xeipuuv/gojsonschema"
)

const rootField = "(root)"

// ValidationError describes the first schema violation of a document.
// Errors holds every violation in reporting order; Message and Path mirror Errors[0].
type ValidationError struct {
	Message string
	Path    []string
	Errors  []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Path    []string
	Type    string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed at %s: %s", ve.PathString(), ve.Message)
}

// PathString joins the violation path with dots, or returns "(root)"
func (ve *ValidationError) PathString() string {
	return joinPath(ve.Path, ".")
}

// Summary lists every violation, one per line
func (ve *ValidationError) Summary() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

func joinPath(path []string, sep string) string {
	if len(path) == 0 {
		return rootField
	}
	return strings.Join(path, sep)
}

// Validator holds a compiled schema
type Validator struct {
	schema *gojsonschema.Schema
	source string
}

// NewValidator compiles the schema at schemaPath. An empty path resolves the
// default CV schema with FindDefaultSchema.
func NewValidator(schemaPath string) (*Validator, error) {
	resolved, err := ResolveSchemaPath(schemaPath)
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schema path: %w", err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(absPath)))
	if err != nil {
		return nil, &SchemaLoadError{
			Path:    absPath,
			Message: "schema could not be compiled",
			Cause:   err,
		}
	}

	return &Validator{schema: schema, source: absPath}, nil
}

// NewValidatorFromString compiles an in-memory schema; name is used in error messages
func NewValidatorFromString(name, schemaContent string) (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaContent))
	if err != nil {
		return nil, &SchemaLoadError{
			Path:    name,
			Message: "schema could not be compiled",
			Cause:   err,
		}
	}
	return &Validator{schema: schema, source: name}, nil
}

// Source returns the schema's absolute path or name
func (v *Validator) Source() string {
	return v.source
}

// Validate checks a value tree (as produced by data.Load) against the schema.
// It returns *ValidationError on the first violation.
func (v *Validator) Validate(record any) error {
	result, err := v.schema.Validate(gojsonschema.NewGoLoader(data.Plain(record)))
	if err != nil {
		return &SchemaLoadError{
			Path:    v.source,
			Message: "document could not be validated",
			Cause:   err,
		}
	}
	return toValidationError(result)
}

// ValidateJSON validates a JSON or YAML file against a JSON Schema file
func ValidateJSON(schemaPath, documentPath string) error {
	if _, err := os.Stat(schemaPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file not found: %s", schemaPath)
	}

	validator, err := NewValidator(schemaPath)
	if err != nil {
		return err
	}

	record, err := data.Load(documentPath)
	if err != nil {
		return err
	}

	return validator.Validate(record)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	validator, err := NewValidatorFromString("(string schema)", schemaContent)
	if err != nil {
		return err
	}

	record, err := data.Decode([]byte(jsonContent), data.FormatJSON)
	if err != nil {
		return err
	}

	return validator.Validate(record)
}

func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	errs := make([]FieldError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		path := fieldPath(desc)
		errs = append(errs, FieldError{
			Field:   joinPath(path, "."),
			Path:    path,
			Type:    desc.Type(),
			Message: desc.Description(),
		})
	}

	// gojsonschema walks object properties in map order, so sort for a
	// stable first violation: required, then type, then the rest, then format.
	sort.SliceStable(errs, func(i, j int) bool {
		ri, rj := errorRank(errs[i].Type), errorRank(errs[j].Type)
		if ri != rj {
			return ri < rj
		}
		if errs[i].Field != errs[j].Field {
			return errs[i].Field < errs[j].Field
		}
		return errs[i].Message < errs[j].Message
	})

	return &ValidationError{
		Message: errs[0].Message,
		Path:    errs[0].Path,
		Errors:  errs,
	}
}

// fieldPath converts gojsonschema's dotted context into segments. Required-property
// errors are reported on the parent object, so the missing property is appended.
func fieldPath(desc gojsonschema.ResultError) []string {
	var path []string
	if field := desc.Field(); field != "" && field != rootField {
		path = strings.Split(field, ".")
	}

	if desc.Type() == "required" {
		if property, ok := desc.Details()["property"].(string); ok && property != "" {
			path = append(path, property)
		}
	}
	return path
}

func errorRank(errType string) int {
	switch errType {
	case "required":
		return 0
	case "invalid_type":
		return 1
	case "format":
		return 3
	default:
		return 2
	}
}
