package validation

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.schema.json
var profileSchemaJSON string

var (
	profileSchema     *gojsonschema.Schema
	profileSchemaOnce sync.Once
	profileSchemaErr  error
)

// SchemaError lists every place a document departs from the expected shape.
type SchemaError struct {
	Fields []string
}

func (e *SchemaError) Error() string {
	return "schema validation failed: " + strings.Join(e.Fields, "; ")
}

func loadProfileSchema() (*gojsonschema.Schema, error) {
	profileSchemaOnce.Do(func() {
		profileSchema, profileSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(profileSchemaJSON))
		if profileSchemaErr != nil {
			profileSchemaErr = fmt.Errorf("failed to load profile schema: %w", profileSchemaErr)
		}
	})
	return profileSchema, profileSchemaErr
}

// ValidateProfileDocument checks raw JSON against the uploaded profile schema.
// It returns a *SchemaError when the document parses but has the wrong shape.
func ValidateProfileDocument(raw []byte) error {
	schema, err := loadProfileSchema()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	fields := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "(root)" {
			fields = append(fields, desc.Description())
			continue
		}
		fields = append(fields, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return &SchemaError{Fields: fields}
}
