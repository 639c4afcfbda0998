package service

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// ErrInvalidProperty is returned when a property payload fails validation
var ErrInvalidProperty = errors.New("invalid property")

const propertyCreateSchema = "schemas/property_create.json"

var propertySchema = mustCompileSchema(propertyCreateSchema)

func mustCompileSchema(path string) *jsonschema.Schema {
	raw, err := schemaFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("failed to read schema %s: %v", path, err))
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	if err := compiler.AddResource(path, bytes.NewReader(raw)); err != nil {
		panic(fmt.Sprintf("failed to add schema resource %s: %v", path, err))
	}
	schema, err := compiler.Compile(path)
	if err != nil {
		panic(fmt.Sprintf("failed to compile schema %s: %v", path, err))
	}
	return schema
}

// ValidatePropertyPayload checks a raw create-property body against its JSON schema
func ValidatePropertyPayload(body []byte) error {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("%w: body is not valid JSON: %v", ErrInvalidProperty, err)
	}
	if err := propertySchema.Validate(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidProperty, describeValidationError(err))
	}
	return nil
}

// describeValidationError flattens a schema error into one readable line
func describeValidationError(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	if leaf.InstanceLocation == "" {
		return leaf.Message
	}
	return fmt.Sprintf("%s: %s", leaf.InstanceLocation, leaf.Message)
}
