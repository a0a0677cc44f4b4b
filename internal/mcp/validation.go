package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaValidator wraps JSON Schema compilation and validation for one
// tool's input schema.
type SchemaValidator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles a validator from a JSON schema definition.
func NewSchemaValidator(schemaMap map[string]interface{}) (*SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7 // MCP uses JSON Schema Draft 7

	schemaJSON, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := compiler.AddResource("schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &SchemaValidator{schema: schema}, nil
}

// Validate checks an argument bag against the compiled schema. A violation
// comes back as a *ValidationError naming the offending field and rule; it
// is a reportable result, not a fault, and never touches the network.
func (v *SchemaValidator) Validate(args map[string]interface{}) error {
	// jsonschema validates decoded JSON values; a nil bag is an empty object.
	var value interface{} = args
	if args == nil {
		value = map[string]interface{}{}
	}

	if err := v.schema.Validate(value); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			// The leaf cause names the concrete field and violated rule.
			leaf := ve
			for len(leaf.Causes) > 0 {
				leaf = leaf.Causes[0]
			}
			return &ValidationError{
				Field:   leaf.InstanceLocation,
				Message: leaf.Message,
			}
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// NewToolValidators compiles one validator per registered tool.
func NewToolValidators() (map[string]*SchemaValidator, error) {
	validators := make(map[string]*SchemaValidator, len(toolSchemas))
	for name, schema := range toolSchemas {
		v, err := NewSchemaValidator(schema)
		if err != nil {
			return nil, fmt.Errorf("compile schema for %s: %w", name, err)
		}
		validators[name] = v
	}
	return validators, nil
}

// ValidationError represents a parameter validation error with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" || e.Field == "/" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
}
