package rules

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/github/validate-inputs/pkg/conventions"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "validate-inputs://rules.schema.json"

// ruleSchema is compiled once at startup; the document shape never changes
// during a run.
var ruleSchema = mustCompileSchema()

// schemaDocument builds the JSON schema for rule documents. The validator
// type enum is derived from the convention mapper's known types so the two
// can never drift apart.
func schemaDocument() map[string]any {
	typeTags := make([]any, 0, len(conventions.KnownTypes()))
	for _, tag := range conventions.KnownTypes() {
		typeTags = append(typeTags, tag)
	}

	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"required":             []any{"action"},
		"additionalProperties": false,
		"properties": map[string]any{
			"action": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"description": map[string]any{
				"type": "string",
			},
			"required": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string", "minLength": 1},
				"uniqueItems": true,
			},
			"inputs": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": typeTags,
						},
						"min": map[string]any{"type": "integer"},
						"max": map[string]any{"type": "integer"},
						"allowed-values": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 1,
						},
					},
				},
			},
		},
	}
}

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, schemaDocument()); err != nil {
		panic(fmt.Sprintf("adding rule schema resource: %v", err))
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("compiling rule schema: %v", err))
	}
	return schema
}

// validateSchema checks a decoded rule document against the schema. The
// document is round-tripped through JSON so YAML decoding quirks (integer
// widths, nested map types) never leak into schema validation.
func validateSchema(doc any) error {
	normalized, err := normalizeForSchema(doc)
	if err != nil {
		return err
	}
	if err := ruleSchema.Validate(normalized); err != nil {
		return fmt.Errorf("rule document does not match schema: %w", err)
	}
	return nil
}

func normalizeForSchema(doc any) (any, error) {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("normalizing rule document: %w", err)
	}
	normalized, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("normalizing rule document: %w", err)
	}
	return normalized, nil
}
