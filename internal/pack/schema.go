package pack

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// packSchema is the JSON Schema every pack document must satisfy before
// decoding. Structural rules only; semantic rules (cycles, dangling
// edges, duplicates) run in curriculum.Validate afterwards.
var packSchema = map[string]any{
	"type":                 "object",
	"required":             []any{"schema_version", "subjects"},
	"additionalProperties": false,
	"properties": map[string]any{
		"schema_version": map[string]any{
			"type":    "string",
			"pattern": `^v?\d+\.\d+\.\d+$`,
		},
		"subjects": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":                 "object",
				"required":             []any{"id", "concepts"},
				"additionalProperties": false,
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"title": map[string]any{"type": "string"},
					"concepts": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type":                 "object",
							"required":             []any{"id", "title", "estimated_mins"},
							"additionalProperties": false,
							"properties": map[string]any{
								"id":             map[string]any{"type": "string", "minLength": 1},
								"title":          map[string]any{"type": "string", "minLength": 1},
								"difficulty":     map[string]any{"type": "number"},
								"estimated_mins": map[string]any{"type": "integer", "minimum": 1},
							},
						},
					},
					"edges": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":                 "object",
							"required":             []any{"prerequisite", "dependent"},
							"additionalProperties": false,
							"properties": map[string]any{
								"prerequisite": map[string]any{"type": "string", "minLength": 1},
								"dependent":    map[string]any{"type": "string", "minLength": 1},
							},
						},
					},
				},
			},
		},
	},
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled returns the compiled pack schema, compiling it on first use.
func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not Go
		// maps with typed values. Marshal then unmarshal to normalize.
		defBytes, err := json.Marshal(packSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal pack schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse pack schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://curriculum-pack.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateDocument checks raw pack bytes against the embedded schema.
func validateDocument(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("pack is not valid JSON: %w", err)
	}
	s, err := compiled()
	if err != nil {
		return err
	}
	if err := s.Validate(parsed); err != nil {
		return fmt.Errorf("pack failed schema validation: %w", err)
	}
	return nil
}
