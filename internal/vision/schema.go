package vision

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
)

// SchemaFor returns the JSON-Schema (draft 2020-12 subset) used to sanity
// check a structured extraction for the given template. The schemas check
// shapes, not completeness: a provider omitting an uncertain field is normal
// and reconciliation simply skips it.
func SchemaFor(t constants.Template) map[string]any {
	switch t {
	case constants.TemplateOdometer:
		return map[string]any{
			"type": "object",
			"properties": map[string]any{
				"reading": numberOrNumericString(),
			},
		}
	case constants.TemplateTravel:
		return map[string]any{
			"type": "object",
			"properties": map[string]any{
				"date":     map[string]any{"type": "string"},
				"cost":     numberOrNumericString(),
				"currency": map[string]any{"type": "string"},
				"purpose":  map[string]any{"type": "string"},
				"type":     map[string]any{"type": "string"},
				"vendor":   map[string]any{"type": "string"},
				"location": map[string]any{"type": "string"},
			},
		}
	default:
		return map[string]any{
			"type": "object",
			"properties": map[string]any{
				"vendor":        map[string]any{"type": "string"},
				"location":      map[string]any{"type": "string"},
				"date":          map[string]any{"type": "string"},
				"items":         map[string]any{"type": "array"},
				"subtotal":      numberOrNumericString(),
				"tax":           numberOrNumericString(),
				"total":         numberOrNumericString(),
				"paymentMethod": map[string]any{"type": "string"},
			},
		}
	}
}

func numberOrNumericString() map[string]any {
	return map[string]any{
		"anyOf": []any{
			map[string]any{"type": "number"},
			map[string]any{"type": "string"},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
