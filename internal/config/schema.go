package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// RulesSchema returns the JSON schema of the rules file, indented.
func RulesSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&RulesFile{})
	schema.Title = "Listing Agent Rules"
	schema.Description = "Limits and banned terms used when building prompts and validating listings."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rules schema: %w", err)
	}
	return data, nil
}
