package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the config file for editor tooling
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
		// Every key is optional: absent keys keep their default
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(&Config{})
	schema.Title = "swordplay config"
	schema.Description = "Tuning and control bindings; TOML keys mirror these property names"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
