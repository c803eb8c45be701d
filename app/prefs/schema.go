package prefs

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:generate go run internal/schema/main.go palette.schema.json

//go:embed palette.schema.json
var embeddedSchemaData []byte

// GeneratePaletteSchema generates JSON schema for the Palette struct.
func GeneratePaletteSchema() ([]byte, error) {
	schema := jsonschema.Reflect(&Palette{})
	schema.Title = "Gallery UI Palette"
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// VerifyPalette validates palette file data against the embedded JSON schema.
// An empty file is valid and means the built-in palette.
func VerifyPalette(data []byte) error {
	if len(embeddedSchemaData) == 0 {
		return errors.New("embedded palette schema is empty")
	}

	compiler := validator.NewCompiler()
	if err := compiler.AddResource("palette.schema.json", bytes.NewReader(embeddedSchemaData)); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile("palette.schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	var cfg any
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse palette file: %w", err)
	}
	if cfg == nil {
		cfg = map[string]any{}
	}

	if err := schema.Validate(cfg); err != nil {
		return fmt.Errorf("palette validation failed: %w", err)
	}
	return nil
}
