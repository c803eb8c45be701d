package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyPalette(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr bool
		errMsg  string
	}{
		{name: "valid palette", file: "palette.yml", wantErr: false},
		{name: "unknown field", file: "unknown_field.yml", wantErr: true, errMsg: "additionalProperties"},
		{name: "wrong type", file: "wrong_type.yml", wantErr: true, errMsg: "expected string"},
		{name: "bad class name", file: "bad_class.yml", wantErr: true, errMsg: "does not match pattern"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join("testdata", tc.file))
			require.NoError(t, err, "failed to read test file")

			err = VerifyPalette(data)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestVerifyPalette_Empty(t *testing.T) {
	require.NoError(t, VerifyPalette(nil))
	require.NoError(t, VerifyPalette([]byte("# nothing here\n")))
}

func TestVerifyPalette_EmptySchema(t *testing.T) {
	orig := embeddedSchemaData
	defer func() { embeddedSchemaData = orig }()

	embeddedSchemaData = nil
	err := VerifyPalette([]byte(`light_class: x`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedded palette schema is empty")
}

func TestVerifyPalette_InvalidYAML(t *testing.T) {
	err := VerifyPalette([]byte(`invalid: yaml: content:`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse palette file")
}

func TestGeneratePaletteSchema(t *testing.T) {
	data, err := GeneratePaletteSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "Gallery UI Palette", schema["title"])

	defs, ok := schema["$defs"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, defs, "Palette")
	assert.Contains(t, defs, "Colors")
}

func TestLoadPalette_SchemaRejects(t *testing.T) {
	_, err := LoadPalette("testdata/unknown_field.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palette validation failed")
}
