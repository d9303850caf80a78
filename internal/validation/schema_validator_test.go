package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ruleSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["key", "metric", "threshold"],
	"properties": {
		"key": {"type": "string", "minLength": 1},
		"metric": {"enum": ["streak", "total_completed_days"]},
		"threshold": {"type": "integer", "minimum": 1}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "rule.schema.json", ruleSchema)

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{"valid", `{"key": "week_one", "metric": "streak", "threshold": 7}`, ""},
		{"missing required field", `{"key": "week_one", "metric": "streak"}`, "required"},
		{"wrong type", `{"key": "week_one", "metric": "streak", "threshold": "seven"}`, "/threshold"},
		{"below minimum", `{"key": "week_one", "metric": "streak", "threshold": 0}`, "minimum"},
		{"unknown enum value", `{"key": "week_one", "metric": "coins", "threshold": 3}`, "/metric"},
		{"invalid JSON", `{"key": }`, "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := writeFile(t, dir, "data.json", tt.data)

			err := v.ValidateFile(dataPath, schemaPath)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateBytes_CachesSchema(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "rule.schema.json", ruleSchema)

	require.NoError(t, v.ValidateBytes([]byte(`{"key": "a", "metric": "streak", "threshold": 1}`), schemaPath))

	// removing the file proves the second call uses the compiled schema
	require.NoError(t, os.Remove(schemaPath))
	assert.NoError(t, v.ValidateBytes([]byte(`{"key": "b", "metric": "streak", "threshold": 2}`), schemaPath))
}

func TestSchemaValidator_MissingFiles(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()

	err := v.ValidateBytes([]byte(`{}`), filepath.Join(dir, "nope.schema.json"))
	assert.Error(t, err)

	schemaPath := writeFile(t, dir, "rule.schema.json", ruleSchema)
	err = v.ValidateFile(filepath.Join(dir, "missing.json"), schemaPath)
	assert.Error(t, err)
}

func TestResolveProjectPath_WalksUpToModuleRoot(t *testing.T) {
	// package tests run in internal/validation; go.mod sits two levels up
	path, err := ResolveProjectPath("go.mod")
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = ResolveProjectPath("definitely/not/here.json")
	assert.Error(t, err)
}
