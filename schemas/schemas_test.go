package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"brand_voice_profile.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestProfileSchema_DeclaresExpectedShape(t *testing.T) {
	data, err := os.ReadFile("brand_voice_profile.schema.json")
	require.NoError(t, err)

	var schemaObj map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schemaObj))

	assert.Equal(t, "http://json-schema.org/draft-07/schema#", schemaObj["$schema"])
	assert.Equal(t, "object", schemaObj["type"])

	props, ok := schemaObj["properties"].(map[string]interface{})
	require.True(t, ok, "schema should declare properties")
	for _, field := range []string{"id", "owner_id", "name", "characteristics", "training_data", "confidence", "is_active"} {
		assert.Contains(t, props, field)
	}

	chars, ok := props["characteristics"].(map[string]interface{})
	require.True(t, ok)
	charProps, ok := chars["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, field := range []string{"tone", "formality", "perspective", "emotional_range", "vocabulary_level", "sentence_structure", "content_patterns"} {
		assert.Contains(t, charProps, field)
	}
}

func TestProfileSchema_EnumsMatchEngineValues(t *testing.T) {
	data, err := os.ReadFile("brand_voice_profile.schema.json")
	require.NoError(t, err)

	var schemaObj map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schemaObj))

	charProps := schemaObj["properties"].(map[string]interface{})["characteristics"].(map[string]interface{})["properties"].(map[string]interface{})

	toneEnum := charProps["tone"].(map[string]interface{})["enum"].([]interface{})
	assert.Len(t, toneEnum, 8)
	assert.Contains(t, toneEnum, "professional")
	assert.Contains(t, toneEnum, "casual")

	formalityEnum := charProps["formality"].(map[string]interface{})["enum"].([]interface{})
	assert.Equal(t, []interface{}{"very-casual", "casual", "semi-formal", "formal"}, formalityEnum)
}
