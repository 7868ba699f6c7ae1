package schemas

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/voice-engine/internal/extraction"
	"github.com/jonathan/voice-engine/internal/profile"
	"github.com/jonathan/voice-engine/internal/types"
)

const profileSchema = "schemas/brand_voice_profile.schema.json"

func TestResolveSchemaPath(t *testing.T) {
	path := ResolveSchemaPath(profileSchema)
	require.NotEmpty(t, path, "profile schema not found relative to the test directory")
}

func TestResolveSchemaPath_Missing(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}

func TestValidateBytes_BuiltProfileMatchesSchema(t *testing.T) {
	schemaPath := ResolveSchemaPath(profileSchema)
	require.NotEmpty(t, schemaPath)

	builder := profile.NewBuilder(extraction.NewExtractor(extraction.DefaultConfig()), profile.DefaultConfidenceParams())
	p, err := builder.Build(uuid.New(), "Schema Check", []types.ContentSource{
		{ID: "a", Type: types.SourceBlog, Text: "Therefore, the strategy demonstrates substantial growth across the industry."},
		{ID: "b", Type: types.SourceLinkedIn, Text: "I remember when I started. We shipped anyway, and the results followed."},
	})
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	assert.NoError(t, ValidateBytes(schemaPath, data))
}

func TestValidateBytes_RejectsBadEnum(t *testing.T) {
	schemaPath := ResolveSchemaPath(profileSchema)
	require.NotEmpty(t, schemaPath)

	builder := profile.NewBuilder(extraction.NewExtractor(extraction.DefaultConfig()), profile.DefaultConfidenceParams())
	p, err := builder.Build(uuid.New(), "Schema Check", []types.ContentSource{
		{ID: "a", Type: types.SourceBlog, Text: "A short writing sample for validation."},
	})
	require.NoError(t, err)

	var doc map[string]any
	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &doc))
	doc["characteristics"].(map[string]any)["tone"] = "sarcastic"

	data, err = json.Marshal(doc)
	require.NoError(t, err)

	err = ValidateBytes(schemaPath, data)
	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateBytes_MissingSchemaFile(t *testing.T) {
	err := ValidateBytes("/nonexistent/schema.json", []byte(`{}`))
	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
