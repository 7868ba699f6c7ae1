package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_GenerationPrompts(t *testing.T) {
	template, err := Get("generation.json", "generate-post")
	require.NoError(t, err)
	assert.Contains(t, template, "{{.VoiceDescription}}")
	assert.Contains(t, template, "{{.Prompt}}")

	template, err = Get("generation.json", "describe-voice")
	require.NoError(t, err)
	assert.Contains(t, template, "{{.Tone}}")
	assert.Contains(t, template, "{{.Formality}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("generation.json", "nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "generate-post")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissingKey(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("generation.json", "nonexistent")
	})
}

func TestFormat(t *testing.T) {
	result := Format("Write in a {{.Tone}} tone about {{.Topic}}.", map[string]string{
		"Tone":  "professional",
		"Topic": "hiring",
	})
	assert.Equal(t, "Write in a professional tone about hiring.", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "value"})
	assert.Equal(t, "value and {{.Unknown}}", result)
}
