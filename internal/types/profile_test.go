package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentSource_Validate(t *testing.T) {
	src := ContentSource{ID: "s1", Type: SourceBlog, Text: "A sample."}
	assert.NoError(t, src.Validate())
}

func TestContentSource_Validate_MissingText(t *testing.T) {
	src := ContentSource{ID: "s1", Type: SourceBlog}

	err := src.Validate()
	require.Error(t, err)
	var malformedErr *MalformedSourceError
	require.ErrorAs(t, err, &malformedErr)
	assert.Equal(t, "s1", malformedErr.SourceID)
	assert.Equal(t, "text", malformedErr.Field)
}

func TestContentSource_Validate_UnknownType(t *testing.T) {
	src := ContentSource{ID: "s1", Type: "carrier-pigeon", Text: "A sample."}

	err := src.Validate()
	require.Error(t, err)
	var malformedErr *MalformedSourceError
	require.ErrorAs(t, err, &malformedErr)
	assert.Equal(t, "type", malformedErr.Field)
}

func TestContentSource_WordCount(t *testing.T) {
	src := ContentSource{Text: "  one  two\nthree "}
	assert.Equal(t, 3, src.WordCount())

	empty := ContentSource{}
	assert.Equal(t, 0, empty.WordCount())
}

func TestTrainingData_Recount(t *testing.T) {
	td := TrainingData{
		Sources: []ContentSource{
			{Text: "one two three"},
			{Text: "four five"},
		},
		// Stale values that Recount must overwrite.
		TotalWords: 99,
		TotalPosts: 99,
	}

	td.Recount()
	assert.Equal(t, 2, td.TotalPosts)
	assert.Equal(t, 5, td.TotalWords)
}

func TestVoiceTrainingSession_HighestCompleted(t *testing.T) {
	s := VoiceTrainingSession{Steps: []TrainingStep{
		{Name: "a", Completed: true},
		{Name: "b", Completed: true},
		{Name: "c"},
	}}
	assert.Equal(t, 1, s.HighestCompleted())

	fresh := VoiceTrainingSession{Steps: []TrainingStep{{Name: "a"}}}
	assert.Equal(t, -1, fresh.HighestCompleted())
}

func TestVoiceGenerationRequest_Validate(t *testing.T) {
	req := VoiceGenerationRequest{Prompt: "write a post", ContentType: "post"}
	assert.NoError(t, req.Validate())

	missing := VoiceGenerationRequest{ContentType: "post"}
	assert.Error(t, missing.Validate())

	negative := VoiceGenerationRequest{Prompt: "p", ContentType: "post", TargetLength: -1}
	assert.Error(t, negative.Validate())
}

func TestVoiceFeedback_Validate(t *testing.T) {
	fb := VoiceFeedback{ContentID: "c1", Rating: 4}
	assert.NoError(t, fb.Validate())

	outOfRange := VoiceFeedback{ContentID: "c1", Rating: 6}
	assert.Error(t, outOfRange.Validate())

	missing := VoiceFeedback{Rating: 4}
	assert.Error(t, missing.Validate())
}
