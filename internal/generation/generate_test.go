package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/voice-engine/internal/alignment"
	"github.com/jonathan/voice-engine/internal/extraction"
	"github.com/jonathan/voice-engine/internal/llm"
	"github.com/jonathan/voice-engine/internal/types"
)

// stubClient returns a canned response and records the prompt it was given.
type stubClient struct {
	response string
	err      error
	prompt   string
	tier     llm.ModelTier
}

func (s *stubClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	s.prompt = prompt
	s.tier = tier
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func testScorer() *alignment.Scorer {
	return alignment.NewScorer(extraction.NewExtractor(extraction.DefaultConfig()), alignment.DefaultWeights())
}

func activeProfile() *types.BrandVoiceProfile {
	return &types.BrandVoiceProfile{
		ID:       uuid.New(),
		Name:     "Founder Voice",
		IsActive: true,
		Characteristics: types.VoiceCharacteristics{
			Tone:        types.ToneProfessional,
			Formality:   types.FormalityFormal,
			Perspective: types.PerspectiveThird,
			Vocabulary:  types.VocabularyLevel{Complexity: types.ComplexityModerate},
			Structure: types.SentenceStructure{
				AverageLength: 10,
				Punctuation: types.PunctuationStyle{
					Exclamation: types.UsageRare,
					Question:    types.UsageRare,
					Ellipsis:    types.UsageRare,
					Emoji:       types.UsageRare,
				},
			},
		},
	}
}

func testRequest() *types.VoiceGenerationRequest {
	return &types.VoiceGenerationRequest{
		Prompt:      "announce the new release",
		ContentType: "post",
	}
}

func TestGenerate_ReturnsScoredResult(t *testing.T) {
	client := &stubClient{response: "The release delivers substantial improvements. Therefore, the team recommends upgrading."}
	g := NewGenerator(client, testScorer())

	result, err := g.Generate(context.Background(), testRequest(), activeProfile())
	require.NoError(t, err)

	assert.Equal(t, client.response, result.Content)
	assert.Equal(t, llm.TierAdvanced, client.tier)
	assert.Greater(t, result.VoiceAlignment, 0.0)
	assert.LessOrEqual(t, result.VoiceAlignment, 1.0)
	assert.Contains(t, result.AppliedCharacteristics, "tone: professional")
	assert.Contains(t, result.AppliedCharacteristics, "formality: formal")
}

func TestGenerate_PromptCarriesVoiceAndRequest(t *testing.T) {
	client := &stubClient{response: "Generated text."}
	g := NewGenerator(client, testScorer())

	req := testRequest()
	req.TargetLength = 120
	req.Instructions = "mention the beta program"

	_, err := g.Generate(context.Background(), req, activeProfile())
	require.NoError(t, err)

	assert.Contains(t, client.prompt, "announce the new release")
	assert.Contains(t, client.prompt, "professional")
	assert.Contains(t, client.prompt, "formal")
	assert.Contains(t, client.prompt, "120")
	assert.Contains(t, client.prompt, "mention the beta program")
}

func TestGenerate_InactiveProfile(t *testing.T) {
	client := &stubClient{response: "never used"}
	g := NewGenerator(client, testScorer())

	p := activeProfile()
	p.IsActive = false

	_, err := g.Generate(context.Background(), testRequest(), p)
	require.Error(t, err)
	var notActiveErr *ProfileNotActiveError
	assert.ErrorAs(t, err, &notActiveErr)
	assert.Equal(t, p.ID, notActiveErr.ProfileID)
	assert.Empty(t, client.prompt)
}

func TestGenerate_InvalidRequest(t *testing.T) {
	g := NewGenerator(&stubClient{}, testScorer())

	_, err := g.Generate(context.Background(), &types.VoiceGenerationRequest{}, activeProfile())
	assert.Error(t, err)
}

func TestGenerate_ClientFailure(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}
	g := NewGenerator(client, testScorer())

	_, err := g.Generate(context.Background(), testRequest(), activeProfile())
	require.Error(t, err)
	var genErr *GenerateError
	require.ErrorAs(t, err, &genErr)
	assert.ErrorContains(t, genErr.Cause, "quota exceeded")
}

func TestDescribeVoice(t *testing.T) {
	desc := DescribeVoice(&activeProfile().Characteristics)

	assert.Contains(t, desc, "professional")
	assert.Contains(t, desc, "formal")
	assert.Contains(t, desc, "third-person")
}

func TestAppliedCharacteristics_IncludesPatternFlags(t *testing.T) {
	chars := activeProfile().Characteristics
	chars.ContentPatterns.StorytellingElements = true
	chars.ContentPatterns.DataUsage = true

	applied := AppliedCharacteristics(&chars)
	assert.Contains(t, applied, "storytelling elements")
	assert.Contains(t, applied, "data-driven statements")
}
