package alignment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/voice-engine/internal/extraction"
	"github.com/jonathan/voice-engine/internal/profile"
	"github.com/jonathan/voice-engine/internal/types"
)

func buildProfile(t *testing.T, texts ...string) *types.BrandVoiceProfile {
	t.Helper()
	sources := make([]types.ContentSource, len(texts))
	for i, text := range texts {
		sources[i] = types.ContentSource{ID: string(rune('a' + i)), Type: types.SourceBlog, Text: text}
	}
	builder := profile.NewBuilder(extraction.NewExtractor(extraction.DefaultConfig()), profile.DefaultConfidenceParams())
	p, err := builder.Build(uuid.New(), "target", sources)
	require.NoError(t, err)
	return p
}

func newScorer() *Scorer {
	return NewScorer(extraction.NewExtractor(extraction.DefaultConfig()), DefaultWeights())
}

func TestScore_SelfAlignmentIsPerfect(t *testing.T) {
	text := "The committee reviewed the quarterly results. Therefore, the board approved the revised strategy. Moreover, the analysis demonstrates substantial growth."
	target := buildProfile(t, text)

	cmp, err := newScorer().Score(text, target)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, cmp.Overall, 0.0001)
	assert.InDelta(t, 1.0, cmp.ToneAlignment, 0.0001)
	assert.InDelta(t, 1.0, cmp.VocabularyAlignment, 0.0001)
	assert.InDelta(t, 1.0, cmp.StructureAlignment, 0.0001)
	assert.Empty(t, cmp.Differences)
	assert.NotNil(t, cmp.Differences)
	assert.Empty(t, cmp.Improvements)
}

func TestScore_CasualCandidateAgainstFormalProfile(t *testing.T) {
	target := buildProfile(t,
		"The committee reviewed the quarterly results. Therefore, the board approved the revised strategy. Moreover, the analysis demonstrates substantial growth across the industry.",
		"Furthermore, the revenue projections indicate consistent growth. The stakeholders endorsed the roadmap, and the process delivered measurable results.",
	)

	cmp, err := newScorer().Score("Hey, I'm gonna share some cool stuff today! Honestly it was awesome and I totally loved the vibe 🔥", target)
	require.NoError(t, err)

	assert.Less(t, cmp.Overall, 0.6)
	assert.NotEmpty(t, cmp.Differences)
	assert.NotEmpty(t, cmp.Improvements)

	var exclamationDiff bool
	for _, d := range cmp.Differences {
		if d == "punctuation mismatch: exclamation marks usage is frequent but the target voice's usage is rare" {
			exclamationDiff = true
		}
	}
	assert.True(t, exclamationDiff, "expected an exclamation mark mismatch, got %v", cmp.Differences)
}

func TestScore_Deterministic(t *testing.T) {
	target := buildProfile(t, "We shipped the roadmap. We delivered results for every client. Our strategy works.")
	text := "I think the team should talk about the process and the results."

	scorer := newScorer()
	first, err := scorer.Score(text, target)
	require.NoError(t, err)
	second, err := scorer.Score(text, target)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScore_EmptyCandidate(t *testing.T) {
	target := buildProfile(t, "The strategy delivered measurable results.")

	_, err := newScorer().Score("   ", target)
	var insufficientErr *extraction.InsufficientDataError
	assert.ErrorAs(t, err, &insufficientErr)
}

func TestCompare_PartialCreditForAdjacentValues(t *testing.T) {
	base := types.VoiceCharacteristics{
		Tone:        types.ToneConversational,
		Formality:   types.FormalitySemiFormal,
		Perspective: types.PerspectiveFirstSingular,
		Vocabulary:  types.VocabularyLevel{Complexity: types.ComplexityModerate},
		Structure: types.SentenceStructure{
			AverageLength: 12,
			Punctuation: types.PunctuationStyle{
				Exclamation: types.UsageRare,
				Question:    types.UsageRare,
				Ellipsis:    types.UsageRare,
				Emoji:       types.UsageRare,
			},
		},
	}
	target := base
	target.Tone = types.ToneFriendly
	target.Formality = types.FormalityFormal
	target.Perspective = types.PerspectiveFirstPlural

	cmp := Compare(&base, &target, DefaultWeights())

	// All three tone-dimension components land on partial credit.
	assert.InDelta(t, 0.3, cmp.ToneAlignment, 0.0001)
	assert.InDelta(t, 1.0, cmp.VocabularyAlignment, 0.0001)
	assert.InDelta(t, 1.0, cmp.StructureAlignment, 0.0001)
	assert.InDelta(t, 0.72, cmp.Overall, 0.0001)
	assert.Len(t, cmp.Differences, 3)
	assert.Len(t, cmp.Improvements, 3)
}

func TestCompare_DistantValuesScoreZero(t *testing.T) {
	candidate := types.VoiceCharacteristics{
		Tone:        types.ToneHumorous,
		Formality:   types.FormalityVeryCasual,
		Perspective: types.PerspectiveSecond,
		Vocabulary:  types.VocabularyLevel{Complexity: types.ComplexitySimple},
		Structure: types.SentenceStructure{
			AverageLength: 8,
			Punctuation: types.PunctuationStyle{
				Exclamation: types.UsageFrequent,
				Question:    types.UsageFrequent,
				Ellipsis:    types.UsageFrequent,
				Emoji:       types.UsageFrequent,
			},
		},
	}
	target := types.VoiceCharacteristics{
		Tone:        types.ToneProfessional,
		Formality:   types.FormalityFormal,
		Perspective: types.PerspectiveThird,
		Vocabulary:  types.VocabularyLevel{Complexity: types.ComplexitySophisticated},
		Structure: types.SentenceStructure{
			AverageLength: 8,
			Punctuation: types.PunctuationStyle{
				Exclamation: types.UsageRare,
				Question:    types.UsageRare,
				Ellipsis:    types.UsageRare,
				Emoji:       types.UsageRare,
			},
		},
	}

	cmp := Compare(&candidate, &target, DefaultWeights())

	assert.InDelta(t, 0.0, cmp.ToneAlignment, 0.0001)
	assert.InDelta(t, 0.0, cmp.VocabularyAlignment, 0.0001)
	// Identical average length keeps half the structure score alive.
	assert.InDelta(t, 0.5, cmp.StructureAlignment, 0.0001)
	assert.InDelta(t, 0.15, cmp.Overall, 0.0001)
}
