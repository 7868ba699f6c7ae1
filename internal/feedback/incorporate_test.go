package feedback

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/voice-engine/internal/types"
)

func testProfile() *types.BrandVoiceProfile {
	return &types.BrandVoiceProfile{
		ID:         uuid.New(),
		Confidence: 0.5,
		Characteristics: types.VoiceCharacteristics{
			Formality: types.FormalityFormal,
			Structure: types.SentenceStructure{
				Punctuation: types.PunctuationStyle{Emoji: types.UsageRare},
			},
		},
	}
}

func testFeedback(rating int, suggestions ...string) *types.VoiceFeedback {
	return &types.VoiceFeedback{
		ID:          uuid.New(),
		ContentID:   "content-1",
		Rating:      rating,
		Suggestions: suggestions,
	}
}

func TestIncorporate_HighRatingReinforces(t *testing.T) {
	in := NewIncorporator(DefaultParams())
	p := testProfile()

	updated, err := in.Incorporate(p, testFeedback(5))
	require.NoError(t, err)

	assert.InDelta(t, 0.52, updated.Confidence, 0.0001)
	assert.Equal(t, p.Characteristics, updated.Characteristics)
	// The input profile is never mutated.
	assert.InDelta(t, 0.5, p.Confidence, 0.0001)
}

func TestIncorporate_ConfidenceCappedAtOne(t *testing.T) {
	in := NewIncorporator(DefaultParams())
	p := testProfile()
	p.Confidence = 0.995

	updated, err := in.Incorporate(p, testFeedback(4))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, updated.Confidence, 0.0001)
}

func TestIncorporate_LowRatingPenalizes(t *testing.T) {
	in := NewIncorporator(DefaultParams())

	updated, err := in.Incorporate(testProfile(), testFeedback(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.45, updated.Confidence, 0.0001)
}

func TestIncorporate_NeutralRatingChangesNothing(t *testing.T) {
	in := NewIncorporator(DefaultParams())
	p := testProfile()

	updated, err := in.Incorporate(p, testFeedback(3, "more casual"))
	require.NoError(t, err)

	assert.InDelta(t, 0.5, updated.Confidence, 0.0001)
	// Suggestions only apply alongside a low rating.
	assert.Equal(t, types.FormalityFormal, updated.Characteristics.Formality)
}

func TestIncorporate_MoreCasualSuggestionMovesOneStep(t *testing.T) {
	in := NewIncorporator(DefaultParams())
	p := testProfile()

	updated, err := in.Incorporate(p, testFeedback(2, "this sounds stiff, make it more casual"))
	require.NoError(t, err)
	assert.Equal(t, types.FormalitySemiFormal, updated.Characteristics.Formality)

	// A second identical round moves one more step, never further.
	updated, err = in.Incorporate(updated, testFeedback(2, "still too stiff, more casual please"))
	require.NoError(t, err)
	assert.Equal(t, types.FormalityCasual, updated.Characteristics.Formality)
}

func TestIncorporate_OneStepPerCallEvenWithRepeatedSuggestions(t *testing.T) {
	in := NewIncorporator(DefaultParams())

	updated, err := in.Incorporate(testProfile(), testFeedback(2, "more casual", "way more casual", "less formal"))
	require.NoError(t, err)
	assert.Equal(t, types.FormalitySemiFormal, updated.Characteristics.Formality)
}

func TestIncorporate_MoreFormalSuggestion(t *testing.T) {
	in := NewIncorporator(DefaultParams())
	p := testProfile()
	p.Characteristics.Formality = types.FormalityCasual

	updated, err := in.Incorporate(p, testFeedback(1, "more formal"))
	require.NoError(t, err)
	assert.Equal(t, types.FormalitySemiFormal, updated.Characteristics.Formality)
}

func TestIncorporate_FormalityClampedAtLadderEnds(t *testing.T) {
	in := NewIncorporator(DefaultParams())
	p := testProfile()
	p.Characteristics.Formality = types.FormalityVeryCasual

	updated, err := in.Incorporate(p, testFeedback(2, "more casual"))
	require.NoError(t, err)
	assert.Equal(t, types.FormalityVeryCasual, updated.Characteristics.Formality)
}

func TestIncorporate_EmojiSuggestions(t *testing.T) {
	in := NewIncorporator(DefaultParams())
	p := testProfile()

	updated, err := in.Incorporate(p, testFeedback(2, "use more emoji"))
	require.NoError(t, err)
	assert.Equal(t, types.UsageOccasional, updated.Characteristics.Structure.Punctuation.Emoji)

	updated, err = in.Incorporate(updated, testFeedback(2, "fewer emoji actually"))
	require.NoError(t, err)
	assert.Equal(t, types.UsageRare, updated.Characteristics.Structure.Punctuation.Emoji)
}

func TestIncorporate_InvalidRating(t *testing.T) {
	in := NewIncorporator(DefaultParams())

	_, err := in.Incorporate(testProfile(), testFeedback(6))
	assert.Error(t, err)

	_, err = in.Incorporate(testProfile(), testFeedback(0))
	assert.Error(t, err)
}
