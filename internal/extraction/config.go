// Package extraction turns raw content samples into a structured VoiceCharacteristics profile.
package extraction

// Version tags the extractor heuristics. Stored on TrainingData so a profile
// records which generation of heuristics produced its characteristics.
const Version = "heuristic-v1"

// Config holds every threshold and constant the extractor uses. All values
// are pure constants from the caller's point of view: the extractor is a
// referentially transparent function of its inputs and this table.
type Config struct {
	// TopPhrases caps how many industry terms and common phrases are kept.
	TopPhrases int
	// MinPhraseOccurrences is the minimum corpus-wide count for an n-gram to
	// qualify as a common phrase.
	MinPhraseOccurrences int

	// Coefficient-of-variation buckets for sentence length variability.
	VariabilityLowMax    float64
	VariabilityMediumMax float64

	// Per-1000-word frequency buckets for punctuation usage tiers.
	UsageOccasionalMin float64
	UsageFrequentMin   float64

	// Vocabulary complexity buckets over a blended score of average word
	// length and rare-word ratio.
	ComplexityModerateMin      float64
	ComplexitySophisticatedMin float64
	// RareWordBoost scales the rare-word ratio into the complexity score.
	RareWordBoost float64

	// Sentence-length cutoffs for preferred structure hints.
	ShortSentenceMax float64
	LongSentenceMin  float64

	// Narrative marker density (markers per sentence) at or above which
	// storytelling elements are considered present.
	StorytellingDensityMin float64
	// AnecdoteMediumMin and AnecdoteHighMin bucket narrative marker density
	// into the anecdote frequency tier.
	AnecdoteMediumMin float64
	AnecdoteHighMin   float64

	// DataUsageMin is the fraction of sentences containing a number at or
	// above which the voice is considered data-driven.
	DataUsageMin float64

	// Intensifier density (per 100 words) buckets for emotional intensity.
	IntensityMediumMin float64
	IntensityHighMin   float64

	// Formality score cutoffs. The score is formal marker density minus
	// casual marker density, per 100 words.
	FormalityFormalMin     float64
	FormalitySemiFormalMin float64
	FormalityCasualMin     float64

	// MaxStyleLen truncates opening/closing style sentences for readability.
	MaxStyleLen int
}

// DefaultConfig returns the default heuristic constants.
func DefaultConfig() Config {
	return Config{
		TopPhrases:                 10,
		MinPhraseOccurrences:       2,
		VariabilityLowMax:          0.3,
		VariabilityMediumMax:       0.6,
		UsageOccasionalMin:         2.0,
		UsageFrequentMin:           10.0,
		ComplexityModerateMin:      4.6,
		ComplexitySophisticatedMin: 5.4,
		RareWordBoost:              8.0,
		ShortSentenceMax:           12.0,
		LongSentenceMin:            22.0,
		StorytellingDensityMin:     0.10,
		AnecdoteMediumMin:          0.05,
		AnecdoteHighMin:            0.15,
		DataUsageMin:               0.2,
		IntensityMediumMin:         1.0,
		IntensityHighMin:           3.0,
		FormalityFormalMin:         0.5,
		FormalitySemiFormalMin:     0.0,
		FormalityCasualMin:         -3.0,
		MaxStyleLen:                60,
	}
}
