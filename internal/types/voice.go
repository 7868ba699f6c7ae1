// Package types provides type definitions for structured data used throughout the voice-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Tone represents the dominant register of a writing voice
type Tone string

// Tone values, listed in classification priority order (ties between equally
// frequent classifications resolve to the earlier value).
const (
	ToneProfessional   Tone = "professional"
	ToneConversational Tone = "conversational"
	ToneFriendly       Tone = "friendly"
	ToneAuthoritative  Tone = "authoritative"
	ToneEducational    Tone = "educational"
	ToneInspirational  Tone = "inspirational"
	ToneHumorous       Tone = "humorous"
	ToneCasual         Tone = "casual"
)

// TonePriority is the fixed tie-break order for tone classification votes.
var TonePriority = []Tone{
	ToneProfessional, ToneConversational, ToneFriendly, ToneAuthoritative,
	ToneEducational, ToneInspirational, ToneHumorous, ToneCasual,
}

// Formality represents how formal a writing voice is
type Formality string

// Formality values
const (
	FormalityVeryCasual Formality = "very-casual"
	FormalityCasual     Formality = "casual"
	FormalitySemiFormal Formality = "semi-formal"
	FormalityFormal     Formality = "formal"
)

// FormalityLadder orders formality values from most casual to most formal.
// Feedback shifts and adjacency scoring both walk this ladder one step at a time.
var FormalityLadder = []Formality{
	FormalityVeryCasual, FormalityCasual, FormalitySemiFormal, FormalityFormal,
}

// FormalityIndex returns the position of f on the ladder, or -1 if unknown.
func FormalityIndex(f Formality) int {
	for i, v := range FormalityLadder {
		if v == f {
			return i
		}
	}
	return -1
}

// Perspective represents the narrative point of view of a writing voice
type Perspective string

// Perspective values
const (
	PerspectiveFirstSingular Perspective = "first-person-singular"
	PerspectiveFirstPlural   Perspective = "first-person-plural"
	PerspectiveSecond        Perspective = "second-person"
	PerspectiveThird         Perspective = "third-person"
)

// PerspectivePriority is the fixed tie-break order for perspective votes.
var PerspectivePriority = []Perspective{
	PerspectiveFirstSingular, PerspectiveFirstPlural, PerspectiveSecond, PerspectiveThird,
}

// Tier is a generic low/medium/high bucket used for intensity, variability and frequency fields
type Tier string

// Tier values
const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// UsageTier buckets how often a punctuation feature appears
type UsageTier string

// UsageTier values
const (
	UsageRare       UsageTier = "rare"
	UsageOccasional UsageTier = "occasional"
	UsageFrequent   UsageTier = "frequent"
)

// UsageLadder orders usage tiers from least to most frequent.
var UsageLadder = []UsageTier{UsageRare, UsageOccasional, UsageFrequent}

// UsageIndex returns the position of u on the usage ladder, or -1 if unknown.
func UsageIndex(u UsageTier) int {
	for i, v := range UsageLadder {
		if v == u {
			return i
		}
	}
	return -1
}

// ComplexityTier buckets vocabulary sophistication
type ComplexityTier string

// ComplexityTier values
const (
	ComplexitySimple        ComplexityTier = "simple"
	ComplexityModerate      ComplexityTier = "moderate"
	ComplexitySophisticated ComplexityTier = "sophisticated"
)

// ComplexityLadder orders complexity tiers from simplest to most sophisticated.
var ComplexityLadder = []ComplexityTier{ComplexitySimple, ComplexityModerate, ComplexitySophisticated}

// ComplexityIndex returns the position of c on the complexity ladder, or -1 if unknown.
func ComplexityIndex(c ComplexityTier) int {
	for i, v := range ComplexityLadder {
		if v == c {
			return i
		}
	}
	return -1
}

// EmotionalRange captures the emotional texture of a voice
type EmotionalRange struct {
	PrimaryEmotions []string `json:"primary_emotions"`
	Intensity       Tier     `json:"intensity"`
	Variability     Tier     `json:"variability"`
}

// VocabularyLevel captures word-choice characteristics of a voice
type VocabularyLevel struct {
	Complexity    ComplexityTier `json:"complexity"`
	IndustryTerms []string       `json:"industry_terms"`
	CommonPhrases []string       `json:"common_phrases"`
	AvoidedWords  []string       `json:"avoided_words"`
}

// PunctuationStyle buckets per-1000-word punctuation frequencies
type PunctuationStyle struct {
	Exclamation UsageTier `json:"exclamation_usage"`
	Question    UsageTier `json:"question_usage"`
	Ellipsis    UsageTier `json:"ellipsis_usage"`
	Emoji       UsageTier `json:"emoji_usage"`
}

// SentenceStructure captures structural characteristics of a voice
type SentenceStructure struct {
	// AverageLength is the mean token count per sentence. Full precision is
	// retained here; round only for display.
	AverageLength       float64          `json:"average_length"`
	Variability         Tier             `json:"variability"`
	PreferredStructures []string         `json:"preferred_structures"`
	Punctuation         PunctuationStyle `json:"punctuation"`
}

// ContentPatterns captures recurring content habits of a voice
type ContentPatterns struct {
	OpeningStyles        []string `json:"opening_styles"`
	ClosingStyles        []string `json:"closing_styles"`
	TransitionPhrases    []string `json:"transition_phrases"`
	StorytellingElements bool     `json:"storytelling_elements"`
	DataUsage            bool     `json:"data_usage"`
	AnecdoteFrequency    Tier     `json:"anecdote_frequency"`
}

// VoiceCharacteristics is the structured, multi-dimensional encoding of a writing voice.
// It is a value object: immutable once produced by an extraction pass.
type VoiceCharacteristics struct {
	Tone            Tone              `json:"tone"`
	Formality       Formality         `json:"formality"`
	Perspective     Perspective       `json:"perspective"`
	EmotionalRange  EmotionalRange    `json:"emotional_range"`
	Vocabulary      VocabularyLevel   `json:"vocabulary_level"`
	Structure       SentenceStructure `json:"sentence_structure"`
	ContentPatterns ContentPatterns   `json:"content_patterns"`
}
