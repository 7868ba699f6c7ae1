package alignment

import (
	"fmt"
	"math"
	"time"

	"github.com/jonathan/voice-engine/internal/extraction"
	"github.com/jonathan/voice-engine/internal/types"
)

// toneAdjacency lists tones that earn partial credit against each other.
var toneAdjacency = map[types.Tone][]types.Tone{
	types.ToneProfessional:   {types.ToneAuthoritative, types.ToneEducational},
	types.ToneConversational: {types.ToneFriendly, types.ToneCasual},
	types.ToneFriendly:       {types.ToneConversational, types.ToneInspirational},
	types.ToneAuthoritative:  {types.ToneProfessional, types.ToneEducational},
	types.ToneEducational:    {types.ToneProfessional, types.ToneAuthoritative},
	types.ToneInspirational:  {types.ToneFriendly},
	types.ToneHumorous:       {types.ToneCasual},
	types.ToneCasual:         {types.ToneConversational, types.ToneHumorous},
}

// Scorer compares candidate texts against target profiles. It is pure:
// identical inputs always yield identical comparisons.
type Scorer struct {
	extractor *extraction.Extractor
	weights   Weights
}

// NewScorer returns a Scorer using the given extractor and dimension weights.
func NewScorer(extractor *extraction.Extractor, weights Weights) *Scorer {
	return &Scorer{extractor: extractor, weights: weights}
}

// Score extracts characteristics from the candidate text and compares them
// against the target profile, producing per-dimension alignment scores plus
// human-readable differences and improvement suggestions.
func (s *Scorer) Score(candidateText string, target *types.BrandVoiceProfile) (*types.VoiceComparison, error) {
	candidate, err := s.extractor.Extract([]types.ContentSource{{
		ID:         "candidate",
		Type:       types.SourceOther,
		Text:       candidateText,
		IngestedAt: time.Time{}, // scoring is time-independent
	}})
	if err != nil {
		return nil, err
	}

	return Compare(&candidate, &target.Characteristics, s.weights), nil
}

// Compare diffs two characteristic sets. Exposed separately so already
// extracted characteristics can be compared without re-analysis.
func Compare(candidate, target *types.VoiceCharacteristics, weights Weights) *types.VoiceComparison {
	var diffs, improvements []string

	report := func(score float64, difference, improvement string) {
		if score < differenceThreshold {
			diffs = append(diffs, difference)
			improvements = append(improvements, improvement)
		}
	}

	toneScore := categoricalSimilarity(candidate.Tone == target.Tone, adjacentTones(candidate.Tone, target.Tone))
	report(toneScore,
		fmt.Sprintf("tone reads as %s but the target voice is %s", candidate.Tone, target.Tone),
		fmt.Sprintf("shift the tone toward %s", target.Tone))

	formalityScore := ladderSimilarity(types.FormalityIndex(candidate.Formality), types.FormalityIndex(target.Formality))
	report(formalityScore,
		fmt.Sprintf("formality reads as %s but the target voice is %s", candidate.Formality, target.Formality),
		fmt.Sprintf("adjust word choice and phrasing to sound %s", target.Formality))

	perspectiveScore := categoricalSimilarity(candidate.Perspective == target.Perspective,
		(candidate.Perspective == types.PerspectiveFirstSingular && target.Perspective == types.PerspectiveFirstPlural) ||
			(candidate.Perspective == types.PerspectiveFirstPlural && target.Perspective == types.PerspectiveFirstSingular))
	report(perspectiveScore,
		fmt.Sprintf("perspective is %s but the target voice writes in the %s", candidate.Perspective, target.Perspective),
		fmt.Sprintf("rewrite in the %s", target.Perspective))

	vocabScore := tierSimilarity(types.ComplexityIndex(candidate.Vocabulary.Complexity),
		types.ComplexityIndex(target.Vocabulary.Complexity), len(types.ComplexityLadder)-1)
	report(vocabScore,
		fmt.Sprintf("vocabulary is %s but the target voice is %s", candidate.Vocabulary.Complexity, target.Vocabulary.Complexity),
		fmt.Sprintf("use %s vocabulary", target.Vocabulary.Complexity))

	lengthScore := 1 - math.Min(1, math.Abs(candidate.Structure.AverageLength-target.Structure.AverageLength)/lengthNorm)
	report(lengthScore,
		fmt.Sprintf("average sentence length is %.1f words but the target voice averages %.1f", candidate.Structure.AverageLength, target.Structure.AverageLength),
		fmt.Sprintf("aim for sentences around %.0f words", target.Structure.AverageLength))

	punctScore := punctuationSimilarity(&candidate.Structure.Punctuation, &target.Structure.Punctuation)
	// Punctuation mismatches are reported per feature so the feedback names
	// the specific habit to change, not just the aggregate.
	reportPunctuation(&candidate.Structure.Punctuation, &target.Structure.Punctuation, &diffs, &improvements)

	toneDim := toneSubWeight*toneScore + formalitySubWeight*formalityScore + perspectiveSubWeight*perspectiveScore
	structureDim := lengthSubWeight*lengthScore + punctuationSubWeight*punctScore
	overall := weights.Tone*toneDim + weights.Vocabulary*vocabScore + weights.Structure*structureDim

	if diffs == nil {
		diffs = []string{}
	}
	if improvements == nil {
		improvements = []string{}
	}

	return &types.VoiceComparison{
		ToneAlignment:       round4(toneDim),
		VocabularyAlignment: round4(vocabScore),
		StructureAlignment:  round4(structureDim),
		Overall:             round4(overall),
		Differences:         diffs,
		Improvements:        improvements,
	}
}

// categoricalSimilarity awards full credit on equality, partial credit on
// adjacency, zero otherwise.
func categoricalSimilarity(equal, adjacent bool) float64 {
	switch {
	case equal:
		return 1.0
	case adjacent:
		return partialCredit
	default:
		return 0.0
	}
}

func adjacentTones(a, b types.Tone) bool {
	for _, t := range toneAdjacency[a] {
		if t == b {
			return true
		}
	}
	return false
}

// ladderSimilarity gives full credit for the same rung and partial credit for
// neighbors.
func ladderSimilarity(a, b int) float64 {
	if a < 0 || b < 0 {
		return 0
	}
	switch d := abs(a - b); d {
	case 0:
		return 1.0
	case 1:
		return partialCredit
	default:
		return 0.0
	}
}

// tierSimilarity is 1 minus the normalized ordinal distance.
func tierSimilarity(a, b, maxDist int) float64 {
	if a < 0 || b < 0 || maxDist <= 0 {
		return 0
	}
	return 1 - math.Min(1, float64(abs(a-b))/float64(maxDist))
}

// punctuationSimilarity averages the tier similarity of all four features.
func punctuationSimilarity(a, b *types.PunctuationStyle) float64 {
	maxDist := len(types.UsageLadder) - 1
	sum := tierSimilarity(types.UsageIndex(a.Exclamation), types.UsageIndex(b.Exclamation), maxDist) +
		tierSimilarity(types.UsageIndex(a.Question), types.UsageIndex(b.Question), maxDist) +
		tierSimilarity(types.UsageIndex(a.Ellipsis), types.UsageIndex(b.Ellipsis), maxDist) +
		tierSimilarity(types.UsageIndex(a.Emoji), types.UsageIndex(b.Emoji), maxDist)
	return sum / 4
}

func reportPunctuation(a, b *types.PunctuationStyle, diffs, improvements *[]string) {
	features := []struct {
		name      string
		candidate types.UsageTier
		target    types.UsageTier
	}{
		{"exclamation marks", a.Exclamation, b.Exclamation},
		{"questions", a.Question, b.Question},
		{"ellipses", a.Ellipsis, b.Ellipsis},
		{"emoji", a.Emoji, b.Emoji},
	}
	for _, f := range features {
		if f.candidate != f.target {
			*diffs = append(*diffs, fmt.Sprintf("punctuation mismatch: %s usage is %s but the target voice's usage is %s",
				f.name, f.candidate, f.target))
			*improvements = append(*improvements, fmt.Sprintf("make %s usage %s", f.name, f.target))
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// round4 rounds to four decimals so serialized scores stay stable across
// platforms.
func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
