package profile

import (
	"github.com/jonathan/voice-engine/internal/extraction"
	"github.com/jonathan/voice-engine/internal/types"
)

// ConfidenceParams tunes the confidence model.
type ConfidenceParams struct {
	// MinSamples is the sample count at which the volume component reaches
	// 0.5. The component saturates toward 1 as the count grows.
	MinSamples int
}

// DefaultConfidenceParams returns the default confidence constants.
func DefaultConfidenceParams() ConfidenceParams {
	return ConfidenceParams{MinSamples: 5}
}

// confidence computes clamp(0, 1, base(totalPosts) * consistency).
//
// base(n) = n / (n + MinSamples) grows monotonically with sample count.
// consistency is the mean agreement of the independent per-source tone and
// formality classifications with their plurality winners, so one
// contradictory sample in an otherwise consistent corpus measurably lowers
// the result.
func (b *Builder) confidence(totalPosts int, classes []extraction.SourceClassification) float64 {
	if totalPosts <= 0 || len(classes) == 0 {
		return 0
	}

	base := float64(totalPosts) / float64(totalPosts+b.params.MinSamples)

	toneCounts := map[types.Tone]int{}
	formalityCounts := map[types.Formality]int{}
	for _, c := range classes {
		toneCounts[c.Tone]++
		formalityCounts[c.Formality]++
	}

	toneAgreement := float64(maxCount(toneCounts)) / float64(len(classes))
	formalityAgreement := float64(maxCountFormality(formalityCounts)) / float64(len(classes))
	consistency := (toneAgreement + formalityAgreement) / 2

	c := base * consistency
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

func maxCount(counts map[types.Tone]int) int {
	best := 0
	for _, c := range counts {
		if c > best {
			best = c
		}
	}
	return best
}

func maxCountFormality(counts map[types.Formality]int) int {
	best := 0
	for _, c := range counts {
		if c > best {
			best = c
		}
	}
	return best
}
