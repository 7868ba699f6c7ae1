// Package alignment scores how closely a candidate text matches a target voice profile.
package alignment

// Sub-dimension weights inside the tone and structure dimensions.
const (
	toneSubWeight        = 0.5
	formalitySubWeight   = 0.3
	perspectiveSubWeight = 0.2

	lengthSubWeight      = 0.5
	punctuationSubWeight = 0.5

	// partialCredit is awarded when categorical values differ but are
	// adjacent in the similarity table.
	partialCredit = 0.3

	// lengthNorm normalizes the absolute average-sentence-length difference
	// (in words) into [0,1].
	lengthNorm = 15.0

	// differenceThreshold: any sub-dimension scoring below this produces a
	// human-readable difference and an improvement suggestion.
	differenceThreshold = 0.6
)

// Weights are the fixed top-level dimension weights. They must sum to 1.
type Weights struct {
	Tone       float64
	Vocabulary float64
	Structure  float64
}

// DefaultWeights returns the default dimension weights (0.4 / 0.3 / 0.3).
func DefaultWeights() Weights {
	return Weights{Tone: 0.4, Vocabulary: 0.3, Structure: 0.3}
}
