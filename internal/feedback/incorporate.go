// Package feedback folds explicit user ratings and corrections back into a profile.
package feedback

import (
	"strings"
	"time"

	"github.com/jonathan/voice-engine/internal/types"
)

// Params tunes how strongly feedback moves a profile.
type Params struct {
	// ReinforceDelta is added to confidence for ratings of 4 or 5.
	ReinforceDelta float64
	// PenaltyDelta is subtracted from confidence for ratings of 1 or 2.
	PenaltyDelta float64
}

// DefaultParams returns the default feedback deltas.
func DefaultParams() Params {
	return Params{ReinforceDelta: 0.02, PenaltyDelta: 0.05}
}

// Incorporator applies feedback records to profiles.
type Incorporator struct {
	params Params
}

// NewIncorporator returns an Incorporator with the given parameters.
func NewIncorporator(params Params) *Incorporator {
	return &Incorporator{params: params}
}

// Incorporate returns a copy of the profile adjusted by one feedback record.
// A rating of 4 or 5 reinforces the current characteristics by nudging
// confidence up, capped at 1. A rating of 1 or 2 lowers confidence and, when
// the suggestions name a specific adjustment, shifts that characteristic one
// enum step in the suggested direction. A single feedback record never moves
// a field more than one step. The input profile is not mutated; appending the
// record to the audit log is the storage collaborator's job and happens
// whether or not the profile changed.
func (in *Incorporator) Incorporate(p *types.BrandVoiceProfile, fb *types.VoiceFeedback) (*types.BrandVoiceProfile, error) {
	if err := fb.Validate(); err != nil {
		return nil, err
	}

	updated := *p

	switch {
	case fb.Rating >= 4:
		updated.Confidence = clamp(updated.Confidence + in.params.ReinforceDelta)
	case fb.Rating <= 2:
		updated.Confidence = clamp(updated.Confidence - in.params.PenaltyDelta)
		applySuggestions(&updated.Characteristics, fb.Suggestions)
	}

	updated.UpdatedAt = time.Now().UTC()
	return &updated, nil
}

// applySuggestions parses free-text suggestions for known adjustment
// directions. Each recognized field moves at most one step per call.
func applySuggestions(chars *types.VoiceCharacteristics, suggestions []string) {
	shiftedFormality := false
	shiftedEmoji := false

	for _, raw := range suggestions {
		s := strings.ToLower(raw)

		if !shiftedFormality {
			if wantsShift(s, "casual", "formal") {
				chars.Formality = stepFormality(chars.Formality, -1)
				shiftedFormality = true
			} else if wantsShift(s, "formal", "casual") {
				chars.Formality = stepFormality(chars.Formality, +1)
				shiftedFormality = true
			}
		}

		if !shiftedEmoji {
			if wantsShift(s, "emoji", "") {
				chars.Structure.Punctuation.Emoji = stepUsage(chars.Structure.Punctuation.Emoji, +1)
				shiftedEmoji = true
			} else if strings.Contains(s, "less emoji") || strings.Contains(s, "fewer emoji") {
				chars.Structure.Punctuation.Emoji = stepUsage(chars.Structure.Punctuation.Emoji, -1)
				shiftedEmoji = true
			}
		}
	}
}

// wantsShift reports whether the suggestion asks to move toward `toward`,
// phrased either as "more <toward>" or "less <opposite>".
func wantsShift(s, toward, opposite string) bool {
	if strings.Contains(s, "more "+toward) {
		return true
	}
	return opposite != "" && strings.Contains(s, "less "+opposite)
}

// stepFormality moves one rung along the formality ladder, clamped at the ends.
func stepFormality(f types.Formality, delta int) types.Formality {
	i := types.FormalityIndex(f)
	if i < 0 {
		return f
	}
	i += delta
	if i < 0 {
		i = 0
	}
	if i >= len(types.FormalityLadder) {
		i = len(types.FormalityLadder) - 1
	}
	return types.FormalityLadder[i]
}

// stepUsage moves one rung along the usage ladder, clamped at the ends.
func stepUsage(u types.UsageTier, delta int) types.UsageTier {
	i := types.UsageIndex(u)
	if i < 0 {
		return u
	}
	i += delta
	if i < 0 {
		i = 0
	}
	if i >= len(types.UsageLadder) {
		i = len(types.UsageLadder) - 1
	}
	return types.UsageLadder[i]
}

func clamp(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
