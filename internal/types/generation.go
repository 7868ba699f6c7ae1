package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// VoiceGenerationRequest asks the external generator for content in a target voice
type VoiceGenerationRequest struct {
	Prompt       string    `json:"prompt" validate:"required"`
	ProfileID    uuid.UUID `json:"profile_id"`
	ContentType  string    `json:"content_type" validate:"required"`
	TargetLength int       `json:"target_length,omitempty" validate:"min=0"`
	Instructions string    `json:"instructions,omitempty"`
}

// Validate validates the VoiceGenerationRequest using the validator.
func (r *VoiceGenerationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// VoiceGenerationResult is the transient outcome of one generation pass.
// The content itself is opaque to the core; it comes from the external generator.
type VoiceGenerationResult struct {
	Content                string   `json:"content"`
	VoiceAlignment         float64  `json:"voice_alignment"`
	AppliedCharacteristics []string `json:"applied_characteristics"`
	Improvements           []string `json:"improvements,omitempty"`
}

// VoiceComparison is a pairwise diff between a candidate text and a target
// profile. Pure function output: no identity, no lifecycle.
type VoiceComparison struct {
	ToneAlignment       float64  `json:"tone_alignment"`
	VocabularyAlignment float64  `json:"vocabulary_alignment"`
	StructureAlignment  float64  `json:"structure_alignment"`
	Overall             float64  `json:"overall_alignment"`
	Differences         []string `json:"differences"`
	Improvements        []string `json:"improvements"`
}

// VoiceFeedback is a user judgment on a generated item. Append-only: records
// are never mutated after creation.
type VoiceFeedback struct {
	ID          uuid.UUID `json:"id"`
	ContentID   string    `json:"content_id" validate:"required"`
	ProfileID   uuid.UUID `json:"profile_id"`
	Rating      int       `json:"rating" validate:"required,min=1,max=5"`
	Comments    string    `json:"comments,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate validates the VoiceFeedback using the validator.
func (f *VoiceFeedback) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}
