// Package types provides type definitions for structured data used throughout the voice-engine system.
package types

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SourceType identifies where a content sample came from
type SourceType string

// SourceType values
const (
	SourceLinkedIn SourceType = "linkedin"
	SourceTwitter  SourceType = "twitter"
	SourceBlog     SourceType = "blog"
	SourceEmail    SourceType = "email"
	SourceOther    SourceType = "other"
)

// Engagement holds optional engagement metadata for a content sample
type Engagement struct {
	Likes    int `json:"likes,omitempty"`
	Comments int `json:"comments,omitempty"`
	Shares   int `json:"shares,omitempty"`
}

// ContentSource is one ingested content sample. Sources are never mutated
// after ingestion; corrections create a new source rather than editing an
// existing one, so the training history stays auditable.
type ContentSource struct {
	ID         string      `json:"id" validate:"required"`
	Type       SourceType  `json:"type" validate:"required,oneof=linkedin twitter blog email other"`
	Text       string      `json:"text" validate:"required"`
	Engagement *Engagement `json:"engagement,omitempty"`
	IngestedAt time.Time   `json:"ingested_at"`
}

// Validate checks the source's basic shape using the validator.
// Returns a MalformedSourceError describing the first failing field.
func (s *ContentSource) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return &MalformedSourceError{
				SourceID: s.ID,
				Field:    strings.ToLower(errs[0].Field()),
				Message:  "failed " + errs[0].Tag() + " validation",
			}
		}
		return err
	}
	return nil
}

// WordCount returns the number of whitespace-separated tokens in the source text.
func (s *ContentSource) WordCount() int {
	return len(strings.Fields(s.Text))
}

// TrainingData aggregates the samples a profile was trained on
type TrainingData struct {
	Sources          []ContentSource `json:"sources"`
	TotalWords       int             `json:"total_words"`
	TotalPosts       int             `json:"total_posts"`
	ExtractorVersion string          `json:"extractor_version"`
	LastAnalyzedAt   time.Time       `json:"last_analyzed_at"`
}

// Recount recomputes the derived word and post totals from Sources.
// Totals are never set directly; they are always a pure function of the sources.
func (td *TrainingData) Recount() {
	td.TotalPosts = len(td.Sources)
	total := 0
	for i := range td.Sources {
		total += td.Sources[i].WordCount()
	}
	td.TotalWords = total
}

// BrandVoiceProfile is the durable, named representation of a user's writing style
type BrandVoiceProfile struct {
	ID              uuid.UUID            `json:"id"`
	OwnerID         uuid.UUID            `json:"owner_id"`
	Name            string               `json:"name"`
	Description     string               `json:"description,omitempty"`
	Characteristics VoiceCharacteristics `json:"characteristics"`
	Training        TrainingData         `json:"training_data"`
	Confidence      float64              `json:"confidence"`
	IsActive        bool                 `json:"is_active"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}
