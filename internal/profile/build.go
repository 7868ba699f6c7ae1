package profile

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/voice-engine/internal/extraction"
	"github.com/jonathan/voice-engine/internal/types"
)

// Builder aggregates extractions and source metadata into BrandVoiceProfile
// values with a confidence score.
type Builder struct {
	extractor *extraction.Extractor
	params    ConfidenceParams
}

// NewBuilder returns a Builder using the given extractor and confidence
// parameters.
func NewBuilder(extractor *extraction.Extractor, params ConfidenceParams) *Builder {
	return &Builder{extractor: extractor, params: params}
}

// Build creates a new profile from the given sources. Sources are validated
// first; extraction failures (no usable samples) surface as
// extraction.InsufficientDataError.
func (b *Builder) Build(ownerID uuid.UUID, name string, sources []types.ContentSource) (*types.BrandVoiceProfile, error) {
	for i := range sources {
		if err := sources[i].Validate(); err != nil {
			return nil, err
		}
	}

	chars, err := b.extractor.Extract(sources)
	if err != nil {
		return nil, err
	}

	classes, err := b.extractor.ClassifySources(sources)
	if err != nil {
		return nil, err
	}

	training := types.TrainingData{
		Sources:          sources,
		ExtractorVersion: extraction.Version,
		LastAnalyzedAt:   time.Now().UTC(),
	}
	training.Recount()

	now := time.Now().UTC()
	return &types.BrandVoiceProfile{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Name:            name,
		Characteristics: chars,
		Training:        training,
		Confidence:      b.confidence(training.TotalPosts, classes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Retrain merges new sources into the profile's training data and re-runs
// extraction over the full combined corpus. Extraction is never incremental:
// characteristics always reflect the complete source set.
func (b *Builder) Retrain(p *types.BrandVoiceProfile, newSources []types.ContentSource) (*types.BrandVoiceProfile, error) {
	for i := range newSources {
		if err := newSources[i].Validate(); err != nil {
			return nil, err
		}
	}

	combined := make([]types.ContentSource, 0, len(p.Training.Sources)+len(newSources))
	combined = append(combined, p.Training.Sources...)
	combined = append(combined, newSources...)

	chars, err := b.extractor.Extract(combined)
	if err != nil {
		return nil, err
	}
	classes, err := b.extractor.ClassifySources(combined)
	if err != nil {
		return nil, err
	}

	updated := *p
	updated.Characteristics = chars
	updated.Training.Sources = combined
	updated.Training.ExtractorVersion = extraction.Version
	updated.Training.LastAnalyzedAt = time.Now().UTC()
	updated.Training.Recount()
	updated.Confidence = b.confidence(updated.Training.TotalPosts, classes)
	updated.UpdatedAt = time.Now().UTC()
	return &updated, nil
}
