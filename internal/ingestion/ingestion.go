package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/voice-engine/internal/types"
)

// FromText builds a validated content source from already-clean sample text.
func FromText(text string, sourceType types.SourceType) (*types.ContentSource, error) {
	src := &types.ContentSource{
		ID:         uuid.NewString(),
		Type:       sourceType,
		Text:       CleanText(text),
		IngestedAt: time.Now().UTC(),
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	return src, nil
}

// FromFile reads a sample file and builds a content source from it. Files
// with an .html or .htm extension are stripped of markup first. The source
// type is inferred from the filename unless explicitly provided.
func FromFile(path string, sourceType types.SourceType) (*types.ContentSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &IngestError{Path: path, Message: "failed to read sample file", Cause: err}
	}

	text := string(raw)
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".html" || ext == ".htm" {
		text, err = ExtractHTMLText(text)
		if err != nil {
			return nil, &IngestError{Path: path, Message: "failed to extract HTML text", Cause: err}
		}
	}

	if sourceType == "" {
		sourceType = InferSourceType(path)
	}

	src, err := FromText(text, sourceType)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// InferSourceType guesses the platform a sample came from using filename hints.
func InferSourceType(path string) types.SourceType {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.Contains(name, "linkedin"):
		return types.SourceLinkedIn
	case strings.Contains(name, "twitter"), strings.Contains(name, "tweet"):
		return types.SourceTwitter
	case strings.Contains(name, "blog"), strings.Contains(name, "post"):
		return types.SourceBlog
	case strings.Contains(name, "email"), strings.Contains(name, "newsletter"):
		return types.SourceEmail
	default:
		return types.SourceOther
	}
}
