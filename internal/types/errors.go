package types

import "fmt"

// MalformedSourceError represents a content source that fails basic shape validation
type MalformedSourceError struct {
	SourceID string
	Field    string
	Message  string
}

func (e *MalformedSourceError) Error() string {
	if e.SourceID != "" {
		return fmt.Sprintf("malformed source %s: field %q %s", e.SourceID, e.Field, e.Message)
	}
	return fmt.Sprintf("malformed source: field %q %s", e.Field, e.Message)
}
