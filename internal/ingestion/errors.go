// Package ingestion builds content sources from raw sample files for voice analysis.
package ingestion

import "fmt"

// IngestError represents a failure reading or cleaning a content sample
type IngestError struct {
	Path    string
	Message string
	Cause   error
}

func (e *IngestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingest error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingest error: %s: %s", e.Path, e.Message)
}

func (e *IngestError) Unwrap() error {
	return e.Cause
}
