// Package generation orchestrates voice-conditioned content generation and scoring.
package generation

import (
	"fmt"

	"github.com/google/uuid"
)

// ProfileNotActiveError represents a generation request against a profile that
// is not the owner's active profile
type ProfileNotActiveError struct {
	ProfileID uuid.UUID
}

func (e *ProfileNotActiveError) Error() string {
	return fmt.Sprintf("profile %s is not active; activate it before generating", e.ProfileID)
}

// GenerateError represents a failure in the external generation call
type GenerateError struct {
	Message string
	Cause   error
}

func (e *GenerateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generate error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generate error: %s", e.Message)
}

func (e *GenerateError) Unwrap() error {
	return e.Cause
}
