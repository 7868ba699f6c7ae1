// Package profile builds and maintains brand voice profiles from content samples.
package profile

import (
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError represents an activation target that does not exist in the
// supplied profile set.
type NotFoundError struct {
	ProfileID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile not found: %s", e.ProfileID)
}
