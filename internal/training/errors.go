// Package training manages the multi-step voice training session state machine.
package training

import (
	"fmt"

	"github.com/jonathan/voice-engine/internal/types"
)

// InvalidTransitionError represents an illegal session state change
type InvalidTransitionError struct {
	From  types.SessionStatus
	Event string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: cannot %s a %s session", e.Event, e.From)
}

// InvalidStepError represents a jump past the highest completed step
type InvalidStepError struct {
	Requested        int
	HighestCompleted int
	StepCount        int
}

func (e *InvalidStepError) Error() string {
	return fmt.Sprintf("invalid step %d: highest completed step is %d of %d", e.Requested, e.HighestCompleted, e.StepCount)
}
