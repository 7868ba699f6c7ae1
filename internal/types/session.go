package types

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents the lifecycle state of a training session
type SessionStatus string

// SessionStatus values
const (
	SessionActive    SessionStatus = "active"
	SessionPaused    SessionStatus = "paused"
	SessionCompleted SessionStatus = "completed"
)

// TrainingStep is one ordered step of a voice training session
type TrainingStep struct {
	Name      string         `json:"name"`
	Completed bool           `json:"completed"`
	Active    bool           `json:"active"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// VoiceTrainingSession is the ephemeral workflow state for building or
// refining a profile. At most one session may be active per profile.
// A paused session is resumable; a completed session is terminal.
type VoiceTrainingSession struct {
	ID          uuid.UUID      `json:"id"`
	ProfileID   uuid.UUID      `json:"profile_id"`
	Steps       []TrainingStep `json:"steps"`
	CurrentStep int            `json:"current_step"`
	Status      SessionStatus  `json:"status"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

// HighestCompleted returns the index of the highest completed step, or -1 if
// no step has completed yet.
func (s *VoiceTrainingSession) HighestCompleted() int {
	highest := -1
	for i := range s.Steps {
		if s.Steps[i].Completed {
			highest = i
		}
	}
	return highest
}
