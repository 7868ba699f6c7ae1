package training

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/voice-engine/internal/types"
)

// DefaultSteps is the standard training workflow: collect samples, extract
// characteristics, review the draft profile, confirm.
var DefaultSteps = []string{
	"collect_samples",
	"extract_characteristics",
	"review_profile",
	"confirm",
}

// event names used in the transition table and in InvalidTransitionError messages.
const (
	eventAdvance = "advance"
	eventPause   = "pause"
	eventResume  = "resume"
	eventJump    = "jump"
)

// transitions is the state x event table. An event absent for a state is an
// invalid transition; completed has no outgoing events at all.
var transitions = map[types.SessionStatus]map[string]bool{
	types.SessionActive: {
		eventAdvance: true,
		eventPause:   true,
		eventJump:    true,
	},
	types.SessionPaused: {
		eventResume: true,
	},
	types.SessionCompleted: {},
}

// NewSession creates an active session for the given profile, positioned at
// the first step. An empty stepNames slice uses DefaultSteps.
func NewSession(profileID uuid.UUID, stepNames []string) *types.VoiceTrainingSession {
	if len(stepNames) == 0 {
		stepNames = DefaultSteps
	}
	steps := make([]types.TrainingStep, len(stepNames))
	for i, name := range stepNames {
		steps[i] = types.TrainingStep{Name: name}
	}
	steps[0].Active = true

	return &types.VoiceTrainingSession{
		ID:          uuid.New(),
		ProfileID:   profileID,
		Steps:       steps,
		CurrentStep: 0,
		Status:      types.SessionActive,
		StartedAt:   time.Now().UTC(),
	}
}

// allowed checks the transition table for the session's current status.
func allowed(s *types.VoiceTrainingSession, event string) error {
	if !transitions[s.Status][event] {
		return &InvalidTransitionError{From: s.Status, Event: event}
	}
	return nil
}

// Advance marks the current step completed and moves to the next one.
// Completing the last step moves the session to completed, which is terminal.
func Advance(s *types.VoiceTrainingSession) error {
	if err := allowed(s, eventAdvance); err != nil {
		return err
	}

	s.Steps[s.CurrentStep].Completed = true
	s.Steps[s.CurrentStep].Active = false

	if s.CurrentStep == len(s.Steps)-1 {
		s.Status = types.SessionCompleted
		now := time.Now().UTC()
		s.CompletedAt = &now
		return nil
	}

	s.CurrentStep++
	s.Steps[s.CurrentStep].Active = true
	return nil
}

// Pause suspends an active session. Only active sessions can pause.
func Pause(s *types.VoiceTrainingSession) error {
	if err := allowed(s, eventPause); err != nil {
		return err
	}
	s.Status = types.SessionPaused
	return nil
}

// Resume reactivates a paused session. Only paused sessions can resume.
func Resume(s *types.VoiceTrainingSession) error {
	if err := allowed(s, eventResume); err != nil {
		return err
	}
	s.Status = types.SessionActive
	return nil
}

// JumpTo repositions the session at stepIndex. Jumping is only allowed up to
// one past the highest completed step: the workflow can revisit earlier steps
// but never skip ahead of its data.
func JumpTo(s *types.VoiceTrainingSession, stepIndex int) error {
	if err := allowed(s, eventJump); err != nil {
		return err
	}

	highest := s.HighestCompleted()
	if stepIndex < 0 || stepIndex >= len(s.Steps) || stepIndex > highest+1 {
		return &InvalidStepError{
			Requested:        stepIndex,
			HighestCompleted: highest,
			StepCount:        len(s.Steps),
		}
	}

	s.Steps[s.CurrentStep].Active = false
	s.CurrentStep = stepIndex
	s.Steps[s.CurrentStep].Active = true
	return nil
}
