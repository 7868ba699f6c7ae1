package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/voice-engine/internal/types"
)

// SaveSession inserts or updates a training session, keyed by id. The partial
// unique index on (profile_id) WHERE status = 'active' enforces the
// one-active-session-per-profile invariant at the storage layer.
func (db *DB) SaveSession(ctx context.Context, s *types.VoiceTrainingSession) error {
	steps, err := json.Marshal(s.Steps)
	if err != nil {
		return fmt.Errorf("failed to marshal steps: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO training_sessions (id, profile_id, steps, current_step, status, started_at, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
		     steps = $3,
		     current_step = $4,
		     status = $5,
		     completed_at = $7`,
		s.ID, s.ProfileID, steps, s.CurrentStep, s.Status, s.StartedAt, s.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by id. Returns nil without error when it
// does not exist.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID) (*types.VoiceTrainingSession, error) {
	return db.querySession(ctx,
		`SELECT id, profile_id, steps, current_step, status, started_at, completed_at
		 FROM training_sessions WHERE id = $1`, id)
}

// GetActiveSession retrieves the active session for a profile, or nil if the
// profile has no active session.
func (db *DB) GetActiveSession(ctx context.Context, profileID uuid.UUID) (*types.VoiceTrainingSession, error) {
	return db.querySession(ctx,
		`SELECT id, profile_id, steps, current_step, status, started_at, completed_at
		 FROM training_sessions WHERE profile_id = $1 AND status = 'active'`, profileID)
}

// GetOpenSession retrieves the profile's active or paused session, or nil if
// every session for the profile has completed. At most one open session exists
// per profile.
func (db *DB) GetOpenSession(ctx context.Context, profileID uuid.UUID) (*types.VoiceTrainingSession, error) {
	return db.querySession(ctx,
		`SELECT id, profile_id, steps, current_step, status, started_at, completed_at
		 FROM training_sessions WHERE profile_id = $1 AND status IN ('active', 'paused')
		 ORDER BY started_at DESC LIMIT 1`, profileID)
}

func (db *DB) querySession(ctx context.Context, query string, arg any) (*types.VoiceTrainingSession, error) {
	var s types.VoiceTrainingSession
	var steps []byte

	err := db.pool.QueryRow(ctx, query, arg).Scan(
		&s.ID, &s.ProfileID, &steps, &s.CurrentStep, &s.Status, &s.StartedAt, &s.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err := json.Unmarshal(steps, &s.Steps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal steps: %w", err)
	}
	return &s, nil
}
