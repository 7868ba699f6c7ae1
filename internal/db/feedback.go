package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/voice-engine/internal/types"
)

// AppendFeedback adds a record to the append-only feedback log. Records are
// written before the profile is adjusted, so the log captures every judgment
// whether or not it changed anything.
func (db *DB) AppendFeedback(ctx context.Context, fb *types.VoiceFeedback) error {
	suggestions, err := json.Marshal(fb.Suggestions)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO voice_feedback (id, content_id, profile_id, rating, comments, suggestions, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		fb.ID, fb.ContentID, fb.ProfileID, fb.Rating, nullIfEmpty(fb.Comments), suggestions, fb.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append feedback: %w", err)
	}
	return nil
}

// ListFeedback retrieves the feedback log for a profile, oldest first.
func (db *DB) ListFeedback(ctx context.Context, profileID uuid.UUID) ([]*types.VoiceFeedback, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, content_id, profile_id, rating, COALESCE(comments, ''), suggestions, created_at
		 FROM voice_feedback WHERE profile_id = $1 ORDER BY created_at`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var records []*types.VoiceFeedback
	for rows.Next() {
		var fb types.VoiceFeedback
		var suggestions []byte
		if err := rows.Scan(&fb.ID, &fb.ContentID, &fb.ProfileID, &fb.Rating, &fb.Comments, &suggestions, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		if err := json.Unmarshal(suggestions, &fb.Suggestions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal suggestions: %w", err)
		}
		records = append(records, &fb)
	}
	return records, rows.Err()
}
