package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/voice-engine/internal/types"
)

// SaveProfile inserts or updates a profile, keyed by id.
func (db *DB) SaveProfile(ctx context.Context, p *types.BrandVoiceProfile) error {
	chars, err := json.Marshal(p.Characteristics)
	if err != nil {
		return fmt.Errorf("failed to marshal characteristics: %w", err)
	}
	training, err := json.Marshal(p.Training)
	if err != nil {
		return fmt.Errorf("failed to marshal training data: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO voice_profiles (id, owner_id, name, description, characteristics, training_data, confidence, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		     name = $3,
		     description = $4,
		     characteristics = $5,
		     training_data = $6,
		     confidence = $7,
		     is_active = $8,
		     updated_at = $10`,
		p.ID, p.OwnerID, p.Name, nullIfEmpty(p.Description), chars, training,
		p.Confidence, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a profile by id. Returns nil without error when the
// profile does not exist.
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*types.BrandVoiceProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, owner_id, name, COALESCE(description, ''), characteristics, training_data, confidence, is_active, created_at, updated_at
		 FROM voice_profiles WHERE id = $1`, id)
	return scanProfile(row)
}

// ListProfilesByOwner retrieves all profiles for an owner, newest first.
func (db *DB) ListProfilesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*types.BrandVoiceProfile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, owner_id, name, COALESCE(description, ''), characteristics, training_data, confidence, is_active, created_at, updated_at
		 FROM voice_profiles WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*types.BrandVoiceProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// ActivateProfile marks the target profile active and deactivates every other
// profile of the same owner in one transaction, so readers never observe two
// or zero active profiles.
func (db *DB) ActivateProfile(ctx context.Context, ownerID, profileID uuid.UUID) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`UPDATE voice_profiles SET is_active = FALSE, updated_at = NOW()
		 WHERE owner_id = $1 AND is_active`, ownerID); err != nil {
		return fmt.Errorf("failed to deactivate profiles: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE voice_profiles SET is_active = TRUE, updated_at = NOW()
		 WHERE id = $1 AND owner_id = $2`, profileID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to activate profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s not found for owner %s", profileID, ownerID)
	}

	return tx.Commit(ctx)
}

// rowScanner covers pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*types.BrandVoiceProfile, error) {
	var p types.BrandVoiceProfile
	var chars, training []byte

	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &chars, &training,
		&p.Confidence, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}

	if err := json.Unmarshal(chars, &p.Characteristics); err != nil {
		return nil, fmt.Errorf("failed to unmarshal characteristics: %w", err)
	}
	if err := json.Unmarshal(training, &p.Training); err != nil {
		return nil, fmt.Errorf("failed to unmarshal training data: %w", err)
	}
	return &p, nil
}

// nullIfEmpty converts an empty string to nil for nullable columns.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
