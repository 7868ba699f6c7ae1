// Package db provides PostgreSQL persistence for voice profiles, training
// sessions and the feedback audit log. The engine core stays pure; this is
// the storage collaborator the orchestration layer wires in.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the voice engine tables if they do not exist.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS voice_profiles (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			characteristics JSONB NOT NULL,
			training_data JSONB NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS voice_profiles_one_active
			ON voice_profiles (owner_id) WHERE is_active`,
		`CREATE TABLE IF NOT EXISTS training_sessions (
			id UUID PRIMARY KEY,
			profile_id UUID NOT NULL REFERENCES voice_profiles(id),
			steps JSONB NOT NULL,
			current_step INT NOT NULL,
			status TEXT NOT NULL,
			started_at TIMESTAMPTZ NOT NULL,
			completed_at TIMESTAMPTZ
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS training_sessions_one_active
			ON training_sessions (profile_id) WHERE status = 'active'`,
		`CREATE TABLE IF NOT EXISTS voice_feedback (
			id UUID PRIMARY KEY,
			content_id TEXT NOT NULL,
			profile_id UUID NOT NULL REFERENCES voice_profiles(id),
			rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comments TEXT,
			suggestions JSONB,
			created_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
