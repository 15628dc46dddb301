package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/types"
)

// UpsertProfile stores the profile document for a user, replacing any
// previous one. Upsert-by-user keeps re-uploads idempotent.
func (db *DB) UpsertProfile(ctx context.Context, userID uuid.UUID, resumePath string, profile types.Profile) (*StoredProfile, error) {
	doc, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	var stored StoredProfile
	var raw []byte
	err = db.pool.QueryRow(ctx,
		`INSERT INTO profiles (user_id, resume_path, profile)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET resume_path = $2, profile = $3, updated_at = NOW()
		 RETURNING id, user_id, resume_path, profile, created_at, updated_at`,
		userID, resumePath, doc,
	).Scan(&stored.ID, &stored.UserID, &stored.ResumePath, &raw, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	if err := json.Unmarshal(raw, &stored.Profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &stored, nil
}

// GetProfile retrieves a user's profile. Returns nil when none is stored.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*StoredProfile, error) {
	var stored StoredProfile
	var raw []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, resume_path, profile, created_at, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&stored.ID, &stored.UserID, &stored.ResumePath, &raw, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if err := json.Unmarshal(raw, &stored.Profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &stored, nil
}

// DeleteProfile removes a user's profile. Missing rows are not an error.
func (db *DB) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
