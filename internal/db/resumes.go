package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// RecordResumeUpload stores metadata for an accepted upload and returns its ID.
func (db *DB) RecordResumeUpload(ctx context.Context, userID uuid.UUID, filename string, sizeBytes int64) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, filename, size_bytes)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userID, filename, sizeBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to record resume upload: %w", err)
	}
	return id, nil
}

// ListResumeUploads returns a user's uploads, most recent first.
func (db *DB) ListResumeUploads(ctx context.Context, userID uuid.UUID, limit int) ([]ResumeUpload, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, filename, size_bytes, created_at
		 FROM resumes WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resume uploads: %w", err)
	}
	defer rows.Close()

	var uploads []ResumeUpload
	for rows.Next() {
		var u ResumeUpload
		if err := rows.Scan(&u.ID, &u.UserID, &u.Filename, &u.SizeBytes, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume upload: %w", err)
		}
		uploads = append(uploads, u)
	}
	return uploads, nil
}
