package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-matcher/internal/types"
)

// User is a stored account row.
type User struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-" db:"password_hash"` // Never serialize to JSON
	ProfileCompleted bool      `json:"profile_completed" db:"profile_completed"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// StoredProfile is the candidate profile row. The profile document itself is
// a JSONB column: extraction output is schemaless enough that normalizing it
// into per-entry tables buys nothing.
type StoredProfile struct {
	ID         uuid.UUID     `json:"id"`
	UserID     uuid.UUID     `json:"user_id"`
	ResumePath string        `json:"resume_path,omitempty"`
	Profile    types.Profile `json:"profile"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// ResumeUpload is metadata for one uploaded résumé file.
type ResumeUpload struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Filename  string    `json:"filename"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}
