package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending    = "pending"
	StatusDownloaded = "downloaded"
	StatusStored     = "stored"
	StatusFailed     = "failed"
)

// ImageVersion is one row of the append-only version history for a subject.
// At most one row per subject has IsCurrent set; the partial unique index in
// the schema enforces this.
type ImageVersion struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	SubjectID     string         `db:"subject_id" json:"subject_id"`
	SourceURL     string         `db:"source_url" json:"source_url"`
	Prompt        sql.NullString `db:"prompt" json:"prompt"`
	Status        string         `db:"status" json:"status"`
	ContentHash   sql.NullString `db:"content_hash" json:"content_hash"`
	StoredURL     sql.NullString `db:"stored_url" json:"stored_url"`
	StoragePath   sql.NullString `db:"storage_path" json:"storage_path"`
	SizeBytes     sql.NullInt64  `db:"size_bytes" json:"size_bytes"`
	Width         sql.NullInt64  `db:"width" json:"width"`
	Height        sql.NullInt64  `db:"height" json:"height"`
	IsCurrent     bool           `db:"is_current" json:"is_current"`
	FailureReason sql.NullString `db:"failure_reason" json:"failure_reason"`
	GeneratedAt   time.Time      `db:"generated_at" json:"generated_at"`
	StoredAt      sql.NullTime   `db:"stored_at" json:"stored_at"`
}
