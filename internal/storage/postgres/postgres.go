package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"imageVault/internal/config"
	"imageVault/internal/models"
	"imageVault/internal/storage"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = runMigrations(db, dbCfg.MigrationsPath); err != nil {
		return nil, err
	}

	return &Storage{DB: db}, nil
}

func runMigrations(db *sql.DB, path string) error {
	const op = "storage.postgres.runMigrations"

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := goose.Up(db, path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

const versionColumns = `id, subject_id, source_url, prompt, status, content_hash,
	stored_url, storage_path, size_bytes, width, height, is_current,
	failure_reason, generated_at, stored_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVersion(row rowScanner) (*models.ImageVersion, error) {
	var v models.ImageVersion

	err := row.Scan(
		&v.ID,
		&v.SubjectID,
		&v.SourceURL,
		&v.Prompt,
		&v.Status,
		&v.ContentHash,
		&v.StoredURL,
		&v.StoragePath,
		&v.SizeBytes,
		&v.Width,
		&v.Height,
		&v.IsCurrent,
		&v.FailureReason,
		&v.GeneratedAt,
		&v.StoredAt,
	)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// CreateAttempt inserts a pending row before the download starts so even
// failed attempts are auditable in the history.
func (s *Storage) CreateAttempt(ctx context.Context, subjectID, sourceURL, prompt string) (*models.ImageVersion, error) {
	const op = "storage.postgres.CreateAttempt"

	query := `
        INSERT INTO image_versions (id, subject_id, source_url, prompt, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + versionColumns

	promptVal := sql.NullString{String: prompt, Valid: prompt != ""}

	v, err := scanVersion(s.DB.QueryRowContext(ctx, query, uuid.New(), subjectID, sourceURL, promptVal, models.StatusPending))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return v, nil
}

// MarkDownloaded records the digest and image metadata after a successful fetch.
func (s *Storage) MarkDownloaded(ctx context.Context, id uuid.UUID, hash string, sizeBytes int64, width, height int) error {
	const op = "storage.postgres.MarkDownloaded"

	query := `
        UPDATE image_versions
        SET status = $1, content_hash = $2, size_bytes = $3, width = $4, height = $5
        WHERE id = $6 AND status = $7`

	result, err := s.DB.ExecContext(ctx, query, models.StatusDownloaded, hash, sizeBytes, width, height, id, models.StatusPending)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrRecordNotFound)
	}

	return nil
}

// FindStoredByHash is the pre-upload dedupe probe: identical bytes already
// stored for the subject mean no second upload.
func (s *Storage) FindStoredByHash(ctx context.Context, subjectID, hash string) (*models.ImageVersion, error) {
	const op = "storage.postgres.FindStoredByHash"

	query := `
        SELECT ` + versionColumns + `
        FROM image_versions
        WHERE subject_id = $1 AND content_hash = $2 AND status = $3
        ORDER BY generated_at DESC
        LIMIT 1`

	v, err := scanVersion(s.DB.QueryRowContext(ctx, query, subjectID, hash, models.StatusStored))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return v, nil
}

// FinalizeSuccess promotes the record to stored and makes it the single
// current version for its subject. The whole operation runs in one
// transaction serialized per subject with an advisory lock, so concurrent
// finalizations cannot both end up current; the last commit wins. If another
// stored record for the subject already carries the same hash, that record is
// returned unchanged and the second return value is true.
func (s *Storage) FinalizeSuccess(ctx context.Context, id uuid.UUID, subjectID, hash, storedURL, storagePath string) (*models.ImageVersion, bool, error) {
	const op = "storage.postgres.FinalizeSuccess"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	if err = lockSubject(ctx, tx, subjectID); err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	dupQuery := `
        SELECT ` + versionColumns + `
        FROM image_versions
        WHERE subject_id = $1 AND content_hash = $2 AND status = $3 AND id <> $4
        ORDER BY generated_at DESC
        LIMIT 1`

	existing, err := scanVersion(tx.QueryRowContext(ctx, dupQuery, subjectID, hash, models.StatusStored, id))
	if err == nil {
		if err = tx.Commit(); err != nil {
			return nil, false, fmt.Errorf("%s: %w", op, err)
		}
		return existing, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	demoteQuery := `
        UPDATE image_versions
        SET is_current = FALSE
        WHERE subject_id = $1 AND is_current = TRUE AND id <> $2`

	if _, err = tx.ExecContext(ctx, demoteQuery, subjectID, id); err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	promoteQuery := `
        UPDATE image_versions
        SET status = $1, content_hash = $2, stored_url = $3, storage_path = $4,
            is_current = TRUE, stored_at = NOW()
        WHERE id = $5
        RETURNING ` + versionColumns

	v, err := scanVersion(tx.QueryRowContext(ctx, promoteQuery, models.StatusStored, hash, storedURL, storagePath, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, fmt.Errorf("%s: %w", op, storage.ErrRecordNotFound)
		}
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	return v, false, nil
}

// FinalizeFailure marks the attempt failed. Currency flags are never touched
// here, so the previous current image stays visible.
func (s *Storage) FinalizeFailure(ctx context.Context, id uuid.UUID, reason string) error {
	const op = "storage.postgres.FinalizeFailure"

	query := `
        UPDATE image_versions
        SET status = $1, failure_reason = $2
        WHERE id = $3 AND status IN ($4, $5)`

	result, err := s.DB.ExecContext(ctx, query, models.StatusFailed, reason, id, models.StatusPending, models.StatusDownloaded)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrRecordNotFound)
	}

	return nil
}

func (s *Storage) GetCurrent(ctx context.Context, subjectID string) (*models.ImageVersion, error) {
	const op = "storage.postgres.GetCurrent"

	query := `
        SELECT ` + versionColumns + `
        FROM image_versions
        WHERE subject_id = $1 AND is_current = TRUE`

	v, err := scanVersion(s.DB.QueryRowContext(ctx, query, subjectID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNoCurrentVersion)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return v, nil
}

// GetHistory returns every attempt for the subject, failed ones included,
// newest first.
func (s *Storage) GetHistory(ctx context.Context, subjectID string) ([]models.ImageVersion, error) {
	const op = "storage.postgres.GetHistory"

	query := `
        SELECT ` + versionColumns + `
        FROM image_versions
        WHERE subject_id = $1
        ORDER BY generated_at DESC, id DESC`

	rows, err := s.DB.QueryContext(ctx, query, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var versions []models.ImageVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		versions = append(versions, *v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return versions, nil
}

// MarkCurrent is the administrative override: it flips currency to a specific
// stored historical record using the same per-subject serialization as
// FinalizeSuccess.
func (s *Storage) MarkCurrent(ctx context.Context, recordID uuid.UUID, subjectID string) (*models.ImageVersion, error) {
	const op = "storage.postgres.MarkCurrent"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	if err = lockSubject(ctx, tx, subjectID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Only stored records can become current.
	checkQuery := `
        SELECT 1 FROM image_versions
        WHERE id = $1 AND subject_id = $2 AND status = $3`

	var one int
	if err = tx.QueryRowContext(ctx, checkQuery, recordID, subjectID, models.StatusStored).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	demoteQuery := `
        UPDATE image_versions
        SET is_current = FALSE
        WHERE subject_id = $1 AND is_current = TRUE AND id <> $2`

	if _, err = tx.ExecContext(ctx, demoteQuery, subjectID, recordID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	promoteQuery := `
        UPDATE image_versions
        SET is_current = TRUE
        WHERE id = $1
        RETURNING ` + versionColumns

	v, err := scanVersion(tx.QueryRowContext(ctx, promoteQuery, recordID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return v, nil
}

// lockSubject serializes currency flips per subject for the transaction's
// lifetime via a postgres advisory lock.
func lockSubject(ctx context.Context, tx *sql.Tx, subjectID string) error {
	_, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, subjectID)
	return err
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
