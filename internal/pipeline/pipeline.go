package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"imageVault/internal/hasher"
	"imageVault/internal/kafka/producer"
	"imageVault/internal/lib/logger/sl"
	"imageVault/internal/models"
	"imageVault/internal/storage"
	"imageVault/internal/uploader"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Ledger
type Ledger interface {
	CreateAttempt(ctx context.Context, subjectID, sourceURL, prompt string) (*models.ImageVersion, error)
	MarkDownloaded(ctx context.Context, id uuid.UUID, hash string, sizeBytes int64, width, height int) error
	FindStoredByHash(ctx context.Context, subjectID, hash string) (*models.ImageVersion, error)
	FinalizeSuccess(ctx context.Context, id uuid.UUID, subjectID, hash, storedURL, storagePath string) (*models.ImageVersion, bool, error)
	FinalizeFailure(ctx context.Context, id uuid.UUID, reason string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageFetcher
type ImageFetcher interface {
	Fetch(ctx context.Context, sourceURL string) ([]byte, time.Duration, error)
}

// Result is the outcome of one version request. Deduplicated is set when the
// fetched bytes matched an already stored version; Record is then the
// existing record, returned unchanged.
type Result struct {
	Record       *models.ImageVersion
	Deduplicated bool
}

// Pipeline runs the fetch-dedupe-store sequence for one subject image and
// keeps the version ledger consistent through it.
type Pipeline struct {
	log      *slog.Logger
	ledger   Ledger
	fetcher  ImageFetcher
	blobs    uploader.BlobStorage
	producer producer.ProducerIface
}

func New(log *slog.Logger, ledger Ledger, fetcher ImageFetcher, blobs uploader.BlobStorage, kafkaProducer producer.ProducerIface) *Pipeline {
	return &Pipeline{
		log:      log,
		ledger:   ledger,
		fetcher:  fetcher,
		blobs:    blobs,
		producer: kafkaProducer,
	}
}

// RequestVersion creates a pending ledger entry, downloads the source bytes,
// deduplicates them by content hash, uploads new bytes to the blob backend
// and finalizes the entry. The heavy work is detached from the caller's
// cancellation: a dropped client must not abort an in-flight fetch or upload,
// the ledger entry is finalized either way.
func (p *Pipeline) RequestVersion(ctx context.Context, subjectID, sourceURL, prompt string) (*Result, error) {
	const op = "pipeline.RequestVersion"

	log := p.log.With(
		slog.String("op", op),
		slog.String("subject_id", subjectID),
	)

	record, err := p.ledger.CreateAttempt(ctx, subjectID, sourceURL, prompt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx = context.WithoutCancel(ctx)

	data, elapsed, err := p.fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		log.Error("fetch failed", sl.Err(err))
		p.failRecord(ctx, record.ID, "fetch: "+err.Error())
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("source fetched",
		slog.Int("size_bytes", len(data)),
		slog.String("elapsed", elapsed.String()),
	)

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		log.Error("fetched bytes are not a decodable image", sl.Err(err))
		p.failRecord(ctx, record.ID, "decode: "+err.Error())
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hash := hasher.Sum(data)
	bounds := img.Bounds()

	if err = p.ledger.MarkDownloaded(ctx, record.ID, hash, int64(len(data)), bounds.Dx(), bounds.Dy()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Identical bytes already stored for this subject: no second upload, no
	// currency change. The fresh attempt row stays in downloaded state.
	existing, err := p.ledger.FindStoredByHash(ctx, subjectID, hash)
	if err == nil {
		log.Info("duplicate image detected, reusing stored version",
			slog.String("record_id", existing.ID.String()),
			slog.String("content_hash", hash),
		)
		return &Result{Record: existing, Deduplicated: true}, nil
	}
	if !errors.Is(err, storage.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	obj, err := p.blobs.Store(ctx, data, subjectID)
	if err != nil {
		log.Error("upload failed", sl.Err(err))
		p.failRecord(ctx, record.ID, "store: "+err.Error())
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("image uploaded",
		slog.String("storage_path", obj.Path),
		slog.String("elapsed", obj.Elapsed.String()),
	)

	final, deduplicated, err := p.ledger.FinalizeSuccess(ctx, record.ID, subjectID, hash, obj.URL, obj.Path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !deduplicated {
		p.publishStored(ctx, final)
	}

	log.Info("image version finalized",
		slog.String("record_id", final.ID.String()),
		slog.Bool("deduplicated", deduplicated),
	)

	return &Result{Record: final, Deduplicated: deduplicated}, nil
}

func (p *Pipeline) failRecord(ctx context.Context, id uuid.UUID, reason string) {
	if err := p.ledger.FinalizeFailure(ctx, id, reason); err != nil {
		p.log.Error("failed to record attempt failure", slog.String("record_id", id.String()), sl.Err(err))
	}
}

// GeneratedEvent is the payload the image-generation service publishes after
// it has obtained a source URL from the provider.
type GeneratedEvent struct {
	SubjectID string `json:"subject_id"`
	SourceURL string `json:"source_url"`
	Prompt    string `json:"prompt,omitempty"`
}

// StoredEvent is published after a new version becomes current.
type StoredEvent struct {
	SubjectID   string `json:"subject_id"`
	RecordID    string `json:"record_id"`
	StoredURL   string `json:"stored_url"`
	ContentHash string `json:"content_hash"`
}

// ProcessMessage is the kafka entry point: it runs the same pipeline as the
// HTTP handler for events coming from the generation service.
func (p *Pipeline) ProcessMessage(ctx context.Context, message []byte) error {
	const op = "pipeline.ProcessMessage"

	var event GeneratedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		p.log.Error("failed to unmarshal kafka message", slog.String("op", op), sl.Err(err))
		return err
	}

	if event.SubjectID == "" || event.SourceURL == "" {
		err := fmt.Errorf("%s: event missing subject_id or source_url", op)
		p.log.Error("invalid event", sl.Err(err))
		return err
	}

	_, err := p.RequestVersion(ctx, event.SubjectID, event.SourceURL, event.Prompt)
	return err
}

func (p *Pipeline) publishStored(ctx context.Context, v *models.ImageVersion) {
	if p.producer == nil {
		return
	}

	event := StoredEvent{
		SubjectID:   v.SubjectID,
		RecordID:    v.ID.String(),
		StoredURL:   v.StoredURL.String,
		ContentHash: v.ContentHash.String,
	}

	message, err := json.Marshal(event)
	if err != nil {
		p.log.Error("failed to marshal stored event", sl.Err(err))
		return
	}

	// Best effort: a publish failure must not fail the request, the ledger
	// is already consistent.
	if err = p.producer.SendMessage(ctx, message); err != nil {
		p.log.Error("failed to publish stored event", sl.Err(err))
	}
}
