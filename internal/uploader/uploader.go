// Package uploader abstracts the blob backend that holds stored image bytes.
// The backend is chosen once from configuration; all versions for one subject
// share a key prefix.
package uploader

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// StoredObject describes where uploaded bytes ended up.
type StoredObject struct {
	URL     string
	Path    string
	Elapsed time.Duration
}

// Error reports a rejected write. Non-retryable within the same request.
type Error struct {
	Backend string
	Reason  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage backend %s: %s", e.Backend, e.Reason)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BlobStorage
type BlobStorage interface {
	Store(ctx context.Context, data []byte, subjectID string) (*StoredObject, error)
}

// ObjectKey builds a collision-resistant key namespaced under the subject:
// subjects/<subjectID>/<unixnano>_<short-uuid><ext>.
func ObjectKey(subjectID string, data []byte) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("subjects/%s/%d_%s%s", subjectID, time.Now().UnixNano(), suffix, extFor(data))
}

func extFor(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
