// Package local stores blobs on the filesystem under a configured root; the
// service serves them back through the /blobs file server.
package local

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"imageVault/internal/uploader"
)

type Storage struct {
	root    string
	baseURL string
}

func New(root, baseURL string) *Storage {
	return &Storage{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Store writes data atomically: temp file first, rename on success, so a
// crashed write never leaves a half-written blob at the final path.
func (s *Storage) Store(ctx context.Context, data []byte, subjectID string) (*uploader.StoredObject, error) {
	start := time.Now()

	key := uploader.ObjectKey(subjectID, data)
	fullPath := filepath.Join(s.root, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return nil, &uploader.Error{Backend: "local", Reason: err.Error()}
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".upload-*")
	if err != nil {
		return nil, &uploader.Error{Backend: "local", Reason: err.Error()}
	}

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, &uploader.Error{Backend: "local", Reason: err.Error()}
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, &uploader.Error{Backend: "local", Reason: err.Error()}
	}

	if err = os.Rename(tmp.Name(), fullPath); err != nil {
		os.Remove(tmp.Name())
		return nil, &uploader.Error{Backend: "local", Reason: err.Error()}
	}

	return &uploader.StoredObject{
		URL:     s.baseURL + "/" + key,
		Path:    key,
		Elapsed: time.Since(start),
	}, nil
}
