// Package fetcher retrieves image bytes from time-limited remote URLs.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Error reports a failed fetch. StatusCode is zero for transport failures;
// Reason carries the transport error text in that case.
type Error struct {
	URL        string
	StatusCode int
	Reason     string
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Reason)
}

type Fetcher struct {
	client *http.Client
}

// New returns a fetcher whose requests are bounded by timeout so a stalled
// upstream cannot hold a worker indefinitely.
func New(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads sourceURL and returns the raw bytes together with the
// elapsed wall time. Non-2xx responses and transport failures are returned as
// *Error; there is no retry here, the caller decides.
func (f *Fetcher) Fetch(ctx context.Context, sourceURL string) ([]byte, time.Duration, error) {
	const op = "fetcher.Fetch"

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, time.Since(start), &Error{URL: sourceURL, Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, time.Since(start), &Error{URL: sourceURL, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, time.Since(start), &Error{URL: sourceURL, Reason: err.Error()}
	}

	return data, time.Since(start), nil
}
