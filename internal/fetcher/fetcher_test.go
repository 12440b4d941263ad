package fetcher_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"imageVault/internal/fetcher"
)

func TestFetchSuccess(t *testing.T) {
	payload := []byte("image bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write(payload)
	}))
	defer srv.Close()

	f := fetcher.New(5 * time.Second)

	data, elapsed, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, payload, data)
	require.Greater(t, elapsed, time.Duration(0))
}

func TestFetchNon2xxCarriesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	f := fetcher.New(5 * time.Second)

	_, _, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var fetchErr *fetcher.Error
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, http.StatusForbidden, fetchErr.StatusCode)
}

func TestFetchTransportError(t *testing.T) {
	// A server that is already closed gives a connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	f := fetcher.New(5 * time.Second)

	_, _, err := f.Fetch(context.Background(), url)
	require.Error(t, err)

	var fetchErr *fetcher.Error
	require.True(t, errors.As(err, &fetchErr))
	require.Zero(t, fetchErr.StatusCode)
	require.NotEmpty(t, fetchErr.Reason)
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	f := fetcher.New(50 * time.Millisecond)

	_, _, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var fetchErr *fetcher.Error
	require.True(t, errors.As(err, &fetchErr))
}
