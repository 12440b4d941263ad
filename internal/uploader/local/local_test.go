package local_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"imageVault/internal/uploader/local"
)

func TestStoreRoundTrip(t *testing.T) {
	root := t.TempDir()
	storage := local.New(root, "http://localhost:8082/blobs/")

	data := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 1, 2, 3}

	obj, err := storage.Store(context.Background(), data, "nft-42")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(obj.Path, "subjects/nft-42/"))
	require.Equal(t, "http://localhost:8082/blobs/"+obj.Path, obj.URL)

	written, err := os.ReadFile(filepath.Join(root, obj.Path))
	require.NoError(t, err)
	require.Equal(t, data, written)
}

func TestStoreDistinctPathsForRepeatedStores(t *testing.T) {
	storage := local.New(t.TempDir(), "http://localhost:8082/blobs")

	data := []byte("same bytes")

	first, err := storage.Store(context.Background(), data, "nft-42")
	require.NoError(t, err)

	second, err := storage.Store(context.Background(), data, "nft-42")
	require.NoError(t, err)

	require.NotEqual(t, first.Path, second.Path)
}

func TestStoreLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	storage := local.New(root, "http://localhost:8082/blobs")

	_, err := storage.Store(context.Background(), []byte("payload"), "nft-42")
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(root, "subjects", "nft-42"))
	require.NoError(t, err)

	for _, e := range entries {
		require.False(t, strings.HasPrefix(e.Name(), ".upload-"), "temp file left behind: %s", e.Name())
	}
	require.Len(t, entries, 1)
}
