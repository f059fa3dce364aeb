package media

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	return path
}

func TestBlobUploader_Upload(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	uploader := NewWithBucket(bucket, "https://media.example.com", newDiscardLogger())

	localPath := writeTempFile(t, "avatar.png", []byte("fake image bytes"))

	url, err := uploader.Upload(context.Background(), localPath)
	require.NoError(t, err)
	assert.Contains(t, url, "https://media.example.com/")
	assert.Contains(t, url, ".png")

	// The object is retrievable under its content-addressed key.
	key := filepath.Base(url)
	data, err := bucket.ReadAll(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), data)

	// The local temp file is gone after a successful upload.
	_, statErr := os.Stat(localPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBlobUploader_UploadIsContentAddressed(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	uploader := NewWithBucket(bucket, "https://media.example.com", newDiscardLogger())

	first := writeTempFile(t, "one.png", []byte("same bytes"))
	second := writeTempFile(t, "two.png", []byte("same bytes"))

	firstURL, err := uploader.Upload(context.Background(), first)
	require.NoError(t, err)
	secondURL, err := uploader.Upload(context.Background(), second)
	require.NoError(t, err)

	// Identical content maps to the identical key.
	assert.Equal(t, firstURL, secondURL)
}

func TestBlobUploader_MissingLocalFile(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	uploader := NewWithBucket(bucket, "https://media.example.com", newDiscardLogger())

	url, err := uploader.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.Empty(t, url)
}

func TestBlobUploader_RemovesLocalFileOnFailure(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	// Closing the bucket up front forces the write to fail.
	require.NoError(t, bucket.Close())

	uploader := NewWithBucket(bucket, "https://media.example.com", newDiscardLogger())

	localPath := writeTempFile(t, "avatar.png", []byte("fake image bytes"))

	_, err := uploader.Upload(context.Background(), localPath)
	require.Error(t, err)

	_, statErr := os.Stat(localPath)
	assert.True(t, os.IsNotExist(statErr))
}
