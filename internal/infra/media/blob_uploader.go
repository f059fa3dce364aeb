// Package media implements the MediaUploader contract on top of a
// gocloud.dev blob bucket. The bucket URL decides the backing host
// (file://, s3://, ...) without changing any calling code.
package media

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Registers the file:// bucket scheme used by the default deployment.
	_ "gocloud.dev/blob/fileblob"

	"cliphub/config"
	"cliphub/internal/domain/service"
	"cliphub/internal/util"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobUploader struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// New opens the configured bucket and returns it as a service.MediaUploader.
// The bucket is closed on application shutdown.
func New(ctx context.Context, params Params) (service.MediaUploader, error) {
	bucket, err := blob.OpenBucket(ctx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewWithBucket(bucket, params.Config.Media.PublicBaseURL, params.Logger), nil
}

// NewWithBucket wraps an already-open bucket. Tests use this with memblob.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.MediaUploader {
	return &blobUploader{
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

// Upload copies a locally buffered file into the bucket under a
// content-addressed key and returns its public URL. The local temp file is
// removed whether or not the upload succeeds.
func (u *blobUploader) Upload(ctx context.Context, localPath string) (string, error) {
	defer func() {
		if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
			u.logger.Warn("Failed to remove local upload file",
				slog.String("path", localPath), slog.Any("error", err))
		}
	}()

	checksum, err := util.CalculateFileChecksum(localPath)
	if err != nil {
		return "", errors.Wrap(err, "failed to checksum upload")
	}

	file, err := os.Open(localPath)
	if err != nil {
		return "", errors.Wrap(err, "failed to open upload")
	}
	defer file.Close()

	ext := filepath.Ext(localPath)
	key := checksum + ext

	writer, err := u.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: mime.TypeByExtension(ext),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, file); err != nil {
		// Abort the write; Close would otherwise commit a partial object.
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to copy upload to bucket")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit upload")
	}

	u.logger.Debug("Uploaded media object", slog.String("key", key))

	return u.publicBaseURL + "/" + key, nil
}
