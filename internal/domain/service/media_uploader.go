package service

import "context"

// MediaUploader sends a locally buffered upload (a multipart temp file) to
// the external media host and returns its public URL. Implementations must
// remove the local file whether or not the upload succeeds.
type MediaUploader interface {
	Upload(ctx context.Context, localPath string) (url string, err error)
}
