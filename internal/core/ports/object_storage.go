package ports

import (
	"context"
	"io"
)

// ObjectStorage is the binary object store for carnet photos. Upload returns
// the public URL for the stored object; the URL is assumed resolvable for as
// long as the object exists.
type ObjectStorage interface {
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}
