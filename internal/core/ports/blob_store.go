package ports

import (
	"context"
	"io"
)

// BlobStore persists uploaded binary files and returns the stored name under
// which the file is retrievable (served as <base_url>/uploads/<stored name>).
type BlobStore interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
