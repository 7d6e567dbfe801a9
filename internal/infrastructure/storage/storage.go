package storage

import (
	"path/filepath"

	"github.com/google/uuid"
)

// keyPrefix is where the S3 driver parks objects so a bucket can be shared
// with other data.
const keyPrefix = "uploads/"

// storedName derives a collision-free stored name from an upload's original
// filename, keeping only the extension. Client-supplied names never touch
// the filesystem or object keys.
func storedName(filename string) string {
	return uuid.New().String() + filepath.Ext(filepath.Base(filename))
}
