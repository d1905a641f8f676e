package service

import "context"

// FileStorage defines the interface for persisting generated artifacts
// (QR images, exported reports) in a blob store.
type FileStorage interface {
	// Save writes data under key with the given content type and returns
	// the public URL of the stored object.
	Save(ctx context.Context, key string, contentType string, data []byte) (string, error)

	// Load reads the object stored under key.
	Load(ctx context.Context, key string) ([]byte, error)
}
