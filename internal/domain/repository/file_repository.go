package repository

import (
	"context"
	"io"
)

// ObjectStorage persists uploaded file contents.
type ObjectStorage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
}
