// Package storage keeps uploaded photos on the local disk or in an
// S3-compatible bucket.
package storage

import (
	"Shelf/internal/config"
	"context"
	"fmt"
	"io"
)

// PutObjectOptions define optional parameters for uploading objects.
// Size is the exact number of bytes, or -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key      string
	Size     int64
	Checksum string
}

type Storage interface {
	// Put stores the content of r under key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error
}

// NewStorage returns the driver selected by storage.driver.
func NewStorage(configuration *config.Configuration) (Storage, error) {
	switch configuration.Storage.Driver {
	case "", "local":
		return NewLocalStorage(configuration.Storage.Path), nil
	case "minio":
		return NewMinIOStorage(configuration.Storage.MinIO)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", configuration.Storage.Driver)
	}
}
