package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var ErrFileNotFound = errors.New("file not found")

// FileInfo describes a stored object.
type FileInfo struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// StorageInterface defines the document storage backend.
// Keys are slash-separated paths relative to the storage root.
type StorageInterface interface {
	// FileExists checks if a file exists and returns its size
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a file from storage. Missing files are not an error.
	DeleteFile(ctx context.Context, key string) error

	// SaveFile writes reader to key, replacing any previous content.
	SaveFile(ctx context.Context, key string, reader io.Reader) (int64, error)

	// ReadFile opens a file for reading. Returns ErrFileNotFound for unknown keys.
	ReadFile(ctx context.Context, key string) (io.ReadCloser, error)

	// ListFiles walks every file whose key starts with prefix.
	ListFiles(ctx context.Context, prefix string) ([]FileInfo, error)
}
