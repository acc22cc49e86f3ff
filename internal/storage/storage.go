package storage

import (
	"context"
	"io"
)

// Storage persists uploaded student documents. Only a local-disk backend is
// wired today; the interface keeps the services ignorant of that.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	GetURL(ctx context.Context, path string) (string, error)
	GetSize(ctx context.Context, path string) (int64, error)
}

// Config holds storage settings.
type Config struct {
	BasePath string // local directory root
	BaseURL  string // public URL prefix
}
