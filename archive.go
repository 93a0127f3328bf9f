package hatenadl

import (
	"context"
	"time"
)

// ArchiveEntry records one downloaded image. The Key is the rendered
// filename (Metadata.ArchiveKey) and uniquely identifies the download.
type ArchiveEntry struct {
	ID          string
	Key         string
	Domain      string
	Entry       string
	Num         int
	URL         string
	ContentHash string
	Size        int64
	CreatedAt   time.Time
}

// Validate returns an error if the entry contains invalid fields.
func (e *ArchiveEntry) Validate() error {
	if e.Key == "" {
		return Errorf(EINVALID, "archive key required")
	}
	if e.Domain == "" {
		return Errorf(EINVALID, "archive domain required")
	}
	if e.Entry == "" {
		return Errorf(EINVALID, "archive entry identifier required")
	}
	return nil
}

// Archive persists a record of completed downloads so that repeated
// crawls skip files that were already fetched.
type Archive interface {
	// Seen reports whether a download with the given key was recorded.
	Seen(ctx context.Context, key string) (bool, error)

	// Record stores a completed download. Recording the same key twice
	// is an error.
	Record(ctx context.Context, entry *ArchiveEntry) error

	// Close releases the underlying store.
	Close() error
}

// ImageWriter persists downloaded image bytes under a relative,
// slash-separated output path.
type ImageWriter interface {
	WriteImage(ctx context.Context, relPath string, data []byte) error
}
