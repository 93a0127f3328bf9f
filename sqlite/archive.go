package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/hatenadl"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ hatenadl.Archive = (*ArchiveService)(nil)

// ArchiveService implements hatenadl.Archive using SQLite.
type ArchiveService struct {
	db *DB
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(db *DB) *ArchiveService {
	return &ArchiveService{db: db}
}

// Seen reports whether a download with the given key was recorded.
func (s *ArchiveService) Seen(ctx context.Context, key string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM archive WHERE key = ?
	`, key).Scan(&one)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Record stores a completed download. Recording an existing key fails
// on the key's unique constraint.
func (s *ArchiveService) Record(ctx context.Context, entry *hatenadl.ArchiveEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO archive (id, key, domain, entry, num, url, content_hash, size, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Key, entry.Domain, entry.Entry, entry.Num, entry.URL,
		entry.ContentHash, entry.Size, entry.CreatedAt.Format(time.RFC3339))

	return err
}

// Close closes the underlying database.
func (s *ArchiveService) Close() error {
	return s.db.Close()
}
