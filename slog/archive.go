package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/hatenadl"
)

// Ensure LoggingArchive implements hatenadl.Archive.
var _ hatenadl.Archive = (*LoggingArchive)(nil)

// LoggingArchive wraps an Archive with debug logging of lookups and
// records.
type LoggingArchive struct {
	next   hatenadl.Archive
	logger *slog.Logger
}

// NewLoggingArchive creates a new LoggingArchive.
func NewLoggingArchive(next hatenadl.Archive, logger *slog.Logger) *LoggingArchive {
	return &LoggingArchive{next: next, logger: logger}
}

// Seen delegates to the wrapped archive and logs the lookup.
func (a *LoggingArchive) Seen(ctx context.Context, key string) (seen bool, err error) {
	defer func(begin time.Time) {
		a.logger.Debug("archive lookup",
			"key", key,
			"seen", seen,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Seen(ctx, key)
}

// Record delegates to the wrapped archive and logs the operation.
func (a *LoggingArchive) Record(ctx context.Context, entry *hatenadl.ArchiveEntry) (err error) {
	defer func(begin time.Time) {
		a.logger.Debug("archive record",
			"key", entry.Key,
			"size", entry.Size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Record(ctx, entry)
}

// Close delegates to the wrapped archive.
func (a *LoggingArchive) Close() error {
	return a.next.Close()
}
