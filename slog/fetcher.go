// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/hatenadl"
)

// Ensure the decorators implement the domain interfaces.
var (
	_ hatenadl.Fetcher    = (*LoggingFetcher)(nil)
	_ hatenadl.Downloader = (*LoggingDownloader)(nil)
)

// LoggingFetcher wraps a Fetcher with debug logging of page fetches.
type LoggingFetcher struct {
	next   hatenadl.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next hatenadl.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string, query map[string]string) (body string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("page fetch",
			"url", url,
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url, query)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// LoggingDownloader wraps a Downloader with debug logging of downloads.
type LoggingDownloader struct {
	next   hatenadl.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next hatenadl.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader and logs the operation.
func (d *LoggingDownloader) Download(ctx context.Context, url string) (data []byte, err error) {
	defer func(begin time.Time) {
		d.logger.Info("image download",
			"url", url,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Download(ctx, url)
}
