package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/hatenadl"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure the decorators satisfy the domain interfaces.
var (
	_ hatenadl.Fetcher    = (*RetryFetcher)(nil)
	_ hatenadl.Downloader = (*RetryDownloader)(nil)
)

// RetryFetcher decorates a Fetcher with exponential backoff retries.
// A nil Delays uses DefaultRetryDelays.
type RetryFetcher struct {
	Next   hatenadl.Fetcher
	Delays []time.Duration
	Log    LogFunc
}

// Fetch attempts the fetch, retrying on error with backoff.
func (r *RetryFetcher) Fetch(ctx context.Context, url string, query map[string]string) (string, error) {
	return withRetry(ctx, url, r.Delays, r.Log, func() (string, error) {
		return r.Next.Fetch(ctx, url, query)
	})
}

// Close delegates to the wrapped fetcher.
func (r *RetryFetcher) Close() error {
	return r.Next.Close()
}

// RetryDownloader decorates a Downloader with exponential backoff retries.
type RetryDownloader struct {
	Next   hatenadl.Downloader
	Delays []time.Duration
	Log    LogFunc
}

// Download attempts the download, retrying on error with backoff.
func (r *RetryDownloader) Download(ctx context.Context, url string) ([]byte, error) {
	return withRetry(ctx, url, r.Delays, r.Log, func() ([]byte, error) {
		return r.Next.Download(ctx, url)
	})
}

// withRetry runs op up to len(delays)+1 times, sleeping between
// attempts and respecting context cancellation.
func withRetry[T any](ctx context.Context, url string, delays []time.Duration, logger LogFunc, op func() (T, error)) (T, error) {
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var zero T
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := op()
		if err == nil {
			return result, nil
		}
		lastErr = err

		// Don't retry after the last attempt.
		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return zero, lastErr
}
