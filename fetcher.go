package hatenadl

import "context"

// Fetcher retrieves page bodies from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body as text.
	// Query parameters, if any, are appended to the URL. Transport
	// failures and non-success statuses are returned unmodified.
	Fetch(ctx context.Context, url string, query map[string]string) (string, error)

	// Close releases client resources.
	Close() error
}

// Downloader retrieves binary payloads (images) from URLs.
type Downloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

// DomainLimiter rate limits requests on a per-domain basis.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	Wait(ctx context.Context, domain string) error
}
