// Package http provides the HTTP implementations of hatenadl.Fetcher
// and hatenadl.Downloader for fetching pages and image payloads from
// static sites.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/hatenadl"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent identifies the client to the blogging platform.
const DefaultUserAgent = "hatenadl/1.0"

// Ensure Fetcher implements the domain interfaces at compile time.
var (
	_ hatenadl.Fetcher    = (*Fetcher)(nil)
	_ hatenadl.Downloader = (*Fetcher)(nil)
)

// Fetcher retrieves page bodies and image payloads over HTTP. Pages are
// served to anonymous visitors; no cookies or authentication are used.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page body from the given URL, appending the query
// parameters if any.
func (f *Fetcher) Fetch(ctx context.Context, url string, query map[string]string) (string, error) {
	body, err := f.get(ctx, url, query)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Download retrieves a binary payload from the given URL.
func (f *Fetcher) Download(ctx context.Context, url string) ([]byte, error) {
	return f.get(ctx, url, nil)
}

func (f *Fetcher) get(ctx context.Context, url string, query map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	if len(query) > 0 {
		q := req.URL.Query()
		for key, value := range query {
			q.Set(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, req.URL)
	}

	return io.ReadAll(resp.Body)
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
