package crawl

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/hatenadl"
	"golang.org/x/time/rate"
)

var _ hatenadl.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets.
// Each domain gets its own limiter, so a crawl that fans out across a
// blog host and an image CDN limits them independently.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified
// requests per second limit. Each domain gets a burst of 1 (no bursting).
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// Ensure the decorators satisfy the domain interfaces.
var (
	_ hatenadl.Fetcher    = (*LimitedFetcher)(nil)
	_ hatenadl.Downloader = (*LimitedDownloader)(nil)
)

// LimitedFetcher decorates a Fetcher with per-domain rate limiting.
type LimitedFetcher struct {
	Next    hatenadl.Fetcher
	Limiter hatenadl.DomainLimiter
}

// Fetch waits for the target domain's rate limit, then delegates.
func (f *LimitedFetcher) Fetch(ctx context.Context, rawURL string, query map[string]string) (string, error) {
	if err := f.wait(ctx, rawURL); err != nil {
		return "", err
	}
	return f.Next.Fetch(ctx, rawURL, query)
}

// Close delegates to the wrapped fetcher.
func (f *LimitedFetcher) Close() error {
	return f.Next.Close()
}

func (f *LimitedFetcher) wait(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	return f.Limiter.Wait(ctx, u.Host)
}

// LimitedDownloader decorates a Downloader with per-domain rate limiting.
type LimitedDownloader struct {
	Next    hatenadl.Downloader
	Limiter hatenadl.DomainLimiter
}

// Download waits for the target domain's rate limit, then delegates.
func (d *LimitedDownloader) Download(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if err := d.Limiter.Wait(ctx, u.Host); err != nil {
		return nil, err
	}
	return d.Next.Download(ctx, rawURL)
}
