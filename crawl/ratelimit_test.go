package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/hatenadl/crawl"
	"github.com/fwojciec/hatenadl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_allows_requests_within_the_limit(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(1000)

	start := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.Wait(context.Background(), "blog.example.com"))
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestDomainLimiter_returns_error_on_canceled_context(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(0.001)

	// Consume the single burst token.
	require.NoError(t, limiter.Wait(context.Background(), "blog.example.com"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := limiter.Wait(ctx, "blog.example.com")
	require.Error(t, err)
}

// recordingLimiter records the domains it was asked about.
type recordingLimiter struct {
	domains []string
}

func (l *recordingLimiter) Wait(_ context.Context, domain string) error {
	l.domains = append(l.domains, domain)
	return nil
}

func TestLimitedFetcher_waits_on_the_request_host(t *testing.T) {
	t.Parallel()

	limiter := &recordingLimiter{}
	f := &crawl.LimitedFetcher{
		Next: &mock.Fetcher{
			FetchFn: func(context.Context, string, map[string]string) (string, error) {
				return "body", nil
			},
		},
		Limiter: limiter,
	}

	_, err := f.Fetch(context.Background(), "https://blog.example.com/archive", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"blog.example.com"}, limiter.domains)
}

func TestLimitedDownloader_waits_on_the_image_host(t *testing.T) {
	t.Parallel()

	limiter := &recordingLimiter{}
	d := &crawl.LimitedDownloader{
		Next: &mock.Downloader{
			DownloadFn: func(context.Context, string) ([]byte, error) {
				return []byte{1}, nil
			},
		},
		Limiter: limiter,
	}

	_, err := d.Download(context.Background(), "https://cdn.example/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, []string{"cdn.example"}, limiter.domains)
}
