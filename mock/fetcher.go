package mock

import (
	"context"

	"github.com/fwojciec/hatenadl"
)

var _ hatenadl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of hatenadl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, query map[string]string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string, query map[string]string) (string, error) {
	return f.FetchFn(ctx, url, query)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
