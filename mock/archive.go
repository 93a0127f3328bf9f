package mock

import (
	"context"

	"github.com/fwojciec/hatenadl"
)

var _ hatenadl.Archive = (*Archive)(nil)

// Archive is a mock implementation of hatenadl.Archive.
type Archive struct {
	SeenFn   func(ctx context.Context, key string) (bool, error)
	RecordFn func(ctx context.Context, entry *hatenadl.ArchiveEntry) error
	CloseFn  func() error
}

func (a *Archive) Seen(ctx context.Context, key string) (bool, error) {
	return a.SeenFn(ctx, key)
}

func (a *Archive) Record(ctx context.Context, entry *hatenadl.ArchiveEntry) error {
	return a.RecordFn(ctx, entry)
}

func (a *Archive) Close() error {
	if a.CloseFn == nil {
		return nil
	}
	return a.CloseFn()
}
