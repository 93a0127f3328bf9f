package mock

import (
	"context"

	"github.com/fwojciec/hatenadl"
)

var _ hatenadl.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of hatenadl.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url string) ([]byte, error)
}

func (d *Downloader) Download(ctx context.Context, url string) ([]byte, error) {
	return d.DownloadFn(ctx, url)
}
