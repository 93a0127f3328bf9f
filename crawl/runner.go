// Package crawl orchestrates crawls of HatenaBlog targets. It matches
// the input URL to a route, streams the extractor's items, downloads
// and archives images, and fans queued entry references out as
// independent single-entry crawls.
package crawl

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/hatenadl"
	"github.com/fwojciec/hatenadl/hatena"
	"golang.org/x/sync/errgroup"
)

// Frontier sizing for queued-reference deduplication.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Runner coordinates one crawl: extraction, download, dedup, and
// persistence. Fetcher, Downloader and Writer are required; Archive is
// optional (no dedup without it).
type Runner struct {
	Fetcher    hatenadl.Fetcher
	Downloader hatenadl.Downloader
	Archive    hatenadl.Archive
	Writer     hatenadl.ImageWriter

	// Concurrency limits the queued-entry fan-out. Defaults to 4.
	Concurrency int

	// MaxPages caps the number of page fetches per run as a guard
	// against pagination loops. 0 means unbounded, matching the
	// platform's own termination contract.
	MaxPages int

	// ListOnly reports discovered items without downloading anything.
	ListOnly bool
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Directories int
	Images      int
	Skipped     int
	Queued      int
	Bytes       int64
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressDirectory ProgressType = iota
	ProgressDownloaded
	ProgressListed
	ProgressSkipped
	ProgressQueued
)

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type  ProgressType
	URL   string
	Path  string
	Title string
}

// ProgressFunc is a callback for reporting crawl progress. During the
// queued-entry fan-out it may be called from multiple goroutines.
type ProgressFunc func(event ProgressEvent)

// counters accumulates results across the fan-out goroutines.
type counters struct {
	directories atomic.Int64
	images      atomic.Int64
	skipped     atomic.Int64
	queued      atomic.Int64
	bytes       atomic.Int64
}

func (c *counters) result() *Result {
	return &Result{
		Directories: int(c.directories.Load()),
		Images:      int(c.images.Load()),
		Skipped:     int(c.skipped.Load()),
		Queued:      int(c.queued.Load()),
		Bytes:       c.bytes.Load(),
	}
}

// Run crawls the target URL to completion. The progress callback, if
// provided, receives events as items are handled. The crawl stops at
// the first hard error; everything delivered before the error stays
// delivered.
func (r *Runner) Run(ctx context.Context, rawURL string, progress ProgressFunc) (*Result, error) {
	target, err := hatena.Match(rawURL)
	if err != nil {
		return nil, err
	}

	fetcher := r.Fetcher
	if r.MaxPages > 0 {
		fetcher = &budgetFetcher{next: r.Fetcher, remaining: r.MaxPages}
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	var c counters

	if err := r.process(ctx, fetcher, target, frontier, &c, progress); err != nil {
		if errors.Is(err, errPageBudget) {
			return c.result(), nil
		}
		return nil, err
	}

	// Queued references re-enter the pipeline as independent entry
	// targets; each is a fresh stateless invocation, so they can run
	// concurrently.
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for {
		ref, ok := frontier.Pop()
		if !ok {
			break
		}
		g.Go(func() error {
			t, err := hatena.Match(ref)
			if err != nil {
				return err
			}
			if err := r.process(gctx, fetcher, t, nil, &c, progress); err != nil && !errors.Is(err, errPageBudget) {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return c.result(), nil
}

// process crawls one target and handles its item stream.
func (r *Runner) process(ctx context.Context, fetcher hatenadl.Fetcher, target *hatenadl.Target, frontier *Frontier, c *counters, progress ProgressFunc) error {
	extractor := &hatena.Extractor{Fetcher: fetcher}

	return extractor.Extract(ctx, target, func(item *hatenadl.Item) error {
		switch item.Kind {
		case hatenadl.ItemDirectory:
			c.directories.Add(1)
			notify(progress, ProgressEvent{
				Type:  ProgressDirectory,
				Path:  hatenadl.Category + "/" + item.Meta.Domain,
				Title: item.Meta.Title,
			})
			return nil

		case hatenadl.ItemURL:
			return r.handleImage(ctx, item, c, progress)

		case hatenadl.ItemQueue:
			if frontier == nil {
				return hatenadl.Errorf(hatenadl.EINTERNAL, "unexpected queue item from %s target", target.Route)
			}
			if frontier.Push(item.URL) {
				c.queued.Add(1)
				notify(progress, ProgressEvent{Type: ProgressQueued, URL: item.URL})
			}
			return nil

		default:
			return hatenadl.Errorf(hatenadl.EINTERNAL, "unknown item kind %d", item.Kind)
		}
	})
}

// handleImage downloads, writes and records one image, or skips it when
// the archive already has its key.
func (r *Runner) handleImage(ctx context.Context, item *hatenadl.Item, c *counters, progress ProgressFunc) error {
	key := item.Meta.ArchiveKey()
	relPath := item.Meta.RelPath()

	if r.Archive != nil {
		seen, err := r.Archive.Seen(ctx, key)
		if err != nil {
			return err
		}
		if seen {
			c.skipped.Add(1)
			notify(progress, ProgressEvent{Type: ProgressSkipped, URL: item.URL, Path: relPath})
			return nil
		}
	}

	if r.ListOnly {
		c.images.Add(1)
		notify(progress, ProgressEvent{Type: ProgressListed, URL: item.URL, Path: relPath})
		return nil
	}

	data, err := r.Downloader.Download(ctx, item.URL)
	if err != nil {
		return err
	}
	if err := r.Writer.WriteImage(ctx, relPath, data); err != nil {
		return err
	}

	if r.Archive != nil {
		entry := &hatenadl.ArchiveEntry{
			Key:         key,
			Domain:      item.Meta.Domain,
			Entry:       item.Meta.Entry,
			Num:         item.Meta.Num,
			URL:         item.URL,
			ContentHash: contentHash(data),
			Size:        int64(len(data)),
		}
		if err := r.Archive.Record(ctx, entry); err != nil {
			return err
		}
	}

	c.images.Add(1)
	c.bytes.Add(int64(len(data)))
	notify(progress, ProgressEvent{Type: ProgressDownloaded, URL: item.URL, Path: relPath})
	return nil
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}

// contentHash computes a hash of the payload using xxhash.
func contentHash(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// errPageBudget signals that the MaxPages fetch budget is spent. The
// runner treats it as a graceful stop, not a failure.
var errPageBudget = errors.New("page budget exhausted")

// budgetFetcher decorates a Fetcher with a fetch-count budget.
type budgetFetcher struct {
	next hatenadl.Fetcher

	mu        sync.Mutex
	remaining int
}

func (b *budgetFetcher) Fetch(ctx context.Context, url string, query map[string]string) (string, error) {
	b.mu.Lock()
	if b.remaining <= 0 {
		b.mu.Unlock()
		return "", errPageBudget
	}
	b.remaining--
	b.mu.Unlock()

	return b.next.Fetch(ctx, url, query)
}

func (b *budgetFetcher) Close() error {
	return b.next.Close()
}
