// Package hatena implements the HatenaBlog extractor: URL route
// matching, marker-based page parsing, and pagination over listing
// pages. It emits a stream of directory, URL and queue items through a
// caller-supplied callback and performs no I/O besides the injected
// page fetcher.
package hatena

import (
	"context"

	"github.com/fwojciec/hatenadl"
)

// Extractor crawls one target and streams discovered items.
type Extractor struct {
	Fetcher hatenadl.Fetcher
}

// Extract enumerates all items reachable from the target in document
// order. Items are delivered through emit as they are discovered; an
// error from emit aborts the crawl.
func (e *Extractor) Extract(ctx context.Context, target *hatenadl.Target, emit hatenadl.EmitFunc) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target.Route == hatenadl.RouteEntry {
		return e.extractEntry(ctx, target, emit)
	}
	return e.extractEntries(ctx, target, emit)
}
