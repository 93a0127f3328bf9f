package hatenadl

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// ItemKind distinguishes the three kinds of items an extractor emits.
type ItemKind int

// Item kinds, in the order a consumer sees them for one article.
const (
	// ItemDirectory carries the aggregate metadata for one article and
	// signals that the URL items that follow belong to it.
	ItemDirectory ItemKind = iota + 1

	// ItemURL carries one image URL plus merged metadata; the unit of
	// work the downloader acts on.
	ItemURL

	// ItemQueue carries a reference to another entry that must be
	// independently re-fetched and parsed.
	ItemQueue
)

// Metadata holds the fields attached to emitted items. Directory items
// carry the article-level fields; URL items additionally carry the
// per-image fields.
type Metadata struct {
	Domain string
	Date   time.Time
	Entry  string // canonical path suffix after /entry/, never empty
	Title  string
	Count  int // number of qualifying images in the article

	// Per-image fields, zero on Directory items.
	Num       int    // 1-based position in document order
	Filename  string // basename of the image URL without extension
	Extension string
}

// ArchiveKey renders the filename used both on disk and as the archive
// deduplication key:
//
//	{category}_{domain}_{entry}_{num:02d}.{extension}
//
// Path separators in the entry identifier are flattened so the rendered
// name is a single path element.
func (m *Metadata) ArchiveKey() string {
	entry := strings.ReplaceAll(m.Entry, "/", "_")
	name := fmt.Sprintf("%s_%s_%s_%02d", Category, m.Domain, entry, m.Num)
	if m.Extension == "" {
		return name
	}
	return name + "." + m.Extension
}

// RelPath renders the slash-separated output path for the image:
//
//	{category}/{domain}/{ArchiveKey}
func (m *Metadata) RelPath() string {
	return path.Join(Category, m.Domain, m.ArchiveKey())
}

// Item is one element of the extractor's output stream.
type Item struct {
	Kind ItemKind

	// URL is the image URL for ItemURL items, or the (possibly
	// hatenablog:-prefixed) entry URL for ItemQueue items.
	URL string

	// Route hints which route should handle a queued reference.
	Route Route

	Meta Metadata
}

// EmitFunc receives items as they are discovered. Returning an error
// aborts the crawl; items already delivered stay delivered.
type EmitFunc func(item *Item) error

// NameExt derives a filename and extension from an image URL, ignoring
// any query or fragment.
func NameExt(rawURL string) (name, ext string) {
	s := rawURL
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = path.Base(s)
	if i := strings.LastIndexByte(s, '.'); i > 0 {
		return s[:i], strings.ToLower(s[i+1:])
	}
	return s, ""
}
