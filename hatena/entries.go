package hatena

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/fwojciec/hatenadl"
	"github.com/fwojciec/hatenadl/scan"
)

var findPagerNext = regexp.MustCompile(`<span class="pager-next">\s*<a href="(.+?)"`)

// extractEntries drives pagination over a listing target (home, archive
// or search). Each page is routed to the partial or full layout handler
// by the body tag's attributes, then scanned for a pager-next link.
//
// Only the first request carries the target's query parameters; the
// next-page link already encodes pagination state, so every subsequent
// request goes out bare. There is no cycle detection: a next link that
// points backward would loop forever.
func (e *Extractor) extractEntries(ctx context.Context, target *hatenadl.Target, emit hatenadl.EmitFunc) error {
	pageURL := "https://" + target.Domain + target.Path
	query := target.Query

	for pageURL != "" {
		page, err := e.Fetcher.Fetch(ctx, pageURL, query)
		if err != nil {
			return err
		}

		cur := scan.New(page)
		attributes, _ := cur.Extract("<body ", ">")
		if strings.Contains(attributes, "page-archive") {
			err = e.queuePartialArticles(cur, emit)
		} else {
			err = e.emitFullArticles(target.Domain, cur, emit)
		}
		if err != nil {
			return err
		}

		pageURL = nextPageURL(page)
		query = nil
	}
	return nil
}

// queuePartialArticles handles the archive listing layout, where pages
// carry only entry summaries. Each summary's canonical link is emitted
// as a queued reference to be re-fetched as a single-entry target; no
// directory or URL items are produced here.
func (e *Extractor) queuePartialArticles(cur *scan.Cursor, emit hatenadl.EmitFunc) error {
	for {
		section, ok := cur.Extract(`<section class="archive-entry`, `</section>`)
		if !ok {
			return nil
		}

		link, ok := scan.Between(section, `<a class="entry-title-link" href="`, `"`)
		if !ok {
			return hatenadl.Errorf(hatenadl.EPARSE, "archive entry has no title link")
		}

		item := &hatenadl.Item{
			Kind:  hatenadl.ItemQueue,
			URL:   "hatenablog:" + html.UnescapeString(link),
			Route: hatenadl.RouteEntry,
		}
		if err := emit(item); err != nil {
			return err
		}
	}
}

// emitFullArticles handles the layout where listing pages render
// complete article bodies inline. Articles flagged no-entry are
// placeholder slots the platform renders for missing content; they are
// skipped without terminating the scan.
func (e *Extractor) emitFullArticles(domain string, cur *scan.Cursor, emit hatenadl.EmitFunc) error {
	for {
		attributes, ok := cur.Extract("<article ", ">")
		if !ok {
			return nil
		}
		if strings.Contains(attributes, "no-entry") {
			continue
		}

		article, ok := cur.Extract("", "</article>")
		if !ok {
			return hatenadl.Errorf(hatenadl.EPARSE, "unterminated article fragment")
		}
		if err := e.emitArticle(domain, article, emit); err != nil {
			return err
		}
	}
}

// nextPageURL returns the unescaped pager-next href, or "" when the
// page has no next link.
func nextPageURL(page string) string {
	m := findPagerNext.FindStringSubmatch(page)
	if m == nil {
		return ""
	}
	return html.UnescapeString(m[1])
}
