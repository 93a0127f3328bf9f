package hatena

import (
	"context"
	"strings"

	"github.com/fwojciec/hatenadl"
	"github.com/fwojciec/hatenadl/scan"
)

// extractEntry fetches a single entry page and emits its one article.
// Entry pages can still contain no-entry placeholder articles ahead of
// the real one; those are skipped. A page without any real article is a
// parse error.
func (e *Extractor) extractEntry(ctx context.Context, target *hatenadl.Target, emit hatenadl.EmitFunc) error {
	pageURL := "https://" + target.Domain + target.Path
	page, err := e.Fetcher.Fetch(ctx, pageURL, nil)
	if err != nil {
		return err
	}

	cur := scan.New(page)
	for {
		attributes, ok := cur.Extract("<article ", ">")
		if !ok {
			return hatenadl.Errorf(hatenadl.EPARSE, "no article on entry page %s", pageURL)
		}
		if strings.Contains(attributes, "no-entry") {
			continue
		}

		article, ok := cur.Extract("", "</article>")
		if !ok {
			return hatenadl.Errorf(hatenadl.EPARSE, "unterminated article fragment")
		}
		return e.emitArticle(target.Domain, article, emit)
	}
}
