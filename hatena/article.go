package hatena

import (
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/hatenadl"
	"github.com/fwojciec/hatenadl/scan"
)

var (
	findImg = regexp.MustCompile(`<img +(.+?) */?>`)

	// Only images carrying the hatena-fotolife class are content
	// images; everything else (icons, emoji, tracking pixels) is
	// decoration.
	isContentImg = regexp.MustCompile(`(?: |^)class="hatena-fotolife"(?: |$)`)
	findImgSrc   = regexp.MustCompile(`(?: |^)src="(.+?)"(?: |$)`)
)

// Timestamp layouts observed in hatena time elements.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02",
}

// emitArticle parses one article fragment and emits its directory item
// followed by one URL item per qualifying image, numbered in document
// order. Missing required markers are EPARSE errors; an article with
// zero qualifying images is valid.
func (e *Extractor) emitArticle(domain, article string, emit hatenadl.EmitFunc) error {
	cur := scan.New(article)

	rawDate, ok := cur.Extract(`<time datetime="`, `"`)
	if !ok {
		return hatenadl.Errorf(hatenadl.EPARSE, "article has no datetime attribute")
	}
	date, err := parseDatetime(rawDate)
	if err != nil {
		return err
	}

	entryLink, ok := cur.Extract(`<a href="`, `" class="entry-title-link bookmark">`)
	if !ok {
		return hatenadl.Errorf(hatenadl.EPARSE, "article has no entry-title link")
	}
	_, entry, found := strings.Cut(html.UnescapeString(entryLink), "/entry/")
	if !found || entry == "" {
		return hatenadl.Errorf(hatenadl.EPARSE, "entry link %q has no entry identifier", entryLink)
	}

	title, ok := cur.Extract("", "</a>")
	if !ok {
		return hatenadl.Errorf(hatenadl.EPARSE, "article has no title")
	}

	content, ok := cur.Extract(`<div class="entry-content hatenablog-entry">`, `</div>`)
	if !ok {
		return hatenadl.Errorf(hatenadl.EPARSE, "article has no content region")
	}

	images, err := contentImages(content)
	if err != nil {
		return err
	}

	meta := hatenadl.Metadata{
		Domain: domain,
		Date:   date,
		Entry:  entry,
		Title:  title,
		Count:  len(images),
	}
	if err := emit(&hatenadl.Item{Kind: hatenadl.ItemDirectory, Meta: meta}); err != nil {
		return err
	}

	for i, imageURL := range images {
		m := meta
		m.Num = i + 1
		m.Filename, m.Extension = hatenadl.NameExt(imageURL)
		if err := emit(&hatenadl.Item{Kind: hatenadl.ItemURL, URL: imageURL, Meta: m}); err != nil {
			return err
		}
	}
	return nil
}

// contentImages scans a content region for image elements, keeps those
// whose attributes identify a content image, and returns their
// unescaped source URLs in document order.
func contentImages(content string) ([]string, error) {
	var images []string
	for _, m := range findImg.FindAllStringSubmatch(content, -1) {
		attributes := m[1]
		if !isContentImg.MatchString(attributes) {
			continue
		}
		src := findImgSrc.FindStringSubmatch(attributes)
		if src == nil {
			return nil, hatenadl.Errorf(hatenadl.EPARSE, "content image has no src attribute")
		}
		images = append(images, html.UnescapeString(src[1]))
	}
	return images, nil
}

func parseDatetime(s string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, hatenadl.Errorf(hatenadl.EPARSE, "unrecognized datetime %q", s)
}
