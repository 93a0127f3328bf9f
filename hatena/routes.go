package hatena

import (
	"net/url"
	"regexp"

	"github.com/fwojciec/hatenadl"
)

// basePattern accepts either the synthetic hatenablog:<url> form, which
// forces a custom domain through this extractor, or a bare host under
// one of the four Hatena blog domains.
const basePattern = `(?:hatenablog:https?://([^/]+)|(?:https?://)?` +
	`([\w-]+\.(?:hatenablog\.com|hatenablog\.jp` +
	`|hatenadiary\.com|hateblo\.jp)))`

const queryPattern = `(?:\?([^#]*))?(?:#.*)?$`

var (
	entryRe   = regexp.MustCompile(`\A` + basePattern + `/entry/([^?#]+)` + queryPattern)
	homeRe    = regexp.MustCompile(`\A` + basePattern + `(/?)` + queryPattern)
	archiveRe = regexp.MustCompile(`\A` + basePattern + `(/archive(?:/\d+(?:/\d+(?:/\d+)?)?|/category/[^?#]+)?)` + queryPattern)
	searchRe  = regexp.MustCompile(`\A` + basePattern + `(/search)` + queryPattern)
)

// route pairs a pattern with its query parameter allow-list. "page" is
// implicitly allowed on every listing route so a crawl can resume at an
// arbitrary page.
type route struct {
	name    hatenadl.Route
	re      *regexp.Regexp
	allowed []string
}

var routes = []route{
	{name: hatenadl.RouteEntry, re: entryRe},
	{name: hatenadl.RouteArchive, re: archiveRe},
	{name: hatenadl.RouteSearch, re: searchRe, allowed: []string{"q"}},
	{name: hatenadl.RouteHome, re: homeRe},
}

// Match parses a target URL into a Target, selecting the first route
// whose pattern matches. It returns an ENOTFOUND error when the URL
// matches no recognized shape.
func Match(rawURL string) (*hatenadl.Target, error) {
	for _, r := range routes {
		m := r.re.FindStringSubmatch(rawURL)
		if m == nil {
			continue
		}

		domain := m[1]
		if domain == "" {
			domain = m[2]
		}

		t := &hatenadl.Target{
			Domain: domain,
			Route:  r.name,
		}
		if r.name == hatenadl.RouteEntry {
			// Entry URLs accept no query parameters.
			t.Path = "/entry/" + m[3]
			return t, nil
		}

		t.Path = m[3]
		t.Query = filterQuery(m[4], r.allowed)
		return t, nil
	}
	return nil, hatenadl.Errorf(hatenadl.ENOTFOUND, "no route matches %q", rawURL)
}

// filterQuery parses a raw query string and keeps only allow-listed
// keys. Unknown keys are dropped silently so pasted URLs with tracking
// parameters still work. A repeated key keeps its first value.
func filterQuery(rawQuery string, allowed []string) map[string]string {
	if rawQuery == "" {
		return nil
	}
	// ParseQuery reports errors per malformed pair while still returning
	// the pairs it could parse; keep those.
	values, _ := url.ParseQuery(rawQuery)

	query := make(map[string]string)
	for key, vals := range values {
		if len(vals) == 0 || !acceptableQuery(key, allowed) {
			continue
		}
		query[key] = vals[0]
	}
	if len(query) == 0 {
		return nil
	}
	return query
}

func acceptableQuery(key string, allowed []string) bool {
	if key == "page" {
		return true
	}
	for _, a := range allowed {
		if key == a {
			return true
		}
	}
	return false
}
