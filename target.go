package hatenadl

// Route identifies which URL shape a target matched.
type Route string

// Recognized routes.
const (
	RouteEntry   Route = "entry"   // a single blog post
	RouteHome    Route = "home"    // a blog's home page listing
	RouteArchive Route = "archive" // /archive listings, optionally scoped by date or category
	RouteSearch  Route = "search"  // /search result listings
)

// Target is a parsed crawl target: the bare host, the URL path without
// query or fragment, and the allow-listed query parameters. A Target is
// immutable once constructed.
type Target struct {
	Domain string
	Path   string
	Query  map[string]string
	Route  Route
}

// Validate returns an error if the target contains invalid fields.
func (t *Target) Validate() error {
	if t.Domain == "" {
		return Errorf(EINVALID, "target domain required")
	}
	if t.Route == "" {
		return Errorf(EINVALID, "target route required")
	}
	return nil
}
