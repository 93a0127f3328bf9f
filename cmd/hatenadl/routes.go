package main

import "fmt"

// Run executes the "routes" command, printing the URL shapes the
// crawler recognizes.
func (c *RoutesCmd) Run(deps *Dependencies) error {
	rows := []struct {
		route   string
		example string
	}{
		{"entry", "https://BLOG.hatenablog.com/entry/PATH"},
		{"home", "https://BLOG.hatenablog.com"},
		{"archive", "https://BLOG.hatenablog.com/archive/2024"},
		{"search", "https://BLOG.hatenablog.com/search?q=QUERY"},
	}

	fmt.Fprintln(deps.Stdout, "Recognized URL shapes (hatenablog.com, hatenablog.jp, hatenadiary.com, hateblo.jp):")
	for _, r := range rows {
		fmt.Fprintf(deps.Stdout, "  %-8s %s\n", r.route, r.example)
	}
	fmt.Fprintln(deps.Stdout, "\nCustom domains can be forced through this extractor with the")
	fmt.Fprintln(deps.Stdout, "hatenablog:URL prefix, e.g. hatenablog:https://blog.example.net/entry/x")
	return nil
}
