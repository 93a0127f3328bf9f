// Package hatenadl downloads images from HatenaBlog sites by crawling their
// public HTML pages. It recognizes entry, home, archive and search URLs,
// walks paginated listings, extracts full-size images from article bodies,
// and archives downloads under a stable naming scheme.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, sqlite/), plus the hatena/
// extractor core and the crawl/ orchestration package.
package hatenadl

// Category is the extractor category, used as the top-level segment of
// output paths and as the prefix of rendered filenames.
const Category = "hatenablog"
