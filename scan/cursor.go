// Package scan provides a forward-only marker cursor over a document
// string. It extracts substrings delimited by literal markers without
// ever backtracking, which keeps per-page extraction linear in document
// length no matter how many fields are pulled from it.
package scan

import "strings"

// Cursor scans a document from left to right. The zero value is not
// usable; construct one with New.
type Cursor struct {
	doc string
	pos int
}

// New returns a Cursor positioned at the start of doc.
func New(doc string) *Cursor {
	return &Cursor{doc: doc}
}

// Extract returns the substring strictly between the first occurrence of
// begin at or after the current position and the first occurrence of end
// after that point, then advances the cursor to just past end. An empty
// begin marker starts extraction at the current position.
//
// When either marker cannot be found, Extract returns ("", false) and
// the cursor does not move. Higher layers use this as the "no more items
// on this page" signal.
func (c *Cursor) Extract(begin, end string) (string, bool) {
	start := c.pos
	if begin != "" {
		i := strings.Index(c.doc[c.pos:], begin)
		if i < 0 {
			return "", false
		}
		start = c.pos + i + len(begin)
	}
	j := strings.Index(c.doc[start:], end)
	if j < 0 {
		return "", false
	}
	c.pos = start + j + len(end)
	return c.doc[start : start+j], true
}

// Pos returns the current cursor position within the document.
func (c *Cursor) Pos() int {
	return c.pos
}

// Between is a one-shot extraction over an isolated fragment: the
// substring of s strictly between the first occurrence of begin and the
// first occurrence of end after it.
func Between(s, begin, end string) (string, bool) {
	i := strings.Index(s, begin)
	if i < 0 {
		return "", false
	}
	start := i + len(begin)
	j := strings.Index(s[start:], end)
	if j < 0 {
		return "", false
	}
	return s[start : start+j], true
}
