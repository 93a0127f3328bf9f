package crawl_test

import (
	"testing"

	"github.com/fwojciec/hatenadl/crawl"
	"github.com/stretchr/testify/assert"
)

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", crawl.TruncateURL("https://example.com", 0))
	assert.Equal(t, "ht", crawl.TruncateURL("https://example.com", 2))
	assert.Equal(t, "https://example.com", crawl.TruncateURL("https://example.com", 30))
	assert.Equal(t, "...e.com/entry/x", crawl.TruncateURL("https://example.com/entry/x", 16))
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", crawl.FormatBytes(512))
	assert.Equal(t, "1.5 KB", crawl.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", crawl.FormatBytes(2*1024*1024))
}
