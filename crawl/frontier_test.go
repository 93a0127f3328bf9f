package crawl_test

import (
	"testing"

	"github.com/fwojciec/hatenadl/crawl"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_Push_rejects_duplicate_URLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	ok := f.Push("hatenablog:https://blog.example.com/entry/2024/01/02/1")
	assert.True(t, ok, "first push should succeed")

	ok = f.Push("hatenablog:https://blog.example.com/entry/2024/01/02/1")
	assert.False(t, ok, "duplicate URL should be rejected")
}

func TestFrontier_Push_ignores_fragments_for_deduplication(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.True(t, f.Push("https://blog.example.com/entry/a#main"))
	assert.False(t, f.Push("https://blog.example.com/entry/a#comments"))
	assert.True(t, f.Seen("https://blog.example.com/entry/a"))
}

func TestFrontier_Pop_returns_references_in_discovery_order(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	f.Push("https://blog.example.com/entry/a")
	f.Push("https://blog.example.com/entry/b")
	f.Push("https://blog.example.com/entry/c")

	for _, want := range []string{
		"https://blog.example.com/entry/a",
		"https://blog.example.com/entry/b",
		"https://blog.example.com/entry/c",
	} {
		got, ok := f.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := f.Pop()
	assert.False(t, ok, "pop on empty frontier should return false")
}

func TestFrontier_Len_tracks_queue_size(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.Equal(t, 0, f.Len(), "new frontier should be empty")

	f.Push("https://blog.example.com/entry/a")
	f.Push("https://blog.example.com/entry/b")
	assert.Equal(t, 2, f.Len())

	f.Pop()
	assert.Equal(t, 1, f.Len())
}
