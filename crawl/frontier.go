package crawl

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Frontier holds queued entry references discovered on listing pages,
// deduplicating with a Bloom filter so an entry summarized on several
// archive pages is fetched once. It is safe for concurrent use.
//
// References are popped in the order they were discovered.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.BloomFilter
	queue []string
}

// NewFrontier creates a new Frontier sized for n expected URLs with the
// given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewWithEstimates(n, fpRate),
	}
}

// Push adds a reference to the frontier. Returns false if the URL has
// already been seen. Fragments are stripped before deduplication, so
// URLs differing only by fragment count as duplicates.
func (f *Frontier) Push(rawURL string) bool {
	url := stripFragment(rawURL)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.TestString(url) {
		return false
	}
	f.seen.AddString(url)
	f.queue = append(f.queue, url)
	return true
}

// Pop returns the oldest queued reference. The bool result is false if
// the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of queued references.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been queued before.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.TestString(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
