package rod

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/pagesum"
)

// Ensure LazyFetcher implements pagesum.Fetcher at compile time.
var _ pagesum.Fetcher = (*LazyFetcher)(nil)

// LazyFetcher launches the browser on the first Fetch, so runs that stop
// before loading a page never start Chrome.
type LazyFetcher struct {
	opts []Option

	mu      sync.Mutex
	fetcher *Fetcher
	err     error
	closed  bool
}

// NewLazyFetcher returns a LazyFetcher that passes opts to NewFetcher.
func NewLazyFetcher(opts ...Option) *LazyFetcher {
	return &LazyFetcher{opts: opts}
}

// Fetch starts the browser if needed and delegates to it. A failed launch
// is reported by every later Fetch without retrying.
func (f *LazyFetcher) Fetch(ctx context.Context, url string) (string, error) {
	fetcher, err := f.browser()
	if err != nil {
		return "", err
	}
	return fetcher.Fetch(ctx, url)
}

func (f *LazyFetcher) browser() (*Fetcher, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, pagesum.Errorf(pagesum.EINVALID, "fetcher is closed")
	}
	if f.fetcher == nil && f.err == nil {
		f.fetcher, f.err = NewFetcher(f.opts...)
		if f.err != nil {
			f.err = fmt.Errorf("failed to start browser (Chrome or Chromium must be installed for --render): %w", f.err)
		}
	}
	return f.fetcher, f.err
}

// Close shuts down the browser if it was started.
func (f *LazyFetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	if f.fetcher == nil {
		return nil
	}
	return f.fetcher.Close()
}
