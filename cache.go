package unresolver

import (
	"context"
	"sync"
)

// ProbeFunc resolves one external URL to a reachability verdict.
type ProbeFunc func(ctx context.Context, targetURL string) bool

type cacheEntry struct {
	done      chan struct{}
	reachable bool
}

// ExternalCache memoizes reachability per exact URL string for one run.
// It coalesces concurrent lookups: the first caller for a URL owns the
// probe, later callers block on the entry until the owner publishes its
// result. At most one probe per distinct URL ever goes out.
type ExternalCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	metrics *Metrics
}

func NewExternalCache() *ExternalCache {
	return &ExternalCache{
		entries: map[string]*cacheEntry{},
	}
}

// Resolve returns the cached reachability for targetURL, probing it first
// if this is the first lookup. The error is non-nil only when ctx is
// canceled while waiting on another caller's in-flight probe.
func (c *ExternalCache) Resolve(ctx context.Context, targetURL string, probe ProbeFunc) (bool, error) {
	c.mu.Lock()
	entry, ok := c.entries[targetURL]
	if ok {
		c.mu.Unlock()
		c.metrics.CacheHit()
		// settled entries answer regardless of ctx state
		select {
		case <-entry.done:
			return entry.reachable, nil
		default:
		}
		select {
		case <-entry.done:
			return entry.reachable, nil
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	entry = &cacheEntry{done: make(chan struct{})}
	c.entries[targetURL] = entry
	c.mu.Unlock()

	entry.reachable = probe(ctx, targetURL)
	close(entry.done)
	return entry.reachable, nil
}

// Lookup returns a settled cached result without triggering a probe.
func (c *ExternalCache) Lookup(targetURL string) (reachable, ok bool) {
	c.mu.Lock()
	entry, found := c.entries[targetURL]
	c.mu.Unlock()
	if !found {
		return false, false
	}
	select {
	case <-entry.done:
		return entry.reachable, true
	default:
		return false, false
	}
}

func (c *ExternalCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
