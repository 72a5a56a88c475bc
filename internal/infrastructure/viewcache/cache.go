// Package viewcache is the process-local implementation of the view cache the
// query services read through and the mutation actions invalidate.
package viewcache

import (
	"strings"
	"sync"
	"time"

	"github.com/finboard/finboard/internal/observability"
)

type entry struct {
	value    any
	storedAt time.Time
}

// Memory caches rendered view data keyed by view path. Entries expire after
// ttl; Invalidate drops every entry under a view key prefix immediately.
// Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the live entry under key. An expired entry is removed on
// lookup; query-derived keys are unbounded, so expired entries must not wait
// for the next mutation-driven invalidation to be reclaimed.
func (c *Memory) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && c.now().Sub(e.storedAt) > c.ttl {
		c.mu.Lock()
		// re-check: a concurrent Set may have refreshed the entry
		if cur, still := c.entries[key]; still && c.now().Sub(cur.storedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		ok = false
	}

	if !ok {
		observability.ViewCacheEvents.WithLabelValues("miss").Inc()
		return nil, false
	}
	observability.ViewCacheEvents.WithLabelValues("hit").Inc()
	return e.value, true
}

func (c *Memory) Set(key string, value any) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, storedAt: c.now()}
	c.mu.Unlock()
}

// Invalidate removes every entry whose key starts with viewKey. Invalidating
// a key with no entries is a no-op.
func (c *Memory) Invalidate(viewKey string) {
	c.mu.Lock()
	for k := range c.entries {
		if strings.HasPrefix(k, viewKey) {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
	observability.ViewCacheEvents.WithLabelValues("invalidate").Inc()
}
