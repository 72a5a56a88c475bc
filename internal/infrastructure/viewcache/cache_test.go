package viewcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGet(t *testing.T) {
	cache := NewMemory(time.Minute)

	cache.Set("/dashboard/invoices?latest", []string{"a", "b"})

	v, ok := cache.Get("/dashboard/invoices?latest")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v)

	_, ok = cache.Get("/dashboard/invoices?cards")
	assert.False(t, ok)
}

func TestMemory_TTLExpiry(t *testing.T) {
	cache := NewMemory(time.Minute)
	base := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return base }

	cache.Set("/dashboard/invoices?latest", 42)

	cache.now = func() time.Time { return base.Add(59 * time.Second) }
	_, ok := cache.Get("/dashboard/invoices?latest")
	assert.True(t, ok)

	cache.now = func() time.Time { return base.Add(61 * time.Second) }
	_, ok = cache.Get("/dashboard/invoices?latest")
	assert.False(t, ok)
}

func TestMemory_ExpiredEntriesReclaimedOnGet(t *testing.T) {
	cache := NewMemory(time.Minute)
	base := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return base }

	for _, q := range []string{"ada", "grace", "hopper"} {
		cache.Set("/dashboard/invoices?query="+q+"&page=1", q)
	}

	cache.now = func() time.Time { return base.Add(2 * time.Minute) }
	for _, q := range []string{"ada", "grace", "hopper"} {
		_, ok := cache.Get("/dashboard/invoices?query=" + q + "&page=1")
		assert.False(t, ok)
	}

	cache.mu.RLock()
	defer cache.mu.RUnlock()
	assert.Empty(t, cache.entries)
}

func TestMemory_InvalidatePrefix(t *testing.T) {
	cache := NewMemory(time.Minute)
	cache.Set("/dashboard/invoices?query=&page=1", 1)
	cache.Set("/dashboard/invoices?latest", 2)
	cache.Set("/dashboard/invoices?revenue", 3)
	cache.Set("/dashboard/customers", 4)

	cache.Invalidate("/dashboard/invoices")

	for _, key := range []string{
		"/dashboard/invoices?query=&page=1",
		"/dashboard/invoices?latest",
		"/dashboard/invoices?revenue",
	} {
		_, ok := cache.Get(key)
		assert.False(t, ok, "key %s should be gone", key)
	}

	v, ok := cache.Get("/dashboard/customers")
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestMemory_InvalidateEmpty(t *testing.T) {
	cache := NewMemory(time.Minute)
	assert.NotPanics(t, func() { cache.Invalidate("/dashboard/invoices") })
}
