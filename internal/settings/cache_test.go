package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SideQuest_Go/internal/domain"
)

func TestCacheInvalidation(t *testing.T) {
	cache := newSettingsCache(CacheConfig{Size: 10, TTL: time.Minute})
	s := domain.DefaultSettings("user-1")

	cache.Set(s)
	got, found := cache.Get("user-1")
	assert.True(t, found)
	assert.Equal(t, s, got)

	cache.Invalidate("user-1")
	_, found = cache.Get("user-1")
	assert.False(t, found)
}

func TestCacheReturnsCopies(t *testing.T) {
	cache := newSettingsCache(DefaultCacheConfig())
	s := domain.DefaultSettings("user-1")
	s.EnabledDefaultQuests = []string{"dq_1"}
	cache.Set(s)

	s.EnabledDefaultQuests[0] = "mutated"
	got, _ := cache.Get("user-1")
	got.EnabledDefaultQuests[0] = "mutated again"

	again, _ := cache.Get("user-1")
	assert.Equal(t, []string{"dq_1"}, again.EnabledDefaultQuests)
}

func TestCacheStaleVersion(t *testing.T) {
	cache := newSettingsCache(DefaultCacheConfig())
	cache.lru.Add("user-1", &cachedSettingsEntry{Version: "0.9", Settings: domain.DefaultSettings("user-1")})

	_, found := cache.Get("user-1")
	assert.False(t, found)
	assert.Equal(t, 0, cache.GetStats().Size)
}

func TestCacheStats(t *testing.T) {
	cache := newSettingsCache(CacheConfig{Size: 10, TTL: time.Minute})

	stats := cache.GetStats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)

	cache.Get("missing")
	cache.Set(domain.DefaultSettings("user-1"))
	cache.Get("user-1")

	stats = cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestCacheExpiry(t *testing.T) {
	cache := newSettingsCache(CacheConfig{Size: 10, TTL: 20 * time.Millisecond})
	cache.Set(domain.DefaultSettings("user-1"))

	assert.Eventually(t, func() bool {
		_, found := cache.Get("user-1")
		return !found
	}, time.Second, 10*time.Millisecond)
}

func TestCacheConfigDefaults(t *testing.T) {
	cfg := DefaultCacheConfig()
	assert.Equal(t, 1000, cfg.Size)
	assert.Equal(t, 5*time.Minute, cfg.TTL)

	c := newSettingsCache(CacheConfig{})
	c.Set(domain.DefaultSettings("user-1"))
	_, found := c.Get("user-1")
	assert.True(t, found, "zero config falls back to defaults")
}
