package settings

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SideQuest_Go/internal/domain"
)

// CacheConfig sizes the settings cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the cache configuration used when none is given
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type cachedSettingsEntry struct {
	Version  string
	Settings domain.UserSettings
	CachedAt time.Time
}

// settingsCache is an expiring LRU of settings keyed by user id. Entries are stored
// by value so callers cannot mutate cached state.
type settingsCache struct {
	lru    *expirable.LRU[string, *cachedSettingsEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newSettingsCache(cfg CacheConfig) *settingsCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &settingsCache{
		lru: expirable.NewLRU[string, *cachedSettingsEntry](cfg.Size, nil, cfg.TTL),
	}
}

func (c *settingsCache) Get(userID string) (domain.UserSettings, bool) {
	entry, found := c.lru.Get(userID)
	if !found {
		c.misses.Add(1)
		return domain.UserSettings{}, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(userID)
		c.misses.Add(1)
		return domain.UserSettings{}, false
	}

	c.hits.Add(1)
	s := entry.Settings
	s.EnabledDefaultQuests = append([]string{}, entry.Settings.EnabledDefaultQuests...)
	return s, true
}

func (c *settingsCache) Set(s domain.UserSettings) {
	s.EnabledDefaultQuests = append([]string{}, s.EnabledDefaultQuests...)
	c.lru.Add(s.UserID, &cachedSettingsEntry{
		Version:  CacheSchemaVersion,
		Settings: s,
		CachedAt: time.Now(),
	})
}

func (c *settingsCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}

func (c *settingsCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
