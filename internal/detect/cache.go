package detect

import (
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"glyphwatch/internal/jid"
)

// DefaultCapacity is the number of compiled matchers kept per Cache.
const DefaultCapacity = 100

// CacheStats is a point-in-time snapshot of cache counters.
type CacheStats struct {
	Hits      uint64 `json:"hits" msgpack:"hits"`
	Misses    uint64 `json:"misses" msgpack:"misses"`
	Evictions uint64 `json:"evictions" msgpack:"evictions"`
	Entries   int    `json:"entries" msgpack:"entries"`
	Capacity  int    `json:"capacity" msgpack:"capacity"`
}

// Cache maps identifiers to compiled matchers with least-recently-used
// eviction. One mutex covers the whole lookup-compile-insert sequence,
// so a key is compiled at most once while it stays resident.
type Cache struct {
	mu       sync.Mutex
	lru      *simplelru.LRU[jid.JID, *Matcher]
	capacity int
	stats    CacheStats
	onEvict  func(jid.JID)
	purging  bool
}

// NewCache creates a cache holding at most capacity entries.
// onEvict, if non-nil, runs under the cache lock for every evicted key.
func NewCache(capacity int, onEvict func(jid.JID)) (*Cache, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("cache capacity must be positive, got %d", capacity)
	}
	c := &Cache{capacity: capacity, onEvict: onEvict}
	lru, err := simplelru.NewLRU[jid.JID, *Matcher](capacity, c.evicted)
	if err != nil {
		return nil, err
	}
	c.lru = lru
	return c, nil
}

func (c *Cache) evicted(key jid.JID, _ *Matcher) {
	if c.purging {
		return
	}
	c.stats.Evictions++
	if c.onEvict != nil {
		c.onEvict(key)
	}
}

// GetOrCompile returns the matcher cached for key, or calls compile,
// stores its result and returns it. hit reports which path was taken.
// A compile error is returned as is and nothing is cached.
func (c *Cache) GetOrCompile(key jid.JID, compile func() (*Matcher, error)) (m *Matcher, hit bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := c.lru.Get(key); ok {
		c.stats.Hits++
		return m, true, nil
	}
	c.stats.Misses++
	m, err = compile()
	if err != nil {
		return nil, false, err
	}
	c.lru.Add(key, m)
	return m, false, nil
}

// Peek returns the cached matcher without touching recency or counters.
func (c *Cache) Peek(key jid.JID) (*Matcher, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Peek(key)
}

// Keys returns the resident keys from least to most recently used.
func (c *Cache) Keys() []jid.JID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Keys()
}

// Len returns the number of resident entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Capacity returns the configured maximum number of entries.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Entries = c.lru.Len()
	s.Capacity = c.capacity
	return s
}

// Purge drops every entry. Counters are kept; purged entries are not
// counted as evictions.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.purging = true
	c.lru.Purge()
	c.purging = false
}
