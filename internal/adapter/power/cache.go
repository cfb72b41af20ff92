package power

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/skg97072-hub/weather-dashboard-backend/internal/domain"
	"github.com/skg97072-hub/weather-dashboard-backend/internal/observability"
)

// CachedSource wraps a ParameterSource with a bounded in-memory LRU cache.
// Entries are keyed on the exact (lat, lng, date, sorted parameter set) and
// never expire: a past date's measurements are permanently valid. Failed
// fetches are not cached, so a later request can retry the upstream.
type CachedSource struct {
	inner   domain.ParameterSource
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedSource creates a cache decorator around a parameter source.
func NewCachedSource(inner domain.ParameterSource, maxEntries int, metrics *observability.Metrics) *CachedSource {
	return &CachedSource{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedSource) Fetch(ctx context.Context, lat, lng float64, date string, params []domain.ParameterCode) (domain.ParameterValues, error) {
	key := cacheKey(lat, lng, date, params)
	if values, ok := c.cache.get(key); ok {
		c.metrics.CacheLookups.WithLabelValues("hit").Inc()
		return values, nil
	}
	c.metrics.CacheLookups.WithLabelValues("miss").Inc()

	values, err := c.inner.Fetch(ctx, lat, lng, date, params)
	if err != nil {
		return nil, err
	}
	c.cache.put(key, values)
	return values, nil
}

// cacheKey builds the exact-match key. Parameters are sorted so permutations
// of the same set share an entry.
func cacheKey(lat, lng float64, date string, params []domain.ParameterCode) string {
	codes := make([]string, len(params))
	for i, p := range params {
		codes[i] = string(p)
	}
	sort.Strings(codes)
	return fmt.Sprintf("%s|%s|%s|%s",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64),
		date,
		strings.Join(codes, ","),
	)
}

// lruCache is a simple thread-safe LRU cache for parameter value maps.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value domain.ParameterValues
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.ParameterValues, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.ParameterValues) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
