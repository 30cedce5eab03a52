package api

import (
	"net/url"
	"sort"
	"strings"

	"argus/metrics"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// responseCache memoizes encoded paged alert responses. The store is
// immutable after load, so entries never go stale; the LRU bound only
// limits memory.
type responseCache struct {
	cache *lru.Cache[string, []byte]
}

// newResponseCache returns a cache of the given size, or nil to disable
// caching entirely.
func newResponseCache(size int, logger *zap.SugaredLogger) *responseCache {
	if size <= 0 {
		return nil
	}
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		logger.Warnf("Failed to create response cache: %v - caching disabled", err)
		return nil
	}
	return &responseCache{cache: cache}
}

// Get returns a cached response body for the key, counting hits and misses.
func (c *responseCache) Get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	body, ok := c.cache.Get(key)
	if ok {
		metrics.ResponseCacheHits.Inc()
	} else {
		metrics.ResponseCacheMisses.Inc()
	}
	return body, ok
}

// Add stores a response body under the key.
func (c *responseCache) Add(key string, body []byte) {
	if c == nil {
		return
	}
	c.cache.Add(key, body)
}

// cacheKey normalizes query parameters into a stable cache key. Parameter
// order in the URL must not produce distinct entries.
func cacheKey(query url.Values) string {
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		values := query[k]
		sort.Strings(values)
		for _, v := range values {
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(v)
			b.WriteByte('&')
		}
	}
	return b.String()
}
