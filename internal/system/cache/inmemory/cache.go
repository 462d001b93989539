/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package inmemory provides a bounded, expiring in-memory cache with LRU or LFU eviction.
package inmemory

import (
	"container/heap"
	"container/list"
	"strings"
	"sync"
	"time"

	"github.com/asgardeo/portfolio/internal/system/log"
)

const loggerComponentName = "InMemoryCache"

// lfuHeapItem represents an item in the LFU heap.
type lfuHeapItem struct {
	key         string
	accessCount int64
	lastAccess  time.Time
	index       int // Index in the heap
}

// lfuHeap implements heap.Interface for LFU eviction.
type lfuHeap []*lfuHeapItem

func (h lfuHeap) Len() int { return len(h) }

func (h lfuHeap) Less(i, j int) bool {
	// Primary: fewer accesses come first
	if h[i].accessCount != h[j].accessCount {
		return h[i].accessCount < h[j].accessCount
	}
	// Tie-breaker: earlier access time comes first
	return h[i].lastAccess.Before(h[j].lastAccess)
}

func (h lfuHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *lfuHeap) Push(x any) {
	n := len(*h)
	item := x.(*lfuHeapItem)
	item.index = n
	*h = append(*h, item)
}

func (h *lfuHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[0 : n-1]
	return item
}

// cacheItem wraps an entry with its bookkeeping for eviction.
type cacheItem[T any] struct {
	*CacheEntry[T]
	listElement *list.Element
	heapItem    *lfuHeapItem
	lastAccess  time.Time
	accessCount int64
}

// Cache is a concurrency safe in-memory cache with per-entry expiry and a size bound.
type Cache[T any] struct {
	name           string
	items          map[string]*cacheItem[T]
	accessOrder    *list.List
	lfuHeap        *lfuHeap
	mu             sync.Mutex
	size           int
	evictionPolicy EvictionPolicy
	now            Clock
	hitCount       int64
	missCount      int64
	evictCount     int64
	stopCleanup    chan struct{}
	stopOnce       sync.Once
	logger         *log.Logger
}

// NewCache creates a new in-memory cache. A non-positive size falls back to DefaultCacheSize and a
// nil clock uses time.Now.
func NewCache[T any](name string, size int, evictionPolicy EvictionPolicy, now Clock) *Cache[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String("name", name))

	if size <= 0 {
		size = DefaultCacheSize
	}
	if now == nil {
		now = time.Now
	}
	if evictionPolicy != EvictionPolicyLFU {
		evictionPolicy = EvictionPolicyLRU
	}

	logger.Debug("Initializing in-memory cache", log.String("evictionPolicy", string(evictionPolicy)),
		log.Int("size", size))

	lfuHeapInstance := &lfuHeap{}
	heap.Init(lfuHeapInstance)

	return &Cache[T]{
		name:           name,
		items:          make(map[string]*cacheItem[T]),
		accessOrder:    list.New(),
		lfuHeap:        lfuHeapInstance,
		size:           size,
		evictionPolicy: evictionPolicy,
		now:            now,
		stopCleanup:    make(chan struct{}),
		logger:         logger,
	}
}

// GetName returns the name of the cache.
func (c *Cache[T]) GetName() string {
	return c.name
}

// Set adds or replaces an entry. A fresh write resets the expiry to now + ttl; a non-positive ttl
// stores an entry that never expires.
func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setLocked(key, value, ttl)
}

// GetOrSet returns the live value for key, or stores and returns the value built by create.
// The expiry of an existing entry is not extended.
func (c *Cache[T]) GetOrSet(key string, create func() T, ttl time.Duration) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if value, ok := c.getLocked(key); ok {
		return value
	}
	value := create()
	c.setLocked(key, value, ttl)
	return value
}

// Get retrieves a live value from the cache. Expired entries are removed and reported as misses.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.getLocked(key)
}

// Delete removes the given keys and returns the number of entries removed.
func (c *Cache[T]) Delete(keys ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for _, key := range keys {
		if item, exists := c.items[key]; exists {
			c.deleteItem(key, item)
			removed++
		}
	}
	return removed
}

// Keys returns the keys of all live entries starting with prefix.
func (c *Cache[T]) Keys(prefix string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	keys := make([]string, 0, len(c.items))
	for key, item := range c.items {
		if item.isExpired(now) {
			continue
		}
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Len returns the number of entries held, including expired entries not yet cleaned up.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Clear removes all entries from the cache and resets the statistics.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*cacheItem[T])
	c.accessOrder.Init()
	c.lfuHeap = &lfuHeap{}
	heap.Init(c.lfuHeap)
	c.hitCount = 0
	c.missCount = 0
	c.evictCount = 0

	c.logger.Debug("Cleared all entries in the cache")
}

// GetStats returns cache statistics.
func (c *Cache[T]) GetStats() CacheStat {
	c.mu.Lock()
	defer c.mu.Unlock()

	totalOps := c.hitCount + c.missCount
	var hitRate float64
	if totalOps > 0 {
		hitRate = float64(c.hitCount) / float64(totalOps)
	}

	return CacheStat{
		Size:       len(c.items),
		MaxSize:    c.size,
		HitCount:   c.hitCount,
		MissCount:  c.missCount,
		HitRate:    hitRate,
		EvictCount: c.evictCount,
	}
}

// CleanupExpired removes all expired entries from the cache and returns how many were removed.
func (c *Cache[T]) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	cleaned := 0
	for key, item := range c.items {
		if item.isExpired(now) {
			c.deleteItem(key, item)
			cleaned++
		}
	}

	if cleaned > 0 && c.logger.IsDebugEnabled() {
		c.logger.Debug("Expired cache entries cleaned", log.Int("count", cleaned))
	}
	return cleaned
}

// StartCleanup starts a background routine removing expired entries every interval until Stop.
func (c *Cache[T]) StartCleanup(interval time.Duration) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.CleanupExpired()
			case <-c.stopCleanup:
				return
			}
		}
	}()

	c.logger.Debug("Cache cleanup routine started", log.Duration("interval", interval))
}

// Stop terminates the cleanup routine. It is safe to call more than once.
func (c *Cache[T]) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCleanup)
	})
}

func (c *Cache[T]) getLocked(key string) (T, bool) {
	var zero T

	item, exists := c.items[key]
	if !exists {
		c.missCount++
		return zero, false
	}

	now := c.now()
	if item.isExpired(now) {
		c.deleteItem(key, item)
		c.missCount++
		return zero, false
	}

	// Update access order for LRU/LFU
	item.lastAccess = now
	item.accessCount++
	c.accessOrder.MoveToFront(item.listElement)
	c.hitCount++

	if c.evictionPolicy == EvictionPolicyLFU && item.heapItem != nil {
		item.heapItem.accessCount = item.accessCount
		item.heapItem.lastAccess = item.lastAccess
		heap.Fix(c.lfuHeap, item.heapItem.index)
	}

	return item.Value, true
}

func (c *Cache[T]) setLocked(key string, value T, ttl time.Duration) {
	now := c.now()
	var expiryTime time.Time
	if ttl > 0 {
		expiryTime = now.Add(ttl)
	}

	// Update existing entry if an entry exists
	if existing, exists := c.items[key]; exists {
		existing.Value = value
		existing.ExpiryTime = expiryTime
		existing.lastAccess = now
		existing.accessCount++
		c.accessOrder.MoveToFront(existing.listElement)

		if c.evictionPolicy == EvictionPolicyLFU && existing.heapItem != nil {
			existing.heapItem.accessCount = existing.accessCount
			existing.heapItem.lastAccess = existing.lastAccess
			heap.Fix(c.lfuHeap, existing.heapItem.index)
		}
		return
	}

	listElement := c.accessOrder.PushFront(key)

	var heapItem *lfuHeapItem
	if c.evictionPolicy == EvictionPolicyLFU {
		heapItem = &lfuHeapItem{
			key:         key,
			accessCount: 1,
			lastAccess:  now,
		}
		heap.Push(c.lfuHeap, heapItem)
	}

	c.items[key] = &cacheItem[T]{
		CacheEntry: &CacheEntry[T]{
			Value:      value,
			ExpiryTime: expiryTime,
		},
		listElement: listElement,
		heapItem:    heapItem,
		lastAccess:  now,
		accessCount: 1,
	}

	if len(c.items) > c.size {
		c.evict()
	}
}

// evict removes an entry based on the eviction policy.
func (c *Cache[T]) evict() {
	var key string
	if c.evictionPolicy == EvictionPolicyLFU {
		if c.lfuHeap.Len() == 0 {
			return
		}
		key = (*c.lfuHeap)[0].key
	} else {
		oldest := c.accessOrder.Back()
		if oldest == nil {
			return
		}
		key = oldest.Value.(string)
	}

	if item, exists := c.items[key]; exists {
		c.deleteItem(key, item)
		c.evictCount++
		c.logger.Debug("Cache entry evicted", log.String(log.LoggerKeyCacheKey, key))
	}
}

// deleteItem removes an entry from the map, the access order list and the LFU heap.
func (c *Cache[T]) deleteItem(key string, item *cacheItem[T]) {
	delete(c.items, key)
	c.accessOrder.Remove(item.listElement)

	if c.evictionPolicy == EvictionPolicyLFU && item.heapItem != nil && item.heapItem.index >= 0 {
		heap.Remove(c.lfuHeap, item.heapItem.index)
	}
}
