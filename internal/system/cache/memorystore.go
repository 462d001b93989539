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

package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/asgardeo/portfolio/internal/system/cache/inmemory"
	"github.com/asgardeo/portfolio/internal/system/config"
)

const memoryStoreName = "ResponseCache"

// memoryStore is a Store held in process memory.
type memoryStore struct {
	cache  *inmemory.Cache[[]byte]
	closed atomic.Bool
}

// NewMemoryStore creates an in-memory store bounded by the configured size and eviction policy.
// Expired entries are removed every cleanup interval. A nil clock uses time.Now.
func NewMemoryStore(cfg config.CacheConfig, now inmemory.Clock) Store {
	c := inmemory.NewCache[[]byte](memoryStoreName, cfg.Size,
		inmemory.ParseEvictionPolicy(cfg.EvictionPolicy), now)
	c.StartCleanup(time.Duration(cfg.CleanupInterval) * time.Second)

	return &memoryStore{cache: c}
}

// Get returns the value stored for key.
func (s *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if s.closed.Load() {
		return nil, false, ErrStoreClosed
	}
	value, found := s.cache.Get(key)
	return value, found, nil
}

// Set stores a copy of value under key.
func (s *memoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}
	s.cache.Set(key, append([]byte(nil), value...), ttl)
	return nil
}

// Delete removes the given keys.
func (s *memoryStore) Delete(_ context.Context, keys ...string) (int, error) {
	if s.closed.Load() {
		return 0, ErrStoreClosed
	}
	return s.cache.Delete(keys...), nil
}

// Keys lists the live keys starting with prefix.
func (s *memoryStore) Keys(_ context.Context, prefix string) ([]string, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}
	return s.cache.Keys(prefix), nil
}

// Ping reports whether the store is still open.
func (s *memoryStore) Ping(_ context.Context) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}
	return nil
}

// Close stops the cleanup routine and drops every entry.
func (s *memoryStore) Close() error {
	if s.closed.CompareAndSwap(false, true) {
		s.cache.Stop()
		s.cache.Clear()
	}
	return nil
}
