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

package inmemory

import "time"

// EvictionPolicy defines the eviction policy applied when the cache is full.
type EvictionPolicy string

const (
	// EvictionPolicyLRU represents the Least Recently Used eviction policy.
	EvictionPolicyLRU EvictionPolicy = "LRU"
	// EvictionPolicyLFU represents the Least Frequently Used eviction policy.
	EvictionPolicyLFU EvictionPolicy = "LFU"
)

// DefaultCacheSize represents the default maximum number of entries.
const DefaultCacheSize = 1000

// Clock returns the current time. Tests inject their own clock to simulate expiry.
type Clock func() time.Time

// CacheEntry represents a cache entry.
type CacheEntry[T any] struct {
	Value T
	// ExpiryTime is the zero time for entries that never expire.
	ExpiryTime time.Time
}

// isExpired reports whether the entry has expired at the given time.
func (e *CacheEntry[T]) isExpired(now time.Time) bool {
	return !e.ExpiryTime.IsZero() && !now.Before(e.ExpiryTime)
}

// CacheStat represents cache statistics.
type CacheStat struct {
	Size       int
	MaxSize    int
	HitCount   int64
	MissCount  int64
	HitRate    float64
	EvictCount int64
}

// ParseEvictionPolicy converts a configured policy name into an EvictionPolicy, defaulting to LRU.
func ParseEvictionPolicy(policy string) EvictionPolicy {
	switch EvictionPolicy(policy) {
	case EvictionPolicyLFU:
		return EvictionPolicyLFU
	default:
		return EvictionPolicyLRU
	}
}
