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

// Package cache provides the response cache used by the read endpoints and the cache stores backing it.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/asgardeo/portfolio/internal/system/config"
	"github.com/asgardeo/portfolio/internal/system/log"
)

const (
	// StoreTypeInMemory represents the in-process cache store.
	StoreTypeInMemory = "inmemory"
	// StoreTypeRedis represents the Redis cache store.
	StoreTypeRedis = "redis"
)

// ErrStoreClosed is returned by store operations after Close.
var ErrStoreClosed = errors.New("cache store is closed")

// Store is a key-value store holding serialized responses with a per-entry time to live.
type Store interface {
	// Get returns the value for key. A missing or expired key is reported with found=false and no error.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set stores value under key, replacing any previous value and resetting its expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the given keys and returns how many existed.
	Delete(ctx context.Context, keys ...string) (int, error)
	// Keys lists every live key starting with prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
	// Close releases the resources held by the store.
	Close() error
}

// NewStore creates the cache store selected by the configuration. Unknown store types fall back to
// the in-memory store.
func NewStore(cfg config.CacheConfig) (Store, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CacheStore"))

	switch strings.ToLower(cfg.Type) {
	case StoreTypeRedis:
		store, err := NewRedisStore(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis cache store: %w", err)
		}
		logger.Info("Using redis cache store")
		return store, nil
	case StoreTypeInMemory, "":
		logger.Info("Using in-memory cache store")
	default:
		logger.Warn("Unknown cache type, defaulting to in-memory cache", log.String("type", cfg.Type))
	}

	return NewMemoryStore(cfg, nil), nil
}
