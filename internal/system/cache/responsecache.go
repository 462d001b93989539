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
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/asgardeo/portfolio/internal/system/constants"
	"github.com/asgardeo/portfolio/internal/system/error/serviceerror"
	"github.com/asgardeo/portfolio/internal/system/log"
	"github.com/asgardeo/portfolio/internal/system/utils"
)

const (
	// KeyPrefix is the namespace shared by every cached response.
	KeyPrefix = "cache:"

	// CacheStatusHit marks a response served from the cache store.
	CacheStatusHit = "HIT"
	// CacheStatusMiss marks a response produced by the wrapped handler.
	CacheStatusMiss = "MISS"

	defaultWriteTimeout = 2 * time.Second
)

// JSONHandlerFunc produces the JSON-serializable result of a read endpoint, or a service error.
type JSONHandlerFunc func(r *http.Request) (any, *serviceerror.ServiceError)

// ResponseCache serves read endpoints through a cache-aside lookup on a Store.
type ResponseCache struct {
	store        Store
	writeTimeout time.Duration
	pending      sync.WaitGroup
	logger       *log.Logger
}

// NewResponseCache creates a response cache on top of the given store. Asynchronous cache writes
// are bounded by writeTimeout.
func NewResponseCache(store Store, writeTimeout time.Duration) *ResponseCache {
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	return &ResponseCache{
		store:        store,
		writeTimeout: writeTimeout,
		logger:       log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ResponseCache")),
	}
}

// BuildKey returns the cache key of a request: the namespace prefix followed by the request URI.
// Query strings are used as received, so differently ordered parameters produce distinct keys.
func BuildKey(r *http.Request) string {
	return KeyPrefix + r.URL.RequestURI()
}

// Wrap returns a handler serving the result of handler through the cache for the given duration.
// A hit is written without invoking handler. On a miss the handler result is written immediately
// and stored in the background; a failed store write never affects the response. A non-positive
// duration disables caching for the route.
func (rc *ResponseCache) Wrap(duration time.Duration, handler JSONHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if duration <= 0 {
			rc.serve(w, r, handler, "", 0)
			return
		}

		key := BuildKey(r)
		if payload, found := rc.lookup(r.Context(), key); found {
			w.Header().Set(constants.CacheStatusHeaderName, CacheStatusHit)
			utils.WriteJSONBytes(w, http.StatusOK, payload)
			return
		}

		rc.serve(w, r, handler, key, duration)
	}
}

// serve invokes the handler and writes its result. A non-empty key schedules a cache write.
func (rc *ResponseCache) serve(w http.ResponseWriter, r *http.Request, handler JSONHandlerFunc,
	key string, duration time.Duration) {
	result, svcErr := handler(r)
	if svcErr != nil {
		utils.WriteServiceErrorResponse(w, svcErr)
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		rc.logger.Error("Failed to serialize response", log.String(log.LoggerKeyCacheKey, key), log.Error(err))
		utils.WriteJSONError(w, http.StatusInternalServerError, serviceerror.InternalServerError.Error)
		return
	}

	if key != "" {
		rc.storeAsync(r.Context(), key, payload, duration)
		w.Header().Set(constants.CacheStatusHeaderName, CacheStatusMiss)
	}
	utils.WriteJSONBytes(w, http.StatusOK, payload)
}

// lookup reads key from the store. Store failures are logged and treated as a miss.
func (rc *ResponseCache) lookup(ctx context.Context, key string) ([]byte, bool) {
	payload, found, err := rc.store.Get(ctx, key)
	if err != nil {
		rc.logger.Warn("Failed to read from the cache store", log.String(log.LoggerKeyCacheKey, key),
			log.Error(err))
		return nil, false
	}
	if !found {
		rc.logger.Debug("Cache miss", log.String(log.LoggerKeyCacheKey, key))
		return nil, false
	}
	rc.logger.Debug("Cache hit", log.String(log.LoggerKeyCacheKey, key))
	return payload, true
}

// storeAsync writes the payload in the background on a context detached from the request.
func (rc *ResponseCache) storeAsync(ctx context.Context, key string, payload []byte, duration time.Duration) {
	ctx = context.WithoutCancel(ctx)

	rc.pending.Add(1)
	go func() {
		defer rc.pending.Done()

		writeCtx, cancel := context.WithTimeout(ctx, rc.writeTimeout)
		defer cancel()

		if err := rc.store.Set(writeCtx, key, payload, duration); err != nil {
			rc.logger.Warn("Failed to write to the cache store", log.String(log.LoggerKeyCacheKey, key),
				log.Error(err))
		}
	}()
}

// Wait blocks until every in-flight cache write has finished.
func (rc *ResponseCache) Wait() {
	rc.pending.Wait()
}

// ClearAll removes every cached response in a single batch and returns how many were removed.
func (rc *ResponseCache) ClearAll(ctx context.Context) (int, error) {
	keys, err := rc.store.Keys(ctx, KeyPrefix)
	if err != nil {
		return 0, fmt.Errorf("failed to list cache keys: %w", err)
	}
	if len(keys) == 0 {
		return 0, nil
	}

	cleared, err := rc.store.Delete(ctx, keys...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete cache keys: %w", err)
	}

	rc.logger.Info("Cleared cached responses", log.Int("count", cleared))
	return cleared, nil
}
