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

package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/asgardeo/portfolio/internal/system/cache/inmemory"
	"github.com/asgardeo/portfolio/internal/system/config"
	"github.com/asgardeo/portfolio/internal/system/constants"
	"github.com/asgardeo/portfolio/internal/system/log"
	"github.com/asgardeo/portfolio/internal/system/utils"
)

const (
	rateLimitLimitHeaderName     = "RateLimit-Limit"
	rateLimitRemainingHeaderName = "RateLimit-Remaining"
	retryAfterHeaderName         = "Retry-After"

	rateLimiterCacheName = "RateLimiters"
	rateLimiterCacheSize = 10000
)

// RateLimiter limits the number of API requests per client IP within a fixed window. A client's
// window starts with its first request and allows MaxRequests requests until the window ends.
type RateLimiter struct {
	windows *inmemory.Cache[*clientWindow]
	burst   int
	window  time.Duration
	message string
	now     inmemory.Clock
	logger  *log.Logger
}

// clientWindow holds the request budget of one client for the current window.
type clientWindow struct {
	limiter *rate.Limiter
	resetAt time.Time
}

// NewRateLimiter creates a rate limiter from the configuration. A nil clock uses time.Now.
func NewRateLimiter(cfg config.RateLimitConfig, now inmemory.Clock) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	window := cfg.WindowDuration()
	burst := cfg.MaxRequests
	if burst <= 0 {
		burst = 1
	}

	windows := inmemory.NewCache[*clientWindow](rateLimiterCacheName, rateLimiterCacheSize,
		inmemory.EvictionPolicyLRU, now)
	windows.StartCleanup(window)

	return &RateLimiter{
		windows: windows,
		burst:   burst,
		window:  window,
		message: cfg.Message,
		now:     now,
		logger:  log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RateLimiter")),
	}
}

// Middleware returns the rate limiting middleware. Only paths under /api/ are limited.
func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, constants.APIPathPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			clientIP := utils.GetClientIP(r)
			allowed, remaining, retryAfter := rl.take(clientIP)

			w.Header().Set(rateLimitLimitHeaderName, strconv.Itoa(rl.burst))
			w.Header().Set(rateLimitRemainingHeaderName, strconv.Itoa(remaining))

			if !allowed {
				rl.logger.Debug("Rate limit exceeded", log.String("clientIp", log.MaskString(clientIP)))
				w.Header().Set(retryAfterHeaderName, strconv.Itoa(retryAfter))
				utils.WriteJSONError(w, http.StatusTooManyRequests, rl.message)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take consumes one request from the client's window. It returns whether the request is allowed,
// the requests left and, when rejected, the number of seconds until the window resets.
func (rl *RateLimiter) take(clientIP string) (bool, int, int) {
	now := rl.now()

	// The entry expires when the window ends, so the next request opens a fresh window.
	// The bucket refills one token per window, which never yields a whole token before the reset.
	cw := rl.windows.GetOrSet(clientIP, func() *clientWindow {
		return &clientWindow{
			limiter: rate.NewLimiter(rate.Every(rl.window), rl.burst),
			resetAt: now.Add(rl.window),
		}
	}, rl.window)

	if !cw.limiter.AllowN(now, 1) {
		retryAfter := int(math.Ceil(cw.resetAt.Sub(now).Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}
		return false, 0, retryAfter
	}

	remaining := int(cw.limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return true, remaining, 0
}

// Stop stops the background cleanup of expired client windows.
func (rl *RateLimiter) Stop() {
	rl.windows.Stop()
}
