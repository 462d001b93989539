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
	"fmt"
	"net/http"

	"github.com/asgardeo/portfolio/internal/system/log"
	"github.com/asgardeo/portfolio/internal/system/utils"
)

// CacheClearResponse is the response body of the cache clear operation.
type CacheClearResponse struct {
	Message string `json:"message"`
	Cleared int    `json:"cleared"`
}

// cacheHandler handles the cache management requests.
type cacheHandler struct {
	responseCache *ResponseCache
}

// newCacheHandler creates a new instance of cacheHandler.
func newCacheHandler(responseCache *ResponseCache) *cacheHandler {
	return &cacheHandler{responseCache: responseCache}
}

// HandleCacheClearRequest removes every cached response.
func (h *cacheHandler) HandleCacheClearRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CacheHandler"))

	cleared, err := h.responseCache.ClearAll(context.WithoutCancel(r.Context()))
	if err != nil {
		logger.Error("Failed to clear the response cache", log.Error(err))
		utils.WriteServiceErrorResponse(w, &ErrorCacheClearFailed)
		return
	}

	utils.WriteJSON(w, http.StatusOK, CacheClearResponse{
		Message: fmt.Sprintf("Cleared %d cache entries", cleared),
		Cleared: cleared,
	})
}
