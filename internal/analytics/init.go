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

package analytics

import (
	"net/http"
	"time"

	"github.com/asgardeo/portfolio/internal/system/cache"
	"github.com/asgardeo/portfolio/internal/system/database/provider"
)

const summaryCacheDuration = 5 * time.Minute

// Initialize initializes the analytics service and registers its routes.
func Initialize(mux *http.ServeMux, dbProvider provider.DBProviderInterface,
	responseCache *cache.ResponseCache) {
	analyticsService := newAnalyticsService(newAnalyticsStore(dbProvider))
	registerRoutes(mux, newAnalyticsHandler(analyticsService), responseCache)
}

// registerRoutes registers the routes for analytics operations.
func registerRoutes(mux *http.ServeMux, h *analyticsHandler, rc *cache.ResponseCache) {
	mux.HandleFunc("POST /api/analytics/pageview", h.HandlePageViewRequest)
	mux.Handle("GET /api/analytics/summary", rc.Wrap(summaryCacheDuration, h.HandleSummaryRequest))
}
