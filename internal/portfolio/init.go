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

package portfolio

import (
	"net/http"
	"time"

	"github.com/asgardeo/portfolio/internal/system/cache"
	"github.com/asgardeo/portfolio/internal/system/database/provider"
)

const (
	profileCacheDuration      = time.Hour
	experiencesCacheDuration  = time.Hour
	skillsCacheDuration       = time.Hour
	projectsCacheDuration     = 30 * time.Minute
	certificatesCacheDuration = time.Hour
)

// Initialize initializes the portfolio service and registers its routes behind the response cache.
func Initialize(mux *http.ServeMux, dbProvider provider.DBProviderInterface,
	responseCache *cache.ResponseCache) {
	portfolioService := newPortfolioService(newPortfolioStore(dbProvider))
	portfolioHandler := newPortfolioHandler(portfolioService)
	registerRoutes(mux, portfolioHandler, responseCache)
}

// registerRoutes registers the routes for the portfolio read operations.
func registerRoutes(mux *http.ServeMux, h *portfolioHandler, rc *cache.ResponseCache) {
	mux.Handle("GET /api/profile", rc.Wrap(profileCacheDuration, h.HandleProfileRequest))
	mux.Handle("GET /api/experiences", rc.Wrap(experiencesCacheDuration, h.HandleExperiencesRequest))
	mux.Handle("GET /api/skills", rc.Wrap(skillsCacheDuration, h.HandleSkillsRequest))
	mux.Handle("GET /api/projects", rc.Wrap(projectsCacheDuration, h.HandleProjectsRequest))
	mux.Handle("GET /api/certificates", rc.Wrap(certificatesCacheDuration, h.HandleCertificatesRequest))
}
