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

// Package healthcheck registers the liveness and readiness endpoints.
package healthcheck

import (
	"net/http"
	"time"

	"github.com/asgardeo/portfolio/internal/system/cache"
	"github.com/asgardeo/portfolio/internal/system/database/provider"
	"github.com/asgardeo/portfolio/internal/system/healthcheck/handler"
	"github.com/asgardeo/portfolio/internal/system/healthcheck/service"
)

// Initialize registers the health check routes.
func Initialize(mux *http.ServeMux, dbProvider provider.DBProviderInterface, cacheStore cache.Store,
	startTime time.Time) {
	healthCheckService := service.NewHealthCheckService(dbProvider, cacheStore, startTime)
	registerRoutes(mux, handler.NewHealthCheckHandler(healthCheckService))
}

// registerRoutes registers the routes for the health check operations.
func registerRoutes(mux *http.ServeMux, hch *handler.HealthCheckHandler) {
	mux.HandleFunc("GET /health", hch.HandleLivenessRequest)
	mux.HandleFunc("GET /api/health", hch.HandleLivenessRequest)
	mux.HandleFunc("GET /health/readiness", hch.HandleReadinessRequest)
}
