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

package main

import (
	"net/http"
	"time"

	"github.com/asgardeo/portfolio/internal/analytics"
	"github.com/asgardeo/portfolio/internal/contact"
	"github.com/asgardeo/portfolio/internal/portfolio"
	"github.com/asgardeo/portfolio/internal/system/cache"
	"github.com/asgardeo/portfolio/internal/system/database/provider"
	"github.com/asgardeo/portfolio/internal/system/healthcheck"
	"github.com/asgardeo/portfolio/internal/system/middleware"
)

// serviceDependencies holds the process wide values shared by the services.
type serviceDependencies struct {
	dbProvider    provider.DBProviderInterface
	cacheStore    cache.Store
	responseCache *cache.ResponseCache
	startTime     time.Time
}

// registerServices registers all the services with the provided HTTP multiplexer.
func registerServices(mux *http.ServeMux, deps serviceDependencies) {
	healthcheck.Initialize(mux, deps.dbProvider, deps.cacheStore, deps.startTime)

	portfolio.Initialize(mux, deps.dbProvider, deps.responseCache)
	contact.Initialize(mux, deps.dbProvider)
	analytics.Initialize(mux, deps.dbProvider, deps.responseCache)

	cache.Initialize(mux, deps.responseCache)

	mux.HandleFunc("/", middleware.NotFoundHandler)
}
