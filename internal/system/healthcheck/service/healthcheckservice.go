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

// Package service provides health check-related business logic and operations.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/asgardeo/portfolio/internal/system/cache"
	dbmodel "github.com/asgardeo/portfolio/internal/system/database/model"
	"github.com/asgardeo/portfolio/internal/system/database/provider"
	"github.com/asgardeo/portfolio/internal/system/healthcheck/model"
	"github.com/asgardeo/portfolio/internal/system/log"
)

const (
	portfolioDBServiceName = "PortfolioDB"
	cacheStoreServiceName  = "CacheStore"
	probeTimeout           = 2 * time.Second
)

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckLiveness() model.LivenessResponse
	CheckReadiness(ctx context.Context) model.ServerStatus
}

// HealthCheckService is the default implementation of the HealthCheckServiceInterface.
type HealthCheckService struct {
	DBProvider provider.DBProviderInterface
	CacheStore cache.Store
	startTime  time.Time
	now        func() time.Time
}

// NewHealthCheckService creates a health check service. Uptime is measured from startTime.
func NewHealthCheckService(dbProvider provider.DBProviderInterface, cacheStore cache.Store,
	startTime time.Time) *HealthCheckService {
	return &HealthCheckService{
		DBProvider: dbProvider,
		CacheStore: cacheStore,
		startTime:  startTime,
		now:        time.Now,
	}
}

// CheckLiveness reports that the process is serving requests.
func (hcs *HealthCheckService) CheckLiveness() model.LivenessResponse {
	now := hcs.now()
	return model.LivenessResponse{
		Status:    model.StatusHealthy,
		Timestamp: now.UTC().Format(time.RFC3339),
		Uptime:    now.Sub(hcs.startTime).Seconds(),
	}
}

// CheckReadiness checks the readiness of the server and its dependencies. The dependencies are
// probed concurrently.
func (hcs *HealthCheckService) CheckReadiness(ctx context.Context) model.ServerStatus {
	var dbStatus, cacheStatus model.Status

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		dbStatus = hcs.checkDatabaseStatus(ctx, queryCheckPortfolioDB)
	}()
	go func() {
		defer wg.Done()
		cacheStatus = hcs.checkCacheStatus(ctx)
	}()
	wg.Wait()

	status := model.StatusUp
	if dbStatus == model.StatusDown || cacheStatus == model.StatusDown {
		status = model.StatusDown
	}
	return model.ServerStatus{
		Status: status,
		ServiceStatus: []model.ServiceStatus{
			{ServiceName: portfolioDBServiceName, Status: dbStatus},
			{ServiceName: cacheStoreServiceName, Status: cacheStatus},
		},
	}
}

// checkDatabaseStatus checks the status of the portfolio database with the specified query.
func (hcs *HealthCheckService) checkDatabaseStatus(ctx context.Context, query dbmodel.DBQuery) model.Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	dbClient, err := hcs.DBProvider.GetDBClient()
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.StatusDown
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if _, err = dbClient.Query(probeCtx, query); err != nil {
		logger.Error("Failed to execute query", log.String(log.LoggerKeyQueryID, query.ID), log.Error(err))
		return model.StatusDown
	}
	return model.StatusUp
}

// checkCacheStatus pings the cache store.
func (hcs *HealthCheckService) checkCacheStatus(ctx context.Context) model.Status {
	if hcs.CacheStore == nil {
		return model.StatusDown
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if err := hcs.CacheStore.Ping(probeCtx); err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService")).
			Error("Failed to ping the cache store", log.Error(err))
		return model.StatusDown
	}
	return model.StatusUp
}
