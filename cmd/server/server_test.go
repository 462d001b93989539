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
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/portfolio/internal/system/cache"
	"github.com/asgardeo/portfolio/internal/system/config"
	"github.com/asgardeo/portfolio/internal/system/constants"
	"github.com/asgardeo/portfolio/internal/system/database/client"
	dbmodel "github.com/asgardeo/portfolio/internal/system/database/model"
	"github.com/asgardeo/portfolio/internal/system/database/provider"
	"github.com/asgardeo/portfolio/internal/system/log"
	"github.com/asgardeo/portfolio/internal/system/middleware"
	"github.com/asgardeo/portfolio/tests/mocks/cachemock"
	"github.com/asgardeo/portfolio/tests/mocks/databasemock"
)

type ServerTestSuite struct {
	suite.Suite
	cfg         *config.Config
	dbClient    *databasemock.MockDBClient
	store       cache.Store
	rc          *cache.ResponseCache
	rateLimiter *middleware.RateLimiter
	handler     http.Handler
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (suite *ServerTestSuite) SetupTest() {
	suite.cfg = config.DefaultConfig()
	suite.cfg.RateLimit.MaxRequests = 2

	suite.dbClient = &databasemock.MockDBClient{
		MockQuery: func(query dbmodel.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
			return []map[string]interface{}{{"id": int64(1), "full_name": "Alex Chen"}}, nil
		},
	}
	dbProvider := &databasemock.MockDBProvider{
		MockGetDBClient: func() (client.DBClientInterface, error) { return suite.dbClient, nil },
	}
	suite.store = cache.NewMemoryStore(suite.cfg.Cache, nil)
	suite.rc = cache.NewResponseCache(suite.store, time.Second)
	suite.rateLimiter = middleware.NewRateLimiter(suite.cfg.RateLimit, nil)

	mux := http.NewServeMux()
	registerServices(mux, serviceDependencies{
		dbProvider:    dbProvider,
		cacheStore:    suite.store,
		responseCache: suite.rc,
		startTime:     time.Now(),
	})
	suite.handler = buildHandler(log.GetLogger(), suite.cfg, mux, suite.rateLimiter)
}

func (suite *ServerTestSuite) TearDownTest() {
	suite.rc.Wait()
	suite.rateLimiter.Stop()
	_ = suite.store.Close()
}

func (suite *ServerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	suite.handler.ServeHTTP(rr, req)
	suite.rc.Wait()
	return rr
}

func (suite *ServerTestSuite) TestUnknownRoute() {
	rr := suite.serve(httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(suite.T(), http.StatusNotFound, rr.Code)
	assert.JSONEq(suite.T(), `{"error":"Endpoint not found"}`, rr.Body.String())
}

func (suite *ServerTestSuite) TestHealth() {
	for _, path := range []string{"/health", "/api/health"} {
		rr := suite.serve(httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(suite.T(), http.StatusOK, rr.Code)
		var body map[string]interface{}
		require.NoError(suite.T(), json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(suite.T(), "healthy", body["status"])
		_, err := time.Parse(time.RFC3339, body["timestamp"].(string))
		assert.NoError(suite.T(), err)
		assert.GreaterOrEqual(suite.T(), body["uptime"].(float64), 0.0)
	}
}

func (suite *ServerTestSuite) TestReadiness() {
	rr := suite.serve(httptest.NewRequest(http.MethodGet, "/health/readiness", nil))

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.Contains(suite.T(), rr.Body.String(), `"status":"UP"`)
}

func (suite *ServerTestSuite) TestCommonHeaders() {
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Origin", suite.cfg.CORS.AllowedOrigin)
	rr := suite.serve(req)

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.NotEmpty(suite.T(), rr.Header().Get(constants.RequestIDHeaderName))
	assert.Equal(suite.T(), "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(suite.T(), suite.cfg.CORS.AllowedOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(suite.T(), "2", rr.Header().Get("RateLimit-Limit"))
	assert.Equal(suite.T(), cache.CacheStatusMiss, rr.Header().Get(constants.CacheStatusHeaderName))
}

func (suite *ServerTestSuite) TestPreflightIsAnsweredBeforeRouting() {
	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", suite.cfg.CORS.AllowedOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := suite.serve(req)

	assert.Equal(suite.T(), http.StatusNoContent, rr.Code)
	assert.Empty(suite.T(), rr.Header().Get("RateLimit-Limit"))
}

func (suite *ServerTestSuite) TestRateLimitAppliesToAPIOnly() {
	for i := 0; i < 2; i++ {
		assert.Equal(suite.T(), http.StatusOK,
			suite.serve(httptest.NewRequest(http.MethodGet, "/api/health", nil)).Code)
	}

	rr := suite.serve(httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	assert.Equal(suite.T(), http.StatusTooManyRequests, rr.Code)
	assert.JSONEq(suite.T(), `{"error":"Too many requests from this IP, please try again later."}`, rr.Body.String())

	assert.Equal(suite.T(), http.StatusOK, suite.serve(httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
}

func (suite *ServerTestSuite) TestCacheClearRoute() {
	suite.serve(httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	rr := suite.serve(httptest.NewRequest(http.MethodDelete, "/api/cache/clear", nil))

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.JSONEq(suite.T(), `{"message":"Cleared 1 cache entries","cleared":1}`, rr.Body.String())
}

func (suite *ServerTestSuite) TestCreateHTTPServer() {
	server := createHTTPServer(suite.cfg, suite.handler)

	assert.Equal(suite.T(), "0.0.0.0:3001", server.Addr)
	assert.Equal(suite.T(), 15*time.Second, server.ReadTimeout)
	assert.Equal(suite.T(), 30*time.Second, server.WriteTimeout)
	assert.Equal(suite.T(), 60*time.Second, server.IdleTimeout)
}

func TestCloseResources(t *testing.T) {
	store := cachemock.NewStoreMock(t)
	store.On("Close").Return(errors.New("redis: client is closed")).Once()
	dbProvider := &databasemock.MockDBProvider{MockClose: func() error { return errors.New("pool busy") }}

	err := closeResources(cache.NewResponseCache(store, 0), store, dbProvider)

	assert.ErrorContains(t, err, "failed to close cache store")
	assert.ErrorContains(t, err, "failed to close database provider")
	assert.Equal(t, 1, dbProvider.CloseCalls)
}

func TestSeedIsIdempotent(t *testing.T) {
	t.Setenv("DB_TYPE", dbmodel.DataSourceTypeSQLite)
	home := t.TempDir()
	ctx := context.Background()

	require.NoError(t, runSeed(ctx, home))
	require.NoError(t, runSeed(ctx, home))

	cfg, err := config.LoadConfig(configFilePath(home))
	require.NoError(t, err)
	dbProvider := provider.NewDBProvider(cfg.Database.Portfolio, home)
	defer func() { _ = dbProvider.Close() }()

	dbClient, err := dbProvider.GetDBClient()
	require.NoError(t, err)
	rows, err := dbClient.Query(ctx, dbmodel.DBQuery{ID: "TEST-COUNT", Query: "SELECT COUNT(*) AS total FROM profiles"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows[0]["total"])
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCommand()

	names := []string{}
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "seed"}, names)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("home"))
}
