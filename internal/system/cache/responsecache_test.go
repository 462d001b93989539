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
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/portfolio/internal/system/config"
	"github.com/asgardeo/portfolio/internal/system/constants"
	"github.com/asgardeo/portfolio/internal/system/error/serviceerror"
	"github.com/asgardeo/portfolio/tests/mocks/cachemock"
)

type ResponseCacheTestSuite struct {
	suite.Suite
	clock *fakeClock
	store Store
	rc    *ResponseCache
	calls atomic.Int32
}

func TestResponseCacheSuite(t *testing.T) {
	suite.Run(t, new(ResponseCacheTestSuite))
}

func (suite *ResponseCacheTestSuite) SetupTest() {
	suite.clock = newFakeClock()
	suite.store = NewMemoryStore(config.CacheConfig{Size: 100}, suite.clock.Now)
	suite.rc = NewResponseCache(suite.store, time.Second)
	suite.calls.Store(0)
}

func (suite *ResponseCacheTestSuite) TearDownTest() {
	_ = suite.store.Close()
}

func (suite *ResponseCacheTestSuite) countingHandler(body any) JSONHandlerFunc {
	return func(_ *http.Request) (any, *serviceerror.ServiceError) {
		suite.calls.Add(1)
		return body, nil
	}
}

func (suite *ResponseCacheTestSuite) do(h http.Handler, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	suite.rc.Wait()
	return rr
}

func (suite *ResponseCacheTestSuite) TestBuildKey() {
	req := httptest.NewRequest(http.MethodGet, "/api/projects?b=2&a=1", nil)
	assert.Equal(suite.T(), "cache:/api/projects?b=2&a=1", BuildKey(req))

	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	assert.Equal(suite.T(), "cache:/api/profile", BuildKey(req))
}

func (suite *ResponseCacheTestSuite) TestMissThenHit() {
	h := suite.rc.Wrap(time.Hour, suite.countingHandler(map[string]any{"id": 1, "name": "Alex"}))

	first := suite.do(h, "/api/profile")
	assert.Equal(suite.T(), http.StatusOK, first.Code)
	assert.Equal(suite.T(), CacheStatusMiss, first.Header().Get(constants.CacheStatusHeaderName))
	assert.Equal(suite.T(), constants.ContentTypeJSON, first.Header().Get(constants.ContentTypeHeaderName))
	assert.JSONEq(suite.T(), `{"id":1,"name":"Alex"}`, first.Body.String())

	second := suite.do(h, "/api/profile")
	assert.Equal(suite.T(), http.StatusOK, second.Code)
	assert.Equal(suite.T(), CacheStatusHit, second.Header().Get(constants.CacheStatusHeaderName))
	assert.Equal(suite.T(), first.Body.String(), second.Body.String())
	assert.Equal(suite.T(), int32(1), suite.calls.Load())
}

func (suite *ResponseCacheTestSuite) TestQueryStringsAreDistinctKeys() {
	h := suite.rc.Wrap(time.Hour, suite.countingHandler([]string{"a"}))

	suite.do(h, "/api/projects?a=1&b=2")
	suite.do(h, "/api/projects?b=2&a=1")
	suite.do(h, "/api/projects?a=1&b=2")

	assert.Equal(suite.T(), int32(2), suite.calls.Load())
}

func (suite *ResponseCacheTestSuite) TestEntryExpires() {
	h := suite.rc.Wrap(30*time.Minute, suite.countingHandler([]int{1, 2}))

	suite.do(h, "/api/projects")
	suite.clock.Advance(29 * time.Minute)
	rr := suite.do(h, "/api/projects")
	assert.Equal(suite.T(), CacheStatusHit, rr.Header().Get(constants.CacheStatusHeaderName))

	suite.clock.Advance(time.Minute)
	rr = suite.do(h, "/api/projects")
	assert.Equal(suite.T(), CacheStatusMiss, rr.Header().Get(constants.CacheStatusHeaderName))
	assert.Equal(suite.T(), int32(2), suite.calls.Load())
}

func (suite *ResponseCacheTestSuite) TestHandlerErrorIsNotCached() {
	svcErr := &serviceerror.ServiceError{
		Code:       "PRT-1001",
		Type:       serviceerror.ClientErrorType,
		Error:      "Profile not found",
		StatusCode: http.StatusNotFound,
	}
	h := suite.rc.Wrap(time.Hour, func(_ *http.Request) (any, *serviceerror.ServiceError) {
		suite.calls.Add(1)
		return nil, svcErr
	})

	for i := 0; i < 2; i++ {
		rr := suite.do(h, "/api/profile")
		assert.Equal(suite.T(), http.StatusNotFound, rr.Code)
		assert.Empty(suite.T(), rr.Header().Get(constants.CacheStatusHeaderName))
		assert.JSONEq(suite.T(), `{"error":"Profile not found","code":"PRT-1001"}`, rr.Body.String())
	}
	assert.Equal(suite.T(), int32(2), suite.calls.Load())

	keys, err := suite.store.Keys(context.Background(), KeyPrefix)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), keys)
}

func (suite *ResponseCacheTestSuite) TestSerializationFailure() {
	h := suite.rc.Wrap(time.Hour, suite.countingHandler(map[string]any{"bad": make(chan int)}))

	rr := suite.do(h, "/api/skills")
	assert.Equal(suite.T(), http.StatusInternalServerError, rr.Code)
	assert.JSONEq(suite.T(), `{"error":"Internal server error"}`, rr.Body.String())

	keys, _ := suite.store.Keys(context.Background(), KeyPrefix)
	assert.Empty(suite.T(), keys)
}

func (suite *ResponseCacheTestSuite) TestNonPositiveDurationBypassesStore() {
	store := cachemock.NewStoreMock(suite.T())
	rc := NewResponseCache(store, 0)
	h := rc.Wrap(0, suite.countingHandler(map[string]bool{"ok": true}))

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
		assert.Equal(suite.T(), http.StatusOK, rr.Code)
		assert.Empty(suite.T(), rr.Header().Get(constants.CacheStatusHeaderName))
	}
	rc.Wait()
	assert.Equal(suite.T(), int32(2), suite.calls.Load())
}

func (suite *ResponseCacheTestSuite) TestStoreReadFailureFallsThrough() {
	store := cachemock.NewStoreMock(suite.T())
	store.On("Get", mock.Anything, "cache:/api/experiences").Return(nil, false, errors.New("connection refused"))
	store.On("Set", mock.Anything, "cache:/api/experiences", []byte(`[]`), time.Hour).Return(nil)

	rc := NewResponseCache(store, time.Second)
	h := rc.Wrap(time.Hour, suite.countingHandler([]string{}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/experiences", nil))
	rc.Wait()

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.Equal(suite.T(), CacheStatusMiss, rr.Header().Get(constants.CacheStatusHeaderName))
	assert.Equal(suite.T(), `[]`, rr.Body.String())
}

func (suite *ResponseCacheTestSuite) TestStoreWriteFailureDoesNotAffectResponse() {
	store := cachemock.NewStoreMock(suite.T())
	store.On("Get", mock.Anything, "cache:/api/certificates").Return(nil, false, nil)
	store.On("Set", mock.Anything, "cache:/api/certificates", mock.Anything, time.Hour).
		Return(errors.New("write timeout"))

	rc := NewResponseCache(store, time.Second)
	h := rc.Wrap(time.Hour, suite.countingHandler([]map[string]string{{"name": "CKA"}}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/certificates", nil))
	rc.Wait()

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.JSONEq(suite.T(), `[{"name":"CKA"}]`, rr.Body.String())
}

func (suite *ResponseCacheTestSuite) TestWriteUsesDetachedContext() {
	store := cachemock.NewStoreMock(suite.T())
	store.On("Get", mock.Anything, "cache:/api/skills").Return(nil, false, nil)
	store.On("Set", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), "cache:/api/skills", mock.Anything, time.Hour).Return(nil)

	rc := NewResponseCache(store, time.Second)
	h := rc.Wrap(time.Hour, suite.countingHandler(map[string][]string{"Tools": {"Git"}}))

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/skills", nil).WithContext(ctx)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	cancel()
	rc.Wait()

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
}

func (suite *ResponseCacheTestSuite) TestClearAll() {
	profile := suite.rc.Wrap(time.Hour, suite.countingHandler(map[string]int{"id": 1}))
	projects := suite.rc.Wrap(30*time.Minute, suite.countingHandler([]int{}))

	suite.do(profile, "/api/profile")
	suite.do(projects, "/api/projects")
	suite.do(projects, "/api/projects?page=2")
	_ = suite.store.Set(context.Background(), "ratelimit:10.0.0.1", []byte("1"), time.Hour)

	cleared, err := suite.rc.ClearAll(context.Background())
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, cleared)

	cleared, err = suite.rc.ClearAll(context.Background())
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, cleared)

	keys, _ := suite.store.Keys(context.Background(), "")
	sort.Strings(keys)
	assert.Equal(suite.T(), []string{"ratelimit:10.0.0.1"}, keys)

	rr := suite.do(profile, "/api/profile")
	assert.Equal(suite.T(), CacheStatusMiss, rr.Header().Get(constants.CacheStatusHeaderName))
	assert.Equal(suite.T(), int32(4), suite.calls.Load())
}

func (suite *ResponseCacheTestSuite) TestClearAllStoreFailures() {
	keysErr := cachemock.NewStoreMock(suite.T())
	keysErr.On("Keys", mock.Anything, KeyPrefix).Return(nil, errors.New("scan failed"))

	cleared, err := NewResponseCache(keysErr, 0).ClearAll(context.Background())
	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), 0, cleared)

	deleteErr := cachemock.NewStoreMock(suite.T())
	deleteErr.On("Keys", mock.Anything, KeyPrefix).Return([]string{"cache:/api/profile"}, nil)
	deleteErr.On("Delete", mock.Anything, []string{"cache:/api/profile"}).Return(0, errors.New("del failed"))

	cleared, err = NewResponseCache(deleteErr, 0).ClearAll(context.Background())
	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), 0, cleared)
}

func (suite *ResponseCacheTestSuite) TestClearAllSingleBatch() {
	store := cachemock.NewStoreMock(suite.T())
	keys := []string{"cache:/api/profile", "cache:/api/skills"}
	store.On("Keys", mock.Anything, KeyPrefix).Return(keys, nil).Once()
	store.On("Delete", mock.Anything, keys).Return(2, nil).Once()

	cleared, err := NewResponseCache(store, 0).ClearAll(context.Background())
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, cleared)
}
