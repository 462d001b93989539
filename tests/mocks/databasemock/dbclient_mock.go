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

// Package databasemock provides mock implementations of the database interfaces for testing.
package databasemock

import (
	"context"
	"sync"

	"github.com/asgardeo/portfolio/internal/system/database/model"
)

// QueryCall records the arguments of a single Query or Execute call.
type QueryCall struct {
	Query model.DBQuery
	Args  []interface{}
}

// MockDBClient is a mock implementation of the DBClientInterface. It is safe for concurrent use.
type MockDBClient struct {
	// MockQuery defines the behavior for the Query method.
	MockQuery func(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error)

	// MockExecute defines the behavior for the Execute method.
	MockExecute func(query model.DBQuery, args ...interface{}) (int64, error)

	// MockPing defines the behavior for the Ping method.
	MockPing func() error

	// MockClose defines the behavior for the Close method.
	MockClose func() error

	// QueryCalls tracks the arguments passed to Query.
	QueryCalls []QueryCall

	// ExecuteCalls tracks the arguments passed to Execute.
	ExecuteCalls []QueryCall

	// PingCalls tracks the calls to Ping.
	PingCalls int

	// CloseCalls tracks the calls to Close.
	CloseCalls int

	mu sync.Mutex
}

// Query mocks the Query method of the DBClientInterface.
func (m *MockDBClient) Query(_ context.Context, query model.DBQuery,
	args ...interface{}) ([]map[string]interface{}, error) {
	m.mu.Lock()
	m.QueryCalls = append(m.QueryCalls, QueryCall{Query: query, Args: args})
	m.mu.Unlock()

	if m.MockQuery != nil {
		return m.MockQuery(query, args...)
	}
	return []map[string]interface{}{}, nil
}

// Execute mocks the Execute method of the DBClientInterface.
func (m *MockDBClient) Execute(_ context.Context, query model.DBQuery, args ...interface{}) (int64, error) {
	m.mu.Lock()
	m.ExecuteCalls = append(m.ExecuteCalls, QueryCall{Query: query, Args: args})
	m.mu.Unlock()

	if m.MockExecute != nil {
		return m.MockExecute(query, args...)
	}
	return 1, nil
}

// Ping mocks the Ping method of the DBClientInterface.
func (m *MockDBClient) Ping(_ context.Context) error {
	m.mu.Lock()
	m.PingCalls++
	m.mu.Unlock()

	if m.MockPing != nil {
		return m.MockPing()
	}
	return nil
}

// Close mocks the Close method of the DBClientInterface.
func (m *MockDBClient) Close() error {
	m.mu.Lock()
	m.CloseCalls++
	m.mu.Unlock()

	if m.MockClose != nil {
		return m.MockClose()
	}
	return nil
}

// QueryCount returns the number of Query calls made so far.
func (m *MockDBClient) QueryCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.QueryCalls)
}

// ExecuteCount returns the number of Execute calls made so far.
func (m *MockDBClient) ExecuteCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ExecuteCalls)
}
