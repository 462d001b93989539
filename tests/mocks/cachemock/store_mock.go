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

// Package cachemock provides a testify mock of the cache store.
package cachemock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// StoreMock is a mock implementation of cache.Store. Variadic keys are recorded as a single
// []string argument.
type StoreMock struct {
	mock.Mock
}

// NewStoreMock creates a new StoreMock and asserts its expectations when the test finishes.
func NewStoreMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreMock {
	m := &StoreMock{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Get provides a mock function with given fields: ctx, key
func (_m *StoreMock) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ret := _m.Called(ctx, key)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Bool(1), ret.Error(2)
}

// Set provides a mock function with given fields: ctx, key, value, ttl
func (_m *StoreMock) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ret := _m.Called(ctx, key, value, ttl)
	return ret.Error(0)
}

// Delete provides a mock function with given fields: ctx, keys
func (_m *StoreMock) Delete(ctx context.Context, keys ...string) (int, error) {
	ret := _m.Called(ctx, keys)
	return ret.Int(0), ret.Error(1)
}

// Keys provides a mock function with given fields: ctx, prefix
func (_m *StoreMock) Keys(ctx context.Context, prefix string) ([]string, error) {
	ret := _m.Called(ctx, prefix)

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}

// Ping provides a mock function with given fields: ctx
func (_m *StoreMock) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// Close provides a mock function with no fields
func (_m *StoreMock) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}
