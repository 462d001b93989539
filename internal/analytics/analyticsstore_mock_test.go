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
	"context"

	"github.com/stretchr/testify/mock"
)

// analyticsStoreInterfaceMock is a mock implementation of analyticsStoreInterface.
type analyticsStoreInterfaceMock struct {
	mock.Mock
}

func newAnalyticsStoreInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *analyticsStoreInterfaceMock {
	m := &analyticsStoreInterfaceMock{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *analyticsStoreInterfaceMock) CreatePageView(ctx context.Context, pageView PageView) error {
	ret := _m.Called(ctx, pageView)
	return ret.Error(0)
}

func (_m *analyticsStoreInterfaceMock) GetSummary(ctx context.Context) (*Summary, error) {
	ret := _m.Called(ctx)

	var r0 *Summary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Summary)
	}
	return r0, ret.Error(1)
}
