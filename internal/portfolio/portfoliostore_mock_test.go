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
	"context"

	"github.com/stretchr/testify/mock"
)

// portfolioStoreInterfaceMock is a mock implementation of portfolioStoreInterface.
type portfolioStoreInterfaceMock struct {
	mock.Mock
}

func newPortfolioStoreInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *portfolioStoreInterfaceMock {
	m := &portfolioStoreInterfaceMock{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *portfolioStoreInterfaceMock) GetProfile(ctx context.Context, profileID int) (Record, error) {
	ret := _m.Called(ctx, profileID)

	var r0 Record
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(Record)
	}
	return r0, ret.Error(1)
}

func (_m *portfolioStoreInterfaceMock) GetExperiences(ctx context.Context) ([]Record, error) {
	return _m.records(_m.Called(ctx))
}

func (_m *portfolioStoreInterfaceMock) GetSkills(ctx context.Context) ([]Skill, error) {
	ret := _m.Called(ctx)

	var r0 []Skill
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]Skill)
	}
	return r0, ret.Error(1)
}

func (_m *portfolioStoreInterfaceMock) GetProjects(ctx context.Context) ([]Record, error) {
	return _m.records(_m.Called(ctx))
}

func (_m *portfolioStoreInterfaceMock) GetCertificates(ctx context.Context) ([]Record, error) {
	return _m.records(_m.Called(ctx))
}

func (_m *portfolioStoreInterfaceMock) records(ret mock.Arguments) ([]Record, error) {
	var r0 []Record
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]Record)
	}
	return r0, ret.Error(1)
}
