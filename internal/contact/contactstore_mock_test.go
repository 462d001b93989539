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

package contact

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// contactStoreInterfaceMock is a mock implementation of contactStoreInterface.
type contactStoreInterfaceMock struct {
	mock.Mock
}

func newContactStoreInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *contactStoreInterfaceMock {
	m := &contactStoreInterfaceMock{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *contactStoreInterfaceMock) CreateContactMessage(ctx context.Context, message ContactMessage) error {
	ret := _m.Called(ctx, message)
	return ret.Error(0)
}
