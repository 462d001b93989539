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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockStore *analyticsStoreInterfaceMock
	service   *analyticsService
	now       time.Time
}

func TestAnalyticsServiceSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.now = time.Date(2025, 7, 7, 7, 0, 0, 0, time.UTC)
	suite.mockStore = newAnalyticsStoreInterfaceMock(suite.T())
	suite.service = newAnalyticsService(suite.mockStore).(*analyticsService)
	suite.service.now = func() time.Time { return suite.now }
}

func (suite *AnalyticsServiceTestSuite) TestRecordPageView() {
	suite.mockStore.On("CreatePageView", mock.Anything, PageView{
		Page:      "/about",
		Referrer:  "https://google.com",
		IPAddress: "203.0.113.5",
		UserAgent: "Mozilla/5.0",
		CreatedAt: suite.now,
	}).Return(nil).Once()

	svcErr := suite.service.RecordPageView(context.Background(),
		PageViewRequest{Page: " /about ", Referrer: "https://google.com"}, "203.0.113.5", "Mozilla/5.0")

	assert.Nil(suite.T(), svcErr)
}

func (suite *AnalyticsServiceTestSuite) TestRecordPageViewWithoutPage() {
	for _, page := range []string{"", "   "} {
		svcErr := suite.service.RecordPageView(context.Background(), PageViewRequest{Page: page}, "", "")
		assert.Equal(suite.T(), &ErrorPageRequired, svcErr)
	}
	suite.mockStore.AssertNotCalled(suite.T(), "CreatePageView", mock.Anything, mock.Anything)
}

func (suite *AnalyticsServiceTestSuite) TestRecordPageViewStoreFailure() {
	suite.mockStore.On("CreatePageView", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	svcErr := suite.service.RecordPageView(context.Background(), PageViewRequest{Page: "/"}, "", "")

	assert.Equal(suite.T(), &ErrorPageViewRecordFailed, svcErr)
}

func (suite *AnalyticsServiceTestSuite) TestGetSummary() {
	summary := &Summary{TotalViews: 3, UniqueVisitors: 2, PopularPages: []PopularPage{{Page: "/x", Views: 3}}}
	suite.mockStore.On("GetSummary", mock.Anything).Return(summary, nil).Once()

	result, svcErr := suite.service.GetSummary(context.Background())

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), summary, result)
}

func (suite *AnalyticsServiceTestSuite) TestGetSummaryFailure() {
	suite.mockStore.On("GetSummary", mock.Anything).Return(nil, errors.New("timeout"))

	result, svcErr := suite.service.GetSummary(context.Background())

	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), &ErrorSummaryReadFailed, svcErr)
}
