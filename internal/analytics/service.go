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

// Package analytics records page views and reports the aggregated page view summary.
package analytics

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/asgardeo/portfolio/internal/system/error/serviceerror"
	"github.com/asgardeo/portfolio/internal/system/log"
	"github.com/asgardeo/portfolio/internal/system/utils"
)

const analyticsLoggerComponentName = "AnalyticsService"

// AnalyticsServiceInterface defines the interface for the analytics service.
type AnalyticsServiceInterface interface {
	RecordPageView(ctx context.Context, request PageViewRequest, clientIP, userAgent string) *serviceerror.ServiceError
	GetSummary(ctx context.Context) (*Summary, *serviceerror.ServiceError)
}

// analyticsService is the default implementation of the AnalyticsServiceInterface.
type analyticsService struct {
	store    analyticsStoreInterface
	validate *validator.Validate
	now      func() time.Time
}

// newAnalyticsService creates a new instance of analyticsService.
func newAnalyticsService(store analyticsStoreInterface) AnalyticsServiceInterface {
	return &analyticsService{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// RecordPageView stores a page view along with the client address and user agent.
func (as *analyticsService) RecordPageView(ctx context.Context, request PageViewRequest,
	clientIP, userAgent string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, analyticsLoggerComponentName))

	request.Page = utils.SanitizeString(request.Page)
	request.Referrer = utils.SanitizeString(request.Referrer)
	if err := as.validate.Struct(request); err != nil {
		logger.Debug("Rejected page view without page", log.Error(err))
		return &ErrorPageRequired
	}

	pageView := PageView{
		Page:      request.Page,
		Referrer:  request.Referrer,
		IPAddress: clientIP,
		UserAgent: userAgent,
		CreatedAt: as.now().UTC(),
	}
	if err := as.store.CreatePageView(ctx, pageView); err != nil {
		logger.Error("Failed to record page view", log.String("page", pageView.Page), log.Error(err))
		return &ErrorPageViewRecordFailed
	}
	return nil
}

// GetSummary returns the total views, the unique visitors and the most viewed pages.
func (as *analyticsService) GetSummary(ctx context.Context) (*Summary, *serviceerror.ServiceError) {
	summary, err := as.store.GetSummary(ctx)
	if err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, analyticsLoggerComponentName)).
			Error("Failed to compute analytics summary", log.Error(err))
		return nil, &ErrorSummaryReadFailed
	}
	return summary, nil
}
