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
	"net/http"

	"github.com/asgardeo/portfolio/internal/system/constants"
	"github.com/asgardeo/portfolio/internal/system/error/serviceerror"
	"github.com/asgardeo/portfolio/internal/system/log"
	"github.com/asgardeo/portfolio/internal/system/utils"
)

// analyticsHandler is the handler for analytics operations.
type analyticsHandler struct {
	analyticsService AnalyticsServiceInterface
}

// newAnalyticsHandler creates a new instance of analyticsHandler.
func newAnalyticsHandler(analyticsService AnalyticsServiceInterface) *analyticsHandler {
	return &analyticsHandler{
		analyticsService: analyticsService,
	}
}

// HandlePageViewRequest records a page view.
func (h *analyticsHandler) HandlePageViewRequest(w http.ResponseWriter, r *http.Request) {
	request, err := utils.DecodeJSONBody[PageViewRequest](r)
	if errors.Is(err, utils.ErrEmptyRequestBody) {
		request, err = &PageViewRequest{}, nil
	}
	if err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, "AnalyticsHandler")).
			Debug("Failed to parse page view request", log.Error(err))
		utils.WriteServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	svcErr := h.analyticsService.RecordPageView(context.WithoutCancel(r.Context()), *request,
		utils.GetClientIP(r), r.Header.Get(constants.UserAgentHeaderName))
	if svcErr != nil {
		utils.WriteServiceErrorResponse(w, svcErr)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, PageViewResponse{Success: true})
}

// HandleSummaryRequest returns the page view summary.
func (h *analyticsHandler) HandleSummaryRequest(r *http.Request) (any, *serviceerror.ServiceError) {
	return h.analyticsService.GetSummary(r.Context())
}
