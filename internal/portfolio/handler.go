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
	"net/http"

	"github.com/asgardeo/portfolio/internal/system/error/serviceerror"
)

// portfolioHandler produces the results of the portfolio read endpoints.
type portfolioHandler struct {
	portfolioService PortfolioServiceInterface
}

// newPortfolioHandler creates a new instance of portfolioHandler.
func newPortfolioHandler(portfolioService PortfolioServiceInterface) *portfolioHandler {
	return &portfolioHandler{
		portfolioService: portfolioService,
	}
}

// HandleProfileRequest returns the portfolio profile.
func (h *portfolioHandler) HandleProfileRequest(r *http.Request) (any, *serviceerror.ServiceError) {
	return h.portfolioService.GetProfile(r.Context())
}

// HandleExperiencesRequest returns the work experiences.
func (h *portfolioHandler) HandleExperiencesRequest(r *http.Request) (any, *serviceerror.ServiceError) {
	return h.portfolioService.GetExperiences(r.Context())
}

// HandleSkillsRequest returns the skills grouped by category.
func (h *portfolioHandler) HandleSkillsRequest(r *http.Request) (any, *serviceerror.ServiceError) {
	return h.portfolioService.GetSkills(r.Context())
}

// HandleProjectsRequest returns the projects.
func (h *portfolioHandler) HandleProjectsRequest(r *http.Request) (any, *serviceerror.ServiceError) {
	return h.portfolioService.GetProjects(r.Context())
}

// HandleCertificatesRequest returns the certificates.
func (h *portfolioHandler) HandleCertificatesRequest(r *http.Request) (any, *serviceerror.ServiceError) {
	return h.portfolioService.GetCertificates(r.Context())
}
