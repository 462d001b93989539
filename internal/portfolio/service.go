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

// Package portfolio serves the read-only portfolio content: profile, experiences, skills,
// projects and certificates.
package portfolio

import (
	"context"
	"errors"

	"github.com/asgardeo/portfolio/internal/system/error/serviceerror"
	"github.com/asgardeo/portfolio/internal/system/log"
)

const (
	portfolioLoggerComponentName = "PortfolioService"

	// ProfileID is the id of the single portfolio profile.
	ProfileID = 1
)

// PortfolioServiceInterface defines the interface for the portfolio service.
type PortfolioServiceInterface interface {
	GetProfile(ctx context.Context) (Record, *serviceerror.ServiceError)
	GetExperiences(ctx context.Context) ([]Record, *serviceerror.ServiceError)
	GetSkills(ctx context.Context) (*SkillGroups, *serviceerror.ServiceError)
	GetProjects(ctx context.Context) ([]Record, *serviceerror.ServiceError)
	GetCertificates(ctx context.Context) ([]Record, *serviceerror.ServiceError)
}

// portfolioService is the default implementation of the PortfolioServiceInterface.
type portfolioService struct {
	store portfolioStoreInterface
}

// newPortfolioService creates a new instance of portfolioService.
func newPortfolioService(store portfolioStoreInterface) PortfolioServiceInterface {
	return &portfolioService{
		store: store,
	}
}

// GetProfile retrieves the portfolio profile.
func (ps *portfolioService) GetProfile(ctx context.Context) (Record, *serviceerror.ServiceError) {
	profile, err := ps.store.GetProfile(ctx, ProfileID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, &ErrorProfileNotFound
		}
		return nil, logAndReturnServerError("Failed to retrieve profile", err)
	}
	return profile, nil
}

// GetExperiences retrieves the work experiences, most recent first.
func (ps *portfolioService) GetExperiences(ctx context.Context) ([]Record, *serviceerror.ServiceError) {
	experiences, err := ps.store.GetExperiences(ctx)
	if err != nil {
		return nil, logAndReturnServerError("Failed to retrieve experiences", err)
	}
	return experiences, nil
}

// GetSkills retrieves the skill names grouped by category.
func (ps *portfolioService) GetSkills(ctx context.Context) (*SkillGroups, *serviceerror.ServiceError) {
	skills, err := ps.store.GetSkills(ctx)
	if err != nil {
		return nil, logAndReturnServerError("Failed to retrieve skills", err)
	}
	return NewSkillGroups(skills), nil
}

// GetProjects retrieves the projects, newest first.
func (ps *portfolioService) GetProjects(ctx context.Context) ([]Record, *serviceerror.ServiceError) {
	projects, err := ps.store.GetProjects(ctx)
	if err != nil {
		return nil, logAndReturnServerError("Failed to retrieve projects", err)
	}
	return projects, nil
}

// GetCertificates retrieves the certificates, most recent first.
func (ps *portfolioService) GetCertificates(ctx context.Context) ([]Record, *serviceerror.ServiceError) {
	certificates, err := ps.store.GetCertificates(ctx)
	if err != nil {
		return nil, logAndReturnServerError("Failed to retrieve certificates", err)
	}
	return certificates, nil
}

// logAndReturnServerError logs the error and returns the generic read failure.
func logAndReturnServerError(message string, err error) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, portfolioLoggerComponentName))
	logger.Error(message, log.Error(err))
	return &ErrorPortfolioReadFailed
}
