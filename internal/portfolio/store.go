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
	"fmt"

	dbmodel "github.com/asgardeo/portfolio/internal/system/database/model"
	"github.com/asgardeo/portfolio/internal/system/database/provider"
	"github.com/asgardeo/portfolio/internal/system/log"
)

// portfolioStoreInterface defines the interface for portfolio store operations.
type portfolioStoreInterface interface {
	GetProfile(ctx context.Context, profileID int) (Record, error)
	GetExperiences(ctx context.Context) ([]Record, error)
	GetSkills(ctx context.Context) ([]Skill, error)
	GetProjects(ctx context.Context) ([]Record, error)
	GetCertificates(ctx context.Context) ([]Record, error)
}

// portfolioStore is the default implementation of portfolioStoreInterface.
type portfolioStore struct {
	dbProvider provider.DBProviderInterface
	logger     *log.Logger
}

// newPortfolioStore creates a new instance of portfolioStore.
func newPortfolioStore(dbProvider provider.DBProviderInterface) portfolioStoreInterface {
	return &portfolioStore{
		dbProvider: dbProvider,
		logger:     log.GetLogger().With(log.String(log.LoggerKeyComponentName, "PortfolioStore")),
	}
}

// GetProfile retrieves the profile with the given id.
func (s *portfolioStore) GetProfile(ctx context.Context, profileID int) (Record, error) {
	results, err := s.query(ctx, queryGetProfileByID, profileID)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrProfileNotFound
	}
	return results[0], nil
}

// GetExperiences retrieves all experiences.
func (s *portfolioStore) GetExperiences(ctx context.Context) ([]Record, error) {
	return s.query(ctx, queryGetExperiences)
}

// GetSkills retrieves all skills. Rows without a category or a name are skipped.
func (s *portfolioStore) GetSkills(ctx context.Context) ([]Skill, error) {
	results, err := s.query(ctx, queryGetSkills)
	if err != nil {
		return nil, err
	}

	skills := make([]Skill, 0, len(results))
	for _, row := range results {
		if row["category"] == nil || row["name"] == nil {
			s.logger.Warn("Skipping skill row with a null column", log.Any("id", row["id"]))
			continue
		}
		category, ok := row["category"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse category as string")
		}
		name, ok := row["name"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse name as string")
		}
		skills = append(skills, Skill{Category: category, Name: name})
	}
	return skills, nil
}

// GetProjects retrieves all projects.
func (s *portfolioStore) GetProjects(ctx context.Context) ([]Record, error) {
	return s.query(ctx, queryGetProjects)
}

// GetCertificates retrieves all certificates.
func (s *portfolioStore) GetCertificates(ctx context.Context) ([]Record, error) {
	return s.query(ctx, queryGetCertificates)
}

// query executes a read query and converts the rows to records.
func (s *portfolioStore) query(ctx context.Context, query dbmodel.DBQuery, args ...interface{}) ([]Record, error) {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query %s: %w", query.ID, err)
	}

	records := make([]Record, 0, len(results))
	for _, row := range results {
		records = append(records, Record(row))
	}
	return records, nil
}
