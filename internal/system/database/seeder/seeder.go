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

// Package seeder bootstraps the portfolio tables and seeds sample portfolio data.
package seeder

import (
	"context"
	"fmt"

	"github.com/asgardeo/portfolio/internal/system/database/client"
	"github.com/asgardeo/portfolio/internal/system/log"
)

// SeederInterface defines the interface for seeding the database.
type SeederInterface interface {
	EnsureSchema(ctx context.Context) error
	SeedInitialData(ctx context.Context) error
}

// DBSeeder implements SeederInterface for database data seeding.
type DBSeeder struct {
	dbClient client.DBClientInterface
}

// NewDBSeeder creates a new instance of DBSeeder.
func NewDBSeeder(dbClient client.DBClientInterface) SeederInterface {
	return &DBSeeder{
		dbClient: dbClient,
	}
}

// EnsureSchema creates the portfolio tables that do not exist yet.
func (s *DBSeeder) EnsureSchema(ctx context.Context) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))

	for _, query := range schemaQueries {
		if _, err := s.dbClient.Execute(ctx, query); err != nil {
			logger.Error("Failed to create table", log.String(log.LoggerKeyQueryID, query.ID), log.Error(err))
			return fmt.Errorf("failed to execute %s: %w", query.ID, err)
		}
	}
	return nil
}

// SeedInitialData seeds the sample portfolio data. Rows that already exist are left untouched.
func (s *DBSeeder) SeedInitialData(ctx context.Context) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))
	logger.Info("Starting database seeding process")

	data := getSeedData()

	for _, p := range data.Profiles {
		if _, err := s.dbClient.Execute(ctx, queryInsertProfile, p.ID, p.FullName, p.Title, p.Bio, p.Email,
			p.Location, nullIfEmpty(p.GithubURL), nullIfEmpty(p.LinkedinURL), nullIfEmpty(p.WebsiteURL)); err != nil {
			logger.Error("Failed to seed profile", log.Int("id", p.ID), log.Error(err))
			return fmt.Errorf("failed to seed profiles: %w", err)
		}
	}

	for _, e := range data.Experiences {
		var endDate interface{}
		if e.EndDate != nil {
			endDate = *e.EndDate
		}
		if _, err := s.dbClient.Execute(ctx, queryInsertExperience, e.ID, e.Position, e.Company, e.Location,
			e.StartDate, endDate, e.IsCurrent, e.Description); err != nil {
			logger.Error("Failed to seed experience", log.Int("id", e.ID), log.Error(err))
			return fmt.Errorf("failed to seed experiences: %w", err)
		}
	}

	for _, sk := range data.Skills {
		if _, err := s.dbClient.Execute(ctx, queryInsertSkill, sk.ID, sk.Category, sk.Name); err != nil {
			logger.Error("Failed to seed skill", log.Int("id", sk.ID), log.Error(err))
			return fmt.Errorf("failed to seed skills: %w", err)
		}
	}

	for _, p := range data.Projects {
		if _, err := s.dbClient.Execute(ctx, queryInsertProject, p.ID, p.Title, p.Description, p.Technologies,
			nullIfEmpty(p.GithubURL), nullIfEmpty(p.DemoURL), p.Year); err != nil {
			logger.Error("Failed to seed project", log.Int("id", p.ID), log.Error(err))
			return fmt.Errorf("failed to seed projects: %w", err)
		}
	}

	for _, c := range data.Certificates {
		if _, err := s.dbClient.Execute(ctx, queryInsertCertificate, c.ID, c.Title, c.Issuer, c.Date,
			nullIfEmpty(c.CredentialURL)); err != nil {
			logger.Error("Failed to seed certificate", log.Int("id", c.ID), log.Error(err))
			return fmt.Errorf("failed to seed certificates: %w", err)
		}
	}

	logger.Info("Database seeding process completed successfully",
		log.Int("skills", len(data.Skills)), log.Int("projects", len(data.Projects)))
	return nil
}

// nullIfEmpty maps empty strings to SQL NULL.
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
