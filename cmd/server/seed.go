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

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/asgardeo/portfolio/internal/system/config"
	"github.com/asgardeo/portfolio/internal/system/database/provider"
	"github.com/asgardeo/portfolio/internal/system/database/seeder"
	"github.com/asgardeo/portfolio/internal/system/log"
)

// runSeed creates the portfolio tables and inserts the sample data. Existing rows are left untouched.
func runSeed(ctx context.Context, home string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Seeder"))

	cfg, err := config.LoadConfig(configFilePath(home))
	if err != nil {
		return fmt.Errorf("failed to load configurations: %w", err)
	}

	dbProvider := provider.NewDBProvider(cfg.Database.Portfolio, home)
	err = seed(ctx, dbProvider)
	if closeErr := dbProvider.Close(); closeErr != nil {
		err = errors.Join(err, fmt.Errorf("failed to close database provider: %w", closeErr))
	}
	if err != nil {
		logger.Error("Failed to seed the portfolio database", log.Error(err))
		return err
	}

	logger.Info("Portfolio database seeded successfully")
	return nil
}

// seed runs the schema bootstrap followed by the data seeding.
func seed(ctx context.Context, dbProvider provider.DBProviderInterface) error {
	dbClient, err := dbProvider.GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	dataSeeder := seeder.NewDBSeeder(dbClient)
	if err := dataSeeder.EnsureSchema(ctx); err != nil {
		return err
	}
	return dataSeeder.SeedInitialData(ctx)
}
