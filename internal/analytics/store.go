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
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/asgardeo/portfolio/internal/system/database/client"
	dbmodel "github.com/asgardeo/portfolio/internal/system/database/model"
	"github.com/asgardeo/portfolio/internal/system/database/provider"
)

// analyticsStoreInterface defines the interface for analytics store operations.
type analyticsStoreInterface interface {
	CreatePageView(ctx context.Context, pageView PageView) error
	GetSummary(ctx context.Context) (*Summary, error)
}

// analyticsStore is the default implementation of analyticsStoreInterface.
type analyticsStore struct {
	dbProvider provider.DBProviderInterface
}

// newAnalyticsStore creates a new instance of analyticsStore.
func newAnalyticsStore(dbProvider provider.DBProviderInterface) analyticsStoreInterface {
	return &analyticsStore{
		dbProvider: dbProvider,
	}
}

// CreatePageView inserts a page view. An empty referrer is stored as NULL.
func (s *analyticsStore) CreatePageView(ctx context.Context, pageView PageView) error {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	var referrer interface{}
	if pageView.Referrer != "" {
		referrer = pageView.Referrer
	}

	_, err = dbClient.Execute(ctx, queryCreatePageView, pageView.Page, referrer, pageView.IPAddress,
		pageView.UserAgent, pageView.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create page view: %w", err)
	}
	return nil
}

// GetSummary computes the page view summary. The three aggregate queries run concurrently on the
// same client. Each query runs detached from the caller's context, so a failing query does not
// interrupt the others and the first error is returned once all of them finish.
func (s *analyticsStore) GetSummary(ctx context.Context) (*Summary, error) {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	summary := &Summary{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := queryCount(gctx, dbClient, queryCountPageViews)
		summary.TotalViews = total
		return err
	})
	g.Go(func() error {
		unique, err := queryCount(gctx, dbClient, queryCountUniqueVisitors)
		summary.UniqueVisitors = unique
		return err
	})
	g.Go(func() error {
		pages, err := queryPopularPages(gctx, dbClient)
		summary.PopularPages = pages
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}

// queryCount executes a single row COUNT query aliased as total.
func queryCount(ctx context.Context, dbClient client.DBClientInterface, query dbmodel.DBQuery) (int64, error) {
	results, err := dbClient.Query(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query %s: %w", query.ID, err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	total, err := toInt64(results[0]["total"])
	if err != nil {
		return 0, fmt.Errorf("failed to parse result of query %s: %w", query.ID, err)
	}
	return total, nil
}

// queryPopularPages retrieves the most viewed pages.
func queryPopularPages(ctx context.Context, dbClient client.DBClientInterface) ([]PopularPage, error) {
	results, err := dbClient.Query(ctx, queryGetPopularPages, popularPagesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query %s: %w", queryGetPopularPages.ID, err)
	}

	pages := make([]PopularPage, 0, len(results))
	for _, row := range results {
		if row["page"] == nil {
			continue
		}
		page, ok := row["page"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse page as string")
		}
		views, err := toInt64(row["views"])
		if err != nil {
			return nil, fmt.Errorf("failed to parse views: %w", err)
		}
		pages = append(pages, PopularPage{Page: page, Views: views})
	}
	return pages, nil
}

// toInt64 converts a numeric column value to int64. Drivers return counts as integers, floats or
// numeric strings depending on the database.
func toInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("unexpected numeric type %T", value)
	}
}
