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

// Package client provides the database client used to execute queries against the data store.
package client

import (
	"context"
	"strings"
	"time"

	"github.com/asgardeo/portfolio/internal/system/database/model"
	"github.com/asgardeo/portfolio/internal/system/log"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const loggerComponentName = "DBClient"

// DBClientInterface defines the interface for database operations.
type DBClientInterface interface {
	// Query executes a sql query that returns rows, typically a SELECT, and returns the result as a slice of maps.
	Query(ctx context.Context, query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error)
	// Execute executes a sql query without returning data in any rows, and returns number of rows affected.
	Execute(ctx context.Context, query model.DBQuery, args ...interface{}) (int64, error)
	// Ping verifies the database is reachable.
	Ping(ctx context.Context) error
	// Close closes the database connection.
	Close() error
}

// DBClient is the implementation of DBClientInterface.
type DBClient struct {
	db           model.DBInterface
	dbType       string
	queryTimeout time.Duration
}

// NewDBClient creates a new instance of DBClient with the provided database connection.
// A positive queryTimeout bounds every query executed by the client.
func NewDBClient(db model.DBInterface, dbType string, queryTimeout time.Duration) DBClientInterface {
	return &DBClient{
		db:           db,
		dbType:       dbType,
		queryTimeout: queryTimeout,
	}
}

// Query executes a sql query that returns rows, typically a SELECT, and returns the result as a slice of maps.
// Column names are lower-cased and byte slice values are returned as strings.
func (client *DBClient) Query(ctx context.Context, query model.DBQuery,
	args ...interface{}) ([]map[string]interface{}, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Executing query", log.String(log.LoggerKeyQueryID, query.GetID()))

	ctx, cancel := client.queryContext(ctx)
	defer cancel()

	rows, err := client.db.QueryContext(ctx, query.GetQuery(client.dbType), args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			logger.Error("Error closing rows", log.Error(closeErr))
		}
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := []map[string]interface{}{}
	for rows.Next() {
		row := make([]interface{}, len(columns))
		rowPointers := make([]interface{}, len(columns))
		for i := range row {
			rowPointers[i] = &row[i]
		}

		if err := rows.Scan(rowPointers...); err != nil {
			return nil, err
		}

		result := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			// Normalize column names to lowercase for consistency.
			result[strings.ToLower(col)] = normalizeValue(row[i])
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// Execute executes a sql query without returning data in any rows, and returns number of rows affected.
func (client *DBClient) Execute(ctx context.Context, query model.DBQuery, args ...interface{}) (int64, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Executing query", log.String(log.LoggerKeyQueryID, query.GetID()))

	ctx, cancel := client.queryContext(ctx)
	defer cancel()

	res, err := client.db.ExecContext(ctx, query.GetQuery(client.dbType), args...)
	if err != nil {
		return 0, err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}

// Ping verifies the database is reachable.
func (client *DBClient) Ping(ctx context.Context) error {
	ctx, cancel := client.queryContext(ctx)
	defer cancel()
	return client.db.PingContext(ctx)
}

// Close closes the database connection.
func (client *DBClient) Close() error {
	return client.db.Close()
}

// queryContext detaches the query from the caller's cancellation so that a disconnecting client
// does not abort an in-flight query, and applies the configured query timeout.
func (client *DBClient) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithoutCancel(ctx)
	if client.queryTimeout > 0 {
		return context.WithTimeout(ctx, client.queryTimeout)
	}
	return ctx, func() {}
}

// normalizeValue converts driver byte slices into strings so that rows serialize as text.
func normalizeValue(value interface{}) interface{} {
	if b, ok := value.([]byte); ok {
		return string(b)
	}
	return value
}
