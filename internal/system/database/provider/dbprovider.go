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

// Package provider provides functionality for managing database connections and clients.
package provider

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/asgardeo/portfolio/internal/system/config"
	"github.com/asgardeo/portfolio/internal/system/database/client"
	"github.com/asgardeo/portfolio/internal/system/database/model"
	"github.com/asgardeo/portfolio/internal/system/log"
)

const sqliteInMemoryPath = ":memory:"

// ErrProviderClosed is returned when a client is requested from a closed provider.
var ErrProviderClosed = errors.New("database provider is closed")

// dbConfig represents the local database configuration.
type dbConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient() (client.DBClientInterface, error)
	Close() error
}

// DBProvider is the implementation of DBProviderInterface. It owns the portfolio connection pool.
type DBProvider struct {
	dataSource config.DataSource
	serverHome string
	dbClient   client.DBClientInterface
	mutex      sync.RWMutex
	closed     bool
}

// NewDBProvider creates a provider for the given data source. Relative SQLite paths are resolved
// against serverHome. The connection pool is opened lazily on the first GetDBClient call.
func NewDBProvider(dataSource config.DataSource, serverHome string) *DBProvider {
	return &DBProvider{
		dataSource: dataSource,
		serverHome: serverHome,
	}
}

// GetDBClient returns the database client, opening the connection pool on first use.
// Not required to close the returned client manually since the provider owns its connection pool.
func (d *DBProvider) GetDBClient() (client.DBClientInterface, error) {
	d.mutex.RLock()
	if d.dbClient != nil {
		dbClient := d.dbClient
		d.mutex.RUnlock()
		return dbClient, nil
	}
	d.mutex.RUnlock()

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.closed {
		return nil, ErrProviderClosed
	}
	if d.dbClient != nil {
		return d.dbClient, nil
	}

	dbClient, err := d.initializeClient()
	if err != nil {
		return nil, err
	}
	d.dbClient = dbClient
	return dbClient, nil
}

// initializeClient opens and verifies the connection pool for the data source.
func (d *DBProvider) initializeClient() (client.DBClientInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider"))

	dbConfig, err := d.getDBConfig()
	if err != nil {
		return nil, err
	}
	dbName := d.dataSource.Name

	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dbName, err)
	}

	// Configure connection pool using values from configuration
	db.SetMaxOpenConns(d.dataSource.MaxOpenConns)
	db.SetMaxIdleConns(d.dataSource.MaxIdleConns)
	db.SetConnMaxIdleTime(time.Duration(d.dataSource.ConnMaxIdleTime) * time.Second)
	if dbConfig.driverName == model.DataSourceTypeSQLite && d.dataSource.Path == sqliteInMemoryPath {
		// Every connection to an in-memory database sees its own empty database.
		db.SetMaxOpenConns(1)
	}

	// Test the database connection.
	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database %s: %w (close error: %w)", dbName, err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database %s: %w", dbName, err)
	}

	// Enable foreign key constraints for SQLite databases
	if dbConfig.driverName == model.DataSourceTypeSQLite {
		if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				return nil, fmt.Errorf("failed to enable foreign key constraints for %s: %w (close error: %w)",
					dbName, err, closeErr)
			}
			return nil, fmt.Errorf("failed to enable foreign key constraints for %s: %w", dbName, err)
		}
	}

	logger.Debug("Database connection pool initialized",
		log.String("type", d.dataSource.Type), log.Int("maxOpenConns", d.dataSource.MaxOpenConns))

	queryTimeout := time.Duration(d.dataSource.QueryTimeout) * time.Second
	return client.NewDBClient(model.NewDB(db), dbConfig.driverName, queryTimeout), nil
}

// getDBConfig returns the database configuration based on the data source.
func (d *DBProvider) getDBConfig() (dbConfig, error) {
	var dbConfig dbConfig
	dataSource := d.dataSource

	switch dataSource.Type {
	case model.DataSourceTypePostgres:
		dbConfig.driverName = model.DataSourceTypePostgres
		dbConfig.dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
			dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
			dataSource.Name, dataSource.SSLMode, dataSource.ConnectTimeout)
	case model.DataSourceTypeSQLite:
		dbConfig.driverName = model.DataSourceTypeSQLite
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		dbPath := dataSource.Path
		if dbPath != sqliteInMemoryPath {
			if !filepath.IsAbs(dbPath) {
				dbPath = filepath.Join(d.serverHome, dbPath)
			}
			if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
				return dbConfig, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dbConfig.dsn = dbPath + options
	default:
		return dbConfig, fmt.Errorf("unsupported database type: %s", dataSource.Type)
	}

	return dbConfig, nil
}

// Close closes the connection pool. Subsequent GetDBClient calls fail.
func (d *DBProvider) Close() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.closed = true
	if d.dbClient == nil {
		return nil
	}
	err := d.dbClient.Close()
	d.dbClient = nil
	if err != nil {
		return fmt.Errorf("failed to close portfolio database client: %w", err)
	}
	return nil
}
