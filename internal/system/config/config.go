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

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/asgardeo/portfolio/internal/system/log"
)

// ServerConfig holds the server configuration details. Timeouts are expressed in seconds.
type ServerConfig struct {
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Environment     string `yaml:"environment"`
	TrustProxy      bool   `yaml:"trust_proxy"`
	ReadTimeout     int    `yaml:"read_timeout"`
	WriteTimeout    int    `yaml:"write_timeout"`
	IdleTimeout     int    `yaml:"idle_timeout"`
	ShutdownTimeout int    `yaml:"shutdown_timeout"`
}

// Address returns the host:port address the server listens on.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Hostname, s.Port)
}

// CORSConfig holds the cross-origin resource sharing configuration details.
type CORSConfig struct {
	AllowedOrigin  string `yaml:"allowed_origin"`
	AllowedMethods string `yaml:"allowed_methods"`
	AllowedHeaders string `yaml:"allowed_headers"`
}

// RateLimitConfig holds the rate limiting configuration for the API routes.
type RateLimitConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Window      int    `yaml:"window"`
	MaxRequests int    `yaml:"max_requests"`
	Message     string `yaml:"message"`
}

// WindowDuration returns the rate limit window as a duration.
func (r RateLimitConfig) WindowDuration() time.Duration {
	return time.Duration(r.Window) * time.Second
}

// DataSource holds the individual database connection details. Durations are in seconds.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxIdleTime int    `yaml:"conn_max_idle_time"`
	ConnectTimeout  int    `yaml:"connect_timeout"`
	QueryTimeout    int    `yaml:"query_timeout"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Portfolio DataSource `yaml:"portfolio"`
}

// CacheConfig holds the response cache store configuration details.
type CacheConfig struct {
	Type            string `yaml:"type"`
	RedisURL        string `yaml:"redis_url"`
	Size            int    `yaml:"size"`
	EvictionPolicy  string `yaml:"eviction_policy"`
	CleanupInterval int    `yaml:"cleanup_interval"`
	WriteTimeout    int    `yaml:"write_timeout"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Database  DatabaseConfig  `yaml:"database"`
	Cache     CacheConfig     `yaml:"cache"`
}

// DefaultConfig returns the configuration used when a value is not set in the deployment file.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Hostname:        "0.0.0.0",
			Port:            3001,
			Environment:     "development",
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		CORS: CORSConfig{
			AllowedOrigin:  "http://localhost:3000",
			AllowedMethods: "GET, POST, DELETE, OPTIONS",
			AllowedHeaders: "Content-Type, Authorization",
		},
		RateLimit: RateLimitConfig{
			Enabled:     true,
			Window:      900,
			MaxRequests: 100,
			Message:     "Too many requests from this IP, please try again later.",
		},
		Database: DatabaseConfig{
			Portfolio: DataSource{
				Type:            "sqlite",
				Hostname:        "localhost",
				Port:            5432,
				Name:            "portfolio_db",
				Username:        "postgres",
				SSLMode:         "disable",
				Path:            "repository/database/portfolio.db",
				MaxOpenConns:    20,
				MaxIdleConns:    10,
				ConnMaxIdleTime: 30,
				ConnectTimeout:  2,
				QueryTimeout:    5,
			},
		},
		Cache: CacheConfig{
			Type:            "inmemory",
			RedisURL:        "redis://localhost:6379",
			Size:            1000,
			EvictionPolicy:  "LRU",
			CleanupInterval: 60,
			WriteTimeout:    2,
		},
	}
}

// LoadConfig loads the configurations from the specified YAML file on top of the defaults and
// applies environment variable overrides. A missing file leaves the defaults in place.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	path = filepath.Clean(path)

	file, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.GetLogger().Warn("Configuration file not found, using defaults", log.String("path", path))
	case err != nil:
		return nil, fmt.Errorf("failed to open configuration file: %w", err)
	default:
		defer func() {
			if ferr := file.Close(); ferr != nil {
				log.GetLogger().Error("Failed to close config file", log.Error(ferr))
			}
		}()

		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode configuration file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides overrides configuration values with the deployment environment variables.
func applyEnvOverrides(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT value %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v, ok := lookup("NODE_ENV"); ok && v != "" {
		cfg.Server.Environment = v
	}
	if v, ok := lookup("APP_ENV"); ok && v != "" {
		cfg.Server.Environment = v
	}
	if v, ok := lookup("TRUST_PROXY"); ok && v != "" {
		trust, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid TRUST_PROXY value %q: %w", v, err)
		}
		cfg.Server.TrustProxy = trust
	}
	if v, ok := lookup("FRONTEND_URL"); ok && v != "" {
		cfg.CORS.AllowedOrigin = v
	}

	ds := &cfg.Database.Portfolio
	if v, ok := lookup("DB_TYPE"); ok && v != "" {
		ds.Type = strings.ToLower(v)
	}
	if v, ok := lookup("DB_HOST"); ok && v != "" {
		ds.Hostname = v
	}
	if v, ok := lookup("DB_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DB_PORT value %q: %w", v, err)
		}
		ds.Port = port
	}
	if v, ok := lookup("DB_NAME"); ok && v != "" {
		ds.Name = v
	}
	if v, ok := lookup("DB_USER"); ok && v != "" {
		ds.Username = v
	}
	if v, ok := lookup("DB_PASSWORD"); ok {
		ds.Password = v
	}

	if v, ok := lookup("REDIS_URL"); ok && v != "" {
		cfg.Cache.RedisURL = v
	}
	if v, ok := lookup("CACHE_TYPE"); ok && v != "" {
		cfg.Cache.Type = strings.ToLower(v)
	}
	return nil
}

// IsProduction reports whether the server runs in the production environment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}
