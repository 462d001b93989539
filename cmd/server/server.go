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
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asgardeo/portfolio/internal/system/cache"
	"github.com/asgardeo/portfolio/internal/system/config"
	"github.com/asgardeo/portfolio/internal/system/database/provider"
	"github.com/asgardeo/portfolio/internal/system/database/seeder"
	"github.com/asgardeo/portfolio/internal/system/log"
	"github.com/asgardeo/portfolio/internal/system/middleware"
)

// runServer starts the HTTP server and blocks until it is interrupted and shut down.
func runServer(ctx context.Context, home string) error {
	logger := log.GetLogger()
	startTime := time.Now()

	cfg, err := config.LoadConfig(configFilePath(home))
	if err != nil {
		return fmt.Errorf("failed to load configurations: %w", err)
	}

	dbProvider := provider.NewDBProvider(cfg.Database.Portfolio, home)
	ensureSchema(ctx, logger, dbProvider)

	cacheStore, err := cache.NewStore(cfg.Cache)
	if err != nil {
		return errors.Join(err, dbProvider.Close())
	}
	responseCache := cache.NewResponseCache(cacheStore, time.Duration(cfg.Cache.WriteTimeout)*time.Second)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit, nil)
		defer rateLimiter.Stop()
	}

	mux := http.NewServeMux()
	registerServices(mux, serviceDependencies{
		dbProvider:    dbProvider,
		cacheStore:    cacheStore,
		responseCache: responseCache,
		startTime:     startTime,
	})

	server := createHTTPServer(cfg, buildHandler(logger, cfg, mux, rateLimiter))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Portfolio server started (HTTP)...", log.String("address", server.Addr),
			log.String("environment", cfg.Server.Environment))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("Failed to serve HTTP requests", log.Error(err))
			return errors.Join(fmt.Errorf("failed to serve HTTP requests: %w", err),
				closeResources(responseCache, cacheStore, dbProvider))
		}
		return closeResources(responseCache, cacheStore, dbProvider)
	case <-ctx.Done():
		logger.Info("Shutdown signal received, stopping the server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	shutdownErr := server.Shutdown(shutdownCtx)
	if shutdownErr != nil {
		logger.Error("Failed to shut down the server gracefully", log.Error(shutdownErr))
	}

	err = errors.Join(shutdownErr, closeResources(responseCache, cacheStore, dbProvider))
	logger.Info("Portfolio server stopped")
	logger.Sync()
	return err
}

// ensureSchema creates the portfolio tables when they are missing. A failure is logged and the
// server starts anyway so that the database can become available later.
func ensureSchema(ctx context.Context, logger *log.Logger, dbProvider provider.DBProviderInterface) {
	dbClient, err := dbProvider.GetDBClient()
	if err != nil {
		logger.Warn("Failed to get database client for schema bootstrap", log.Error(err))
		return
	}
	if err := seeder.NewDBSeeder(dbClient).EnsureSchema(ctx); err != nil {
		logger.Warn("Failed to bootstrap the database schema", log.Error(err))
	}
}

// closeResources waits for pending cache writes and then closes the cache store and the database pool.
func closeResources(responseCache *cache.ResponseCache, cacheStore cache.Store,
	dbProvider provider.DBProviderInterface) error {
	responseCache.Wait()

	var errs []error
	if err := cacheStore.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close cache store: %w", err))
	}
	if err := dbProvider.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close database provider: %w", err))
	}
	return errors.Join(errs...)
}

// buildHandler wraps the multiplexer with the cross-cutting middleware, outermost first.
func buildHandler(logger *log.Logger, cfg *config.Config, mux *http.ServeMux,
	rateLimiter *middleware.RateLimiter) http.Handler {
	var rateLimit middleware.Middleware
	if rateLimiter != nil {
		rateLimit = rateLimiter.Middleware()
	}

	return middleware.Chain(mux,
		middleware.Recovery,
		middleware.RequestID,
		middleware.RealIP(cfg.Server.TrustProxy),
		func(next http.Handler) http.Handler { return log.AccessLogHandler(logger, next) },
		middleware.SecurityHeaders(cfg.IsProduction()),
		middleware.Compression(),
		middleware.CORS(middleware.NewCORSOptions(cfg.CORS)),
		rateLimit,
	)
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}
}
