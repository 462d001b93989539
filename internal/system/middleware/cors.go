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

package middleware

import (
	"net/http"

	"github.com/asgardeo/portfolio/internal/system/config"
	"github.com/asgardeo/portfolio/internal/system/log"
)

// CORSOptions represents the CORS configuration for HTTP requests.
type CORSOptions struct {
	AllowedOrigin    string
	AllowedMethods   string
	AllowedHeaders   string
	AllowCredentials bool
}

// NewCORSOptions builds the CORS options from the server configuration. Credentials are always allowed.
func NewCORSOptions(cfg config.CORSConfig) CORSOptions {
	return CORSOptions{
		AllowedOrigin:    cfg.AllowedOrigin,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		AllowCredentials: true,
	}
}

// CORS returns a middleware adding CORS headers for the configured origin. Preflight requests are
// answered with 204 without reaching the wrapped handler.
func CORS(opts CORSOptions) Middleware {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CORSMiddleware"))
	if opts.AllowedOrigin == "" {
		logger.Debug("No allowed origin configured")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			applyCORSHeaders(w, r, opts)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// applyCORSHeaders sets the CORS headers when the request origin matches the allowed origin.
func applyCORSHeaders(w http.ResponseWriter, r *http.Request, opts CORSOptions) {
	w.Header().Add("Vary", "Origin")

	requestOrigin := r.Header.Get("Origin")
	if requestOrigin == "" || opts.AllowedOrigin == "" || requestOrigin != opts.AllowedOrigin {
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", opts.AllowedOrigin)
	if opts.AllowedMethods != "" {
		w.Header().Set("Access-Control-Allow-Methods", opts.AllowedMethods)
	}
	if opts.AllowedHeaders != "" {
		w.Header().Set("Access-Control-Allow-Headers", opts.AllowedHeaders)
	}
	if opts.AllowCredentials {
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
}
