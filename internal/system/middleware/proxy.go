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

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

// Compression returns a middleware compressing responses with gzip or deflate when the client
// accepts it.
func Compression() Middleware {
	return chimiddleware.Compress(compressionLevel)
}

// RealIP returns a middleware rewriting the remote address from the X-Forwarded-For and X-Real-IP
// headers. It returns nil when the server does not run behind a trusted proxy.
func RealIP(trustProxy bool) Middleware {
	if !trustProxy {
		return nil
	}
	return func(next http.Handler) http.Handler {
		return chimiddleware.RealIP(next)
	}
}
