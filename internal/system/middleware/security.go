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
	"github.com/unrolled/secure"
)

const (
	contentSecurityPolicy = "default-src 'self'; frame-ancestors 'none'"
	referrerPolicy        = "no-referrer"
	hstsMaxAgeSeconds     = 15552000
)

// SecurityHeaders returns a middleware setting the standard security response headers.
// Strict-Transport-Security is only sent over TLS outside development.
func SecurityHeaders(isProduction bool) Middleware {
	s := secure.New(secure.Options{
		ContentTypeNosniff:    true,
		FrameDeny:             true,
		ReferrerPolicy:        referrerPolicy,
		ContentSecurityPolicy: contentSecurityPolicy,
		STSSeconds:            hstsMaxAgeSeconds,
		STSIncludeSubdomains:  true,
		IsDevelopment:         !isProduction,
	})
	return s.Handler
}
