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

package cache

import (
	"net/http"

	"github.com/asgardeo/portfolio/internal/system/error/serviceerror"
)

// Server errors for cache management operations.
var (
	// ErrorCacheClearFailed is the error returned when the cached responses could not be cleared.
	ErrorCacheClearFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CCH-5001",
		Error:            "Failed to clear cache",
		ErrorDescription: "The cache store could not list or delete the cached responses",
		StatusCode:       http.StatusInternalServerError,
	}
)
