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

	"github.com/asgardeo/portfolio/internal/system/utils"
)

// EndpointNotFoundMessage is the error returned for requests matching no route.
const EndpointNotFoundMessage = "Endpoint not found"

// NotFoundHandler answers every request with 404 and a JSON error body. It is registered on the
// catch-all pattern so unmatched paths do not fall through to the default plain text response.
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSONError(w, http.StatusNotFound, EndpointNotFoundMessage)
}
