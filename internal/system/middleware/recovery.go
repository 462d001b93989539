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
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/asgardeo/portfolio/internal/system/constants"
	"github.com/asgardeo/portfolio/internal/system/error/serviceerror"
	"github.com/asgardeo/portfolio/internal/system/log"
	"github.com/asgardeo/portfolio/internal/system/utils"
)

// Recovery converts a panic in the wrapped handler into a 500 JSON response.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Recovery")).Error(
				"Recovered from panic while handling request",
				log.String("panic", fmt.Sprint(rec)),
				log.String(log.LoggerKeyRequestID, r.Header.Get(constants.RequestIDHeaderName)),
				log.String("stack", string(debug.Stack())))

			utils.WriteJSONError(w, http.StatusInternalServerError, serviceerror.InternalServerError.Error)
		}()

		next.ServeHTTP(w, r)
	})
}
