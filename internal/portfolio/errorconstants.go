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

package portfolio

import (
	"errors"
	"net/http"

	"github.com/asgardeo/portfolio/internal/system/error/serviceerror"
)

// Client errors for portfolio read operations.
var (
	// ErrorProfileNotFound is the error returned when the portfolio profile does not exist.
	ErrorProfileNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PRT-1001",
		Error:            "Profile not found",
		ErrorDescription: "The portfolio profile has not been created",
		StatusCode:       http.StatusNotFound,
	}
)

// Server errors for portfolio read operations.
var (
	// ErrorPortfolioReadFailed is the error returned when portfolio data cannot be read.
	ErrorPortfolioReadFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "PRT-5001",
		Error:            "Internal server error",
		ErrorDescription: "Failed to read portfolio data",
		StatusCode:       http.StatusInternalServerError,
	}
)

// ErrProfileNotFound is returned by the store when the profile row does not exist.
var ErrProfileNotFound = errors.New("profile not found")
