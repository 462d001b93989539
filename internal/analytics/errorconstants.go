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

package analytics

import (
	"net/http"

	"github.com/asgardeo/portfolio/internal/system/error/serviceerror"
)

// Client errors for analytics operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request body cannot be parsed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ANL-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
		StatusCode:       http.StatusBadRequest,
	}
	// ErrorPageRequired is the error returned when the page of a page view is missing.
	ErrorPageRequired = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ANL-1002",
		Error:            "Page is required",
		ErrorDescription: "The page field must not be empty",
		StatusCode:       http.StatusBadRequest,
	}
)

// Server errors for analytics operations.
var (
	// ErrorPageViewRecordFailed is the error returned when a page view cannot be stored.
	ErrorPageViewRecordFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ANL-5001",
		Error:            "Failed to record pageview",
		ErrorDescription: "An error occurred while storing the page view",
		StatusCode:       http.StatusInternalServerError,
	}
	// ErrorSummaryReadFailed is the error returned when the summary cannot be computed.
	ErrorSummaryReadFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ANL-5002",
		Error:            "Internal server error",
		ErrorDescription: "Failed to compute the analytics summary",
		StatusCode:       http.StatusInternalServerError,
	}
)
