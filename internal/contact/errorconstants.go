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

package contact

import (
	"net/http"

	"github.com/asgardeo/portfolio/internal/system/error/serviceerror"
)

// Client errors for contact operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request body cannot be parsed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CNT-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
		StatusCode:       http.StatusBadRequest,
	}
	// ErrorMissingFields is the error returned when a required field is missing or blank.
	ErrorMissingFields = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CNT-1002",
		Error:            "All fields are required",
		ErrorDescription: "The name, email and message fields must not be empty",
		StatusCode:       http.StatusBadRequest,
	}
)

// Server errors for contact operations.
var (
	// ErrorMessageSendFailed is the error returned when the message cannot be stored.
	ErrorMessageSendFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CNT-5001",
		Error:            "Failed to send message",
		ErrorDescription: "An error occurred while storing the contact message",
		StatusCode:       http.StatusInternalServerError,
	}
)
