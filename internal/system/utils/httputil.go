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

// Package utils provides utility functions for HTTP operations.
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/asgardeo/portfolio/internal/system/constants"
	"github.com/asgardeo/portfolio/internal/system/error/apierror"
	"github.com/asgardeo/portfolio/internal/system/error/serviceerror"
	"github.com/asgardeo/portfolio/internal/system/log"
)

// maxRequestBodySize bounds the size of JSON request bodies.
const maxRequestBodySize = 1 << 20

// ErrEmptyRequestBody is returned by DecodeJSONBody when the request carries no JSON value.
var ErrEmptyRequestBody = errors.New("request body is empty")

// WriteJSON writes the given value as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		log.GetLogger().Error("Error encoding response", log.Error(err))
		WriteJSONError(w, http.StatusInternalServerError, serviceerror.InternalServerError.Error)
		return
	}
	WriteJSONBytes(w, statusCode, payload)
}

// WriteJSONBytes writes an already serialized JSON payload with the given status code.
func WriteJSONBytes(w http.ResponseWriter, statusCode int, payload []byte) {
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if _, err := w.Write(payload); err != nil {
		log.GetLogger().Error("Failed to write JSON response", log.Error(err))
	}
}

// WriteJSONError writes a JSON error response carrying only the error message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(apierror.ErrorResponse{Error: message}); err != nil {
		log.GetLogger().Error("Failed to write JSON error response", log.Error(err))
	}
}

// WriteServiceErrorResponse writes the service error as a JSON error response.
func WriteServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	if svcErr == nil {
		svcErr = &serviceerror.InternalServerError
	}

	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(svcErr.HTTPStatus())

	errResp := apierror.ErrorResponse{
		Error: svcErr.Error,
		Code:  svcErr.Code,
	}
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		log.GetLogger().Error("Error encoding error response", log.Error(err))
	}
}

// DecodeJSONBody decodes the JSON request body into a value of type T. A missing body or one holding
// only whitespace yields ErrEmptyRequestBody whatever the request framing.
func DecodeJSONBody[T any](r *http.Request) (*T, error) {
	if r.Body == nil {
		return nil, ErrEmptyRequestBody
	}

	var data T
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodySize))
	if err := decoder.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRequestBody
		}
		return nil, fmt.Errorf("failed to decode request body: %w", err)
	}
	return &data, nil
}

// IsFormRequest reports whether the request body is form encoded.
func IsFormRequest(r *http.Request) bool {
	contentType := r.Header.Get(constants.ContentTypeHeaderName)
	return strings.HasPrefix(strings.ToLower(contentType), constants.ContentTypeFormURLEncoded)
}

// GetClientIP returns the client IP address of the request. The remote address is expected to be
// rewritten upstream when the server runs behind a trusted proxy.
func GetClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
