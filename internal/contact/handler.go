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
	"context"
	"errors"
	"net/http"

	"github.com/asgardeo/portfolio/internal/system/log"
	"github.com/asgardeo/portfolio/internal/system/utils"
)

const (
	contactHandlerLoggerComponentName = "ContactHandler"
	messageReceived                   = "Message received successfully"
)

// contactHandler is the handler for contact operations.
type contactHandler struct {
	contactService ContactServiceInterface
}

// newContactHandler creates a new instance of contactHandler.
func newContactHandler(contactService ContactServiceInterface) *contactHandler {
	return &contactHandler{
		contactService: contactService,
	}
}

// HandleContactRequest handles a contact form submission. The body may be JSON or form encoded.
func (h *contactHandler) HandleContactRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, contactHandlerLoggerComponentName))

	request, err := parseContactRequest(r)
	if err != nil {
		logger.Debug("Failed to parse contact request", log.Error(err))
		utils.WriteServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	if svcErr := h.contactService.SubmitMessage(context.WithoutCancel(r.Context()), *request); svcErr != nil {
		utils.WriteServiceErrorResponse(w, svcErr)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, ContactResponse{Message: messageReceived})
}

// parseContactRequest reads the contact fields from a form or JSON body. An empty body yields an
// empty request so that it fails field validation.
func parseContactRequest(r *http.Request) (*ContactRequest, error) {
	if utils.IsFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return &ContactRequest{
			Name:    r.PostForm.Get("name"),
			Email:   r.PostForm.Get("email"),
			Message: r.PostForm.Get("message"),
		}, nil
	}
	request, err := utils.DecodeJSONBody[ContactRequest](r)
	if errors.Is(err, utils.ErrEmptyRequestBody) {
		return &ContactRequest{}, nil
	}
	return request, err
}
