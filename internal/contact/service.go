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

// Package contact handles the messages submitted through the portfolio contact form.
package contact

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/asgardeo/portfolio/internal/system/error/serviceerror"
	"github.com/asgardeo/portfolio/internal/system/log"
	"github.com/asgardeo/portfolio/internal/system/utils"
)

const contactLoggerComponentName = "ContactService"

// ContactServiceInterface defines the interface for the contact service.
type ContactServiceInterface interface {
	SubmitMessage(ctx context.Context, request ContactRequest) *serviceerror.ServiceError
}

// contactService is the default implementation of the ContactServiceInterface.
type contactService struct {
	store    contactStoreInterface
	validate *validator.Validate
	now      func() time.Time
}

// newContactService creates a new instance of contactService.
func newContactService(store contactStoreInterface) ContactServiceInterface {
	return &contactService{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// SubmitMessage validates and stores a contact message. Nothing is stored when a field is blank.
func (cs *contactService) SubmitMessage(ctx context.Context, request ContactRequest) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, contactLoggerComponentName))

	sanitized := ContactRequest{
		Name:    utils.SanitizeString(request.Name),
		Email:   utils.SanitizeString(request.Email),
		Message: utils.SanitizeString(request.Message),
	}
	if err := cs.validate.Struct(sanitized); err != nil {
		logger.Debug("Rejected contact message with missing fields", log.Error(err))
		return &ErrorMissingFields
	}

	message := ContactMessage{
		Name:      sanitized.Name,
		Email:     sanitized.Email,
		Message:   sanitized.Message,
		CreatedAt: cs.now().UTC(),
	}
	if err := cs.store.CreateContactMessage(ctx, message); err != nil {
		logger.Error("Failed to store contact message", log.Error(err))
		return &ErrorMessageSendFailed
	}

	logger.Info("Contact message received", log.String("email", log.MaskString(message.Email)))
	return nil
}
