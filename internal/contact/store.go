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
	"fmt"

	"github.com/asgardeo/portfolio/internal/system/database/provider"
)

// contactStoreInterface defines the interface for contact store operations.
type contactStoreInterface interface {
	CreateContactMessage(ctx context.Context, message ContactMessage) error
}

// contactStore is the default implementation of contactStoreInterface.
type contactStore struct {
	dbProvider provider.DBProviderInterface
}

// newContactStore creates a new instance of contactStore.
func newContactStore(dbProvider provider.DBProviderInterface) contactStoreInterface {
	return &contactStore{
		dbProvider: dbProvider,
	}
}

// CreateContactMessage inserts a contact message.
func (s *contactStore) CreateContactMessage(ctx context.Context, message ContactMessage) error {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(ctx, queryCreateContactMessage, message.Name, message.Email, message.Message,
		message.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}
