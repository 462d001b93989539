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

package seeder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/portfolio/internal/system/database/model"
	"github.com/asgardeo/portfolio/tests/mocks/databasemock"
)

// SeederTestSuite is the test suite for the seeder package.
type SeederTestSuite struct {
	suite.Suite
	mockDBClient *databasemock.MockDBClient
	seeder       SeederInterface
}

// TestSeederTestSuite runs the test suite.
func TestSeederTestSuite(t *testing.T) {
	suite.Run(t, new(SeederTestSuite))
}

// SetupTest sets up the test suite.
func (suite *SeederTestSuite) SetupTest() {
	suite.mockDBClient = &databasemock.MockDBClient{}
	suite.seeder = NewDBSeeder(suite.mockDBClient)
}

func (suite *SeederTestSuite) TestEnsureSchema() {
	err := suite.seeder.EnsureSchema(context.Background())

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), suite.mockDBClient.ExecuteCalls, len(schemaQueries))
	assert.Equal(suite.T(), "SCHEMA_CREATE_PROFILES", suite.mockDBClient.ExecuteCalls[0].Query.ID)
}

func (suite *SeederTestSuite) TestEnsureSchemaDatabaseError() {
	suite.mockDBClient.MockExecute = func(query model.DBQuery, args ...interface{}) (int64, error) {
		return 0, assert.AnError
	}

	err := suite.seeder.EnsureSchema(context.Background())

	assert.ErrorIs(suite.T(), err, assert.AnError)
	assert.Len(suite.T(), suite.mockDBClient.ExecuteCalls, 1)
}

func (suite *SeederTestSuite) TestSeedInitialDataSuccess() {
	err := suite.seeder.SeedInitialData(context.Background())

	data := getSeedData()
	expected := len(data.Profiles) + len(data.Experiences) + len(data.Skills) + len(data.Projects) +
		len(data.Certificates)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), suite.mockDBClient.ExecuteCalls, expected)

	first := suite.mockDBClient.ExecuteCalls[0]
	assert.Equal(suite.T(), queryInsertProfile.ID, first.Query.ID)
	assert.Equal(suite.T(), 1, first.Args[0])
}

func (suite *SeederTestSuite) TestSeedInitialDataDatabaseError() {
	suite.mockDBClient.MockExecute = func(query model.DBQuery, args ...interface{}) (int64, error) {
		if query.ID == queryInsertSkill.ID {
			return 0, assert.AnError
		}
		return 1, nil
	}

	err := suite.seeder.SeedInitialData(context.Background())

	assert.ErrorIs(suite.T(), err, assert.AnError)
	assert.ErrorContains(suite.T(), err, "failed to seed skills")
}

func (suite *SeederTestSuite) TestGetSeedData() {
	data := getSeedData()

	assert.Len(suite.T(), data.Profiles, 1)
	assert.Equal(suite.T(), 1, data.Profiles[0].ID)
	assert.NotEmpty(suite.T(), data.Experiences)
	assert.NotEmpty(suite.T(), data.Projects)
	assert.NotEmpty(suite.T(), data.Certificates)

	// Skill ids are unique and categories keep their declared order.
	ids := map[int]bool{}
	for _, skill := range data.Skills {
		assert.False(suite.T(), ids[skill.ID])
		ids[skill.ID] = true
	}
	assert.Equal(suite.T(), "Frontend", data.Skills[0].Category)
	assert.Equal(suite.T(), "Soft Skills", data.Skills[len(data.Skills)-1].Category)
}

func (suite *SeederTestSuite) TestNullIfEmpty() {
	assert.Nil(suite.T(), nullIfEmpty(""))
	assert.Equal(suite.T(), "x", nullIfEmpty("x"))
}
