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

import dbmodel "github.com/asgardeo/portfolio/internal/system/database/model"

var (
	// queryGetProfileByID retrieves a profile by its id.
	queryGetProfileByID = dbmodel.DBQuery{
		ID:            "PRQ-PORTFOLIO-001",
		PostgresQuery: `SELECT * FROM profiles WHERE id = $1`,
		SQLiteQuery:   `SELECT * FROM profiles WHERE id = ?`,
	}

	// queryGetExperiences retrieves the experiences, most recent first.
	queryGetExperiences = dbmodel.DBQuery{
		ID:    "PRQ-PORTFOLIO-002",
		Query: `SELECT * FROM experiences ORDER BY start_date DESC`,
	}

	// queryGetSkills retrieves the skills ordered by category and name.
	queryGetSkills = dbmodel.DBQuery{
		ID:    "PRQ-PORTFOLIO-003",
		Query: `SELECT category, name FROM skills ORDER BY category, name`,
	}

	// queryGetProjects retrieves the projects, newest first.
	queryGetProjects = dbmodel.DBQuery{
		ID:    "PRQ-PORTFOLIO-004",
		Query: `SELECT * FROM projects ORDER BY year DESC, id DESC`,
	}

	// queryGetCertificates retrieves the certificates, most recent first.
	queryGetCertificates = dbmodel.DBQuery{
		ID:    "PRQ-PORTFOLIO-005",
		Query: `SELECT * FROM certificates ORDER BY date DESC`,
	}
)
