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

import dbmodel "github.com/asgardeo/portfolio/internal/system/database/model"

// popularPagesLimit is the number of pages reported in the summary.
const popularPagesLimit = 5

var (
	// queryCreatePageView stores a page view.
	queryCreatePageView = dbmodel.DBQuery{
		ID: "ANQ-ANALYTICS-001",
		PostgresQuery: `INSERT INTO page_views (page, referrer, ip_address, user_agent, created_at) ` +
			`VALUES ($1, $2, $3, $4, $5)`,
		SQLiteQuery: `INSERT INTO page_views (page, referrer, ip_address, user_agent, created_at) ` +
			`VALUES (?, ?, ?, ?, ?)`,
	}

	// queryCountPageViews counts every page view.
	queryCountPageViews = dbmodel.DBQuery{
		ID:    "ANQ-ANALYTICS-002",
		Query: `SELECT COUNT(*) AS total FROM page_views`,
	}

	// queryCountUniqueVisitors counts the distinct client addresses.
	queryCountUniqueVisitors = dbmodel.DBQuery{
		ID:    "ANQ-ANALYTICS-003",
		Query: `SELECT COUNT(DISTINCT ip_address) AS total FROM page_views`,
	}

	// queryGetPopularPages retrieves the most viewed pages. Views without a page are not ranked.
	queryGetPopularPages = dbmodel.DBQuery{
		ID:            "ANQ-ANALYTICS-004",
		PostgresQuery: `SELECT page, COUNT(*) AS views FROM page_views WHERE page IS NOT NULL ` +
			`GROUP BY page ORDER BY views DESC LIMIT $1`,
		SQLiteQuery: `SELECT page, COUNT(*) AS views FROM page_views WHERE page IS NOT NULL ` +
			`GROUP BY page ORDER BY views DESC LIMIT ?`,
	}
)
