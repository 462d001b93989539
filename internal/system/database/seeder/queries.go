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

import dbmodel "github.com/asgardeo/portfolio/internal/system/database/model"

// schemaQueries bootstrap the portfolio tables when they do not exist yet.
var schemaQueries = []dbmodel.DBQuery{
	{
		ID: "SCHEMA_CREATE_PROFILES",
		SQLiteQuery: `CREATE TABLE IF NOT EXISTS profiles (id INTEGER PRIMARY KEY, full_name TEXT NOT NULL, ` +
			`title TEXT, bio TEXT, email TEXT, location TEXT, github_url TEXT, linkedin_url TEXT, website_url TEXT)`,
		PostgresQuery: `CREATE TABLE IF NOT EXISTS profiles (id SERIAL PRIMARY KEY, full_name VARCHAR(255) NOT NULL, ` +
			`title VARCHAR(255), bio TEXT, email VARCHAR(255), location VARCHAR(255), github_url VARCHAR(255), ` +
			`linkedin_url VARCHAR(255), website_url VARCHAR(255))`,
	},
	{
		ID: "SCHEMA_CREATE_EXPERIENCES",
		SQLiteQuery: `CREATE TABLE IF NOT EXISTS experiences (id INTEGER PRIMARY KEY, position TEXT NOT NULL, ` +
			`company TEXT NOT NULL, location TEXT, start_date DATE NOT NULL, end_date DATE, ` +
			`is_current BOOLEAN DEFAULT 0, description TEXT)`,
		PostgresQuery: `CREATE TABLE IF NOT EXISTS experiences (id SERIAL PRIMARY KEY, position VARCHAR(255) NOT NULL, ` +
			`company VARCHAR(255) NOT NULL, location VARCHAR(255), start_date DATE NOT NULL, end_date DATE, ` +
			`is_current BOOLEAN DEFAULT FALSE, description TEXT)`,
	},
	{
		ID:            "SCHEMA_CREATE_SKILLS",
		SQLiteQuery:   `CREATE TABLE IF NOT EXISTS skills (id INTEGER PRIMARY KEY, category TEXT NOT NULL, name TEXT NOT NULL)`,
		PostgresQuery: `CREATE TABLE IF NOT EXISTS skills (id SERIAL PRIMARY KEY, category VARCHAR(100) NOT NULL, name VARCHAR(100) NOT NULL)`,
	},
	{
		ID: "SCHEMA_CREATE_PROJECTS",
		SQLiteQuery: `CREATE TABLE IF NOT EXISTS projects (id INTEGER PRIMARY KEY, title TEXT NOT NULL, ` +
			`description TEXT, technologies TEXT, github_url TEXT, demo_url TEXT, year INTEGER)`,
		PostgresQuery: `CREATE TABLE IF NOT EXISTS projects (id SERIAL PRIMARY KEY, title VARCHAR(255) NOT NULL, ` +
			`description TEXT, technologies TEXT, github_url VARCHAR(255), demo_url VARCHAR(255), year INTEGER)`,
	},
	{
		ID: "SCHEMA_CREATE_CERTIFICATES",
		SQLiteQuery: `CREATE TABLE IF NOT EXISTS certificates (id INTEGER PRIMARY KEY, title TEXT NOT NULL, ` +
			`issuer TEXT, date DATE, credential_url TEXT)`,
		PostgresQuery: `CREATE TABLE IF NOT EXISTS certificates (id SERIAL PRIMARY KEY, title VARCHAR(255) NOT NULL, ` +
			`issuer VARCHAR(255), date DATE, credential_url VARCHAR(255))`,
	},
	{
		ID: "SCHEMA_CREATE_CONTACT_MESSAGES",
		SQLiteQuery: `CREATE TABLE IF NOT EXISTS contact_messages (id INTEGER PRIMARY KEY AUTOINCREMENT, ` +
			`name TEXT NOT NULL, email TEXT NOT NULL, message TEXT NOT NULL, created_at TIMESTAMP NOT NULL)`,
		PostgresQuery: `CREATE TABLE IF NOT EXISTS contact_messages (id SERIAL PRIMARY KEY, name VARCHAR(255) NOT NULL, ` +
			`email VARCHAR(255) NOT NULL, message TEXT NOT NULL, created_at TIMESTAMP NOT NULL DEFAULT NOW())`,
	},
	{
		ID: "SCHEMA_CREATE_PAGE_VIEWS",
		SQLiteQuery: `CREATE TABLE IF NOT EXISTS page_views (id INTEGER PRIMARY KEY AUTOINCREMENT, page TEXT NOT NULL, ` +
			`referrer TEXT, ip_address TEXT, user_agent TEXT, created_at TIMESTAMP NOT NULL)`,
		PostgresQuery: `CREATE TABLE IF NOT EXISTS page_views (id SERIAL PRIMARY KEY, page VARCHAR(255) NOT NULL, ` +
			`referrer TEXT, ip_address VARCHAR(64), user_agent TEXT, created_at TIMESTAMP NOT NULL DEFAULT NOW())`,
	},
}

var (
	queryInsertProfile = dbmodel.DBQuery{
		ID: "SEED_INSERT_PROFILE",
		SQLiteQuery: `INSERT OR IGNORE INTO profiles (id, full_name, title, bio, email, location, github_url, ` +
			`linkedin_url, website_url) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		PostgresQuery: `INSERT INTO profiles (id, full_name, title, bio, email, location, github_url, linkedin_url, ` +
			`website_url) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) ON CONFLICT (id) DO NOTHING`,
	}

	queryInsertExperience = dbmodel.DBQuery{
		ID: "SEED_INSERT_EXPERIENCE",
		SQLiteQuery: `INSERT OR IGNORE INTO experiences (id, position, company, location, start_date, end_date, ` +
			`is_current, description) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		PostgresQuery: `INSERT INTO experiences (id, position, company, location, start_date, end_date, is_current, ` +
			`description) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ON CONFLICT (id) DO NOTHING`,
	}

	queryInsertSkill = dbmodel.DBQuery{
		ID:            "SEED_INSERT_SKILL",
		SQLiteQuery:   `INSERT OR IGNORE INTO skills (id, category, name) VALUES (?, ?, ?)`,
		PostgresQuery: `INSERT INTO skills (id, category, name) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
	}

	queryInsertProject = dbmodel.DBQuery{
		ID: "SEED_INSERT_PROJECT",
		SQLiteQuery: `INSERT OR IGNORE INTO projects (id, title, description, technologies, github_url, demo_url, ` +
			`year) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		PostgresQuery: `INSERT INTO projects (id, title, description, technologies, github_url, demo_url, year) ` +
			`VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (id) DO NOTHING`,
	}

	queryInsertCertificate = dbmodel.DBQuery{
		ID:            "SEED_INSERT_CERTIFICATE",
		SQLiteQuery:   `INSERT OR IGNORE INTO certificates (id, title, issuer, date, credential_url) VALUES (?, ?, ?, ?, ?)`,
		PostgresQuery: `INSERT INTO certificates (id, title, issuer, date, credential_url) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`,
	}
)
