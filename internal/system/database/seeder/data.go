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

// seedData holds all the sample portfolio data to be seeded into the database.
type seedData struct {
	Profiles     []ProfileData
	Experiences  []ExperienceData
	Skills       []SkillData
	Projects     []ProjectData
	Certificates []CertificateData
}

// ProfileData represents a profile row to be seeded.
type ProfileData struct {
	ID          int
	FullName    string
	Title       string
	Bio         string
	Email       string
	Location    string
	GithubURL   string
	LinkedinURL string
	WebsiteURL  string
}

// ExperienceData represents an experience row to be seeded.
type ExperienceData struct {
	ID          int
	Position    string
	Company     string
	Location    string
	StartDate   string
	EndDate     *string
	IsCurrent   bool
	Description string
}

// SkillData represents a skill row to be seeded.
type SkillData struct {
	ID       int
	Category string
	Name     string
}

// ProjectData represents a project row to be seeded.
type ProjectData struct {
	ID           int
	Title        string
	Description  string
	Technologies string
	GithubURL    string
	DemoURL      string
	Year         int
}

// CertificateData represents a certificate row to be seeded.
type CertificateData struct {
	ID            int
	Title         string
	Issuer        string
	Date          string
	CredentialURL string
}
