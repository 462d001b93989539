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

// getSeedData returns the sample portfolio data used to bootstrap a fresh database.
func getSeedData() seedData {
	return seedData{
		Profiles: []ProfileData{
			{
				ID:          1,
				FullName:    "Alex Chen",
				Title:       "Full Stack Developer",
				Bio:         "Building scalable web applications with modern frameworks and cloud infrastructure.",
				Email:       "alex.chen@email.com",
				Location:    "Jakarta, Indonesia",
				GithubURL:   "https://github.com/alexchen",
				LinkedinURL: "https://linkedin.com/in/alexchen",
				WebsiteURL:  "https://alexchen.dev",
			},
		},
		Experiences: []ExperienceData{
			{
				ID:        1,
				Position:  "Software Engineer",
				Company:   "TechFlow Solutions",
				Location:  "Jakarta, Indonesia",
				StartDate: "2022-01-01",
				IsCurrent: true,
				Description: "Leading development of cloud-based applications using modern frameworks and " +
					"microservices architecture.",
			},
			{
				ID:        2,
				Position:  "Full Stack Developer",
				Company:   "Digital Innovations Co.",
				Location:  "Bandung, Indonesia",
				StartDate: "2020-01-01",
				EndDate:   stringPtr("2022-01-01"),
				Description: "Developed and maintained web applications, focusing on user experience and " +
					"performance optimization.",
			},
			{
				ID:          3,
				Position:    "Junior Developer",
				Company:     "StartUp Hub",
				Location:    "Surabaya, Indonesia",
				StartDate:   "2019-01-01",
				EndDate:     stringPtr("2020-01-01"),
				Description: "Contributed to various client projects, gaining experience in full-stack development.",
			},
		},
		Skills: skillRows(map[string][]string{
			"Frontend":    {"React", "Next.js", "Vue.js", "TypeScript", "Tailwind CSS"},
			"Backend":     {"Node.js", "Python", "Laravel", "Express.js", "PostgreSQL"},
			"Tools":       {"Git", "Docker", "AWS", "Figma", "VS Code"},
			"Soft Skills": {"Problem Solving", "Team Collaboration", "Agile Methodology"},
		}, []string{"Frontend", "Backend", "Tools", "Soft Skills"}),
		Projects: []ProjectData{
			{
				ID:    1,
				Title: "SmartInventory System",
				Description: "Intelligent inventory management system with predictive analytics and " +
					"automated reordering.",
				Technologies: "Vue.js, Laravel, MySQL, Redis",
				Year:         2023,
			},
			{
				ID:    2,
				Title: "HealthConnect Telemedicine",
				Description: "Secure telemedicine application connecting patients with healthcare providers " +
					"through video consultations.",
				Technologies: "Next.js, WebRTC, PostgreSQL, Stripe",
				Year:         2023,
			},
			{
				ID:    3,
				Title: "EcoTrack - Sustainability Platform",
				Description: "A comprehensive platform for tracking environmental impact and carbon footprint " +
					"with real-time analytics.",
				Technologies: "React, Node.js, MongoDB, Chart.js",
				GithubURL:    "https://github.com/alexchen/ecotrack",
				Year:         2024,
			},
		},
		Certificates: []CertificateData{
			{ID: 1, Title: "AWS Certified Solutions Architect", Issuer: "Amazon Web Services", Date: "2023-01-01",
				CredentialURL: "https://aws.amazon.com/verification/AWS-SA-2023-8472"},
			{ID: 2, Title: "Professional Scrum Master I", Issuer: "Scrum.org", Date: "2022-06-01",
				CredentialURL: "https://www.scrum.org/certificates/PSM-I-394857"},
			{ID: 3, Title: "React - The Complete Guide", Issuer: "Udemy", Date: "2022-01-01",
				CredentialURL: "https://www.udemy.com/certificate/UC-f8e9a7c4"},
			{ID: 4, Title: "Google Cloud Professional", Issuer: "Google Cloud", Date: "2021-01-01",
				CredentialURL: "https://google.accredible.com/GCP-2021-4729"},
		},
	}
}

// skillRows flattens skills grouped by category into rows with stable ids.
func skillRows(byCategory map[string][]string, order []string) []SkillData {
	var rows []SkillData
	id := 1
	for _, category := range order {
		for _, name := range byCategory[category] {
			rows = append(rows, SkillData{ID: id, Category: category, Name: name})
			id++
		}
	}
	return rows
}

func stringPtr(s string) *string {
	return &s
}
