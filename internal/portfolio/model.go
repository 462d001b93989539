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

import (
	"bytes"
	"encoding/json"
)

// Record is a database row returned to the client as a JSON object keyed by column name.
type Record map[string]interface{}

// Skill is a single skill row.
type Skill struct {
	Category string
	Name     string
}

// SkillGroups holds skill names grouped by category. Categories keep the order in which they were
// first added and names keep their insertion order within a category.
type SkillGroups struct {
	categories []string
	names      map[string][]string
}

// NewSkillGroups groups the given skills by category.
func NewSkillGroups(skills []Skill) *SkillGroups {
	groups := &SkillGroups{names: make(map[string][]string)}
	for _, skill := range skills {
		groups.Add(skill.Category, skill.Name)
	}
	return groups
}

// Add appends a skill name to its category.
func (g *SkillGroups) Add(category, name string) {
	if _, ok := g.names[category]; !ok {
		g.categories = append(g.categories, category)
	}
	g.names[category] = append(g.names[category], name)
}

// Categories returns the categories in insertion order.
func (g *SkillGroups) Categories() []string {
	return g.categories
}

// Names returns the skill names of a category.
func (g *SkillGroups) Names(category string) []string {
	return g.names[category]
}

// MarshalJSON encodes the groups as a JSON object with the categories in insertion order.
func (g *SkillGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range g.categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(g.names[category])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
