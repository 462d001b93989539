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

import "time"

// PageViewRequest represents a page view reported by the frontend.
type PageViewRequest struct {
	Page     string `json:"page" validate:"required"`
	Referrer string `json:"referrer"`
}

// PageViewResponse is the response body of a recorded page view.
type PageViewResponse struct {
	Success bool `json:"success"`
}

// PageView is a page view as persisted.
type PageView struct {
	Page      string
	Referrer  string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
}

// PopularPage is a page with its number of views.
type PopularPage struct {
	Page  string `json:"page"`
	Views int64  `json:"views"`
}

// Summary aggregates the recorded page views.
type Summary struct {
	TotalViews     int64         `json:"totalViews"`
	UniqueVisitors int64         `json:"uniqueVisitors"`
	PopularPages   []PopularPage `json:"popularPages"`
}
