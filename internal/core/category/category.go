// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package category manages the admin-curated list of article categories.
package category

import "time"

const (
	FieldTitle = "title"

	MinTitleLength = 3
	MaxTitleLength = 255
)

// Category groups articles by subject. Titles are unique.
type Category struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
