// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package tag owns the shared tag vocabulary of the platform.

Tags are identified by their canonical name (lower-case, spaces replaced by
hyphens). They are created lazily the first time an article uses them and are
never deleted by the application.

# Hidden write

[Service.Normalize] and [Service.Resolve] look like lookups but INSERT the
tags that do not exist yet. Callers must treat them as writes.
*/
package tag

// # Domain Entities

// Tag is a canonical, globally shared label attached to articles.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	// ArticleCount is the number of ready articles using the tag (list views only).
	ArticleCount int `json:"article_count,omitempty"`
}

// # Constraints

const (
	// MinNameLength is the minimum rune count of a canonical tag name.
	MinNameLength = 2

	// MaxNameLength matches the core.tag.name column width.
	MaxNameLength = 255
)

// FieldTags is the request field that carries the raw tag string.
const FieldTags = "tags"
