// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package section manages the numbered parts an article is composed of.

Within one article every section number and every section title is unique.
The checks run in the service before anything is written; the unique
constraints on core.section catch whatever slips through concurrently.

Section writes are refused while the owning article is Ready.
*/
package section

import "time"

// # Field Names

const (
	FieldTitle     = "title"
	FieldNumber    = "number"
	FieldContent   = "content"
	FieldSectionID = "section_id"

	// FieldValid is the key of the dry-run validation response.
	FieldValid = "valid"
)

// # Constraints

const (
	MinTitleLength = 5
	MaxTitleLength = 255

	// MinNumber and MaxNumber bound a section number (SMALLINT column).
	MinNumber = 1
	MaxNumber = 32767
)

// # Domain Entities

// Section is one numbered part of an article. Content is Markdown;
// ContentHTML and Outline are derived on read.
type Section struct {
	ID          string    `json:"id"`
	ArticleID   string    `json:"article_id"`
	Title       string    `json:"title"`
	Number      int       `json:"number"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html,omitempty"`
	Outline     []Heading `json:"outline,omitempty"`
	Slug        string    `json:"slug"`
	PublishedAt time.Time `json:"published_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Candidate is the part of a section subject to ordering checks.
type Candidate struct {
	Title  string
	Number int
}

// Input holds the fields of a new section.
type Input struct {
	Title   string
	Number  int
	Content string
}

// Patch holds a partial section update. Nil fields are left untouched.
type Patch struct {
	Title   *string
	Number  *int
	Content *string
}
