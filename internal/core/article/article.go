// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package article defines the article aggregate and its publication lifecycle.

An article is written as a Draft, composed of numbered sections, and switched
to Ready once its sections form a consecutive run starting at 1.

Core Responsibility:

  - Readiness: The Draft/Ready state machine and its structural preconditions.
  - Gate: While Ready, the article and its sections are frozen.
  - Ownership: Only the author may toggle readiness or edit the content.

Ready articles are the only ones visible to readers.
*/
package article

import (
	"time"

	"github.com/taibuivan/yomira-press/internal/core/tag"
	"github.com/taibuivan/yomira-press/internal/platform/validate"
)

// # Field Names

const (
	FieldTitle      = "title"
	FieldCategoryID = "category_id"
	FieldOnSuccess  = "on_success"
)

// # Constraints

const (
	MinTitleLength = 5
	MaxTitleLength = 255
)

// # Domain Entities

// Article is a titled, categorized collection of sections.
type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	AuthorID    string     `json:"author_id"`
	CategoryID  string     `json:"category_id"`
	IsReady     bool       `json:"is_ready"`
	Tags        []*tag.Tag `json:"tags"`
	PublishedAt time.Time  `json:"published_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsAuthoredBy reports whether userID wrote the article.
func (article *Article) IsAuthoredBy(userID string) bool {
	return userID != "" && article.AuthorID == userID
}

// VisibleTo reports whether the viewer may read the article.
// Drafts are private to their author; viewerID is empty for anonymous readers.
func (article *Article) VisibleTo(viewerID string) bool {
	return article.IsReady || article.IsAuthoredBy(viewerID)
}

// # Redirect Targets

// RedirectTarget names where a client should go after a successful update.
type RedirectTarget string

const (
	// RedirectArticle returns to the article page.
	RedirectArticle RedirectTarget = "article"

	// RedirectSections returns to the article's section list.
	RedirectSections RedirectTarget = "sections"

	// RedirectDashboard returns to the author's own article list.
	RedirectDashboard RedirectTarget = "dashboard"
)

// Validate records an error on [FieldOnSuccess] unless t is empty or a
// recognised [RedirectTarget].
func (t RedirectTarget) Validate(validator *validate.Validator) *validate.Validator {
	if t == "" {
		return validator
	}
	return validator.OneOf(FieldOnSuccess, string(t),
		string(RedirectArticle), string(RedirectSections), string(RedirectDashboard))
}

// Location resolves the target into an API path for the given article.
// An empty target behaves like [RedirectArticle].
func (t RedirectTarget) Location(articleID string) string {
	switch t {
	case RedirectSections:
		return "/api/v1/articles/" + articleID + "/sections"
	case RedirectDashboard:
		return "/api/v1/me/articles"
	default:
		return "/api/v1/articles/" + articleID
	}
}

// # Inputs & Filters

// Draft holds the fields of a new article. Tags is the raw comma-separated
// string typed by the author.
type Draft struct {
	Title      string
	CategoryID string
	Tags       string
}

// Patch holds a partial article update. Nil fields are left untouched.
type Patch struct {
	Title      *string
	CategoryID *string
	Tags       *string
}

// Filter narrows article listings. Zero values disable a criterion.
type Filter struct {
	AuthorID   string
	CategoryID string
	TagName    string
	Query      string

	// IncludeDrafts lists drafts too. Only used for an author's own listing.
	IncludeDrafts bool
}
