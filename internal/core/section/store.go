// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import "context"

// # Section Data Access

// Repository defines the data access contract for sections. Every lookup is
// scoped to an article.
type Repository interface {

	/*
		ListByArticle returns the sections of an article ordered by number.

		Returns:
		  - []*Section: Possibly empty
		  - error: Storage failures
	*/
	ListByArticle(context context.Context, articleID string) ([]*Section, error)

	/*
		FindByID returns a section of the given article.

		Returns:
		  - *Section: Hydrated entity
		  - error: ErrNotFound if missing or owned by another article
	*/
	FindByID(context context.Context, articleID, sectionID string) (*Section, error)

	/*
		FindBySlug returns the lowest numbered section of an article with the slug.

		Returns:
		  - *Section: Hydrated entity
		  - error: ErrNotFound if missing
	*/
	FindBySlug(context context.Context, articleID, slug string) (*Section, error)

	/*
		Create inserts a section.

		Description: Takes a shared lock on the owning article and refuses the
		write with ErrArticleReady if the article is Ready.

		Returns:
		  - error: ErrArticleReady, CONFLICT on a duplicate number or title
	*/
	Create(context context.Context, section *Section) error

	/*
		Update writes title, number, content and slug of a section under the
		same lock as [Repository.Create].

		Returns:
		  - error: ErrArticleReady, ErrNotFound, CONFLICT
	*/
	Update(context context.Context, section *Section) error

	/*
		Delete removes a section under the same lock as [Repository.Create].

		Returns:
		  - error: ErrArticleReady, ErrNotFound
	*/
	Delete(context context.Context, articleID, sectionID string) error
}
