// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import "context"

// # Article Data Access

// ReadinessCheck is evaluated against the section numbers read under the
// article's row lock. A non-nil error aborts the transition.
type ReadinessCheck func(numbers []int) error

// Repository defines the data access contract for articles.
type Repository interface {

	/*
		Create persists a new article and links its tags atomically.

		Parameters:
		  - context: context.Context
		  - article: *Article (ID, timestamps are set by the caller or the store)
		  - tagIDs: []int

		Returns:
		  - error: Storage failures
	*/
	Create(context context.Context, article *Article, tagIDs []int) error

	/*
		Update writes the title and category of an article and, when tagIDs is
		not nil, replaces its tag links.

		Description: The article row is locked first and the update is refused
		with [ErrArticleReady] if it became Ready in the meantime.

		Parameters:
		  - context: context.Context
		  - article: *Article (UpdatedAt is refreshed)
		  - tagIDs: []int (nil leaves tags untouched)

		Returns:
		  - error: ErrNotFound, ErrArticleReady or storage failures
	*/
	Update(context context.Context, article *Article, tagIDs []int) error

	/*
		Delete removes an article. Sections and tag links cascade.

		Returns:
		  - error: ErrNotFound if the article does not exist
	*/
	Delete(context context.Context, id string) error

	/*
		FindByID returns an article with its tags.

		Returns:
		  - *Article: Hydrated entity
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Article, error)

	/*
		List returns a page of articles matching filter, newest first.

		Returns:
		  - []*Article: Matching articles with tags
		  - int: Total matches
		  - error: Storage failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Article, int, error)

	/*
		SectionNumbers returns the numbers of every section of an article.

		Returns:
		  - []int: Numbers in ascending order
		  - error: Storage failures
	*/
	SectionNumbers(context context.Context, id string) ([]int, error)

	/*
		SetReady flips the readiness flag inside a transaction holding the
		article's row lock.

		Description: When ready is true the section numbers are read under the
		same lock and passed to check; a non-nil result aborts the transition
		without writing anything.

		Parameters:
		  - context: context.Context
		  - id: string
		  - ready: bool
		  - check: ReadinessCheck (ignored when ready is false)

		Returns:
		  - error: ErrNotFound, the check's error, or storage failures
	*/
	SetReady(context context.Context, id string, ready bool, check ReadinessCheck) error
}
