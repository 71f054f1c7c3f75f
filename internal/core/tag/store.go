// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import "context"

// # Tag Data Access

// Repository defines the data access contract for tags.
type Repository interface {

	/*
		FindOrCreate returns the tag with the given canonical name, inserting it
		first when it does not exist. Must be safe under concurrent callers.

		Parameters:
		  - context: context.Context
		  - name: string (canonical)

		Returns:
		  - *Tag: Existing or freshly created tag
		  - error: Storage failures
	*/
	FindOrCreate(context context.Context, name string) (*Tag, error)

	/*
		FindByName returns the tag with the given canonical name.

		Parameters:
		  - context: context.Context
		  - name: string (canonical)

		Returns:
		  - *Tag: Hydrated entity
		  - error: apperr.NotFound if missing
	*/
	FindByName(context context.Context, name string) (*Tag, error)

	/*
		List returns every tag with its ready-article count, ordered by name.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Tag: All tags
		  - error: Storage failures
	*/
	List(context context.Context) ([]*Tag, error)
}
