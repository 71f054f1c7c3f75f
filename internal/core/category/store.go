// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import "context"

// Repository defines the data access contract for categories.
type Repository interface {
	// List returns every category ordered by title.
	List(context context.Context) ([]*Category, error)

	// FindByID returns a category or ErrNotFound.
	FindByID(context context.Context, id string) (*Category, error)

	// Exists reports whether a category with the id exists.
	Exists(context context.Context, id string) (bool, error)

	// Create inserts a category. A duplicate title yields CONFLICT.
	Create(context context.Context, category *Category) error

	// Delete removes a category. A category still used by articles yields
	// CONFLICT; a missing one ErrNotFound.
	Delete(context context.Context, id string) error
}
