// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/yomira-press/internal/platform/apperr"
	"github.com/taibuivan/yomira-press/internal/platform/database/schema"
	"github.com/taibuivan/yomira-press/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed category store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// List returns every category ordered by title.
func (repository *PostgresRepository) List(context context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.CoreCategory.ID, schema.CoreCategory.Title, schema.CoreCategory.CreatedAt,
		schema.CoreCategory.Table, schema.CoreCategory.Title)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}

	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Category, error) {
		var category Category
		err := row.Scan(&category.ID, &category.Title, &category.CreatedAt)
		return &category, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_categories")
	}

	return categories, nil
}

// FindByID returns a category or ErrNotFound.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CoreCategory.ID, schema.CoreCategory.Title, schema.CoreCategory.CreatedAt,
		schema.CoreCategory.Table, schema.CoreCategory.ID)

	var category Category
	err := repository.pool.QueryRow(context, query, id).Scan(&category.ID, &category.Title, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Category")
		}
		return nil, dberr.Wrap(err, "find_category")
	}

	return &category, nil
}

// Exists reports whether a category with the id exists.
func (repository *PostgresRepository) Exists(context context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CoreCategory.Table, schema.CoreCategory.ID)

	var exists bool
	if err := repository.pool.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "category_exists")
	}

	return exists, nil
}

// Create inserts a category.
func (repository *PostgresRepository) Create(context context.Context, category *Category) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.CoreCategory.Table,
		schema.CoreCategory.ID, schema.CoreCategory.Title, schema.CoreCategory.CreatedAt)

	_, err := repository.pool.Exec(context, query, category.ID, category.Title, category.CreatedAt)
	return dberr.Wrap(err, "create_category")
}

// Delete removes a category. Articles reference categories with ON DELETE
// RESTRICT, so a category in use fails with a foreign-key violation.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreCategory.Table, schema.CoreCategory.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_category")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Category")
	}

	return nil
}
