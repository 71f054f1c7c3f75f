// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/yomira-press/internal/core/article"
	"github.com/taibuivan/yomira-press/internal/platform/apperr"
	"github.com/taibuivan/yomira-press/internal/platform/database/schema"
	"github.com/taibuivan/yomira-press/internal/platform/dberr"
	"github.com/taibuivan/yomira-press/internal/platform/postgres"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed section store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func selectSection() string {
	return fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s FROM %s`,
		schema.CoreSection.ID,
		schema.CoreSection.ArticleID,
		schema.CoreSection.Title,
		schema.CoreSection.Number,
		schema.CoreSection.Content,
		schema.CoreSection.Slug,
		schema.CoreSection.PublishedAt,
		schema.CoreSection.UpdatedAt,
		schema.CoreSection.Table,
	)
}

func scanSection(row pgx.Row) (*Section, error) {
	var section Section
	err := row.Scan(
		&section.ID,
		&section.ArticleID,
		&section.Title,
		&section.Number,
		&section.Content,
		&section.Slug,
		&section.PublishedAt,
		&section.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// # Reads

// ListByArticle returns the sections of an article ordered by number.
func (repository *PostgresRepository) ListByArticle(context context.Context, articleID string) ([]*Section, error) {
	query := selectSection() + fmt.Sprintf(" WHERE %s = $1 ORDER BY %s ASC",
		schema.CoreSection.ArticleID, schema.CoreSection.Number)

	rows, err := repository.pool.Query(context, query, articleID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sections")
	}
	defer rows.Close()

	sections := make([]*Section, 0)
	for rows.Next() {
		section, err := scanSection(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_section")
		}
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_sections")
	}

	return sections, nil
}

// FindByID returns a section of the given article.
func (repository *PostgresRepository) FindByID(context context.Context, articleID, sectionID string) (*Section, error) {
	query := selectSection() + fmt.Sprintf(" WHERE %s = $1 AND %s = $2",
		schema.CoreSection.ArticleID, schema.CoreSection.ID)

	return repository.findOne(context, "find_section", query, articleID, sectionID)
}

// FindBySlug returns the lowest numbered section of an article with the slug.
func (repository *PostgresRepository) FindBySlug(context context.Context, articleID, slug string) (*Section, error) {
	query := selectSection() + fmt.Sprintf(" WHERE %s = $1 AND %s = $2 ORDER BY %s ASC LIMIT 1",
		schema.CoreSection.ArticleID, schema.CoreSection.Slug, schema.CoreSection.Number)

	return repository.findOne(context, "find_section_by_slug", query, articleID, slug)
}

func (repository *PostgresRepository) findOne(context context.Context, action, query string, args ...any) (*Section, error) {
	section, err := scanSection(repository.pool.QueryRow(context, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Section")
		}
		return nil, dberr.Wrap(err, action)
	}
	return section, nil
}

// # Writes

// Create inserts a section while holding a shared lock on its article.
func (repository *PostgresRepository) Create(context context.Context, section *Section) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		schema.CoreSection.Table,
		schema.CoreSection.ID,
		schema.CoreSection.ArticleID,
		schema.CoreSection.Title,
		schema.CoreSection.Number,
		schema.CoreSection.Content,
		schema.CoreSection.Slug,
		schema.CoreSection.PublishedAt,
		schema.CoreSection.UpdatedAt,
	)

	return postgres.WithTx(context, repository.pool, func(tx pgx.Tx) error {
		if err := article.LockMutable(context, tx, section.ArticleID); err != nil {
			return err
		}

		_, err := tx.Exec(context, query,
			section.ID,
			section.ArticleID,
			section.Title,
			section.Number,
			section.Content,
			section.Slug,
			section.PublishedAt,
			section.UpdatedAt,
		)
		return dberr.Wrap(err, "create_section")
	})
}

// Update writes a section while holding a shared lock on its article.
func (repository *PostgresRepository) Update(context context.Context, section *Section) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $5 AND %s = $6
		RETURNING %s
	`,
		schema.CoreSection.Table,
		schema.CoreSection.Title,
		schema.CoreSection.Number,
		schema.CoreSection.Content,
		schema.CoreSection.Slug,
		schema.CoreSection.UpdatedAt,
		schema.CoreSection.ArticleID,
		schema.CoreSection.ID,
		schema.CoreSection.UpdatedAt,
	)

	return postgres.WithTx(context, repository.pool, func(tx pgx.Tx) error {
		if err := article.LockMutable(context, tx, section.ArticleID); err != nil {
			return err
		}

		err := tx.QueryRow(context, query,
			section.Title,
			section.Number,
			section.Content,
			section.Slug,
			section.ArticleID,
			section.ID,
		).Scan(&section.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Section")
		}
		return dberr.Wrap(err, "update_section")
	})
}

// Delete removes a section while holding a shared lock on its article.
func (repository *PostgresRepository) Delete(context context.Context, articleID, sectionID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.CoreSection.Table, schema.CoreSection.ArticleID, schema.CoreSection.ID)

	return postgres.WithTx(context, repository.pool, func(tx pgx.Tx) error {
		if err := article.LockMutable(context, tx, articleID); err != nil {
			return err
		}

		result, err := tx.Exec(context, query, articleID, sectionID)
		if err != nil {
			return dberr.Wrap(err, "delete_section")
		}
		if result.RowsAffected() == 0 {
			return apperr.NotFound("Section")
		}
		return nil
	})
}
