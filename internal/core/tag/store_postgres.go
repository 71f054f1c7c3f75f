// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

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
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed tag store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
FindOrCreate upserts a tag by name in a single statement.

Description: The no-op DO UPDATE makes RETURNING yield the existing row on
conflict, so two concurrent callers with the same name both receive the same
id and neither sees a unique violation.
*/
func (repository *PostgresRepository) FindOrCreate(context context.Context, name string) (*Tag, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s) VALUES ($1)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s, %s
	`,
		schema.CoreTag.Table, schema.CoreTag.Name,
		schema.CoreTag.Name, schema.CoreTag.Name, schema.CoreTag.Name,
		schema.CoreTag.ID, schema.CoreTag.Name,
	)

	tag := &Tag{}
	if err := repository.db.QueryRow(context, query, name).Scan(&tag.ID, &tag.Name); err != nil {
		return nil, dberr.Wrap(err, "find_or_create_tag")
	}

	return tag, nil
}

// FindByName returns a tag by its canonical name.
func (repository *PostgresRepository) FindByName(context context.Context, name string) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.CoreTag.ID, schema.CoreTag.Name, schema.CoreTag.Table, schema.CoreTag.Name)

	tag := &Tag{}
	err := repository.db.QueryRow(context, query, name).Scan(&tag.ID, &tag.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Tag")
		}
		return nil, dberr.Wrap(err, "find_tag_by_name")
	}

	return tag, nil
}

// List returns all tags with the number of ready articles that use them.
func (repository *PostgresRepository) List(context context.Context) ([]*Tag, error) {
	query := fmt.Sprintf(`
		SELECT t.%s, t.%s, COUNT(a.%s) AS article_count
		FROM %s t
		LEFT JOIN %s link ON link.%s = t.%s
		LEFT JOIN %s a ON a.%s = link.%s AND a.%s = TRUE
		GROUP BY t.%s, t.%s
		ORDER BY t.%s ASC
	`,
		schema.CoreTag.ID, schema.CoreTag.Name, schema.CoreArticle.ID,
		schema.CoreTag.Table,
		schema.ArticleTag.Table, schema.ArticleTag.TagID, schema.CoreTag.ID,
		schema.CoreArticle.Table, schema.CoreArticle.ID, schema.ArticleTag.ArticleID, schema.CoreArticle.IsReady,
		schema.CoreTag.ID, schema.CoreTag.Name,
		schema.CoreTag.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		tag := &Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.ArticleCount); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, tag)
	}

	return tags, dberr.Wrap(rows.Err(), "list_tags")
}
