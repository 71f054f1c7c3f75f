// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

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

// NewPostgresRepository constructs a PostgreSQL backed article store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// selectArticle is the shared projection. Tags are folded into a JSON array
// so a single round-trip hydrates the aggregate.
func selectArticle() string {
	return fmt.Sprintf(`
		SELECT
			a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
			COALESCE((
				SELECT json_agg(json_build_object('id', t.%s, 'name', t.%s) ORDER BY t.%s)
				FROM %s t
				JOIN %s link ON link.%s = t.%s
				WHERE link.%s = a.%s
			), '[]') AS tags
		FROM %s a
	`,
		schema.CoreArticle.ID,
		schema.CoreArticle.Title,
		schema.CoreArticle.AuthorID,
		schema.CoreArticle.CategoryID,
		schema.CoreArticle.IsReady,
		schema.CoreArticle.PublishedAt,
		schema.CoreArticle.UpdatedAt,
		schema.CoreTag.ID, schema.CoreTag.Name, schema.CoreTag.Name,
		schema.CoreTag.Table,
		schema.ArticleTag.Table, schema.ArticleTag.TagID, schema.CoreTag.ID,
		schema.ArticleTag.ArticleID, schema.CoreArticle.ID,
		schema.CoreArticle.Table,
	)
}

// scanArticle hydrates an article from a row produced by [selectArticle].
// Extra destinations (such as a window count) are appended to the scan.
func scanArticle(row pgx.Row, extra ...any) (*Article, error) {
	var article Article
	var tagsJSON []byte

	destinations := []any{
		&article.ID,
		&article.Title,
		&article.AuthorID,
		&article.CategoryID,
		&article.IsReady,
		&article.PublishedAt,
		&article.UpdatedAt,
		&tagsJSON,
	}

	if err := row.Scan(append(destinations, extra...)...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(tagsJSON, &article.Tags); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal tags: %w", err)
	}

	return &article, nil
}

// # Reads

// FindByID returns an article with its tags.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Article, error) {
	query := selectArticle() + fmt.Sprintf(" WHERE a.%s = $1", schema.CoreArticle.ID)

	article, err := scanArticle(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Article")
		}
		return nil, dberr.Wrap(err, "find_article")
	}

	return article, nil
}

/*
List returns a page of articles matching the filter.

Description: Builds the WHERE clause from the non-empty filter fields. The
total is computed with a window function to avoid a second COUNT query.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Article, int, error) {
	var queryBuilder strings.Builder
	var conditions []string
	var args []any

	queryBuilder.WriteString(strings.Replace(selectArticle(), "AS tags", "AS tags, COUNT(*) OVER() AS total_count", 1))

	if !filter.IncludeDrafts {
		conditions = append(conditions, fmt.Sprintf("a.%s = TRUE", schema.CoreArticle.IsReady))
	}

	if filter.AuthorID != "" {
		args = append(args, filter.AuthorID)
		conditions = append(conditions, fmt.Sprintf("a.%s = $%d", schema.CoreArticle.AuthorID, len(args)))
	}

	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("a.%s = $%d", schema.CoreArticle.CategoryID, len(args)))
	}

	if filter.TagName != "" {
		args = append(args, filter.TagName)
		conditions = append(conditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM %s link
			JOIN %s t ON t.%s = link.%s
			WHERE link.%s = a.%s AND t.%s = $%d
		)`,
			schema.ArticleTag.Table,
			schema.CoreTag.Table, schema.CoreTag.ID, schema.ArticleTag.TagID,
			schema.ArticleTag.ArticleID, schema.CoreArticle.ID, schema.CoreTag.Name, len(args),
		))
	}

	if filter.Query != "" {
		args = append(args, filter.Query)
		conditions = append(conditions, fmt.Sprintf("a.%s ILIKE '%%' || $%d || '%%'", schema.CoreArticle.Title, len(args)))
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	args = append(args, limit, offset)
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY a.%s DESC LIMIT $%d OFFSET $%d",
		schema.CoreArticle.PublishedAt, len(args)-1, len(args)))

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_articles")
	}
	defer rows.Close()

	articles := make([]*Article, 0)
	var total int

	for rows.Next() {
		article, err := scanArticle(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_article")
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_articles")
	}

	return articles, total, nil
}

// SectionNumbers returns the numbers of every section of an article.
func (repository *PostgresRepository) SectionNumbers(context context.Context, id string) ([]int, error) {
	return sectionNumbers(context, repository.pool, id)
}

// querier is the read subset shared by the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func sectionNumbers(context context.Context, db querier, id string) ([]int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s`,
		schema.CoreSection.Number, schema.CoreSection.Table,
		schema.CoreSection.ArticleID, schema.CoreSection.Number)

	rows, err := db.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "list_section_numbers")
	}

	numbers, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, dberr.Wrap(err, "scan_section_numbers")
	}

	return numbers, nil
}

// # Writes

// Create persists a new article and its tag links in one transaction.
func (repository *PostgresRepository) Create(context context.Context, article *Article, tagIDs []int) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		schema.CoreArticle.Table,
		schema.CoreArticle.ID,
		schema.CoreArticle.Title,
		schema.CoreArticle.AuthorID,
		schema.CoreArticle.CategoryID,
		schema.CoreArticle.IsReady,
		schema.CoreArticle.PublishedAt,
		schema.CoreArticle.UpdatedAt,
	)

	return postgres.WithTx(context, repository.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(context, query,
			article.ID,
			article.Title,
			article.AuthorID,
			article.CategoryID,
			article.IsReady,
			article.PublishedAt,
			article.UpdatedAt,
		); err != nil {
			return dberr.Wrap(err, "create_article")
		}

		return replaceTags(context, tx, article.ID, tagIDs)
	})
}

// Update writes the mutable fields after re-checking readiness under a row lock.
func (repository *PostgresRepository) Update(context context.Context, article *Article, tagIDs []int) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1, %s = $2, %s = NOW()
		WHERE %s = $3
		RETURNING %s
	`,
		schema.CoreArticle.Table,
		schema.CoreArticle.Title,
		schema.CoreArticle.CategoryID,
		schema.CoreArticle.UpdatedAt,
		schema.CoreArticle.ID,
		schema.CoreArticle.UpdatedAt,
	)

	return postgres.WithTx(context, repository.pool, func(tx pgx.Tx) error {
		ready, err := lockArticle(context, tx, article.ID, "UPDATE")
		if err != nil {
			return err
		}
		if ready {
			return ErrArticleReady
		}

		var updatedAt time.Time
		if err := tx.QueryRow(context, query, article.Title, article.CategoryID, article.ID).Scan(&updatedAt); err != nil {
			return dberr.Wrap(err, "update_article")
		}
		article.UpdatedAt = updatedAt

		if tagIDs == nil {
			return nil
		}
		return replaceTags(context, tx, article.ID, tagIDs)
	})
}

// Delete removes an article; sections and tag links cascade.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreArticle.Table, schema.CoreArticle.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_article")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Article")
	}

	return nil
}

// SetReady flips the readiness flag while holding the article's row lock.
func (repository *PostgresRepository) SetReady(context context.Context, id string, ready bool, check ReadinessCheck) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2`,
		schema.CoreArticle.Table,
		schema.CoreArticle.IsReady,
		schema.CoreArticle.UpdatedAt,
		schema.CoreArticle.ID,
	)

	return postgres.WithTx(context, repository.pool, func(tx pgx.Tx) error {
		if _, err := lockArticle(context, tx, id, "UPDATE"); err != nil {
			return err
		}

		if ready && check != nil {
			numbers, err := sectionNumbers(context, tx, id)
			if err != nil {
				return err
			}
			if err := check(numbers); err != nil {
				return err
			}
		}

		if _, err := tx.Exec(context, query, ready, id); err != nil {
			return dberr.Wrap(err, "set_article_ready")
		}

		return nil
	})
}

// # Transaction Helpers

/*
lockArticle takes a row lock on the article and returns its readiness.

Parameters:
  - context: context.Context
  - tx: pgx.Tx
  - id: string
  - strength: string ("UPDATE" or "SHARE")

Returns:
  - bool: Current is_ready value
  - error: ErrNotFound if the article is gone
*/
func lockArticle(context context.Context, tx pgx.Tx, id, strength string) (bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR %s`,
		schema.CoreArticle.IsReady, schema.CoreArticle.Table, schema.CoreArticle.ID, strength)

	var ready bool
	if err := tx.QueryRow(context, query, id).Scan(&ready); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperr.NotFound("Article")
		}
		return false, dberr.Wrap(err, "lock_article")
	}

	return ready, nil
}

/*
LockMutable takes a shared lock on the article inside tx and fails with
[ErrArticleReady] if it is Ready.

Description: Used by section writes. The shared lock conflicts with the
exclusive lock held by [PostgresRepository.SetReady], so a section write and a
readiness toggle on the same article are serialized.
*/
func LockMutable(context context.Context, tx pgx.Tx, articleID string) error {
	ready, err := lockArticle(context, tx, articleID, "SHARE")
	if err != nil {
		return err
	}
	if ready {
		return ErrArticleReady
	}
	return nil
}

// replaceTags clears and re-inserts an article's tag links in a batch.
func replaceTags(context context.Context, tx pgx.Tx, articleID string, tagIDs []int) error {
	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.ArticleTag.Table, schema.ArticleTag.ArticleID)
	if _, err := tx.Exec(context, deleteQuery, articleID); err != nil {
		return dberr.Wrap(err, "clear_article_tags")
	}

	if len(tagIDs) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		schema.ArticleTag.Table, schema.ArticleTag.ArticleID, schema.ArticleTag.TagID)

	batch := &pgx.Batch{}
	for _, tagID := range tagIDs {
		batch.Queue(insertQuery, articleID, tagID)
	}

	if err := tx.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "link_article_tags")
	}

	return nil
}
