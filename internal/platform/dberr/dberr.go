// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/yomira-press/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
//   - pgx.ErrNoRows            -> 404 NOT_FOUND
//   - 23505 unique_violation   -> 409 CONFLICT
//   - 23503 foreign_key_violation -> 409 CONFLICT
//   - anything else            -> 500 INTERNAL_ERROR
//
// Errors that are already an [apperr.AppError] pass through untouched.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if apperr.IsAppError(err) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			conflict := apperr.Conflict(conflictMessage(pgErr.ConstraintName))
			conflict.Cause = err
			return conflict
		case pgerrcode.ForeignKeyViolation:
			conflict := apperr.Conflict("Resource is still referenced by other records")
			conflict.Cause = err
			return conflict
		}
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsUniqueViolation reports whether err is a PostgreSQL unique_violation,
// optionally restricted to a named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// conflictMessage maps known constraint names to client-safe messages.
func conflictMessage(constraint string) string {
	if message, ok := constraintMessages[constraint]; ok {
		return message
	}
	return "Resource already exists"
}

// constraintMessages is keyed by the constraint names in data/migrations.
var constraintMessages = map[string]string{
	"section_article_number_key": "Section with this number already exists in the article",
	"section_article_title_key":  "Section with this title already exists in the article",
	"category_title_key":         "Category with this title already exists",
	"account_username_key":       "User with this username already exists.",
	"account_email_key":          "User with this email already exists.",
	"tag_name_key":               "Tag already exists",
}
