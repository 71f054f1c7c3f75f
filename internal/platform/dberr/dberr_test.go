// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-press/internal/platform/apperr"
	"github.com/taibuivan/yomira-press/internal/platform/dberr"
)

/*
TestWrap verifies the mapping from driver errors to application errors.
*/
func TestWrap(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"no_rows", pgx.ErrNoRows, "NOT_FOUND", http.StatusNotFound},
		{"wrapped_no_rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), "NOT_FOUND", http.StatusNotFound},
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "section_article_number_key"}, "CONFLICT", http.StatusConflict},
		{"foreign_key", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, "CONFLICT", http.StatusConflict},
		{"other_pg", &pgconn.PgError{Code: pgerrcode.SyntaxError}, "INTERNAL_ERROR", http.StatusInternalServerError},
		{"plain", errors.New("connection reset"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae := apperr.As(dberr.Wrap(tt.err, "test_action"))
			require.NotNil(t, ae)
			assert.Equal(t, tt.code, ae.Code)
			assert.Equal(t, tt.status, ae.HTTPStatus)
		})
	}
}

/*
TestWrap_Passthrough verifies nil and existing AppErrors are returned as-is.
*/
func TestWrap_Passthrough(t *testing.T) {
	assert.Nil(t, dberr.Wrap(nil, "noop"))

	forbidden := apperr.Forbidden("nope")
	assert.Same(t, forbidden, dberr.Wrap(forbidden, "noop"))
}

/*
TestWrap_ConstraintMessage verifies known constraints produce specific messages.
*/
func TestWrap_ConstraintMessage(t *testing.T) {
	err := dberr.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "account_email_key"}, "create_user")
	assert.Equal(t, "User with this email already exists.", err.Error())
}

/*
TestIsUniqueViolation checks constraint filtering.
*/
func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "tag_name_key"})

	assert.True(t, dberr.IsUniqueViolation(err, ""))
	assert.True(t, dberr.IsUniqueViolation(err, "tag_name_key"))
	assert.False(t, dberr.IsUniqueViolation(err, "category_title_key"))
	assert.False(t, dberr.IsUniqueViolation(errors.New("x"), ""))
}
