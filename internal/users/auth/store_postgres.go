// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/yomira-press/internal/platform/apperr"
	"github.com/taibuivan/yomira-press/internal/platform/database/schema"
	"github.com/taibuivan/yomira-press/internal/platform/dberr"
)

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// UserColumns lists the columns read by every user query, in [ScanUser] order.
func UserColumns() string {
	account := schema.UserAccount
	return strings.Join([]string{
		account.ID, account.Username, account.Email, account.Password, account.Role,
		account.FirstName, account.LastName, account.Position,
		account.CreatedAt, account.UpdatedAt,
	}, ", ")
}

// ScanUser reads one row selected with [UserColumns].
func ScanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role,
		&user.FirstName, &user.LastName, &user.Position,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

/*
Create persists a new user record into the users.account table.

Description: Timestamps come from the database defaults and are read back.
A concurrent registration that slips past the service's checks surfaces as
a 409 via the account_username_key / account_email_key constraints.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	account := schema.UserAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s
	`,
		account.Table,
		account.ID, account.Username, account.Email, account.Password,
		account.Role, account.FirstName, account.LastName, account.Position,
		account.CreatedAt, account.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.Role, user.FirstName, user.LastName, user.Position,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	return dberr.Wrap(err, "create_user")
}

// FindByID retrieves a live account by its primary key.
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	account := schema.UserAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		UserColumns(), account.Table, account.ID, account.DeletedAt)

	user, err := ScanUser(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, NotFoundAsUser(err, "find_user_by_id")
	}
	return user, nil
}

// FindByLogin retrieves a live account whose username or (case-insensitive) email matches.
func (repository *PostgresUserRepository) FindByLogin(context context.Context, login string) (*User, error) {
	account := schema.UserAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE (%s = $1 OR %s = lower($1)) AND %s IS NULL LIMIT 1`,
		UserColumns(), account.Table, account.Username, account.Email, account.DeletedAt)

	user, err := ScanUser(repository.pool.QueryRow(context, query, login))
	if err != nil {
		return nil, NotFoundAsUser(err, "find_user_by_login")
	}
	return user, nil
}

// UsernameTaken checks the username against every row, soft-deleted ones included,
// because the unique constraint does too.
func (repository *PostgresUserRepository) UsernameTaken(context context.Context, username string) (bool, error) {
	return repository.exists(context, schema.UserAccount.Username, username, "username_taken")
}

// EmailTaken checks the email against every row, soft-deleted ones included.
func (repository *PostgresUserRepository) EmailTaken(context context.Context, email string) (bool, error) {
	return repository.exists(context, schema.UserAccount.Email, email, "email_taken")
}

func (repository *PostgresUserRepository) exists(context context.Context, column, value, action string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, schema.UserAccount.Table, column)

	var taken bool
	if err := repository.pool.QueryRow(context, query, value).Scan(&taken); err != nil {
		return false, dberr.Wrap(err, action)
	}
	return taken, nil
}

// UpdatePassword replaces the password hash of a live account.
func (repository *PostgresUserRepository) UpdatePassword(context context.Context, userID, newHash string) error {
	account := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		account.Table, account.Password, account.UpdatedAt, account.ID, account.DeletedAt)

	tag, err := repository.pool.Exec(context, query, userID, newHash)
	if err != nil {
		return dberr.Wrap(err, "update_user_password")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}
	return nil
}

// NotFoundAsUser names the resource in the 404 instead of dberr's generic one.
func NotFoundAsUser(err error, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("User")
	}
	return dberr.Wrap(err, action)
}
