// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/yomira-press/internal/platform/apperr"
	"github.com/taibuivan/yomira-press/internal/platform/database/schema"
	"github.com/taibuivan/yomira-press/internal/platform/dberr"
	"github.com/taibuivan/yomira-press/internal/users/auth"
)

// # Repository Implementations

// PostgresProfileRepository implements [ProfileRepository] using pgx.
type PostgresProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new Postgres implementation for profile management.
func NewProfileRepository(pool *pgxpool.Pool) *PostgresProfileRepository {
	return &PostgresProfileRepository{pool: pool}
}

/*
FindByID retrieves a user record from the users.account table.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *auth.User: Hydrated identity entity
  - error: apperr.NotFound or database execution failure
*/
func (repository *PostgresProfileRepository) FindByID(context context.Context, id string) (*auth.User, error) {
	account := schema.UserAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		auth.UserColumns(), account.Table, account.ID, account.DeletedAt)

	user, err := auth.ScanUser(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, auth.NotFoundAsUser(err, "find_profile")
	}
	return user, nil
}

/*
UpdateProfile writes the names and position of a live account.

Parameters:
  - context: context.Context
  - user: *auth.User

Returns:
  - error: apperr.NotFound if the account is gone
*/
func (repository *PostgresProfileRepository) UpdateProfile(context context.Context, user *auth.User) error {
	account := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		account.Table,
		account.FirstName, account.LastName, account.Position, account.UpdatedAt,
		account.ID, account.DeletedAt,
		account.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		user.ID, user.FirstName, user.LastName, user.Position,
	).Scan(&user.UpdatedAt)

	if err != nil {
		return auth.NotFoundAsUser(err, "update_profile")
	}
	return nil
}

// SoftDelete stamps deletedat on a live account. Articles stay in place.
func (repository *PostgresProfileRepository) SoftDelete(context context.Context, id string) error {
	account := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		account.Table, account.DeletedAt, account.ID, account.DeletedAt)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "soft_delete_account")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}
	return nil
}
