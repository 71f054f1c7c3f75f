// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxStarter is satisfied by [*pgxpool.Pool] and [pgx.Tx] (nested savepoints).
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxFunc is the unit of work executed inside [WithTx].
type TxFunc func(tx pgx.Tx) error

/*
WithTx runs fn inside a single transaction.

Description: Commits when fn returns nil. Rolls back when fn returns an error
or panics (the panic is re-raised after the rollback).

Parameters:
  - ctx: context.Context
  - db: TxStarter (usually the pool)
  - fn: TxFunc

Returns:
  - error: fn's error unchanged, or a begin/commit failure
*/
func WithTx(ctx context.Context, db TxStarter, fn TxFunc) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			_ = tx.Rollback(ctx)
			panic(recovered)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: failed to commit transaction: %w", err)
	}

	return nil
}
