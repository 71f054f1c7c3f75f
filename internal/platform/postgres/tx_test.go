// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-press/internal/platform/postgres"
)

// fakeTx records how the transaction ended. Unused pgx.Tx methods panic.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (tx *fakeTx) Commit(ctx context.Context) error {
	tx.committed = true
	return tx.commitErr
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	tx.rolledBack = true
	return nil
}

type fakeStarter struct {
	tx       *fakeTx
	beginErr error
}

func (starter *fakeStarter) Begin(ctx context.Context) (pgx.Tx, error) {
	if starter.beginErr != nil {
		return nil, starter.beginErr
	}
	return starter.tx, nil
}

/*
TestWithTx_Commit verifies the happy path commits and does not roll back.
*/
func TestWithTx_Commit(t *testing.T) {
	starter := &fakeStarter{tx: &fakeTx{}}

	err := postgres.WithTx(context.Background(), starter, func(tx pgx.Tx) error { return nil })

	require.NoError(t, err)
	assert.True(t, starter.tx.committed)
	assert.False(t, starter.tx.rolledBack)
}

/*
TestWithTx_Rollback verifies fn errors roll back and are returned unchanged.
*/
func TestWithTx_Rollback(t *testing.T) {
	starter := &fakeStarter{tx: &fakeTx{}}
	sentinel := errors.New("gate refused")

	err := postgres.WithTx(context.Background(), starter, func(tx pgx.Tx) error { return sentinel })

	assert.ErrorIs(t, err, sentinel)
	assert.False(t, starter.tx.committed)
	assert.True(t, starter.tx.rolledBack)
}

/*
TestWithTx_Panic verifies a panic rolls back and propagates.
*/
func TestWithTx_Panic(t *testing.T) {
	starter := &fakeStarter{tx: &fakeTx{}}

	assert.Panics(t, func() {
		_ = postgres.WithTx(context.Background(), starter, func(tx pgx.Tx) error { panic("boom") })
	})
	assert.True(t, starter.tx.rolledBack)
}

/*
TestWithTx_BeginAndCommitFailures verifies infrastructure errors are wrapped.
*/
func TestWithTx_BeginAndCommitFailures(t *testing.T) {
	beginErr := errors.New("pool closed")
	err := postgres.WithTx(context.Background(), &fakeStarter{beginErr: beginErr}, func(tx pgx.Tx) error { return nil })
	assert.ErrorIs(t, err, beginErr)

	commitErr := errors.New("serialization failure")
	starter := &fakeStarter{tx: &fakeTx{commitErr: commitErr}}
	err = postgres.WithTx(context.Background(), starter, func(tx pgx.Tx) error { return nil })
	assert.ErrorIs(t, err, commitErr)
	assert.True(t, starter.tx.rolledBack)
}
