package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/haven/internal/db"
	"github.com/alexanderramin/haven/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func historyCount(t *testing.T, uow *db.SQLiteUnitOfWork) int {
	t.Helper()
	var n int
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM query_history`).Scan(&n)
	}))
	return n
}

func insertHistory(ctx context.Context, tx db.DBTX, q string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO query_history (question, created_at) VALUES (?, '2026-01-01T00:00:00Z')`, q)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertHistory(ctx, tx, "如何找水")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, historyCount(t, uow))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := newUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertHistory(ctx, tx, "如何生火"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, historyCount(t, uow))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertHistory(ctx, tx, "迷路了")
			panic("boom")
		})
	})
	assert.Equal(t, 0, historyCount(t, uow))
}

func TestSeed_RollsBackWhenAnyInsertFails(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	boom := errors.New("disk full")
	uow := &testutil.FailingExecUoW{DB: database, Match: "INSERT INTO scenario_threats", Err: boom}

	err = db.Seed(context.Background(), uow)
	require.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM knowledge_entries`).Scan(&n))
	assert.Zero(t, n, "earlier inserts should be rolled back")
}
