package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/haven/internal/db"
)

// FailingExecUoW is a test UoW whose transactions reject the first write
// statement containing Match. Reads pass through untouched, so a caller's
// rollback path can be exercised against a real database.
type FailingExecUoW struct {
	DB    *sql.DB
	Match string
	Err   error
}

func (u *FailingExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingExec{DBTX: tx, match: u.Match, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingExec struct {
	db.DBTX
	match string
	err   error
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, f.match) {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
