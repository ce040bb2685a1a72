package testutil

import (
	"context"
	"database/sql"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/punchclock/internal/db"
)

// FailingInsertUoW wraps a real SQLite unit of work and makes the FailOn-th
// INSERT of the transaction (counted from 1) return Err. Duplicate lookups
// and other statements pass through, so rollback of earlier inserts is
// observable.
type FailingInsertUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailingInsertUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingInserts{DBTX: tx, failOn: u.FailOn, err: u.Err})
	})
}

type failingInserts struct {
	db.DBTX
	inserts atomic.Int32
	failOn  int32
	err     error
}

func (f *failingInserts) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if isInsert(query) && f.inserts.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

func isInsert(query string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "INSERT")
}
