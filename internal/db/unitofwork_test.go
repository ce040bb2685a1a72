package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/punchclock/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func insertEvent(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO attendance_events (id, subject_id, kind, occurred_at, created_at)
		VALUES (?, 'alice', 'work_start', '2025-03-03T09:00:00Z', '2025-03-03T09:00:00Z')`, id)
	return err
}

// eventExists reads through a fresh transaction; the in-memory database
// has a single connection.
func eventExists(uow *db.SQLiteUnitOfWork, id string) bool {
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		var got string
		if err := tx.QueryRowContext(ctx, `SELECT id FROM attendance_events WHERE id = ?`, id).Scan(&got); err != nil {
			return nil
		}
		found = true
		return nil
	})
	return found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertEvent(ctx, tx, "e1")
	})
	require.NoError(t, err)
	assert.True(t, eventExists(uow, "e1"), "row should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertEvent(ctx, tx, "e2"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.False(t, eventExists(uow, "e2"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertEvent(ctx, tx, "e3")
			panic("boom")
		})
	})
	assert.False(t, eventExists(uow, "e3"), "row should not exist after panic rollback")
}

func TestWithinTx_CancelledContextKeepsCause(t *testing.T) {
	uow := openTestUoW(t)
	ctx, cancel := context.WithCancel(context.Background())

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := insertEvent(ctx, tx, "e4"); err != nil {
			return err
		}
		cancel()
		return ctx.Err()
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, eventExists(uow, "e4"), "row should not exist after cancellation")
}
