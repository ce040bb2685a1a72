package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/importer"
	"github.com/alexanderramin/punchclock/internal/repository"
	"github.com/alexanderramin/punchclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importSchema() *importer.ImportSchema {
	return &importer.ImportSchema{
		Subject: "alice",
		AttendanceLog: []importer.EventImport{
			{Kind: "work_start", Timestamp: "2025-03-03T09:00:00Z"},
			{Kind: "break_start", Timestamp: "2025-03-03T12:00:00Z"},
			{Kind: "break_end", Timestamp: "2025-03-03T13:00:00Z"},
			{Kind: "work_end", Timestamp: "2025-03-03T17:00:00Z"},
		},
	}
}

func TestImport_WritesAndSkipsDuplicates(t *testing.T) {
	database := testutil.NewTestDB(t)
	events := repository.NewSQLiteEventRepo(database)
	svc := NewImportService(testutil.NewTestUoW(database))
	ctx := context.Background()

	result, err := svc.ImportSchema(ctx, importSchema(), "")
	require.NoError(t, err)
	assert.Equal(t, 4, result.Imported)
	assert.Zero(t, result.Skipped)

	result, err = svc.ImportSchema(ctx, importSchema(), "")
	require.NoError(t, err)
	assert.Zero(t, result.Imported)
	assert.Equal(t, 4, result.Skipped)

	log, err := events.ListBySubject(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, log, 4)

	report, err := Summarize(log, domain.DeriveStatus(log), testutil.Day(4, 0, 0), DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, 7*60, int(report.Total.Minutes()))
}

func TestImport_SubjectOverride(t *testing.T) {
	database := testutil.NewTestDB(t)
	events := repository.NewSQLiteEventRepo(database)
	svc := NewImportService(testutil.NewTestUoW(database))

	result, err := svc.ImportSchema(context.Background(), importSchema(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", result.Subject)

	log, err := events.ListBySubject(context.Background(), "bob")
	require.NoError(t, err)
	assert.Len(t, log, 4)
}

func TestImport_ValidationFailsWhole(t *testing.T) {
	database := testutil.NewTestDB(t)
	events := repository.NewSQLiteEventRepo(database)
	svc := NewImportService(testutil.NewTestUoW(database))

	schema := importSchema()
	schema.AttendanceLog[2].Kind = "Lunch"

	_, err := svc.ImportSchema(context.Background(), schema, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (1 errors)")
	assert.Contains(t, err.Error(), "attendanceLog[2].kind")

	log, err := events.ListBySubject(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, log)
}

func TestImport_RollbackOnInsertFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	events := repository.NewSQLiteEventRepo(database)

	// Fail the third insert; the first two must not survive.
	failUoW := &testutil.FailingInsertUoW{
		DB:     database,
		FailOn: 3,
		Err:    fmt.Errorf("injected insert failure"),
	}
	svc := NewImportService(failUoW)

	_, err := svc.ImportSchema(context.Background(), importSchema(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected insert failure")

	log, err := events.ListBySubject(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, log)
}

func TestImportFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database))

	path := filepath.Join(t.TempDir(), "log.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"subject":"carol","attendanceLog":[{"kind":"work_start","timestamp":"2025-03-03T09:00:00Z"}]}`), 0o644))

	result, err := svc.ImportFile(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	_, err = svc.ImportFile(context.Background(), filepath.Join(t.TempDir(), "none.json"), "")
	assert.Error(t, err)
}
