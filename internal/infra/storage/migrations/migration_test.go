package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestRunner_EnsureMigrationTable(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, DialectSQLite)

	require.NoError(t, runner.EnsureMigrationTable(context.Background()))

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_migrations'").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRunner_ApplyIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, DialectSQLite)
	ctx := context.Background()

	applied, err := runner.Apply(ctx, SQLiteMigrations())
	require.NoError(t, err)
	assert.Equal(t, len(SQLiteMigrations()), applied)

	applied, err = runner.Apply(ctx, SQLiteMigrations())
	require.NoError(t, err)
	assert.Equal(t, 0, applied)

	versions, err := runner.AppliedVersions(ctx)
	require.NoError(t, err)
	assert.True(t, versions["001"])

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='kv_slots'").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRunner_ApplySortsByVersion(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, DialectSQLite)

	migrations := []Migration{
		{Version: "002", Description: "second", UpSQL: `ALTER TABLE ordered ADD COLUMN name TEXT;`},
		{Version: "001", Description: "first", UpSQL: `CREATE TABLE ordered (id INTEGER PRIMARY KEY);`},
	}

	applied, err := runner.Apply(context.Background(), migrations)
	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	assert.Equal(t, "002", migrations[0].Version, "input slice must not be reordered")
}

func TestRunner_FailedMigrationStopsRun(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, DialectSQLite)

	migrations := []Migration{
		{Version: "001", Description: "ok", UpSQL: `CREATE TABLE ok_table (id INTEGER);`},
		{Version: "002", Description: "broken", UpSQL: `THIS IS NOT SQL;`},
	}

	applied, err := runner.Apply(context.Background(), migrations)
	assert.Error(t, err)
	assert.Equal(t, 1, applied)
}

func TestForDialect(t *testing.T) {
	_, err := ForDialect(DialectSQLite)
	assert.NoError(t, err)

	_, err = ForDialect(DialectPostgres)
	assert.NoError(t, err)

	_, err = ForDialect("oracle")
	assert.Error(t, err)
}
