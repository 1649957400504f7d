package sqlitemigrate

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "migrate.db")
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlDB
}

func TestApplyMigrationsCreatesSchemaOnce(t *testing.T) {
	t.Parallel()

	migrationFS := fstest.MapFS{
		"0001_create_items.sql": &fstest.MapFile{Data: []byte(`
-- +migrate Up
CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL);
-- +migrate Down
DROP TABLE items;
`)},
	}

	sqlDB := openTestDB(t)
	if err := ApplyMigrations(sqlDB, migrationFS); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	// A second run must be a no-op instead of failing on existing tables.
	if err := ApplyMigrations(sqlDB, migrationFS); err != nil {
		t.Fatalf("re-apply migrations: %v", err)
	}

	if _, err := sqlDB.Exec("INSERT INTO items (name) VALUES ('mangrove')"); err != nil {
		t.Fatalf("insert into migrated table: %v", err)
	}

	var applied int
	row := sqlDB.QueryRow("SELECT COUNT(*) FROM schema_migrations")
	if err := row.Scan(&applied); err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied != 1 {
		t.Fatalf("applied migrations = %d, want 1", applied)
	}
}

func TestApplyMigrationsRunsFilesInLexicalOrder(t *testing.T) {
	t.Parallel()

	migrationFS := fstest.MapFS{
		"0002_add_column.sql": &fstest.MapFile{Data: []byte(`
-- +migrate Up
ALTER TABLE items ADD COLUMN note TEXT;
`)},
		"0001_create_items.sql": &fstest.MapFile{Data: []byte(`
-- +migrate Up
CREATE TABLE items (id INTEGER PRIMARY KEY);
`)},
	}

	sqlDB := openTestDB(t)
	if err := ApplyMigrations(sqlDB, migrationFS); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := sqlDB.Exec("INSERT INTO items (note) VALUES ('ordered')"); err != nil {
		t.Fatalf("insert with migrated column: %v", err)
	}
}

func TestApplyMigrationsRejectsNilDB(t *testing.T) {
	t.Parallel()

	if err := ApplyMigrations(nil, fstest.MapFS{}); err == nil {
		t.Fatal("expected nil db error")
	}
}

func TestExtractUpMigrationWithoutMarkersReturnsContent(t *testing.T) {
	t.Parallel()

	content := "CREATE TABLE plain (id INTEGER);"
	if got := ExtractUpMigration(content); got != content {
		t.Fatalf("ExtractUpMigration = %q, want %q", got, content)
	}
}
