package migration

import (
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/flowmind/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testMigrations(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", name).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count == 1
}

func TestGetCurrentVersion(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, testMigrations(map[string]string{
		"001_test.sql": "CREATE TABLE test (id INTEGER);",
	}), DriverSQLite)

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0, got %d", version)
	}

	if err := runner.SetVersion(5); err != nil {
		t.Fatalf("SetVersion failed: %v", err)
	}

	version, err = runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 5 {
		t.Errorf("expected version 5, got %d", version)
	}
}

func TestReadMigrationFiles(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, testMigrations(map[string]string{
		"001_init.sql":    "CREATE TABLE test1 (id INTEGER);",
		"003_another.sql": "CREATE TABLE test2 (id INTEGER);",
		"002_update.sql":  "ALTER TABLE test1 ADD COLUMN name TEXT;",
		"README.md":       "not a migration",
	}), DriverSQLite)

	got, err := runner.ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(got))
	}

	want := []struct {
		version int
		name    string
	}{
		{1, "init"},
		{2, "update"},
		{3, "another"},
	}
	for i, w := range want {
		if got[i].Version != w.version || got[i].Name != w.name {
			t.Errorf("migration %d: expected %d/%s, got %d/%s", i, w.version, w.name, got[i].Version, got[i].Name)
		}
	}
}

func TestApplyMigrationsFromScratch(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, testMigrations(map[string]string{
		"001_init.sql":  "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);",
		"002_posts.sql": "CREATE TABLE posts (id INTEGER PRIMARY KEY, user_id INTEGER, content TEXT);",
	}), DriverSQLite)

	var logged []string
	count, err := runner.ApplyMigrations(func(msg string) { logged = append(logged, msg) })
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 migrations applied, got %d", count)
	}
	if len(logged) == 0 {
		t.Error("expected progress messages")
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	if !tableExists(t, db, "users") || !tableExists(t, db, "posts") {
		t.Error("expected users and posts tables")
	}
}

func TestApplyMigrationsIncremental(t *testing.T) {
	db := setupTestDB(t)
	fsys := testMigrations(map[string]string{
		"001_init.sql": "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);",
	})
	runner := NewRunner(db, fsys, DriverSQLite)

	count, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations (1st) failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 migration applied, got %d", count)
	}

	fsys["002_posts.sql"] = &fstest.MapFile{Data: []byte("CREATE TABLE posts (id INTEGER PRIMARY KEY, user_id INTEGER);")}

	count, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations (2nd) failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 more migration applied, got %d", count)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}
}

func TestApplyMigrationsNoOp(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, testMigrations(map[string]string{
		"001_init.sql": "CREATE TABLE users (id INTEGER PRIMARY KEY);",
	}), DriverSQLite)

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations (1st) failed: %v", err)
	}

	count, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations (2nd) failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 migrations applied on second run, got %d", count)
	}
}

func TestMigrationRollbackOnError(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, testMigrations(map[string]string{
		"001_init.sql": `
			CREATE TABLE users (id INTEGER PRIMARY KEY);
			THIS IS INVALID SQL;
		`,
	}), DriverSQLite)

	if _, err := runner.ApplyMigrations(nil); err == nil {
		t.Fatal("ApplyMigrations should have failed with invalid SQL")
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0 after failed migration, got %d", version)
	}
	if tableExists(t, db, "users") {
		t.Error("table should not exist after failed migration")
	}
}

func TestValidateVersionNewerDatabase(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, testMigrations(map[string]string{
		"001_init.sql": "CREATE TABLE users (id INTEGER PRIMARY KEY);",
	}), DriverSQLite)

	if err := runner.SetVersion(10); err != nil {
		t.Fatalf("SetVersion failed: %v", err)
	}

	if err := runner.ValidateVersion(); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("expected ErrSchemaTooNew from ValidateVersion, got %v", err)
	}
	if _, err := runner.ApplyMigrations(nil); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("expected ErrSchemaTooNew from ApplyMigrations, got %v", err)
	}
}

func TestGetLatestVersion(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, testMigrations(map[string]string{
		"001_init.sql":   "CREATE TABLE users (id INTEGER);",
		"003_posts.sql":  "CREATE TABLE posts (id INTEGER);",
		"002_update.sql": "ALTER TABLE users ADD COLUMN name TEXT;",
	}), DriverSQLite)

	latest, err := runner.GetLatestVersion()
	if err != nil {
		t.Fatalf("GetLatestVersion failed: %v", err)
	}
	if latest != 3 {
		t.Errorf("expected latest version 3, got %d", latest)
	}
}

func TestReadMigrationFilesErrors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "missing underscore",
			files:   map[string]string{"001init.sql": "SELECT 1;"},
			wantErr: "invalid migration filename format",
		},
		{
			name:    "zero version",
			files:   map[string]string{"000_init.sql": "SELECT 1;"},
			wantErr: "version must be at least 1",
		},
		{
			name:    "non-numeric version",
			files:   map[string]string{"abc_init.sql": "SELECT 1;"},
			wantErr: "invalid version number",
		},
		{
			name: "duplicate version",
			files: map[string]string{
				"001_init.sql":  "SELECT 1;",
				"001_other.sql": "SELECT 2;",
			},
			wantErr: "duplicate migration version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(setupTestDB(t), testMigrations(tt.files), DriverSQLite)
			_, err := runner.ReadMigrationFiles()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEmbeddedSQLiteMigrations(t *testing.T) {
	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		t.Fatalf("failed to open embedded migrations: %v", err)
	}

	db := setupTestDB(t)
	runner := NewRunner(db, sub, DriverSQLite)
	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("embedded migrations failed: %v", err)
	}

	for _, table := range []string{"tasks", "checkins", "settings"} {
		if !tableExists(t, db, table) {
			t.Errorf("expected table %s", table)
		}
	}
}
