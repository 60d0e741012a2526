package migration

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

// setupPostgresTestDB opens the database named by POSTGRES_TEST_URL, e.g.
// POSTGRES_TEST_URL="postgres://user@localhost:5432/testdb?sslmode=disable"
func setupPostgresTestDB(t *testing.T) *sql.DB {
	t.Helper()
	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatalf("failed to open postgres database: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("failed to ping postgres database: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("DROP TABLE IF EXISTS schema_version")
		db.Exec("DROP TABLE IF EXISTS test_posts")
		db.Exec("DROP TABLE IF EXISTS test_users")
		db.Close()
	})
	return db
}

func TestPostgresSetVersion(t *testing.T) {
	db := setupPostgresTestDB(t)
	runner := NewRunner(db, testMigrations(map[string]string{
		"001_init.sql": "CREATE TABLE test_users (id SERIAL PRIMARY KEY);",
	}), DriverPostgres)

	for _, v := range []int{1, 2} {
		if err := runner.SetVersion(v); err != nil {
			t.Fatalf("SetVersion(%d) failed: %v", v, err)
		}
		got, err := runner.GetCurrentVersion()
		if err != nil {
			t.Fatalf("GetCurrentVersion failed: %v", err)
		}
		if got != v {
			t.Errorf("expected version %d, got %d", v, got)
		}
	}
}

func TestPostgresApplyMigrations(t *testing.T) {
	db := setupPostgresTestDB(t)
	runner := NewRunner(db, testMigrations(map[string]string{
		"001_init.sql": `
			CREATE TABLE test_users (
				id SERIAL PRIMARY KEY,
				name TEXT NOT NULL
			);
		`,
		"002_posts.sql": `
			CREATE TABLE test_posts (
				id SERIAL PRIMARY KEY,
				user_id INTEGER NOT NULL REFERENCES test_users(id),
				title TEXT NOT NULL
			);
		`,
	}), DriverPostgres)

	count, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 migrations applied, got %d", count)
	}

	var exists bool
	err = db.QueryRow("SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_name = 'test_posts')").Scan(&exists)
	if err != nil {
		t.Fatalf("failed to check test_posts table: %v", err)
	}
	if !exists {
		t.Error("test_posts table was not created")
	}

	count, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations (2nd) failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 migrations on second run, got %d", count)
	}
}
