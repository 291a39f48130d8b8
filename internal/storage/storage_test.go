package storage_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/aravindcleaerr/DietWise/internal/storage"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "dietwise.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.ApplyMigrations(db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func TestApplyMigrationsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "dietwise.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := storage.ApplyMigrations(db); err != nil {
		t.Fatalf("first apply migrations: %v", err)
	}
	if err := storage.ApplyMigrations(db); err != nil {
		t.Fatalf("second apply migrations: %v", err)
	}

	var migrationCount int
	if err := db.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&migrationCount); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if migrationCount != 2 {
		t.Fatalf("expected 2 migration versions, got %d", migrationCount)
	}

	for _, table := range []string{"app_state", "app_config"} {
		var count int
		if err := db.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&count); err != nil {
			t.Fatalf("check %s table: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected %s table to exist", table)
		}
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected db file to exist: %v", err)
	}
}

func TestSaveStateOverwritesSingleRow(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	if _, ok, err := storage.LoadState(db); err != nil || ok {
		t.Fatalf("expected no state in fresh db, ok=%v err=%v", ok, err)
	}

	if err := storage.SaveState(db, []byte(`{"v":1}`)); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := storage.SaveState(db, []byte(`{"v":2}`)); err != nil {
		t.Fatalf("second save: %v", err)
	}

	raw, ok, err := storage.LoadState(db)
	if err != nil || !ok {
		t.Fatalf("load state: ok=%v err=%v", ok, err)
	}
	if string(raw) != `{"v":2}` {
		t.Fatalf("expected latest state, got %s", raw)
	}

	var rows int
	if err := db.QueryRow(`SELECT COUNT(1) FROM app_state`).Scan(&rows); err != nil {
		t.Fatalf("count state rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected a single state row, got %d", rows)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	if _, ok, err := storage.GetConfig(db, "reminders"); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}
	if err := storage.SetConfig(db, "Reminders", " on "); err != nil {
		t.Fatalf("set config: %v", err)
	}
	value, ok, err := storage.GetConfig(db, "reminders")
	if err != nil || !ok {
		t.Fatalf("get config: ok=%v err=%v", ok, err)
	}
	if value != "on" {
		t.Fatalf("expected trimmed value, got %q", value)
	}
	if err := storage.SetConfig(db, "", "x"); err == nil {
		t.Fatalf("expected error for empty key")
	}
}
