package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mvrettas/go-celebrations-backend/internal/domain"
)

func TestOpenSQLite_CreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.db")

	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	var mode string
	if err := db.Raw("PRAGMA journal_mode;").Scan(&mode).Error; err != nil {
		t.Fatalf("read journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Fatalf("journal_mode = %q; want wal", mode)
	}
}

func TestOpenSQLite_MissingParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does", "not", "exist", "x.db")
	if _, err := OpenSQLite(path); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestAutoMigrate_IdempotentAndComplete(t *testing.T) {
	db := newRepoDB(t)

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	// Second run must be a no-op, not an error.
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate rerun: %v", err)
	}

	// All three tables usable.
	if _, err := CreateContact(context.Background(), db, "a", "2026-09-01", "FRIEND", "img://1", ""); err != nil {
		t.Fatalf("contacts table unusable: %v", err)
	}
	if err := db.Create(&domain.Greeting{Relationship: "FRIEND", Content: "hi {name}"}).Error; err != nil {
		t.Fatalf("greetings table unusable: %v", err)
	}
	if _, err := CreateReminder(context.Background(), db, 1, "2026-09-01", "09:00", 0); err != nil {
		t.Fatalf("reminders table unusable: %v", err)
	}
}
