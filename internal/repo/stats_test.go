package repo

import (
	"context"
	"testing"

	"github.com/mvrettas/go-celebrations-backend/internal/domain"
)

func TestContactsStats_EmptyTable(t *testing.T) {
	db := newRepoDB(t, &domain.Contact{})

	count, maxTS, err := ContactsStats(context.Background(), db)
	if err != nil {
		t.Fatalf("ContactsStats: %v", err)
	}
	if count != 0 || maxTS != nil {
		t.Fatalf("expected (0, nil) for empty table, got (%d, %v)", count, maxTS)
	}
}

func TestContactsStats_CountAndMaxUpdatedAt(t *testing.T) {
	db := newRepoDB(t, &domain.Contact{})

	a, err := CreateContact(context.Background(), db, "a", "2026-09-01", "FRIEND", "img://1", "")
	if err != nil {
		t.Fatalf("seed a: %v", err)
	}
	if _, err := CreateContact(context.Background(), db, "b", "2026-09-02", "SISTER", "img://2", ""); err != nil {
		t.Fatalf("seed b: %v", err)
	}

	count, maxTS, err := ContactsStats(context.Background(), db)
	if err != nil {
		t.Fatalf("ContactsStats: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d; want 2", count)
	}
	if maxTS == nil || maxTS.IsZero() {
		t.Fatalf("expected a max updated_at, got %v", maxTS)
	}

	// Touching a row must advance (or at least not regress) the max.
	before := *maxTS
	if err := UpdateContact(context.Background(), db, a.ID, "a2", "2026-09-03", "FRIEND", "img://1", ""); err != nil {
		t.Fatalf("update: %v", err)
	}
	_, after, err := ContactsStats(context.Background(), db)
	if err != nil {
		t.Fatalf("ContactsStats after update: %v", err)
	}
	if after == nil || after.Before(before) {
		t.Fatalf("max updated_at regressed: before=%v after=%v", before, after)
	}
}
