package store

import (
	"context"
	"testing"

	"fintx/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func insertTx(t *testing.T, s *SQLiteStore, title string, amount float64, sessionID string) *domain.Transaction {
	t.Helper()
	tx := &domain.Transaction{Title: title, Amount: amount, SessionID: sessionID}
	if err := s.Insert(context.Background(), tx); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	return tx
}

func TestInsertAssignsIDAndTimestamp(t *testing.T) {
	store := newTestStore(t)

	tx := insertTx(t, store, "groceries", -42.5, "s1")
	if tx.ID == "" {
		t.Fatal("expected id to be assigned")
	}
	if tx.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be assigned")
	}

	got, err := store.FindByID(context.Background(), tx.ID, "s1")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got == nil || got.Title != "groceries" || got.Amount != -42.5 {
		t.Fatalf("unexpected transaction: %+v", got)
	}
}

func TestListBySessionEmpty(t *testing.T) {
	store := newTestStore(t)

	transactions, err := store.ListBySession(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListBySession failed: %v", err)
	}
	if transactions == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(transactions) != 0 {
		t.Fatalf("expected 0 transactions, got %d", len(transactions))
	}
}

func TestListBySessionScopedToSession(t *testing.T) {
	store := newTestStore(t)

	insertTx(t, store, "salary", 1000, "s1")
	insertTx(t, store, "rent", -700, "s1")
	insertTx(t, store, "other", 5, "s2")

	transactions, err := store.ListBySession(context.Background(), "s1")
	if err != nil {
		t.Fatalf("ListBySession failed: %v", err)
	}
	if len(transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(transactions))
	}
	for _, tx := range transactions {
		if tx.SessionID != "s1" {
			t.Fatalf("transaction leaked from another session: %+v", tx)
		}
	}
}

func TestFindByIDCrossSession(t *testing.T) {
	store := newTestStore(t)

	tx := insertTx(t, store, "salary", 1000, "sessionB")

	got, err := store.FindByID(context.Background(), tx.ID, "sessionA")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for cross-session lookup, got %+v", got)
	}
}

func TestSumBySession(t *testing.T) {
	store := newTestStore(t)

	sum, err := store.SumBySession(context.Background(), "empty")
	if err != nil {
		t.Fatalf("SumBySession failed: %v", err)
	}
	if sum != 0 {
		t.Fatalf("expected 0 for empty session, got %v", sum)
	}

	insertTx(t, store, "credit", 500, "s1")
	insertTx(t, store, "debit", -200, "s1")
	insertTx(t, store, "noise", 999, "s2")

	sum, err = store.SumBySession(context.Background(), "s1")
	if err != nil {
		t.Fatalf("SumBySession failed: %v", err)
	}
	if sum != 300 {
		t.Fatalf("expected 300, got %v", sum)
	}
}

func TestPing(t *testing.T) {
	store := newTestStore(t)
	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}
