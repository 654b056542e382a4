package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"fintx/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		// amount is REAL and will accumulate rounding errors; use a decimal
		// column when moving to an engine that has one.
		`CREATE TABLE IF NOT EXISTS transactions (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			amount REAL NOT NULL,
			session_id TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_session ON transactions(session_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Insert assigns id and created_at and appends the transaction.
func (s *SQLiteStore) Insert(ctx context.Context, tx *domain.Transaction) error {
	tx.ID = uuid.NewString()
	tx.CreatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, title, amount, session_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		tx.ID, tx.Title, tx.Amount, tx.SessionID, tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// ListBySession retrieves all transactions for a session.
func (s *SQLiteStore) ListBySession(ctx context.Context, sessionID string) ([]domain.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, amount, session_id, created_at FROM transactions WHERE session_id = ? ORDER BY created_at ASC`,
		sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.Title, &tx.Amount, &tx.SessionID, &tx.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

// FindByID retrieves a transaction by id scoped to a session.
func (s *SQLiteStore) FindByID(ctx context.Context, id, sessionID string) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, amount, session_id, created_at FROM transactions WHERE id = ? AND session_id = ?`,
		id, sessionID).Scan(&tx.ID, &tx.Title, &tx.Amount, &tx.SessionID, &tx.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// SumBySession computes the aggregate signed sum for a session.
func (s *SQLiteStore) SumBySession(ctx context.Context, sessionID string) (float64, error) {
	var sum float64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE session_id = ?`,
		sessionID).Scan(&sum)
	if err != nil {
		return 0, err
	}
	return sum, nil
}

// Ping probes the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
