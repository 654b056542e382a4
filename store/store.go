// Package store defines the storage interface and implementations.
package store

import (
	"context"

	"fintx/domain"
)

// Store defines the interface for transaction persistence. The table is
// append-only: there are deliberately no update or delete operations.
type Store interface {
	// Insert assigns the transaction's id and created_at and appends it.
	// The record is durable when the call returns.
	Insert(ctx context.Context, tx *domain.Transaction) error

	// ListBySession returns all transactions for a session in insertion
	// order. An unknown session yields an empty slice, not an error.
	ListBySession(ctx context.Context, sessionID string) ([]domain.Transaction, error)

	// FindByID returns the transaction only when both id and session match;
	// (nil, nil) otherwise. The session match is the authorization boundary:
	// an id alone never grants access across sessions.
	FindByID(ctx context.Context, id, sessionID string) (*domain.Transaction, error)

	// SumBySession returns the aggregate signed sum for a session, zero when
	// the session has no records.
	SumBySession(ctx context.Context, sessionID string) (float64, error)

	// Ping probes the underlying engine for health reporting.
	Ping(ctx context.Context) error

	// Lifecycle
	Close() error
}
