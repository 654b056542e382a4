// Package repository mediates all transaction data access. Writes and record
// reads go straight to the store; the summary read is cache-aside over the
// store. Individual records are never cached, only the derived sum.
package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"fintx/cache"
	"fintx/domain"
	"fintx/store"
)

const summaryKeyPrefix = "summary:"

// TransactionRepository holds no mutable state of its own; all shared state
// lives in the store and the cache.
type TransactionRepository struct {
	store store.Store
	cache cache.Cache
	ttl   time.Duration
	log   zerolog.Logger
}

// New creates a repository over the given store and cache. ttl bounds the
// staleness of cached summaries.
func New(s store.Store, c cache.Cache, ttl time.Duration, log zerolog.Logger) *TransactionRepository {
	return &TransactionRepository{store: s, cache: c, ttl: ttl, log: log}
}

// Create appends a transaction with an already-signed amount. The cached
// summary is intentionally left alone: a summary read right after a write may
// be stale for up to the TTL window.
func (r *TransactionRepository) Create(ctx context.Context, title string, amount float64, sessionID string) (*domain.Transaction, error) {
	tx := &domain.Transaction{
		Title:     title,
		Amount:    amount,
		SessionID: sessionID,
	}
	if err := r.store.Insert(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// ListBySession returns the session's transactions.
func (r *TransactionRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.Transaction, error) {
	return r.store.ListBySession(ctx, sessionID)
}

// FindByID returns the transaction, or nil when no record matches both keys.
func (r *TransactionRepository) FindByID(ctx context.Context, id, sessionID string) (*domain.Transaction, error) {
	return r.store.FindByID(ctx, id, sessionID)
}

// GetSummary returns the session's running balance, cache-aside: a cache hit
// is returned as-is without consulting the store; a miss recomputes from the
// store and writes the value back with the TTL. Concurrent misses may each
// recompute and overwrite the entry; the recomputation is idempotent so the
// race is harmless and no single-flight is used.
func (r *TransactionRepository) GetSummary(ctx context.Context, sessionID string) (float64, error) {
	key := summaryKeyPrefix + sessionID

	cached, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if ok {
		sum, err := strconv.ParseFloat(cached, 64)
		if err == nil {
			return sum, nil
		}
		// An unparseable entry is treated as a miss and overwritten below.
		r.log.Warn().Str("key", key).Str("value", cached).Msg("discarding corrupt cached summary")
	}

	sum, err := r.store.SumBySession(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	if err := r.cache.Set(ctx, key, strconv.FormatFloat(sum, 'f', -1, 64), r.ttl); err != nil {
		return 0, err
	}
	return sum, nil
}
