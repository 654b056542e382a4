// Package domain defines the core domain models for the ledger.
package domain

import (
	"math"
	"time"
)

// TransactionType is the direction of a transaction as submitted by the client.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// Valid reports whether the type is one of the two known directions.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeCredit || t == TransactionTypeDebit
}

// Transaction is a single ledger record. Records are immutable once created:
// there is no update or delete path anywhere in the system.
type Transaction struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"` // signed; credit > 0, debit < 0
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTransactionRequest is the body of POST /transactions.
type CreateTransactionRequest struct {
	Title  string          `json:"title"`
	Amount float64         `json:"amount"`
	Type   TransactionType `json:"type"`
}

// Issue describes a single validation failure in a request body.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks the request and returns the list of issues, empty when the
// request is well formed.
func (r *CreateTransactionRequest) Validate() []Issue {
	var issues []Issue
	if r.Title == "" {
		issues = append(issues, Issue{Field: "title", Message: "title is required"})
	}
	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) {
		issues = append(issues, Issue{Field: "amount", Message: "amount must be a finite number"})
	}
	if !r.Type.Valid() {
		issues = append(issues, Issue{Field: "type", Message: "type must be 'credit' or 'debit'"})
	}
	return issues
}

// SignedAmount resolves the submitted amount into the stored signed amount:
// a credit is stored as submitted, a debit as its negation.
func (r *CreateTransactionRequest) SignedAmount() float64 {
	if r.Type == TransactionTypeDebit {
		return -r.Amount
	}
	return r.Amount
}

// SummaryResponse is the body of GET /transactions/summary.
type SummaryResponse struct {
	Amount float64 `json:"amount"`
}
