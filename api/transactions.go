package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fintx/domain"
)

// CreateTransaction appends a transaction to the caller's session.
// POST /transactions
//
// A request without a session cookie is the implicit session-creation path:
// exactly one new cookie is issued and the record lands under the fresh
// session.
func (h *Handler) CreateTransaction(c echo.Context) error {
	var req domain.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return &domain.ValidationError{Issues: []domain.Issue{
			{Field: "body", Message: "malformed JSON body"},
		}}
	}
	if issues := req.Validate(); len(issues) > 0 {
		return &domain.ValidationError{Issues: issues}
	}

	sessionID := h.sessions.Resolve(c)

	if _, err := h.repo.Create(c.Request().Context(), req.Title, req.SignedAmount(), sessionID); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// ListTransactions returns all transactions of the caller's session.
// GET /transactions
func (h *Handler) ListTransactions(c echo.Context) error {
	sessionID := sessionFrom(c)

	transactions, err := h.repo.ListBySession(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transactions)
}

// GetTransaction returns a single transaction by id, scoped to the caller's
// session. An id created under another session reads as absent.
// GET /transactions/:id
func (h *Handler) GetTransaction(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return &domain.ValidationError{Issues: []domain.Issue{
			{Field: "id", Message: "id must be a valid uuid"},
		}}
	}
	sessionID := sessionFrom(c)

	tx, err := h.repo.FindByID(c.Request().Context(), id, sessionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tx)
}

// GetSummary returns the session's running balance.
// GET /transactions/summary
func (h *Handler) GetSummary(c echo.Context) error {
	sessionID := sessionFrom(c)

	amount, err := h.repo.GetSummary(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domain.SummaryResponse{Amount: amount})
}
