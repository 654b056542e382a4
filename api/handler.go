// Package api provides the HTTP handlers for the ledger service.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"fintx/cache"
	"fintx/repository"
	"fintx/session"
	"fintx/store"
)

// Handler handles HTTP requests.
type Handler struct {
	repo     *repository.TransactionRepository
	sessions *session.Manager
	store    store.Store
	cache    cache.Cache
	log      zerolog.Logger
}

// NewHandler creates a new handler. store and cache are only pinged for
// health reporting; all data access goes through the repository.
func NewHandler(repo *repository.TransactionRepository, sessions *session.Manager, s store.Store, c cache.Cache, log zerolog.Logger) *Handler {
	return &Handler{
		repo:     repo,
		sessions: sessions,
		store:    s,
		cache:    c,
		log:      log,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = h.handleError

	g := e.Group("/transactions", requireJSON)
	g.POST("", h.CreateTransaction)
	g.GET("", h.ListTransactions, h.requireSession)
	g.GET("/summary", h.GetSummary, h.requireSession)
	g.GET("/:id", h.GetTransaction, h.requireSession)

	e.GET("/health", h.Health)
}

// Health reports per-service health for the process, the database and the
// cache. Any backing-service failure degrades the response to 503.
func (h *Handler) Health(c echo.Context) error {
	ctx := c.Request().Context()

	services := map[string]bool{
		"http":  true,
		"db":    true,
		"redis": true,
	}

	if err := h.store.Ping(ctx); err != nil {
		h.log.Error().Err(err).Msg("database health check failed")
		services["db"] = false
	}
	if err := h.cache.Ping(ctx); err != nil {
		h.log.Error().Err(err).Msg("redis health check failed")
		services["redis"] = false
	}

	if services["db"] && services["redis"] {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message":  "ok",
			"services": services,
		})
	}
	return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
		"message":  "Service Unavailable",
		"services": services,
	})
}
