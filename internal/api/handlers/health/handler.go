package health

import (
	"context"
	"net/http"
	"time"

	"github.com/horizon-develop/tempo-salon/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// Pinger проверка доступности базы данных
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Error(format string, v ...interface{})
}

type Handler struct {
	db     Pinger
	logger Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

type statusResponse struct {
	Status string `json:"status"`
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("GET /healthz - Database ping failed: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, "база данных недоступна")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}
