package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hrms-lite-go/internal/handler/http/response"
)

const readinessTimeout = 2 * time.Second

// DBPinger reports whether the document store is reachable.
type DBPinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler interface {
	Root(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
	Ready(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	pinger DBPinger
}

func NewHealthHandler(pinger DBPinger) HealthHandler {
	return &healthHandlerImpl{pinger: pinger}
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Root handles GET /
func (h *healthHandlerImpl) Root(w http.ResponseWriter, r *http.Request) {
	response.Success(w, statusResponse{Status: "ok", Message: "HRMS Lite API is running 🚀"})
}

// Health handles GET /health. It never touches the database.
func (h *healthHandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, statusResponse{Status: "healthy"})
}

// Ready handles GET /health/ready
func (h *healthHandlerImpl) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		slog.Warn("Readiness check failed", "error", err)
		response.ServiceUnavailable(w, "Database is unreachable.")
		return
	}

	response.Success(w, statusResponse{Status: "ready"})
}
