// Package api provides the HTTP handlers for the tutor service.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/abhisek/continha/internal/session"
	"github.com/abhisek/continha/internal/solver"
)

// Handler carries the shared dependencies of all endpoints.
type Handler struct {
	registry *session.Registry
	engine   *session.Engine
	solver   *solver.Service // nil when no model provider is configured
	logger   *slog.Logger
}

// NewHandler creates a Handler. solver may be nil.
func NewHandler(registry *session.Registry, engine *session.Engine, solverSvc *solver.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		registry: registry,
		engine:   engine,
		solver:   solverSvc,
		logger:   logger,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
