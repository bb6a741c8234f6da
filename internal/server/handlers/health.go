package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Greeting текст ответа корневого endpoint
const Greeting = "Hello from the ThalassemiaCare backend!"

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	version string
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		version: version,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Root обрабатывает GET /
// Плейнтекстовое приветствие, используется как простейший liveness probe
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprint(w, Greeting); err != nil {
		h.logger.Error("failed to write greeting", slog.Any("error", err))
	}
}

// Health обрабатывает GET /api/v1/health
// Health check endpoint для мониторинга
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "ok",
		Version: h.version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode health response", slog.Any("error", err))
	}
}
