package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/personal-finance/internal/core/ports"
)

// HealthHandler handles GET /health, the liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready.
// Pings the store when its backend supports it; local backends are always ready.
type ReadinessHandler struct {
	backend string
	store   ports.Store
}

func NewReadinessHandler(backend string, store ports.Store) *ReadinessHandler {
	return &ReadinessHandler{backend: backend, store: store}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	dep := dependencyStatus{Status: "ok"}
	if p, ok := h.store.(ports.Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			dep = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		}
	}

	status, httpStatus := "ok", http.StatusOK
	if dep.Status != "ok" {
		status, httpStatus = "degraded", http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: map[string]dependencyStatus{"store_" + h.backend: dep},
	})
}
