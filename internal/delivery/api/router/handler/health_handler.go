package handler

import (
	"net/http"
	"time"

	"fileshare/config"
	"fileshare/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler answers liveness probes and the root banner.
type HealthHandler struct {
	serviceName string
	now         func() time.Time
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{serviceName: cfg.Env.ServiceName, now: time.Now}
}

// HealthCheck handles GET /health.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, "healthy", map[string]any{
		"status":    "healthy",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

// Root handles GET / with the service banner.
func (h *HealthHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.serviceName, map[string]any{
		"service": h.serviceName,
		"status":  "running",
	})
}
