package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"bankist/internal/database"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db *database.Database
}

func NewHealthHandler(db *database.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// Health reports overall service health, including the account directory.
func (h *HealthHandler) Health(c echo.Context) error {
	checks := map[string]string{}
	status := "ok"
	httpStatus := http.StatusOK

	if err := h.db.HealthCheck(); err != nil {
		checks["database"] = "unhealthy: " + err.Error()
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["database"] = "healthy"
	}

	return c.JSON(httpStatus, healthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}

// Ready reports whether the service can take traffic.
func (h *HealthHandler) Ready(c echo.Context) error {
	if err := h.db.HealthCheck(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
