package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"findash/internal/repositories"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	catalog repositories.CatalogRepositoryInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(catalog repositories.CatalogRepositoryInterface) *HealthCheckHandler {
	return &HealthCheckHandler{catalog: catalog}
}

// HealthCheck reports service liveness. The catalogue is loaded at
// startup, so an empty catalogue indicates a broken deployment rather
// than a transient fault.
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	status := "healthy"
	code := http.StatusOK
	if len(h.catalog.ListInstitutions()) == 0 {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, map[string]string{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
