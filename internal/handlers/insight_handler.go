package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"findash/internal/dto"
	apierrors "findash/internal/errors"
	"findash/internal/services"
	"findash/internal/validation"
)

// InsightHandler serves the financial health scoring endpoint
type InsightHandler struct {
	insightService services.InsightServiceInterface
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightService services.InsightServiceInterface) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// GetInsights scores the posted snapshot and returns the health report.
// Scoring failures never surface as errors; the service degrades to a
// fallback report with the last-known score.
func (h *InsightHandler) GetInsights(c echo.Context) error {
	var req dto.InsightRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral,
			apierrors.WithDetails(validation.FormatValidationErrors(err)...))
	}

	token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	report := h.insightService.GetInsights(c.Request().Context(), token, req.Snapshot())

	return c.JSON(http.StatusOK, SuccessResponse{Data: report})
}

// bearerToken extracts the opaque token from an Authorization header.
// This service performs no verification; the token is forwarded to the
// scoring backend as-is.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
