package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"findash/internal/errors"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total API errors by code, endpoint and status",
	},
	[]string{"code", "endpoint", "status"},
)

// CustomHTTPErrorHandler is the echo error handler. Any error that
// escapes a handler, including echo's own routing errors, is rendered
// as the standard error envelope so clients never see a bare echo
// response.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)

	var resp *errors.ErrorResponse
	switch e := err.(type) {
	case *echo.HTTPError:
		code := mapHTTPStatusToErrorCode(e.Code)
		resp = errors.NewErrorResponse(code, traceID,
			errors.WithMessage(fmt.Sprintf("%v", e.Message)))
	case validator.ValidationErrors:
		fieldErrors := make(map[string]string, len(e))
		for _, fe := range e {
			fieldErrors[fe.Field()] = validationMessage(fe)
		}
		resp = errors.NewValidationError(fieldErrors, traceID)
	default:
		resp, _ = errors.WrapSystemError(err, traceID)
	}

	status := resp.GetHTTPStatus()

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(c.Request().Context(), level, "request failed",
		"trace_id", traceID,
		"error_code", resp.Error.Code,
		"status", status,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(
		resp.Error.Code,
		c.Path(),
		fmt.Sprintf("%d", status),
	).Inc()

	if jsonErr := c.JSON(status, resp); jsonErr != nil {
		slog.Error("failed to send error response",
			"trace_id", traceID,
			"error", jsonErr.Error())
	}
}

// mapHTTPStatusToErrorCode translates echo's raw HTTP statuses into the
// closest code in the taxonomy
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.InstitutionNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusServiceUnavailable:
		return errors.InsightUpstreamUnavailable
	default:
		return errors.SystemInternalError
	}
}

// validationMessage renders a single field error for the envelope
// details list
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "savings_rule_type":
		return "must be one of: round-up, percentage, fixed"
	case "tracking_preference":
		return "must be one of: expense, separate"
	case "granularity":
		return "must be one of: daily, weekly, monthly"
	default:
		return "is invalid"
	}
}
