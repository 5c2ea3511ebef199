package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"findash/internal/errors"
)

// PanicRecovery converts a handler panic into a SYSTEM_001 error
// envelope instead of tearing down the connection. The panic value and
// stack are logged with the request's trace ID; the client only sees
// the generic internal-error response.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				slog.Error("panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"path", c.Path(),
					"method", c.Request().Method,
					"stack", string(debug.Stack()),
				)

				resp := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				err = c.JSON(http.StatusInternalServerError, resp)
			}()

			return next(c)
		}
	}
}
