package handlers

import (
	"log/slog"
	"net/http"

	"investment-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers answer failures only through SendError (coded 4xx/5xx) or
// SendSystemError (opaque 500). Never return echo.NewHTTPError from a handler.

// TraceIDContextKey matches the key the RequestID middleware writes
const TraceIDContextKey = "trace_id"

// SuccessResponse is the envelope of every successful API call
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// SendError writes the coded error response with the request trace id.
// 5xx codes are logged since they point at the input source, not the caller.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	response := errors.NewErrorResponse(code, getTraceID(c), opts...)
	if response.IsServerError() {
		slog.WarnContext(c.Request().Context(), "request failed",
			"trace_id", response.Error.TraceID,
			"error_code", response.Error.Code,
			"path", c.Path(),
		)
	}
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendSystemError logs err and answers with a generic SYSTEM_001 so internal
// details never reach the client
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.ErrorContext(c.Request().Context(), "unhandled error",
		"trace_id", traceID,
		"path", c.Path(),
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, errors.SystemError(traceID))
}
