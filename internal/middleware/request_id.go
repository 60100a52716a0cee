package middleware

import (
	"investment-dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is where the trace id lives in the echo context
	TraceIDContextKey = "trace_id"

	maxTraceIDLength = 128
)

// RequestID tags every request with a trace id. An incoming X-Trace-ID (or
// X-Request-ID) is reused when it is short printable ASCII, otherwise a new
// uuid is minted. The id is echoed in the response header, stored in the echo
// context and carried by the request context as the correlation id.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = req.Header.Get(echo.HeaderXRequestID)
			}
			if !validTraceID(traceID) {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(services.WithCorrelationID(req.Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}

// GetTraceID returns the trace id set by RequestID, or ""
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
