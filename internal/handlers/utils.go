package handlers

import (
	"context"

	"investment-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// requestContext returns the request context carrying the trace id as the
// pipeline correlation id
func requestContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if traceID := getTraceID(c); traceID != "" && services.CorrelationID(ctx) != traceID {
		ctx = services.WithCorrelationID(ctx, traceID)
	}
	return ctx
}
