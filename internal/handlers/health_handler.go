package handlers

import (
	"net/http"
	"time"

	"investment-dashboard/internal/errors"
	"investment-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db       *gorm.DB
	datasets services.DatasetServiceInterface
}

// NewHealthCheckHandler creates a new health check handler. db is nil when
// the input tables are read from files.
func NewHealthCheckHandler(db *gorm.DB, datasets services.DatasetServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, datasets: datasets}
}

// HealthCheck reports API liveness, database connectivity and the loaded dataset
//
// Method: GET /health
//
// Success Response: 200 OK
//   - status: "healthy"
//   - time: ISO 8601 timestamp
//   - dataset: current source status, omitted before the first load
//
// Error Responses:
//   - 503: Database connection failed
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			traceID := getTraceIDFromContext(c)
			errorResponse := errors.NewErrorResponse(
				errors.SystemServiceUnavailable,
				traceID,
				errors.WithDetails("Database connection failed"),
			)
			return c.JSON(http.StatusServiceUnavailable, errorResponse)
		}
	}

	body := map[string]interface{}{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}
	if h.datasets != nil {
		if status := h.datasets.Status(); status != nil {
			body["dataset"] = status
		}
	}

	return c.JSON(http.StatusOK, body)
}

// Helper to get trace ID from context
func getTraceIDFromContext(c echo.Context) string {
	traceID := c.Response().Header().Get("X-Trace-ID")
	if traceID == "" {
		traceID = getTraceID(c)
	}
	if traceID == "" {
		traceID = "unknown"
	}
	return traceID
}
