package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"investment-dashboard/internal/errors"
	"investment-dashboard/internal/handlers"
	"investment-dashboard/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrorHandler formats errors escaping the handlers as standardized error
// responses, logs them and counts them per code and route
type ErrorHandler struct {
	apiErrorsTotal *prometheus.CounterVec
}

// NewErrorHandler registers the api_errors_total counter with reg.
// A nil reg uses the default Prometheus registerer.
func NewErrorHandler(reg prometheus.Registerer) *ErrorHandler {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &ErrorHandler{
		apiErrorsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by code, endpoint, and status",
			},
			[]string{"code", "endpoint", "status"},
		),
	}
}

// Handle is an echo.HTTPErrorHandler
func (h *ErrorHandler) Handle(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	errorResponse, httpStatus := buildErrorResponse(err, traceID)

	logLevel := slog.LevelWarn
	if httpStatus >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"message", errorResponse.Error.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	if h.apiErrorsTotal != nil {
		h.apiErrorsTotal.WithLabelValues(
			errorResponse.Error.Code,
			c.Path(),
			fmt.Sprintf("%d", httpStatus),
		).Inc()
	}

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		slog.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

// CustomHTTPErrorHandler handles errors without counting them
func CustomHTTPErrorHandler(err error, c echo.Context) {
	(&ErrorHandler{}).Handle(err, c)
}

func buildErrorResponse(err error, traceID string) (*errors.ErrorResponse, int) {
	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		response := errors.NewErrorResponse(mapHTTPStatusToErrorCode(echoErr.Code), traceID)
		if echoErr.Message != nil && echoErr.Message != http.StatusText(echoErr.Code) {
			response.Error.Message = fmt.Sprintf("%v", echoErr.Message)
		}
		return response, echoErr.Code
	}

	var handlerValidation *handlers.ValidationError
	if stderrors.As(err, &handlerValidation) {
		return errors.NewValidationError(handlerValidation.Details, traceID), http.StatusBadRequest
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		details := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, validation.FormatFieldError(fieldErr))
		}
		return errors.NewValidationError(details, traceID), http.StatusBadRequest
	}

	response := errors.SystemError(traceID)
	return response, response.GetHTTPStatus()
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.SystemRouteNotFound
	case http.StatusMethodNotAllowed:
		return errors.SystemMethodNotAllowed
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
