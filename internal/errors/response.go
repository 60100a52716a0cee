package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"investment-dashboard/internal/models"
)

// ErrorResponse is the envelope every failed API call answers with
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

type ErrorOption func(*ErrorResponse)

// WithDetails appends detail messages
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = append(er.Error.Details, details...)
	}
}

// WithMessage replaces the registered message of the code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// WithInputLocation describes where in the input tables err happened.
// Errors that are not input or lookup errors add nothing.
func WithInputLocation(err error) ErrorOption {
	return func(er *ErrorResponse) {
		var formatErr *models.InputFormatError
		if errors.As(err, &formatErr) {
			detail := "table: " + formatErr.Table
			if formatErr.Row > 0 {
				detail += fmt.Sprintf(", row: %d", formatErr.Row)
			}
			if formatErr.Column != "" {
				detail += ", column: " + formatErr.Column
			}
			er.Error.Details = append(er.Error.Details, detail)
			if formatErr.Err != nil {
				er.Error.Details = append(er.Error.Details, formatErr.Err.Error())
			}
			return
		}

		var missing *models.MissingKeyError
		if errors.As(err, &missing) {
			detail := fmt.Sprintf("table: %s, key: %d", missing.Table, missing.Key)
			if missing.InvestmentID != 0 {
				detail += fmt.Sprintf(", investment: %d", missing.InvestmentID)
			}
			er.Error.Details = append(er.Error.Details, detail)
		}
	}
}

func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError builds a VALIDATION_001 response. Details are sorted so
// the same request always produces the same body.
func NewValidationError(details []string, traceID string) *ErrorResponse {
	sorted := append([]string(nil), details...)
	sort.Strings(sorted)
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(sorted...))
}

// SystemError hides err behind a generic SYSTEM_001 response. Callers log err.
func SystemError(traceID string) *ErrorResponse {
	return NewErrorResponse(SystemInternalError, traceID)
}

var httpStatusByCode = map[ErrorCode]int{
	InputMissingColumn:  http.StatusUnprocessableEntity,
	InputInvalidValue:   http.StatusUnprocessableEntity,
	InputDuplicateKey:   http.StatusUnprocessableEntity,
	InputSourceNotFound: http.StatusServiceUnavailable,
	InputUnreadable:     http.StatusServiceUnavailable,

	LookupUnknownClient:  http.StatusUnprocessableEntity,
	LookupUnknownProduct: http.StatusUnprocessableEntity,

	ValidationGeneral:       http.StatusBadRequest,
	ValidationRequiredField: http.StatusBadRequest,
	ValidationInvalidFormat: http.StatusBadRequest,
	ValidationOutOfRange:    http.StatusBadRequest,
	ValidationInvalidMonth:  http.StatusBadRequest,
	ValidationInvalidTier:   http.StatusBadRequest,

	ReportUnavailable:   http.StatusUnprocessableEntity,
	ReportEmpty:         http.StatusNotFound,
	ReportChartNotFound: http.StatusNotFound,
	ReportRefreshFailed: http.StatusServiceUnavailable,

	SystemInternalError:      http.StatusInternalServerError,
	SystemDatabaseError:      http.StatusInternalServerError,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
	SystemConfigurationError: http.StatusInternalServerError,
	SystemUnexpectedError:    http.StatusInternalServerError,
	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemRouteNotFound:      http.StatusNotFound,
	SystemMethodNotAllowed:   http.StatusMethodNotAllowed,
}

// GetHTTPStatus maps a code to its HTTP status; unknown codes are 500
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= http.StatusInternalServerError
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
