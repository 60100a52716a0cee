package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Input table error codes (INPUT_*)
const (
	InputMissingColumn  ErrorCode = "INPUT_001"
	InputInvalidValue   ErrorCode = "INPUT_002"
	InputDuplicateKey   ErrorCode = "INPUT_003"
	InputSourceNotFound ErrorCode = "INPUT_004"
	InputUnreadable     ErrorCode = "INPUT_005"
)

// Reference lookup error codes (LOOKUP_*)
const (
	LookupUnknownClient  ErrorCode = "LOOKUP_001"
	LookupUnknownProduct ErrorCode = "LOOKUP_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidMonth  ErrorCode = "VALIDATION_005"
	ValidationInvalidTier   ErrorCode = "VALIDATION_006"
)

// Report error codes (REPORT_*)
const (
	ReportUnavailable   ErrorCode = "REPORT_001"
	ReportEmpty         ErrorCode = "REPORT_002"
	ReportChartNotFound ErrorCode = "REPORT_003"
	ReportRefreshFailed ErrorCode = "REPORT_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
	SystemMethodNotAllowed   ErrorCode = "SYSTEM_008"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Input errors
	InputMissingColumn:  "Input table is missing an expected column",
	InputInvalidValue:   "Input table contains an invalid value",
	InputDuplicateKey:   "Input table contains a duplicated key",
	InputSourceNotFound: "Input table could not be found",
	InputUnreadable:     "Input table could not be read",

	// Lookup errors
	LookupUnknownClient:  "Investment references an unknown client",
	LookupUnknownProduct: "Investment references an unknown product",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidMonth:  "Month must use the YYYY-MM format",
	ValidationInvalidTier:   "Tier must be one of Bronze, Prata or Ouro",

	// Report errors
	ReportUnavailable:   "Report could not be generated from the current input tables",
	ReportEmpty:         "No investments match the requested filters",
	ReportChartNotFound: "Chart not found",
	ReportRefreshFailed: "Input tables could not be reloaded",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "The requested resource does not exist",
	SystemMethodNotAllowed:   "Method not allowed for this resource",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
