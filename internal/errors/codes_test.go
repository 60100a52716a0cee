package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

var allCodes = []ErrorCode{
	InputMissingColumn,
	InputInvalidValue,
	InputDuplicateKey,
	InputSourceNotFound,
	InputUnreadable,
	LookupUnknownClient,
	LookupUnknownProduct,
	ValidationGeneral,
	ValidationRequiredField,
	ValidationInvalidFormat,
	ValidationOutOfRange,
	ValidationInvalidMonth,
	ValidationInvalidTier,
	ReportUnavailable,
	ReportEmpty,
	ReportChartNotFound,
	ReportRefreshFailed,
	SystemInternalError,
	SystemDatabaseError,
	SystemServiceUnavailable,
	SystemConfigurationError,
	SystemUnexpectedError,
	SystemRateLimitExceeded,
	SystemRouteNotFound,
	SystemMethodNotAllowed,
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Input Missing Column",
			code:     InputMissingColumn,
			expected: "Input table is missing an expected column",
		},
		{
			name:     "Lookup Unknown Client",
			code:     LookupUnknownClient,
			expected: "Investment references an unknown client",
		},
		{
			name:     "Validation Invalid Month",
			code:     ValidationInvalidMonth,
			expected: "Month must use the YYYY-MM format",
		},
		{
			name:     "Report Chart Not Found",
			code:     ReportChartNotFound,
			expected: "Chart not found",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage("INVALID_CODE")
	s.Equal("An error occurred", message)
}

func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	for _, code := range allCodes {
		s.Run(string(code), func() {
			s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
		})
	}
}

func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCode() {
	invalidCodes := []ErrorCode{
		"INVALID_001",
		"UNKNOWN_CODE",
		"",
		"INPUT_999",
	}

	for _, code := range invalidCodes {
		s.Run(string(code), func() {
			s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
		})
	}
}

// TestErrorCodeConstants_Uniqueness ensures all error codes are unique
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
}

// TestErrorCodeConstants_Format ensures all error codes follow naming convention
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	testCases := []struct {
		prefix string
		codes  []ErrorCode
	}{
		{
			prefix: "INPUT_",
			codes:  []ErrorCode{InputMissingColumn, InputInvalidValue, InputDuplicateKey, InputSourceNotFound, InputUnreadable},
		},
		{
			prefix: "LOOKUP_",
			codes:  []ErrorCode{LookupUnknownClient, LookupUnknownProduct},
		},
		{
			prefix: "VALIDATION_",
			codes: []ErrorCode{
				ValidationGeneral,
				ValidationRequiredField,
				ValidationInvalidFormat,
				ValidationOutOfRange,
				ValidationInvalidMonth,
				ValidationInvalidTier,
			},
		},
		{
			prefix: "REPORT_",
			codes:  []ErrorCode{ReportUnavailable, ReportEmpty, ReportChartNotFound, ReportRefreshFailed},
		},
		{
			prefix: "SYSTEM_",
			codes: []ErrorCode{
				SystemInternalError,
				SystemDatabaseError,
				SystemServiceUnavailable,
				SystemConfigurationError,
				SystemUnexpectedError,
				SystemRateLimitExceeded,
				SystemRouteNotFound,
				SystemMethodNotAllowed,
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.prefix, func() {
			for _, code := range tc.codes {
				s.True(strings.HasPrefix(string(code), tc.prefix), "Error code %s should start with %s", code, tc.prefix)
			}
		})
	}
}

// TestAllErrorCodesHaveMessages ensures every error code has a message
func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	for _, code := range allCodes {
		s.NotEqual("An error occurred", GetErrorMessage(code), "code %s has no message", code)
	}
	s.Len(errorMessages, len(allCodes))
}
