package errors

import (
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

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Validation Invalid Date",
			code:     ValidationInvalidDate,
			expected: "Invalid date format or range",
		},
		{
			name:     "Institution Not Found",
			code:     InstitutionNotFound,
			expected: "Institution not found in the catalogue",
		},
		{
			name:     "Goal Not Found",
			code:     GoalNotFound,
			expected: "Savings goal not found",
		},
		{
			name:     "Rule Invalid Type",
			code:     RuleInvalidType,
			expected: "Invalid savings rule type",
		},
		{
			name:     "Insight Upstream Unavailable",
			code:     InsightUpstreamUnavailable,
			expected: "Scoring service is temporarily unavailable",
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

// TestIsValidErrorCode_ValidCodes tests validation of valid error codes
func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	validCodes := []ErrorCode{
		ValidationGeneral,
		ValidationInvalidFormat,
		InstitutionNotFound,
		GoalNotFound,
		GoalInvalidName,
		RuleNotFound,
		RuleInvalidAmount,
		InsightMalformedResponse,
		SystemRateLimitExceeded,
	}

	for _, code := range validCodes {
		s.True(IsValidErrorCode(code), "expected %s to be valid", code)
	}
}

// TestIsValidErrorCode_InvalidCode tests validation of an unregistered code
func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCode() {
	s.False(IsValidErrorCode("BANANA_001"))
}
