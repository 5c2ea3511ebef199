package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_BasicUsage tests creating a basic error response
func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(InstitutionNotFound, s.traceID)

	s.NotNil(response)
	s.Equal("INSTITUTION_001", response.Error.Code)
	s.Equal("Institution not found in the catalogue", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

// TestNewErrorResponse_WithDetails tests creating error response with details
func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"name is required", "target_amount must be greater than 0"}
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails(details...))

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Validation failed", response.Error.Message)
	s.Equal(details, response.Error.Details)
}

// TestNewErrorResponse_WithCustomMessage tests overriding the default message
func (s *ResponseTestSuite) TestNewErrorResponse_WithCustomMessage() {
	customMessage := "Custom error message for specific context"
	response := NewErrorResponse(SystemInternalError, s.traceID, WithMessage(customMessage))

	s.NotNil(response)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal(customMessage, response.Error.Message)
}

// TestNewErrorResponse_WithMultipleOptions tests using multiple functional options
func (s *ResponseTestSuite) TestNewErrorResponse_WithMultipleOptions() {
	customMessage := "Custom message"
	details := []string{"Detail 1", "Detail 2"}
	response := NewErrorResponse(
		GoalNotFound,
		s.traceID,
		WithMessage(customMessage),
		WithDetails(details...),
	)

	s.NotNil(response)
	s.Equal("GOAL_001", response.Error.Code)
	s.Equal(customMessage, response.Error.Message)
	s.Equal(details, response.Error.Details)
}

// TestNewValidationError_WithFieldErrors tests creating validation error from field map
func (s *ResponseTestSuite) TestNewValidationError_WithFieldErrors() {
	fieldErrors := map[string]string{
		"name":          "is required",
		"target_amount": "must be greater than 0",
	}

	response := NewValidationError(fieldErrors, s.traceID)

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Len(response.Error.Details, 2)

	// Check that all field errors are included (order may vary due to map iteration)
	detailsMap := make(map[string]bool)
	for _, detail := range response.Error.Details {
		detailsMap[detail] = true
	}
	s.True(detailsMap["name: is required"])
	s.True(detailsMap["target_amount: must be greater than 0"])
}

// TestWrapSystemError tests wrapping an internal error for safe client exposure
func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := json.Unmarshal([]byte("{"), &struct{}{})
	response, err := WrapSystemError(internal, s.traceID)

	s.NotNil(response)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal(internal, err)
	// The client-facing message never carries internal error text
	s.NotContains(response.Error.Message, internal.Error())
}

// TestToJSON tests serializing the error response
func (s *ResponseTestSuite) TestToJSON() {
	response := NewErrorResponse(RuleNotFound, s.traceID)

	data, err := response.ToJSON()
	s.Require().NoError(err)

	var decoded ErrorResponse
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("RULE_001", decoded.Error.Code)
	s.Equal(s.traceID, decoded.Error.TraceID)
}

// TestGetHTTPStatus tests the error code to HTTP status mapping
func (s *ResponseTestSuite) TestGetHTTPStatus() {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidFormat, http.StatusBadRequest},
		{ValidationInvalidDate, http.StatusBadRequest},
		{InstitutionNotFound, http.StatusNotFound},
		{GoalNotFound, http.StatusNotFound},
		{RuleNotFound, http.StatusNotFound},
		{GoalInvalidName, http.StatusUnprocessableEntity},
		{GoalInvalidTarget, http.StatusUnprocessableEntity},
		{RuleInvalidType, http.StatusUnprocessableEntity},
		{RuleInvalidAmount, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{InsightUpstreamUnavailable, http.StatusServiceUnavailable},
		{InsightMalformedResponse, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN_999"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		s.Equal(tt.expected, GetHTTPStatus(tt.code), "code %s", tt.code)
	}
}

// TestIsClientError tests 4xx classification
func (s *ResponseTestSuite) TestIsClientError() {
	s.True(NewErrorResponse(GoalNotFound, s.traceID).IsClientError())
	s.False(NewErrorResponse(SystemInternalError, s.traceID).IsClientError())
}

// TestIsServerError tests 5xx classification
func (s *ResponseTestSuite) TestIsServerError() {
	s.True(NewErrorResponse(SystemInternalError, s.traceID).IsServerError())
	s.True(NewErrorResponse(InsightUpstreamUnavailable, s.traceID).IsServerError())
	s.False(NewErrorResponse(ValidationGeneral, s.traceID).IsServerError())
}

// TestString tests the string representation
func (s *ResponseTestSuite) TestString() {
	response := NewErrorResponse(InstitutionNotFound, s.traceID)

	s.Equal("[INSTITUTION_001] Institution not found in the catalogue (trace: "+s.traceID+")",
		response.String())
}
