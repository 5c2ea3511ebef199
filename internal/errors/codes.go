package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Institution catalogue error codes (INSTITUTION_*)
const (
	InstitutionNotFound ErrorCode = "INSTITUTION_001"
)

// Savings goal error codes (GOAL_*)
const (
	GoalNotFound      ErrorCode = "GOAL_001"
	GoalInvalidName   ErrorCode = "GOAL_002"
	GoalInvalidTarget ErrorCode = "GOAL_003"
)

// Savings rule error codes (RULE_*)
const (
	RuleNotFound      ErrorCode = "RULE_001"
	RuleInvalidType   ErrorCode = "RULE_002"
	RuleInvalidAmount ErrorCode = "RULE_003"
)

// Insight error codes (INSIGHT_*)
const (
	InsightUpstreamUnavailable ErrorCode = "INSIGHT_001"
	InsightMalformedResponse   ErrorCode = "INSIGHT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemConfigurationError ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Institution errors
	InstitutionNotFound: "Institution not found in the catalogue",

	// Goal errors
	GoalNotFound:      "Savings goal not found",
	GoalInvalidName:   "Goal name is required",
	GoalInvalidTarget: "Goal target amount must be positive",

	// Rule errors
	RuleNotFound:      "Savings rule not found",
	RuleInvalidType:   "Invalid savings rule type",
	RuleInvalidAmount: "Rule amount must be positive",

	// Insight errors
	InsightUpstreamUnavailable: "Scoring service is temporarily unavailable",
	InsightMalformedResponse:   "Scoring service returned an unusable response",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemConfigurationError: "System configuration error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
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
