package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeEmptyQuery       = "EMPTY_QUERY"
	ErrCodeEmptyMessage     = "EMPTY_MESSAGE"
	ErrCodeUnknownTool      = "UNKNOWN_TOOL"
	ErrCodeInvalidArgument  = "INVALID_ARGUMENT"
	ErrCodeLocationUnknown  = "LOCATION_UNKNOWN"
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
	ErrCodeLLMUnavailable   = "LLM_UNAVAILABLE"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptyQuery      = NewDomainError(ErrCodeEmptyQuery, "Query cannot be empty")
	ErrEmptyMessage    = NewDomainError(ErrCodeEmptyMessage, "Message cannot be empty")
	ErrUnknownTool     = NewDomainError(ErrCodeUnknownTool, "Unknown tool")
	ErrLocationUnknown = NewDomainError(ErrCodeLocationUnknown, "Hours not available for this location")
	ErrLLMUnavailable  = NewDomainError(ErrCodeLLMUnavailable, "LLM API key is not configured")
)
