package errors

const (
	HttpInternalError          = "internal_error"
	HttpInvalidJsonError       = "invalid_json"
	HttpInvalidIntervalError   = "invalid_interval"
	HttpInvalidOperandError    = "invalid_operand"
	HttpUnsupportedFormatError = "unsupported_format"
	HttpBatchTooLargeError     = "batch_too_large"
	HttpInvalidScheduleError   = "invalid_schedule"
	HttpScheduleNotFoundError  = "schedule_not_found"
	HttpDuplicateScheduleError = "duplicate_schedule"
)

// ErrorResponse is the error body returned by every v1 endpoint.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
