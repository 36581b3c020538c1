package errors

// Default error is treated as an internal service error at the handler level.
// Errors that map to a different HTTP status use ErrorWithStatusCode.
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// New is a shorthand for the common construction sites in services and storage.
func New(message string, statusCode int) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: statusCode}
}
