package errs

import "strings"

// FieldErrors maps a field name to a human-readable validation message.
// Registration responds with one entry per violated field, not just the first.
type FieldErrors map[string]string

// HTTPError is the single error shape sent to clients.
//
// Status is the HTTP status code and stays out of the body. Code is a
// machine-readable tag derived from the status text (e.g. "NOT_FOUND"),
// used for logging. Exactly one of Message and Fields is populated.
type HTTPError struct {
	Status  int         `json:"-"`
	Code    string      `json:"-"`
	Message string      `json:"error,omitempty"`
	Fields  FieldErrors `json:"errors,omitempty"`
}

// Error satisfies the error interface.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// Is reports whether target is also an *HTTPError, so
// errors.Is(err, &HTTPError{}) matches any domain error.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy with only Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Status:  e.Status,
		Code:    e.Code,
		Message: message,
		Fields:  e.Fields,
	}
}

// MakeUpperCaseWithUnderscores converts an HTTP status text into a stable
// machine-readable code, e.g. "Bad Request" -> "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
