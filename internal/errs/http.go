package errs

import "net/http"

// NewBadRequestError creates a 400 with a single client-facing message.
func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Message: message,
	}
}

// NewValidationError creates a 400 carrying per-field messages.
// Used by registration, where every violated field is reported.
func NewValidationError(fields FieldErrors) *HTTPError {
	return &HTTPError{
		Status: http.StatusBadRequest,
		Code:   "VALIDATION_FAILED",
		Fields: fields,
	}
}

// NewUnauthorizedError creates a 401. Callers pass a deliberately generic
// message so credential failures are indistinguishable from each other.
func NewUnauthorizedError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusUnauthorized,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnauthorized)),
		Message: message,
	}
}

// NewNotFoundError creates a 404.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Message: message,
	}
}

// NewInternalServerError creates a 500 with the generic status text.
// Internal details stay in logs, not in the response.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
	}
}
