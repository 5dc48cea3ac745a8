// Package errs defines the error types returned to API clients.
//
// Every domain error is an *HTTPError. The global error handler serializes
// it directly, so a response body carries either an "error" message or an
// "errors" field map, never both. Internal error strings stay out of
// responses.
package errs
