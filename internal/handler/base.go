package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storemate/backend/internal/middleware"
	"github.com/storemate/backend/internal/validation"
)

// HandlerFunc is a typed endpoint function: it receives a bound, validated
// request payload and returns the response body or an error. Req is always
// a pointer type so echo's Bind can populate it.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// Handle wraps a typed endpoint function into an echo.HandlerFunc.
//
// A fresh Req is allocated per request (payloads must never be shared
// between concurrent requests), then the pipeline runs:
// bind+validate -> execute -> JSON response with the given status.
// Errors propagate to the global error handler, which shapes the body.
func Handle[Req any, PReq interface {
	*Req
	validation.Validatable
}, Res any](fn HandlerFunc[PReq, Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(c, req, fn, status)
	}
}

// handleRequest is the shared execution pipeline for all endpoints. It
// centralizes binding, validation, structured logging, and timing so the
// endpoint functions contain only their own logic.
func handleRequest[Req validation.Validatable, Res any](
	c echo.Context,
	req Req,
	fn HandlerFunc[Req, Res],
	status int,
) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Logger()

	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("duration", time.Since(start)).
			Msg("request validation failed")
		return err
	}

	result, err := fn(c, req)
	if err != nil {
		logger.Error().
			Err(err).
			Dur("duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	logger.Info().
		Dur("duration", time.Since(start)).
		Msg("request completed")

	return c.JSON(status, result)
}
