package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/storemate/backend/internal/errs"
	"github.com/storemate/backend/internal/server"
)

// GlobalMiddlewares groups the middleware applied to every route plus the
// global error handler. It holds the app container so middleware can read
// config (CORS origins, env) without package-level state.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{server: s}
}

// CORS returns echo's CORS middleware configured from server config.
// The default configuration allows any origin.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger returns echo's request logger middleware wired to zerolog.
// It emits one log line per request, leveled by status class.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// When a handler returns an error, the final status is written
			// later by the global error handler, so derive it from the
			// error type to avoid logging a false 200.
			if v.Error != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				if errors.As(v.Error, &httpErr) {
					statusCode = httpErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				}
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover returns echo's panic recovery middleware: panics become 500
// responses instead of killing the process.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the HTTP server.
//
// Every error returned from a handler ends up here and is translated into
// the client error shape: a body with either an "error" message or an
// "errors" field map. Unknown errors become a generic 500; the underlying
// error stays in the logs.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		switch {
		case errors.As(err, &echoErr):
			if echoErr.Code == http.StatusNotFound {
				httpErr = errs.NewNotFoundError("Route not found")
			} else {
				message := http.StatusText(echoErr.Code)
				if msg, ok := echoErr.Message.(string); ok {
					message = msg
				}
				httpErr = &errs.HTTPError{
					Status:  echoErr.Code,
					Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
					Message: message,
				}
			}

		default:
			httpErr = errs.NewInternalServerError()
		}
	}

	logger := GetLogger(c)
	logger.Error().Stack().
		Err(originalErr).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Msg(httpErr.Error())

	if !c.Response().Committed {
		_ = c.JSON(httpErr.Status, httpErr)
	}
}
