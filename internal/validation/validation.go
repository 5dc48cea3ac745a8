// Package validation binds and validates request payloads.
//
// It uses the validator library to enforce rules defined in struct tags and
// converts violations into the field->message map the client expects.
// Validation evaluates every field, so a registration payload missing three
// fields reports all three.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/storemate/backend/internal/errs"
)

// Validatable is implemented by request payload types.
//
// Types either run Struct() on themselves (tag-based rules, field-level
// errors) or return an *errs.HTTPError directly when the endpoint responds
// with a single message instead of a field map.
type Validatable interface {
	Validate() error
}

// BindAndValidate populates payload from the request and validates it.
//
// Bind failures (malformed JSON, a non-numeric price, a wrong type) become a
// 400 rather than propagating as a 500. payload must be a pointer so Bind
// can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err))
	}

	if err := payload.Validate(); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return errs.NewValidationError(extractFieldErrors(err))
	}

	return nil
}

// bindErrorMessage extracts a client-safe message from an echo bind error.
// Echo wraps unmarshal errors in its own HTTPError with an Internal cause.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Internal != nil {
			return echoErr.Internal.Error()
		}
		if msg, ok := echoErr.Message.(string); ok {
			return msg
		}
	}
	return "Invalid request body"
}

// extractFieldErrors converts validator violations into field->message form.
func extractFieldErrors(err error) errs.FieldErrors {
	fieldErrors := errs.FieldErrors{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not tag-based; surface it under a generic key so the client
		// still gets a 400 with some detail.
		fieldErrors["request"] = err.Error()
		return fieldErrors
	}

	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()
		var msg string

		switch fieldErr.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", field)

		case "min":
			if fieldErr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
			} else {
				msg = fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
			}

		case "simple_email":
			msg = "Please enter a valid email"

		case "phone10":
			msg = "Please enter a valid 10-digit phone number"

		case "oneof":
			msg = fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())

		default:
			if fieldErr.Param() != "" {
				msg = fmt.Sprintf("%s failed on %s:%s", field, fieldErr.Tag(), fieldErr.Param())
			} else {
				msg = fmt.Sprintf("%s failed on %s", field, fieldErr.Tag())
			}
		}

		fieldErrors[strings.ToLower(field)] = msg
	}

	return fieldErrors
}
