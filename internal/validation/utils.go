package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// simpleEmailRegex is the loose local@domain.tld check this service has
// always used. Deliberately not the validator library's stricter "email"
// tag: a stricter rule would reject addresses the service used to accept.
var simpleEmailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// phoneRegex requires exactly 10 decimal digits.
var phoneRegex = regexp.MustCompile(`^\d{10}$`)

// validate is the shared validator instance with custom rules registered.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Registration failures here mean a non-string field carries the tag,
	// which is a programming error, so panic at init.
	mustRegister(v, "simple_email", func(fl validator.FieldLevel) bool {
		return simpleEmailRegex.MatchString(fl.Field().String())
	})
	mustRegister(v, "phone10", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Struct validates a tagged struct with the shared validator instance.
// On failure it returns validator.ValidationErrors covering every violated
// field, which BindAndValidate converts into the client's field map.
func Struct(s any) error {
	return validate.Struct(s)
}

// IsValidEmail reports whether s matches the service's email pattern.
func IsValidEmail(s string) bool {
	return simpleEmailRegex.MatchString(s)
}

// IsValidPhone reports whether s is exactly 10 decimal digits.
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}
