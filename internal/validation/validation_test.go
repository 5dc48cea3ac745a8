package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storemate/backend/internal/errs"
)

type registerPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,simple_email"`
	Phone    string `json:"phone" validate:"omitempty,phone10"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

func (p *registerPayload) Validate() error { return Struct(p) }

type singleMessagePayload struct {
	Email string `json:"email"`
}

func (p *singleMessagePayload) Validate() error {
	if p.Email == "" {
		return errs.NewBadRequestError("Email is required")
	}
	return nil
}

func bind(t *testing.T, payload Validatable, body string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	return BindAndValidate(c, payload)
}

func TestBindAndValidateReportsEveryMissingField(t *testing.T) {
	err := bind(t, &registerPayload{}, `{}`)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)

	assert.Equal(t, errs.FieldErrors{
		"name":     "Name is required",
		"email":    "Email is required",
		"password": "Password is required",
		"role":     "Role is required",
	}, httpErr.Fields)
	assert.Empty(t, httpErr.Message)
}

func TestBindAndValidateFieldMessages(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		field   string
		message string
	}{
		{
			name:    "malformed email",
			body:    `{"name":"a","email":"not-an-email","password":"longenough","role":"user"}`,
			field:   "email",
			message: "Please enter a valid email",
		},
		{
			name:    "short password",
			body:    `{"name":"a","email":"a@b.co","password":"short","role":"user"}`,
			field:   "password",
			message: "Password must be at least 8 characters",
		},
		{
			name:    "bad phone",
			body:    `{"name":"a","email":"a@b.co","phone":"12345","password":"longenough","role":"user"}`,
			field:   "phone",
			message: "Please enter a valid 10-digit phone number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bind(t, &registerPayload{}, tt.body)
			require.Error(t, err)

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, tt.message, httpErr.Fields[tt.field])
		})
	}
}

func TestBindAndValidateAcceptsValidPayload(t *testing.T) {
	payload := &registerPayload{}
	err := bind(t, payload, `{"name":"Jane","email":"jane@example.com","phone":"0123456789","password":"longenough","role":"user"}`)

	require.NoError(t, err)
	assert.Equal(t, "Jane", payload.Name)
	assert.Equal(t, "0123456789", payload.Phone)
}

func TestBindAndValidatePassesSingleMessageThrough(t *testing.T) {
	err := bind(t, &singleMessagePayload{}, `{}`)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "Email is required", httpErr.Message)
	assert.Empty(t, httpErr.Fields)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	err := bind(t, &registerPayload{}, `{"name":`)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestEmailPattern(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("a@b.co"))
	assert.False(t, IsValidEmail("plainstring"))
	assert.False(t, IsValidEmail("user@nodot"))
	assert.False(t, IsValidEmail("has space@example.com"))
}

func TestPhonePattern(t *testing.T) {
	assert.True(t, IsValidPhone("0123456789"))
	assert.False(t, IsValidPhone("123456789"))
	assert.False(t, IsValidPhone("12345678901"))
	assert.False(t, IsValidPhone("12345abcde"))
}
