// Package validator adapts go-playground/validator to Echo's Validator
// interface and converts rule failures into structured field errors.
package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const passwordPolicyMessage = "Password must be at least 8 characters and include uppercase, lowercase, number, and symbol"

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field error of a request. The HTTP error
// handler serializes it as a 400 with an errors array.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError builds a ValidationError from explicit field errors.
// Handlers use it for failures the struct tags cannot express, such as a
// non-numeric path parameter.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// New returns a validator ready to be assigned to echo.Echo.Validator.
func New() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// The error is only non-nil for an empty tag or nil fn.
	_ = v.RegisterValidation("password", strongPassword)

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fieldError(fe))
	}

	return &ValidationError{Fields: fields}
}

// fieldError converts a single rule failure into a human-readable message.
// Field names are reported in their JSON form (snake_case).
func fieldError(fe validator.FieldError) FieldError {
	field := jsonFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return FieldError{Field: field, Message: field + " is required"}
	case "email":
		return FieldError{Field: field, Message: "Valid email required"}
	case "password":
		return FieldError{Field: field, Message: passwordPolicyMessage}
	case "min":
		return FieldError{Field: field, Message: fmt.Sprintf("%s must be at least %s characters", field, fe.Param())}
	case "max":
		return FieldError{Field: field, Message: fmt.Sprintf("%s must be at most %s characters", field, fe.Param())}
	default:
		return FieldError{Field: field, Message: fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())}
	}
}

// jsonFieldName lowercases a Go struct field name into its snake_case JSON
// counterpart, e.g. FirstName -> first_name.
func jsonFieldName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return b.String()
}

// strongPassword enforces the registration password policy: at least eight
// characters with one uppercase letter, one lowercase letter, one digit and
// one symbol.
func strongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSymbol
}
