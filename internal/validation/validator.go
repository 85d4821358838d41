// Package validation wraps go-playground/validator behind a single Struct
// call that yields apperr.Validation errors ready for the HTTP layer.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"tcpworld-api/internal/apperr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates the tagged fields of a request payload. The first failing
// field is reported; requests are rejected before reaching domain logic.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(vErrs) == 0 {
		return apperr.New(apperr.Validation, "invalid request body")
	}
	fe := vErrs[0]
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("field '%s' is required", fe.Field())
	case "email":
		msg = fmt.Sprintf("field '%s' must be a valid email address", fe.Field())
	case "min":
		msg = fmt.Sprintf("field '%s' is below minimum length %s", fe.Field(), fe.Param())
	case "gte":
		msg = fmt.Sprintf("field '%s' must be at least %s", fe.Field(), fe.Param())
	default:
		msg = fmt.Sprintf("field '%s' failed validation '%s'", fe.Field(), fe.Tag())
	}
	return apperr.New(apperr.Validation, msg)
}
