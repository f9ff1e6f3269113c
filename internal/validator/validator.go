// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can run c.Validate on bound request bodies.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator validates request DTOs against their `validate` tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds a RequestValidator ready to be assigned to echo.Echo.Validator.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. A violation is reported as a 400 so
// Echo's default error handler does not turn it into a 500.
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
