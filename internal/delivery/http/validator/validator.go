// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "cliphub/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request DTOs via struct tags.
type RequestValidator struct {
	validate *playground.Validate
}

// New builds the validator echo will call for every c.Validate(i).
func New() *RequestValidator {
	return &RequestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Tag failures are surfaced as a single
// validation error so the central error handler renders a 400 envelope.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
