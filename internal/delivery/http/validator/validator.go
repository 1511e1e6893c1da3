// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	domainerrors "storemgr/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator instance echo calls on c.Validate.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the echo validator.
func New() *CustomValidator {
	return &CustomValidator{validate: playground.New()}
}

// Validate checks struct tags and collapses failures into the generic
// invalid-input error, keeping the field detail for logs.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	return nil
}
