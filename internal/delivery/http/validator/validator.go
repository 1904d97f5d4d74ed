// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strconv"

	domainerrors "cryofood/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// TagMaxBytes limits a string by its encoded length. The builtin max counts runes.
const TagMaxBytes = "maxbytes"

type CustomValidator struct {
	validator *validator.Validate
}

func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation(TagMaxBytes, maxBytes); err != nil {
		panic(err)
	}

	return &CustomValidator{
		validator: v,
	}
}

// Validate reports any tag violation as ErrValidationFailed.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return len(field.String()) <= limit
}
