// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	domainerrors "bookstore/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports JSON field names and knows the "password" rule.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// password: at least 8 characters with a lowercase letter, an uppercase letter and a digit.
	_ = validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return isComplexPassword(fl.Field().String())
	})

	return &CustomValidator{validate: validate}
}

func isComplexPassword(password string) bool {
	if len([]rune(password)) < 8 {
		return false
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLower && hasUpper && hasDigit
}

// Validate checks the struct and returns the first violation as a validation AppError.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return errors.Wrap(err, "invalid validation target")
	}

	return domainerrors.ErrValidationFailed.WithDetails(describe(validationErrors[0]))
}

func describe(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()

	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("\"%s\" is required", field)
	case "email":
		return fmt.Sprintf("\"%s\" must be a valid email", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("\"%s\" length must be at least %s characters long", field, param)
		}

		return fmt.Sprintf("\"%s\" must be greater than or equal to %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("\"%s\" length must be less than or equal to %s characters long", field, param)
		}

		return fmt.Sprintf("\"%s\" must be less than or equal to %s", field, param)
	case "numeric":
		return fmt.Sprintf("\"%s\" must be a number", field)
	case "password":
		return fmt.Sprintf("\"%s\" must be at least 8 characters with upper and lower case letters and a number", field)
	case "uuid":
		return fmt.Sprintf("\"%s\" must be a valid id", field)
	default:
		return fmt.Sprintf("\"%s\" failed on the '%s' rule", field, fe.Tag())
	}
}
