package validator

import (
	"testing"

	domainerrors "bookstore/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Email    string `json:"email" validate:"required,min=6,max=60,email"`
	Password string `json:"password" validate:"required,password"`
}

type bookRequest struct {
	Title string   `json:"title" validate:"required,min=3,max=60"`
	Price *float64 `json:"price" validate:"omitempty,min=0"`
}

func TestValidate(t *testing.T) {
	v := New()
	negative := -1.0

	tests := []struct {
		name        string
		input       any
		wantDetails string
	}{
		{name: "valid signup", input: &signupRequest{Email: "reader@example.com", Password: "Abcdef12"}},
		{name: "missing email", input: &signupRequest{Password: "Abcdef12"}, wantDetails: `"email" is required`},
		{name: "bad email", input: &signupRequest{Email: "not-an-email", Password: "Abcdef12"}, wantDetails: `"email" must be a valid email`},
		{name: "weak password", input: &signupRequest{Email: "reader@example.com", Password: "abcdefgh"}, wantDetails: `"password" must be at least 8 characters with upper and lower case letters and a number`},
		{name: "short title", input: &bookRequest{Title: "ab"}, wantDetails: `"title" length must be at least 3 characters long`},
		{name: "negative price", input: &bookRequest{Title: "Dune", Price: &negative}, wantDetails: `"price" must be greater than or equal to 0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantDetails == "" {
				assert.NoError(t, err)

				return
			}

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
			assert.Equal(t, tt.wantDetails, appErr.Details())
		})
	}
}

func TestIsComplexPassword(t *testing.T) {
	assert.True(t, isComplexPassword("Abcdef12"))
	assert.False(t, isComplexPassword("Abc12"))
	assert.False(t, isComplexPassword("ABCDEFG1"))
	assert.False(t, isComplexPassword("Abcdefgh"))
}
