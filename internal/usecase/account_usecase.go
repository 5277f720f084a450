// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Email    string
	Password string
	Username string
}

// SigninInput defines the data required for an account to sign in.
type SigninInput struct {
	Email    string
	Password string
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// UpdateProfileInput is a partial update; nil fields are left untouched.
type UpdateProfileInput struct {
	Email    *string
	Username *string
}

// --- Output DTOs ---

// SignupOutput returns the new account and its signup token.
type SignupOutput struct {
	Account *entity.Account
	Token   string
}

// SigninOutput returns the account and its session token.
type SigninOutput struct {
	Account *entity.Account
	Token   string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Signin(ctx context.Context, input *SigninInput) (*SigninOutput, error)
	ChangePassword(ctx context.Context, subject service.SessionSubject, input *ChangePasswordInput) error
	GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input *UpdateProfileInput) (*entity.Account, error)
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
}
