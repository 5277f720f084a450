package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SendCodeInput addresses an account by email.
// RequesterID is the account behind the caller's token; uuid.Nil when there is none.
type SendCodeInput struct {
	Email       string
	RequesterID uuid.UUID
}

// VerifyCodeInput carries a verification code for the addressed account.
type VerifyCodeInput struct {
	Email       string
	Code        string
	RequesterID uuid.UUID
}

// ResetPasswordInput carries a forgot-password code and the replacement password.
type ResetPasswordInput struct {
	Email       string
	Code        string
	NewPassword string
}

// VerificationUsecase issues and redeems the one-time email codes.
type VerificationUsecase interface {
	SendVerificationCode(ctx context.Context, input *SendCodeInput) error
	VerifyVerificationCode(ctx context.Context, input *VerifyCodeInput) error
	SendForgotPasswordCode(ctx context.Context, input *SendCodeInput) error
	VerifyForgotPasswordCode(ctx context.Context, input *ResetPasswordInput) error
}
