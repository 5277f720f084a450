package handler

import (
	"net/http"

	"bookstore/internal/delivery/api/middleware"
	"bookstore/internal/delivery/api/response"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VerificationHandlerParams holds dependencies for VerificationHandler, injected by Fx.
type VerificationHandlerParams struct {
	fx.In

	VerificationUC usecase.VerificationUsecase
}

// VerificationHandler serves the email verification and password reset codes.
type VerificationHandler struct {
	verificationUC usecase.VerificationUsecase
}

// NewVerificationHandler is the constructor for VerificationHandler
func NewVerificationHandler(params VerificationHandlerParams) *VerificationHandler {
	return &VerificationHandler{verificationUC: params.VerificationUC}
}

// SendCodeRequest addresses the account that receives a code
type SendCodeRequest struct {
	Email string `json:"email" validate:"required,min=6,max=60,email"`
}

// VerifyCodeRequest carries a verification code
type VerifyCodeRequest struct {
	Email        string       `json:"email" validate:"required,min=6,max=60,email"`
	ProvidedCode ProvidedCode `json:"providedCode" validate:"required,numeric"`
}

// ResetPasswordRequest carries a forgot-password code and the new password
type ResetPasswordRequest struct {
	Email        string       `json:"email" validate:"required,min=6,max=60,email"`
	ProvidedCode ProvidedCode `json:"providedCode" validate:"required,numeric"`
	NewPassword  string       `json:"newPassword" validate:"required,password"`
}

// SendVerificationCode mails a verification code to the caller's account
func (h *VerificationHandler) SendVerificationCode(c echo.Context) error {
	var req SendCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	requesterID, _ := middleware.GetRequesterID(c)
	err := h.verificationUC.SendVerificationCode(c.Request().Context(), &usecase.SendCodeInput{
		Email:       req.Email,
		RequesterID: requesterID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Code sent!", nil)
}

// VerifyVerificationCode marks the account verified
func (h *VerificationHandler) VerifyVerificationCode(c echo.Context) error {
	var req VerifyCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	requesterID, _ := middleware.GetRequesterID(c)
	err := h.verificationUC.VerifyVerificationCode(c.Request().Context(), &usecase.VerifyCodeInput{
		Email:       req.Email,
		Code:        string(req.ProvidedCode),
		RequesterID: requesterID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "your account has been verified!", nil)
}

// SendForgotPasswordCode mails a password reset code
func (h *VerificationHandler) SendForgotPasswordCode(c echo.Context) error {
	var req SendCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.verificationUC.SendForgotPasswordCode(c.Request().Context(), &usecase.SendCodeInput{Email: req.Email}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Code sent!", nil)
}

// VerifyForgotPasswordCode resets the password with a forgot-password code
func (h *VerificationHandler) VerifyForgotPasswordCode(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.verificationUC.VerifyForgotPasswordCode(c.Request().Context(), &usecase.ResetPasswordInput{
		Email:       req.Email,
		Code:        string(req.ProvidedCode),
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Password updated", nil)
}
