// Package handler contains the HTTP handlers for the bookstore API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bookstore/config"
	"bookstore/internal/delivery/api/middleware"
	"bookstore/internal/delivery/api/response"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// AccountHandler serves signup, signin and the account endpoints.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	cfg       *config.Config
	logger    *slog.Logger
	now       func() time.Time
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		cfg:       params.Config,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// SignupRequest represents the request body for creating an account
type SignupRequest struct {
	Email    string `json:"email" validate:"required,min=6,max=60,email"`
	Password string `json:"password" validate:"required,password"`
	Username string `json:"username" validate:"omitempty,max=60"`
}

// SigninRequest represents the request body for signing in
type SigninRequest struct {
	Email    string `json:"email" validate:"required,min=6,max=60,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest represents the request body for changing the password
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,password"`
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	Email    *string `json:"email" validate:"omitempty,min=6,max=60,email"`
	Username *string `json:"username" validate:"omitempty,max=60"`
}

// Signup handles account registration
func (h *AccountHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.accountUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithToken(c, http.StatusCreated, "Your account has been created successfully",
		newAccountResponse(output.Account), output.Token)
}

// Signin handles email/password authentication and sets the session cookie
func (h *AccountHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.accountUC.Signin(c.Request().Context(), &usecase.SigninInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(sessionCookie(h.cfg, output.Token, h.now()))

	return response.SuccessWithToken(c, http.StatusOK, "logged in successfully",
		newAccountResponse(output.Account), output.Token)
}

// Signout clears the session cookie. Tokens stay valid until they expire.
func (h *AccountHandler) Signout(c echo.Context) error {
	clearSessionCookie(c, h.cfg)

	return response.Success(c, http.StatusOK, "logged out successfully", nil)
}

// ChangePassword handles a password change for a verified session
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	subject, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.accountUC.ChangePassword(c.Request().Context(), subject, &usecase.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Password updated", nil)
}

// GetMe returns the caller's own account
func (h *AccountHandler) GetMe(c echo.Context) error {
	subject, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), subject.AccountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "User retrieved", newAccountResponse(account))
}

// GetAccount returns an account by id
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "User retrieved", newAccountResponse(account))
}

// UpdateMe applies a partial profile update to the caller's account
func (h *AccountHandler) UpdateMe(c echo.Context) error {
	subject, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.UpdateProfile(c.Request().Context(), subject.AccountID, &usecase.UpdateProfileInput{
		Email:    req.Email,
		Username: req.Username,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "User updated successfully", newAccountResponse(account))
}

// DeleteMe deletes the caller's account and clears the session cookie
func (h *AccountHandler) DeleteMe(c echo.Context) error {
	subject, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), subject.AccountID); err != nil {
		return response.HandleAppError(c, err)
	}

	clearSessionCookie(c, h.cfg)
	h.logger.Info("Account deleted", slog.String("account_id", subject.AccountID.String()))

	return response.Success(c, http.StatusOK, "User deleted", nil)
}
