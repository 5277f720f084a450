package middleware

import (
	"net/http"
	"strings"

	"bookstore/config"
	"bookstore/internal/delivery/api/response"
	deliverycontext "bookstore/internal/delivery/context"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	ctxKeySession     = "session"
	ctxKeyRequesterID = "requesterID"

	bearerPrefix = "Bearer "
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cookieName: cfg.Auth.CookieName}
}

// Authenticate requires a valid session token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := m.extractToken(c)
		if !ok {
			return unauthorized(c)
		}

		claims, err := m.tokenSvc.ValidateSessionToken(tokenString)
		if err != nil {
			return unauthorized(c)
		}

		c.Set(ctxKeySession, service.SessionSubject{
			AccountID: claims.AccountID,
			Email:     claims.Email,
			Verified:  claims.Verified,
		})
		setRequester(c, claims.AccountID)

		return next(c)
	}
}

// Identify accepts either a session token or a signup token.
// Only the account id is made available to the handler.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := m.extractToken(c)
		if !ok {
			return unauthorized(c)
		}

		if claims, err := m.tokenSvc.ValidateSessionToken(tokenString); err == nil {
			setRequester(c, claims.AccountID)

			return next(c)
		}

		claims, err := m.tokenSvc.ValidateSignupToken(tokenString)
		if err != nil {
			return unauthorized(c)
		}
		setRequester(c, claims.AccountID)

		return next(c)
	}
}

// extractToken reads the bearer token from the Authorization header, falling back to the cookie.
func (m *AuthMiddleware) extractToken(c echo.Context) (string, bool) {
	raw := c.Request().Header.Get(echo.HeaderAuthorization)
	if raw == "" {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil {
			return "", false
		}
		raw = cookie.Value
	}

	tokenString, found := strings.CutPrefix(raw, bearerPrefix)
	if !found || strings.TrimSpace(tokenString) == "" {
		return "", false
	}

	return strings.TrimSpace(tokenString), true
}

func setRequester(c echo.Context, accountID uuid.UUID) {
	c.Set(ctxKeyRequesterID, accountID)

	req := c.Request()
	c.SetRequest(req.WithContext(deliverycontext.WithAccountID(req.Context(), accountID)))
}

func unauthorized(c echo.Context) error {
	return response.Error(c, http.StatusUnauthorized,
		domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message(), nil)
}

// GetSession returns the session subject stored by Authenticate.
func GetSession(c echo.Context) (service.SessionSubject, bool) {
	subject, ok := c.Get(ctxKeySession).(service.SessionSubject)

	return subject, ok
}

// GetRequesterID returns the account id stored by Authenticate or Identify.
func GetRequesterID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ctxKeyRequesterID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}
