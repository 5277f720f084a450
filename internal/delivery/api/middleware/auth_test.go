package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/config"
	"bookstore/internal/domain/service"
	mockSvc "bookstore/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestConfig() *config.Config {
	return &config.Config{Auth: &config.AuthConfig{CookieName: "Authorization"}}
}

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := mw(func(echo.Context) error {
		called = true

		return nil
	})(c)
	require.NoError(t, err)

	return rec, c, called
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	accountID := uuid.New()

	t.Run("bearer header", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateSessionToken("good").Return(&service.SessionClaims{
			AccountID: accountID,
			Email:     "reader@books.com",
			Verified:  true,
		}, nil)
		m := NewAuthMiddleware(tokens, newAuthTestConfig())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good")
		_, c, called := runMiddleware(t, m.Authenticate, req)

		require.True(t, called)
		subject, ok := GetSession(c)
		require.True(t, ok)
		assert.Equal(t, accountID, subject.AccountID)
		assert.True(t, subject.Verified)

		requesterID, ok := GetRequesterID(c)
		require.True(t, ok)
		assert.Equal(t, accountID, requesterID)
	})

	t.Run("cookie fallback", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateSessionToken("from-cookie").Return(&service.SessionClaims{AccountID: accountID}, nil)
		m := NewAuthMiddleware(tokens, newAuthTestConfig())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "Authorization", Value: "Bearer from-cookie"})
		_, _, called := runMiddleware(t, m.Authenticate, req)

		assert.True(t, called)
	})

	t.Run("missing token", func(t *testing.T) {
		m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), newAuthTestConfig())

		rec, _, called := runMiddleware(t, m.Authenticate, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
	})

	t.Run("not a bearer token", func(t *testing.T) {
		m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), newAuthTestConfig())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic abc")
		rec, _, called := runMiddleware(t, m.Authenticate, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("signup token rejected", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateSessionToken("signup").Return(nil, errors.New("unexpected token type"))
		m := NewAuthMiddleware(tokens, newAuthTestConfig())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer signup")
		rec, _, called := runMiddleware(t, m.Authenticate, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_Identify(t *testing.T) {
	accountID := uuid.New()

	t.Run("signup token", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateSessionToken("signup").Return(nil, errors.New("unexpected token type"))
		tokens.EXPECT().ValidateSignupToken("signup").Return(&service.SignupClaims{AccountID: accountID}, nil)
		m := NewAuthMiddleware(tokens, newAuthTestConfig())

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer signup")
		_, c, called := runMiddleware(t, m.Identify, req)

		require.True(t, called)
		requesterID, ok := GetRequesterID(c)
		require.True(t, ok)
		assert.Equal(t, accountID, requesterID)

		_, hasSession := GetSession(c)
		assert.False(t, hasSession)
	})

	t.Run("invalid token", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateSessionToken("bad").Return(nil, errors.New("signature is invalid"))
		tokens.EXPECT().ValidateSignupToken("bad").Return(nil, errors.New("signature is invalid"))
		m := NewAuthMiddleware(tokens, newAuthTestConfig())

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
		rec, _, called := runMiddleware(t, m.Identify, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
