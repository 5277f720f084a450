package auth

import (
	"testing"
	"time"

	"bookstore/config"
	"bookstore/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{
		SecretKey: struct {
			Session string `json:"session" yaml:"session"`
			Signup  string `json:"signup" yaml:"signup"`
			Code    string `json:"code" yaml:"code"`
		}{
			Session: "test_session_secret_key_very_long_for_testing",
			Signup:  "test_signup_secret_key_very_long_for_testing",
			Code:    "test_code_secret",
		},
	}

	return cfg
}

func newTestJWTService(t *testing.T) *jwtService {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_SessionToken(t *testing.T) {
	svc := newTestJWTService(t)
	accountID := uuid.New()

	token, err := svc.GenerateSessionToken(service.SessionSubject{
		AccountID: accountID,
		Email:     "reader@books.com",
		Verified:  true,
	})
	require.NoError(t, err)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "reader@books.com", claims.Email)
	assert.True(t, claims.Verified)
	assert.Equal(t, service.TokenTypeSession, claims.Type)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_SignupTokenCarriesAccountOnly(t *testing.T) {
	svc := newTestJWTService(t)
	accountID := uuid.New()

	token, err := svc.GenerateSignupToken(accountID)
	require.NoError(t, err)

	claims, err := svc.ValidateSignupToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	require.NoError(t, err)
	mapClaims := parsed.Claims.(jwt.MapClaims)
	assert.NotContains(t, mapClaims, "email")
	assert.NotContains(t, mapClaims, "verified")
}

func TestJWTService_TokenKindsAreNotInterchangeable(t *testing.T) {
	svc := newTestJWTService(t)
	accountID := uuid.New()

	sessionToken, err := svc.GenerateSessionToken(service.SessionSubject{AccountID: accountID, Email: "a@x.com"})
	require.NoError(t, err)
	signupToken, err := svc.GenerateSignupToken(accountID)
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(signupToken)
	assert.Error(t, err)

	_, err = svc.ValidateSignupToken(sessionToken)
	assert.Error(t, err)
}

func TestJWTService_SameSecretStillChecksType(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.SecretKey.Signup = cfg.SecretKey.Session
	raw, err := NewJWTService(cfg)
	require.NoError(t, err)
	svc := raw.(*jwtService)

	signupToken, err := svc.GenerateSignupToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(signupToken)
	assert.True(t, errors.Is(err, ErrTokenType))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	issued := time.Now().Add(-9 * time.Hour)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateSessionToken(service.SessionSubject{AccountID: uuid.New()})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateSessionToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t)

	claims, err := svc.ValidateSessionToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_RejectsOtherSigningMethod(t *testing.T) {
	svc := newTestJWTService(t)
	claims := service.SessionClaims{
		AccountID: uuid.New(),
		Type:      service.TokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(svc.sessionSecret)
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
