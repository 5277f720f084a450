package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeSession = "session"
	TokenTypeSignup  = "signup"
)

// SessionClaims are carried by the token issued on signin.
type SessionClaims struct {
	AccountID uuid.UUID `json:"accountId"`
	Email     string    `json:"email"`
	Verified  bool      `json:"verified"`
	Type      string    `json:"type"`
	jwt.RegisteredClaims
}

// SignupClaims are carried by the token issued on signup. They identify the account only.
type SignupClaims struct {
	AccountID uuid.UUID `json:"accountId"`
	Type      string    `json:"type"`
	jwt.RegisteredClaims
}

// SessionSubject identifies the account behind a session token.
type SessionSubject struct {
	AccountID uuid.UUID
	Email     string
	Verified  bool
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateSessionToken signs a session token for the subject.
	GenerateSessionToken(subject SessionSubject) (string, error)

	// GenerateSignupToken signs a signup token for the account.
	GenerateSignupToken(accountID uuid.UUID) (string, error)

	// ValidateSessionToken parses a session token. Signup tokens are rejected.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)

	// ValidateSignupToken parses a signup token. Session tokens are rejected.
	ValidateSignupToken(tokenString string) (*SignupClaims, error)
}
