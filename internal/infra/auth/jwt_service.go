package auth

import (
	"time"

	"bookstore/config"
	"bookstore/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrTokenType is returned when a valid token of the other kind is presented.
	ErrTokenType = errors.New("unexpected token type")

	errMissingSecrets = errors.New("jwt secrets must be provided")
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	sessionSecret []byte
	signupSecret  []byte
	sessionTTL    time.Duration
	signupTTL     time.Duration
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" || cfg.SecretKey.Signup == "" {
		return nil, errMissingSecrets
	}

	svc := &jwtService{
		sessionSecret: []byte(cfg.SecretKey.Session),
		signupSecret:  []byte(cfg.SecretKey.Signup),
		sessionTTL:    8 * time.Hour,
		signupTTL:     7 * 24 * time.Hour,
		now:           time.Now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.SessionTTL > 0 {
			svc.sessionTTL = cfg.Auth.SessionTTL
		}
		if cfg.Auth.SignupTTL > 0 {
			svc.signupTTL = cfg.Auth.SignupTTL
		}
	}

	return svc, nil
}

func (s *jwtService) GenerateSessionToken(subject service.SessionSubject) (string, error) {
	now := s.now()
	claims := service.SessionClaims{
		AccountID: subject.AccountID,
		Email:     subject.Email,
		Verified:  subject.Verified,
		Type:      service.TokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.AccountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.sessionSecret)

	return signed, errors.Wrap(err, "failed to sign session token")
}

func (s *jwtService) GenerateSignupToken(accountID uuid.UUID) (string, error) {
	now := s.now()
	claims := service.SignupClaims{
		AccountID: accountID,
		Type:      service.TokenTypeSignup,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.signupTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signupSecret)

	return signed, errors.Wrap(err, "failed to sign signup token")
}

func (s *jwtService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	if err := s.parse(tokenString, claims, s.sessionSecret); err != nil {
		return nil, err
	}
	if claims.Type != service.TokenTypeSession || claims.AccountID == uuid.Nil {
		return nil, ErrTokenType
	}

	return claims, nil
}

func (s *jwtService) ValidateSignupToken(tokenString string) (*service.SignupClaims, error) {
	claims := &service.SignupClaims{}
	if err := s.parse(tokenString, claims, s.signupSecret); err != nil {
		return nil, err
	}
	if claims.Type != service.TokenTypeSignup || claims.AccountID == uuid.Nil {
		return nil, ErrTokenType
	}

	return claims, nil
}

func (s *jwtService) parse(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return errors.New("invalid token")
	}

	return nil
}
