// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"strings"
	"unicode"

	"bookstore/config"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = 12

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from the auth and password strength configuration.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := defaultBcryptCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost, cfg.PasswordStrength)
}

// NewBcryptHasherWithCost returns a hasher with an explicit cost. A nil policy uses the defaults.
func NewBcryptHasherWithCost(cost int, policy *config.PasswordStrengthConfig) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = defaultBcryptCost
	}

	h := &bcryptHasher{
		cost: cost,
		policy: config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}
	if policy != nil {
		h.policy = *policy
	}

	return h
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength reports every unmet rule of the policy in the error details.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	var problems []string

	length := len([]rune(password))
	if h.policy.MinLength > 0 && length < h.policy.MinLength {
		problems = append(problems, "must be at least "+strconv.Itoa(h.policy.MinLength)+" characters long")
	}
	if h.policy.MaxLength > 0 && length > h.policy.MaxLength {
		problems = append(problems, "must be at most "+strconv.Itoa(h.policy.MaxLength)+" characters long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if h.policy.RequireLowercase && !hasLower {
		problems = append(problems, "must contain at least one lowercase letter")
	}
	if h.policy.RequireUppercase && !hasUpper {
		problems = append(problems, "must contain at least one uppercase letter")
	}
	if h.policy.RequireNumbers && !hasNumber {
		problems = append(problems, "must contain at least one number")
	}
	if h.policy.RequireSpecial && !hasSpecial {
		problems = append(problems, "must contain at least one special character")
	}

	if len(problems) == 0 {
		return nil
	}

	return domainerrors.ErrPasswordStrength.WithDetails("password " + strings.Join(problems, "; "))
}
