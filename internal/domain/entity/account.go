// Package entity contains the core domain models of the bookstore.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CodeKind names one of the independent one-time code slots on an account.
type CodeKind string

const (
	CodeKindVerification   CodeKind = "verification"
	CodeKindForgotPassword CodeKind = "forgot_password"
)

// IssuedCode is a stored one-time code: its keyed hash and when it was issued.
type IssuedCode struct {
	Hash     string
	IssuedAt time.Time
}

// Account is a registered user of the bookstore.
type Account struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	Verified     bool

	VerificationCode   *IssuedCode
	ForgotPasswordCode *IssuedCode

	Wishlist []uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Code returns the code stored in the given slot, or nil.
func (a *Account) Code(kind CodeKind) *IssuedCode {
	switch kind {
	case CodeKindVerification:
		return a.VerificationCode
	case CodeKindForgotPassword:
		return a.ForgotPasswordCode
	default:
		return nil
	}
}

// HasInWishlist reports whether the book is already on the wishlist.
func (a *Account) HasInWishlist(bookID uuid.UUID) bool {
	for _, id := range a.Wishlist {
		if id == bookID {
			return true
		}
	}

	return false
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
