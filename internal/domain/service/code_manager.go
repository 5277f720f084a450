package service

import "bookstore/internal/domain/entity"

// CodeManager issues and checks one-time numeric codes.
type CodeManager interface {
	// Issue generates a fresh code. The plaintext is for delivery only; the IssuedCode is what gets stored.
	Issue() (plain string, code entity.IssuedCode, err error)

	// Verify checks a provided code against the stored one.
	// Returns ErrCodeMissing, ErrCodeExpired or ErrCodeMismatch from the domain errors.
	Verify(stored *entity.IssuedCode, provided string) error
}
