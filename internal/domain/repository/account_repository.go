// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the persistence operations for accounts.
type AccountRepository interface {
	// FindByID retrieves a single account, including its code slots and wishlist ids.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. A duplicate email yields the EmailInUse domain error.
	Create(ctx context.Context, account *entity.Account) error

	// UpdateProfile writes email and username. A duplicate email yields the EmailInUse domain error.
	UpdateProfile(ctx context.Context, account *entity.Account) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Delete removes the account and its wishlist entries.
	Delete(ctx context.Context, id uuid.UUID) error

	// StoreCode writes a code into the slot, superseding any previous one.
	StoreCode(ctx context.Context, id uuid.UUID, kind entity.CodeKind, code entity.IssuedCode) error

	// DiscardCode clears the slot only if it still holds codeHash.
	DiscardCode(ctx context.Context, id uuid.UUID, kind entity.CodeKind, codeHash string) error

	// ConsumeVerificationCode atomically clears the verification slot and marks the account
	// verified, only if the slot still holds codeHash. Reports whether it did.
	ConsumeVerificationCode(ctx context.Context, id uuid.UUID, codeHash string) (bool, error)

	// ConsumeForgotPasswordCode atomically clears the forgot-password slot and stores the
	// new password hash, only if the slot still holds codeHash. Reports whether it did.
	ConsumeForgotPasswordCode(ctx context.Context, id uuid.UUID, codeHash, newPasswordHash string) (bool, error)

	// AddToWishlist inserts the book id; reports false if it was already present.
	AddToWishlist(ctx context.Context, id, bookID uuid.UUID) (bool, error)

	// RemoveFromWishlist deletes the book id; reports false if it was not present.
	RemoveFromWishlist(ctx context.Context, id, bookID uuid.UUID) (bool, error)

	// ListWishlist returns the full books on the account's wishlist, oldest entry first.
	ListWishlist(ctx context.Context, id uuid.UUID) ([]*entity.Book, error)

	// RemoveBookFromWishlists drops the book from every wishlist.
	RemoveBookFromWishlists(ctx context.Context, bookID uuid.UUID) error
}
