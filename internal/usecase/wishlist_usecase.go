package usecase

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase manages the set of books an account wants.
type WishlistUsecase interface {
	AddToWishlist(ctx context.Context, accountID, bookID uuid.UUID) error
	RemoveFromWishlist(ctx context.Context, accountID, bookID uuid.UUID) error
	GetWishlist(ctx context.Context, accountID uuid.UUID) ([]*entity.Book, error)
}
