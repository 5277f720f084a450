package impl

import (
	"context"
	"log/slog"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type wishlistService struct {
	accountRepo repository.AccountRepository
	bookRepo    repository.BookRepository
	logger      *slog.Logger
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	BookRepo    repository.BookRepository
	Logger      *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		accountRepo: params.AccountRepo,
		bookRepo:    params.BookRepo,
		logger:      params.Logger,
	}
}

func (srv *wishlistService) AddToWishlist(ctx context.Context, accountID, bookID uuid.UUID) error {
	if _, err := srv.bookRepo.FindByID(ctx, bookID); err != nil {
		return bookLookupError(err)
	}

	added, err := srv.accountRepo.AddToWishlist(ctx, accountID, bookID)
	if err != nil {
		return errors.Wrap(accountLookupError(err), "failed to add to wishlist")
	}
	if !added {
		return domainerrors.ErrAlreadyInWishlist.WrapMessage("add to wishlist")
	}

	requestLogger(ctx, srv.logger).Debug("Book added to wishlist", slog.Any("accountID", accountID), slog.Any("bookID", bookID))

	return nil
}

func (srv *wishlistService) RemoveFromWishlist(ctx context.Context, accountID, bookID uuid.UUID) error {
	removed, err := srv.accountRepo.RemoveFromWishlist(ctx, accountID, bookID)
	if err != nil {
		return errors.Wrap(err, "failed to remove from wishlist")
	}
	if !removed {
		return domainerrors.ErrNotInWishlist.WrapMessage("remove from wishlist")
	}

	return nil
}

func (srv *wishlistService) GetWishlist(ctx context.Context, accountID uuid.UUID) ([]*entity.Book, error) {
	books, err := srv.accountRepo.ListWishlist(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(accountLookupError(err), "failed to list wishlist")
	}

	return books, nil
}
