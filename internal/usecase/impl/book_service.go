package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"bookstore/config"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPageSize = 10

type bookService struct {
	txManager repository.TransactionManager
	bookRepo  repository.BookRepository
	pageSize  int
	logger    *slog.Logger
}

// BookServiceParams holds dependencies for BookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BookRepo  repository.BookRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	pageSize := defaultPageSize
	if params.Config != nil && params.Config.Catalog != nil && params.Config.Catalog.PageSize > 0 {
		pageSize = params.Config.Catalog.PageSize
	}

	return &bookService{
		txManager: params.TxManager,
		bookRepo:  params.BookRepo,
		pageSize:  pageSize,
		logger:    params.Logger,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// ListBooks returns one page of the catalog. Pages start at 1; lower values mean the first page.
// Pages whose offset does not fit in an int are past the end of any catalog and come back empty.
func (srv *bookService) ListBooks(ctx context.Context, input *usecase.ListBooksInput) ([]*entity.Book, error) {
	page := max(input.Page, 1)
	if page-1 > math.MaxInt/srv.pageSize {
		return []*entity.Book{}, nil
	}

	books, err := srv.bookRepo.List(ctx, entity.BookFilter{
		Title:  input.Title,
		Author: input.Author,
		Genre:  input.Genre,
		Offset: (page - 1) * srv.pageSize,
		Limit:  srv.pageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}

func (srv *bookService) GetBook(ctx context.Context, bookID uuid.UUID) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, bookLookupError(err)
	}

	return book, nil
}

func (srv *bookService) CreateBook(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateBookInput) (*entity.Book, error) {
	book := &entity.Book{
		ID:            uuid.Must(uuid.NewV7()),
		Title:         input.Title,
		Description:   input.Description,
		Author:        input.Author,
		ISBN:          input.ISBN,
		Genre:         input.Genre,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		OwnerID:       ownerID,
	}

	if err := srv.bookRepo.Create(ctx, book); err != nil {
		return nil, errors.Wrap(err, "failed to create book")
	}
	srv.log(ctx).Info("Book created", slog.Any("bookID", book.ID), slog.Any("ownerID", ownerID))

	// Re-read so the owner email is populated.
	created, err := srv.bookRepo.FindByID(ctx, book.ID)
	if err != nil {
		return nil, bookLookupError(err)
	}

	return created, nil
}

// UpdateBook applies the provided fields to a book the caller owns.
func (srv *bookService) UpdateBook(ctx context.Context, ownerID, bookID uuid.UUID, input *usecase.UpdateBookInput) (*entity.Book, error) {
	var updated *entity.Book
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()

		book, err := bookRepo.FindByID(ctx, bookID)
		if err != nil {
			return bookLookupError(err)
		}
		if book.OwnerID != ownerID {
			return domainerrors.ErrForbidden.WrapMessage("only the owner can update a book")
		}

		applyBookUpdate(book, input)

		if err := bookRepo.Update(ctx, book); err != nil {
			return errors.Wrap(bookLookupError(err), "failed to update book")
		}
		updated = book

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update book transaction")
	}

	return updated, nil
}

func applyBookUpdate(book *entity.Book, input *usecase.UpdateBookInput) {
	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.Description != nil {
		book.Description = *input.Description
	}
	if input.Author != nil {
		book.Author = *input.Author
	}
	if input.ISBN != nil {
		book.ISBN = *input.ISBN
	}
	if input.Genre != nil {
		book.Genre = *input.Genre
	}
	if input.Price != nil {
		book.Price = *input.Price
	}
	if input.StockQuantity != nil {
		book.StockQuantity = *input.StockQuantity
	}
	book.UpdatedAt = time.Now()
}

// DeleteBook removes a book the caller owns and drops it from every wishlist.
func (srv *bookService) DeleteBook(ctx context.Context, ownerID, bookID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()

		book, err := bookRepo.FindByID(ctx, bookID)
		if err != nil {
			return bookLookupError(err)
		}
		if book.OwnerID != ownerID {
			return domainerrors.ErrForbidden.WrapMessage("only the owner can delete a book")
		}

		if err := repoFactory.AccountRepo().RemoveBookFromWishlists(ctx, bookID); err != nil {
			return errors.Wrap(err, "failed to remove book from wishlists")
		}

		if err := bookRepo.Delete(ctx, bookID); err != nil {
			return errors.Wrap(bookLookupError(err), "failed to delete book")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete book transaction")
	}

	srv.log(ctx).Info("Book deleted", slog.Any("bookID", bookID), slog.Any("ownerID", ownerID))

	return nil
}
