package repository

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrBookNotFound is returned when no book matches the lookup.
var ErrBookNotFound = errors.New("book not found")

// BookRepository defines the persistence operations for the catalog.
type BookRepository interface {
	// FindByID retrieves a book with its owner's email populated.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// List returns books matching the filter, newest first, with owner emails populated.
	List(ctx context.Context, filter entity.BookFilter) ([]*entity.Book, error)

	Create(ctx context.Context, book *entity.Book) error

	// Update writes all mutable fields of the book.
	Update(ctx context.Context, book *entity.Book) error

	Delete(ctx context.Context, id uuid.UUID) error
}
