package usecase

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ListBooksInput selects a page of the catalog. Empty filters match everything.
type ListBooksInput struct {
	Page   int
	Title  string
	Author string
	Genre  string
}

// CreateBookInput defines the data required to list a new book.
type CreateBookInput struct {
	Title         string
	Description   string
	Author        string
	ISBN          string
	Genre         string
	Price         float64
	StockQuantity int
}

// UpdateBookInput is a partial update; nil fields are left untouched.
type UpdateBookInput struct {
	Title         *string
	Description   *string
	Author        *string
	ISBN          *string
	Genre         *string
	Price         *float64
	StockQuantity *int
}

// BookUsecase defines the catalog operations.
type BookUsecase interface {
	ListBooks(ctx context.Context, input *ListBooksInput) ([]*entity.Book, error)
	GetBook(ctx context.Context, bookID uuid.UUID) (*entity.Book, error)
	CreateBook(ctx context.Context, ownerID uuid.UUID, input *CreateBookInput) (*entity.Book, error)
	UpdateBook(ctx context.Context, ownerID, bookID uuid.UUID, input *UpdateBookInput) (*entity.Book, error)
	DeleteBook(ctx context.Context, ownerID, bookID uuid.UUID) error
}
