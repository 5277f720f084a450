package handler

import (
	"net/http"

	"bookstore/internal/delivery/api/middleware"
	"bookstore/internal/delivery/api/response"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookHandlerParams holds dependencies for BookHandler, injected by Fx.
type BookHandlerParams struct {
	fx.In

	BookUC usecase.BookUsecase
}

// BookHandler serves the catalog
type BookHandler struct {
	bookUC usecase.BookUsecase
}

// NewBookHandler is the constructor for BookHandler
func NewBookHandler(params BookHandlerParams) *BookHandler {
	return &BookHandler{bookUC: params.BookUC}
}

// ListBooksQuery holds the catalog filters
type ListBooksQuery struct {
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Title  string `query:"title" validate:"omitempty,max=60"`
	Author string `query:"author" validate:"omitempty,max=60"`
	Genre  string `query:"genre" validate:"omitempty,max=60"`
}

// CreateBookRequest represents the request body for listing a book
type CreateBookRequest struct {
	Title         string  `json:"title" validate:"required,min=3,max=60"`
	Description   string  `json:"description" validate:"required,min=3,max=600"`
	Author        string  `json:"author" validate:"omitempty,min=3,max=60"`
	ISBN          string  `json:"isbn" validate:"omitempty,max=20"`
	Genre         string  `json:"genre" validate:"omitempty,max=60"`
	Price         float64 `json:"price" validate:"min=0"`
	StockQuantity int     `json:"stockQuantity" validate:"min=0"`
}

// UpdateBookRequest represents a partial book update
type UpdateBookRequest struct {
	Title         *string  `json:"title" validate:"omitempty,min=3,max=60"`
	Description   *string  `json:"description" validate:"omitempty,min=3,max=600"`
	Author        *string  `json:"author" validate:"omitempty,min=3,max=60"`
	ISBN          *string  `json:"isbn" validate:"omitempty,max=20"`
	Genre         *string  `json:"genre" validate:"omitempty,max=60"`
	Price         *float64 `json:"price" validate:"omitempty,min=0"`
	StockQuantity *int     `json:"stockQuantity" validate:"omitempty,min=0"`
}

// ListBooks returns a page of the catalog
func (h *BookHandler) ListBooks(c echo.Context) error {
	var query ListBooksQuery
	if err := bindAndValidate(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	books, err := h.bookUC.ListBooks(c.Request().Context(), &usecase.ListBooksInput{
		Page:   query.Page,
		Title:  query.Title,
		Author: query.Author,
		Genre:  query.Genre,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "books", newBookResponses(books))
}

// GetBook returns a single book
func (h *BookHandler) GetBook(c echo.Context) error {
	bookID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	book, err := h.bookUC.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "single book", newBookResponse(book))
}

// CreateBook lists a new book owned by the caller
func (h *BookHandler) CreateBook(c echo.Context) error {
	ownerID, ok := middleware.GetRequesterID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req CreateBookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	book, err := h.bookUC.CreateBook(c.Request().Context(), ownerID, &usecase.CreateBookInput{
		Title:         req.Title,
		Description:   req.Description,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Genre:         req.Genre,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, "created", newBookResponse(book))
}

// UpdateBook applies a partial update to a book owned by the caller
func (h *BookHandler) UpdateBook(c echo.Context) error {
	ownerID, ok := middleware.GetRequesterID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	bookID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateBookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	book, err := h.bookUC.UpdateBook(c.Request().Context(), ownerID, bookID, &usecase.UpdateBookInput{
		Title:         req.Title,
		Description:   req.Description,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Genre:         req.Genre,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Updated", newBookResponse(book))
}

// DeleteBook removes a book owned by the caller
func (h *BookHandler) DeleteBook(c echo.Context) error {
	ownerID, ok := middleware.GetRequesterID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	bookID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.bookUC.DeleteBook(c.Request().Context(), ownerID, bookID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "deleted", nil)
}
