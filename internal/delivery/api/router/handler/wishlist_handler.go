package handler

import (
	"net/http"

	"bookstore/internal/delivery/api/middleware"
	"bookstore/internal/delivery/api/response"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
}

// WishlistHandler serves the caller's wishlist
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{wishlistUC: params.WishlistUC}
}

// AddToWishlistRequest names the book to add
type AddToWishlistRequest struct {
	BookID string `json:"bookId" validate:"required,uuid"`
}

// AddToWishlist handles adding a book to the wishlist
func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	accountID, ok := middleware.GetRequesterID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req AddToWishlistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.wishlistUC.AddToWishlist(c.Request().Context(), accountID, uuid.MustParse(req.BookID)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Book added to wishlist", nil)
}

// RemoveFromWishlist handles removing a book from the wishlist
func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	accountID, ok := middleware.GetRequesterID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	bookID, err := parseIDParam(c, "bookId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.wishlistUC.RemoveFromWishlist(c.Request().Context(), accountID, bookID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Book removed from wishlist", nil)
}

// GetWishlist returns the wishlisted books in insertion order
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	accountID, ok := middleware.GetRequesterID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	books, err := h.wishlistUC.GetWishlist(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Wishlist retrieved", newBookResponses(books))
}
