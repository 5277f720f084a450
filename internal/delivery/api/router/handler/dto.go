package handler

import (
	"bytes"
	"encoding/json"
	"time"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountResponse is the public view of an account. Hashes and codes never leave the service.
type AccountResponse struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Username  string      `json:"username,omitempty"`
	Verified  bool        `json:"verified"`
	Wishlist  []uuid.UUID `json:"wishlist"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func newAccountResponse(account *entity.Account) *AccountResponse {
	wishlist := account.Wishlist
	if wishlist == nil {
		wishlist = []uuid.UUID{}
	}

	return &AccountResponse{
		ID:        account.ID,
		Email:     account.Email,
		Username:  account.Username,
		Verified:  account.Verified,
		Wishlist:  wishlist,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// BookOwner is the populated owner reference of a book.
type BookOwner struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email,omitempty"`
}

// BookResponse is the public view of a catalog entry.
type BookResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Author        string    `json:"author,omitempty"`
	ISBN          string    `json:"isbn,omitempty"`
	Genre         string    `json:"genre,omitempty"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stockQuantity"`
	Owner         BookOwner `json:"owner"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newBookResponse(book *entity.Book) *BookResponse {
	return &BookResponse{
		ID:            book.ID,
		Title:         book.Title,
		Description:   book.Description,
		Author:        book.Author,
		ISBN:          book.ISBN,
		Genre:         book.Genre,
		Price:         book.Price,
		StockQuantity: book.StockQuantity,
		Owner:         BookOwner{ID: book.OwnerID, Email: book.OwnerEmail},
		CreatedAt:     book.CreatedAt,
		UpdatedAt:     book.UpdatedAt,
	}
}

func newBookResponses(books []*entity.Book) []*BookResponse {
	result := make([]*BookResponse, 0, len(books))
	for _, book := range books {
		result = append(result, newBookResponse(book))
	}

	return result
}

// ProvidedCode accepts the code as a JSON number or a JSON string.
type ProvidedCode string

// UnmarshalJSON implements json.Unmarshaler.
func (p *ProvidedCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WithStack(err)
		}
		*p = ProvidedCode(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "providedCode must be a number or a string")
	}
	*p = ProvidedCode(n.String())

	return nil
}

// bindAndValidate binds the request body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid request body")
	}

	return c.Validate(req)
}

// parseIDParam reads a uuid path parameter.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("\"" + name + "\" must be a valid id")
	}

	return id, nil
}
