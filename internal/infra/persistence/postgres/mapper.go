package postgres

import (
	"time"

	"bookstore/internal/domain/entity"
	"bookstore/internal/infra/persistence/model"

	"github.com/google/uuid"
)

func toAccountDomain(m *model.AccountModel) *entity.Account {
	account := &entity.Account{
		ID:                 m.ID,
		Email:              m.Email,
		Username:           m.Username,
		PasswordHash:       m.PasswordHash,
		Verified:           m.Verified,
		VerificationCode:   toIssuedCode(m.VerificationCode, m.VerificationCodeIssuedAt),
		ForgotPasswordCode: toIssuedCode(m.ForgotPasswordCode, m.ForgotPasswordCodeIssuedAt),
		Wishlist:           make([]uuid.UUID, 0, len(m.Wishlist)),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	for _, item := range m.Wishlist {
		account.Wishlist = append(account.Wishlist, item.BookID)
	}

	return account
}

func fromAccountDomain(a *entity.Account) *model.AccountModel {
	m := &model.AccountModel{
		ID:           a.ID,
		Email:        a.Email,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Verified:     a.Verified,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	m.VerificationCode, m.VerificationCodeIssuedAt = fromIssuedCode(a.VerificationCode)
	m.ForgotPasswordCode, m.ForgotPasswordCodeIssuedAt = fromIssuedCode(a.ForgotPasswordCode)

	return m
}

// toIssuedCode only yields a code when both columns are set.
func toIssuedCode(hash *string, issuedAt *time.Time) *entity.IssuedCode {
	if hash == nil || issuedAt == nil || *hash == "" {
		return nil
	}

	return &entity.IssuedCode{Hash: *hash, IssuedAt: *issuedAt}
}

func fromIssuedCode(code *entity.IssuedCode) (*string, *time.Time) {
	if code == nil {
		return nil, nil
	}
	hash, issuedAt := code.Hash, code.IssuedAt

	return &hash, &issuedAt
}

func toBookDomain(row *model.BookWithOwner) *entity.Book {
	book := &entity.Book{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		Author:        row.Author,
		ISBN:          row.ISBN,
		Genre:         row.Genre,
		Price:         row.Price,
		StockQuantity: row.StockQuantity,
		OwnerID:       row.OwnerID,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if row.OwnerEmail != nil {
		book.OwnerEmail = *row.OwnerEmail
	}

	return book
}

func fromBookDomain(b *entity.Book) *model.BookModel {
	return &model.BookModel{
		ID:            b.ID,
		Title:         b.Title,
		Description:   b.Description,
		Author:        b.Author,
		ISBN:          b.ISBN,
		Genre:         b.Genre,
		Price:         b.Price,
		StockQuantity: b.StockQuantity,
		OwnerID:       b.OwnerID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
