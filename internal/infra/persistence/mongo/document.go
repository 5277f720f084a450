package mongo

import (
	"time"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// Identifiers are stored as canonical UUID strings.
type accountDocument struct {
	ID                 string        `bson:"_id"`
	Email              string        `bson:"email"`
	Username           string        `bson:"username"`
	PasswordHash       string        `bson:"password_hash"`
	Verified           bool          `bson:"verified"`
	VerificationCode   *codeDocument `bson:"verification_code,omitempty"`
	ForgotPasswordCode *codeDocument `bson:"forgot_password_code,omitempty"`
	Wishlist           []string      `bson:"wishlist"`
	CreatedAt          time.Time     `bson:"created_at"`
	UpdatedAt          time.Time     `bson:"updated_at"`
}

type codeDocument struct {
	Hash     string    `bson:"hash"`
	IssuedAt time.Time `bson:"issued_at"`
}

type bookDocument struct {
	ID            string    `bson:"_id"`
	Title         string    `bson:"title"`
	Description   string    `bson:"description"`
	Author        string    `bson:"author"`
	ISBN          string    `bson:"isbn"`
	Genre         string    `bson:"genre"`
	Price         float64   `bson:"price"`
	StockQuantity int       `bson:"stock_quantity"`
	OwnerID       string    `bson:"owner_id"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func codeField(kind entity.CodeKind) string {
	if kind == entity.CodeKindForgotPassword {
		return "forgot_password_code"
	}

	return "verification_code"
}

func toAccountDocument(a *entity.Account) *accountDocument {
	doc := &accountDocument{
		ID:                 a.ID.String(),
		Email:              a.Email,
		Username:           a.Username,
		PasswordHash:       a.PasswordHash,
		Verified:           a.Verified,
		VerificationCode:   toCodeDocument(a.VerificationCode),
		ForgotPasswordCode: toCodeDocument(a.ForgotPasswordCode),
		Wishlist:           make([]string, 0, len(a.Wishlist)),
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
	for _, id := range a.Wishlist {
		doc.Wishlist = append(doc.Wishlist, id.String())
	}

	return doc
}

func (doc *accountDocument) toEntity() (*entity.Account, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}
	wishlist, err := parseIDs(doc.Wishlist)
	if err != nil {
		return nil, err
	}

	return &entity.Account{
		ID:                 id,
		Email:              doc.Email,
		Username:           doc.Username,
		PasswordHash:       doc.PasswordHash,
		Verified:           doc.Verified,
		VerificationCode:   doc.VerificationCode.toEntity(),
		ForgotPasswordCode: doc.ForgotPasswordCode.toEntity(),
		Wishlist:           wishlist,
		CreatedAt:          doc.CreatedAt,
		UpdatedAt:          doc.UpdatedAt,
	}, nil
}

func toCodeDocument(code *entity.IssuedCode) *codeDocument {
	if code == nil {
		return nil
	}

	return &codeDocument{Hash: code.Hash, IssuedAt: code.IssuedAt}
}

func (doc *codeDocument) toEntity() *entity.IssuedCode {
	if doc == nil || doc.Hash == "" {
		return nil
	}

	return &entity.IssuedCode{Hash: doc.Hash, IssuedAt: doc.IssuedAt}
}

func toBookDocument(b *entity.Book) *bookDocument {
	return &bookDocument{
		ID:            b.ID.String(),
		Title:         b.Title,
		Description:   b.Description,
		Author:        b.Author,
		ISBN:          b.ISBN,
		Genre:         b.Genre,
		Price:         b.Price,
		StockQuantity: b.StockQuantity,
		OwnerID:       b.OwnerID.String(),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (doc *bookDocument) toEntity(ownerEmail string) (*entity.Book, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}
	ownerID, err := uuid.Parse(doc.OwnerID)
	if err != nil {
		return nil, err
	}

	return &entity.Book{
		ID:            id,
		Title:         doc.Title,
		Description:   doc.Description,
		Author:        doc.Author,
		ISBN:          doc.ISBN,
		Genre:         doc.Genre,
		Price:         doc.Price,
		StockQuantity: doc.StockQuantity,
		OwnerID:       ownerID,
		OwnerEmail:    ownerEmail,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}, nil
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
