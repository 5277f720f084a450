package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. IDs are generated by the application (UUIDv7).
// Each code column is paired with its issuance timestamp; both are NULL when no code is pending.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username     string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Verified     bool      `gorm:"not null;default:false"`

	VerificationCode           *string `gorm:"type:varchar(128)"`
	VerificationCodeIssuedAt   *time.Time
	ForgotPasswordCode         *string `gorm:"type:varchar(128)"`
	ForgotPasswordCodeIssuedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Wishlist []WishlistItemModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// WishlistItemModel mirrors the 'account_wishlist' join table. The composite key gives set semantics.
type WishlistItemModel struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WishlistItemModel) TableName() string {
	return "account_wishlist"
}
