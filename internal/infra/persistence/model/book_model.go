package model

import (
	"time"

	"github.com/google/uuid"
)

// BookModel mirrors the 'books' table. OwnerID is not a foreign key so books outlive their owner.
type BookModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string    `gorm:"type:varchar(60);not null"`
	Description   string    `gorm:"type:varchar(600);not null"`
	Author        string    `gorm:"type:varchar(60)"`
	ISBN          string    `gorm:"column:isbn;type:varchar(32)"`
	Genre         string    `gorm:"type:varchar(60);index"`
	Price         float64   `gorm:"not null;default:0"`
	StockQuantity int       `gorm:"not null;default:0"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}

// BookWithOwner is a books row joined with the owner's email.
type BookWithOwner struct {
	BookModel  `gorm:"embedded"`
	OwnerEmail *string
}

// All returns every model managed by the relational store, in migration order.
func All() []any {
	return []any{&AccountModel{}, &WishlistItemModel{}, &BookModel{}}
}
