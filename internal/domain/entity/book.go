package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalog entry owned by the account that listed it.
type Book struct {
	ID            uuid.UUID
	Title         string
	Description   string
	Author        string
	ISBN          string
	Genre         string
	Price         float64
	StockQuantity int
	OwnerID       uuid.UUID
	// OwnerEmail is populated on reads; empty when the owner no longer exists.
	OwnerEmail string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BookFilter narrows a catalog listing. Text filters are case-insensitive substrings.
type BookFilter struct {
	Title  string
	Author string
	Genre  string
	Offset int
	Limit  int
}
