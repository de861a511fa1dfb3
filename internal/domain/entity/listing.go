package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProductListing is a product row joined with the name of its category.
type ProductListing struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Brand        string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// ProductFilter narrows a product listing. The zero value matches every active product.
type ProductFilter struct {
	CategoryID     *uuid.UUID
	Query          string
	IncludeDeleted bool
}

// Matches reports whether row passes the filter. Query matches name or brand, ignoring case.
func (f ProductFilter) Matches(row ProductListing) bool {
	if !f.IncludeDeleted && row.DeletedAt != nil {
		return false
	}
	if f.CategoryID != nil && row.CategoryID != *f.CategoryID {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(row.Name), q) || strings.Contains(strings.ToLower(row.Brand), q)
}

// ReviewListing is a review row joined with its product and author names.
type ReviewListing struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	ProductBrand string
	ProductName  string
	UserID       uuid.UUID
	UserName     string
	Rating       Decimal
	Text         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// ReviewFilter narrows a review listing. The zero value matches every active review.
type ReviewFilter struct {
	ProductID      *uuid.UUID
	UserID         *uuid.UUID
	IncludeDeleted bool
}

// Matches reports whether row passes the filter.
func (f ReviewFilter) Matches(row ReviewListing) bool {
	if !f.IncludeDeleted && row.DeletedAt != nil {
		return false
	}
	if f.ProductID != nil && row.ProductID != *f.ProductID {
		return false
	}
	if f.UserID != nil && row.UserID != *f.UserID {
		return false
	}

	return true
}

// PurchaseFilter narrows purchase queries. From and To bound purchased_at inclusively.
type PurchaseFilter struct {
	UserID         *uuid.UUID
	ProductID      *uuid.UUID
	LocationID     *uuid.UUID
	From           *time.Time
	To             *time.Time
	IncludeDeleted bool
}
