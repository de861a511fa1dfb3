// Package model holds the GORM row structs of the pocketratings schema.
// Timestamps are unix seconds and decimals are stored as text.
package model

import (
	"github.com/google/uuid"
)

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID        uuid.UUID  `gorm:"type:varchar(36);primaryKey"`
	ParentID  *uuid.UUID `gorm:"type:varchar(36);index:idx_categories_parent"`
	Name      string     `gorm:"type:text;not null"`
	CreatedAt int64      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt int64      `gorm:"not null;autoUpdateTime:false"`
	DeletedAt *int64
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	CategoryID uuid.UUID `gorm:"type:varchar(36);not null;index:idx_products_category"`
	Brand      string    `gorm:"type:text;not null"`
	Name       string    `gorm:"type:text;not null"`
	CreatedAt  int64     `gorm:"not null;autoCreateTime:false"`
	UpdatedAt  int64     `gorm:"not null;autoUpdateTime:false"`
	DeletedAt  *int64
}

func (ProductModel) TableName() string {
	return "products"
}

// LocationModel is the GORM-specific struct for the 'locations' table.
type LocationModel struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Name      string    `gorm:"type:text;not null"`
	DeletedAt *int64
}

func (LocationModel) TableName() string {
	return "locations"
}

// PurchaseModel is the GORM-specific struct for the 'purchases' table.
type PurchaseModel struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	UserID      uuid.UUID `gorm:"type:varchar(36);not null"`
	ProductID   uuid.UUID `gorm:"type:varchar(36);not null"`
	LocationID  uuid.UUID `gorm:"type:varchar(36);not null"`
	Quantity    int       `gorm:"not null"`
	Price       string    `gorm:"type:text;not null"`
	PurchasedAt int64     `gorm:"not null"`
	DeletedAt   *int64
}

func (PurchaseModel) TableName() string {
	return "purchases"
}

// ReviewModel is the GORM-specific struct for the 'reviews' table.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	ProductID uuid.UUID `gorm:"type:varchar(36);not null"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null"`
	Rating    string    `gorm:"type:text;not null"`
	Text      *string   `gorm:"type:text"`
	CreatedAt int64     `gorm:"not null;autoCreateTime:false"`
	UpdatedAt int64     `gorm:"not null;autoUpdateTime:false"`
	DeletedAt *int64
}

func (ReviewModel) TableName() string {
	return "reviews"
}

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Name         string    `gorm:"type:text;not null"`
	Email        string    `gorm:"type:text;not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	CreatedAt    int64     `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    int64     `gorm:"not null;autoUpdateTime:false"`
	DeletedAt    *int64
}

func (UserModel) TableName() string {
	return "users"
}

// ProductListingRow is the scan target of the products/categories join.
type ProductListingRow struct {
	ProductModel
	CategoryName string
}

// ReviewListingRow is the scan target of the reviews/products/users join.
type ReviewListingRow struct {
	ReviewModel
	ProductBrand string
	ProductName  string
	UserName     string
}
