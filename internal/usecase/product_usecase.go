package usecase

import (
	"context"

	"pocketratings/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
	Brand      string    `json:"brand" validate:"required"`
	Name       string    `json:"name" validate:"required"`
}

// UpdateProductInput represents the input for updating an existing product.
type UpdateProductInput struct {
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Brand      *string    `json:"brand,omitempty"`
	Name       *string    `json:"name,omitempty"`
}

// ProductUsecase defines the product management use cases.
type ProductUsecase interface {
	// ListProducts serves the cached product listing filtered in memory.
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.ProductListing, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID, mode DeleteMode) error
}
