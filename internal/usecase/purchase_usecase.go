package usecase

import (
	"context"
	"time"

	"pocketratings/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePurchaseInput defines the data required to record a purchase. Price is decimal text.
// A nil PurchasedAt records the purchase at the current time.
type CreatePurchaseInput struct {
	ProductID   uuid.UUID  `json:"product_id" validate:"required"`
	LocationID  uuid.UUID  `json:"location_id" validate:"required"`
	Quantity    int        `json:"quantity" validate:"required"`
	Price       string     `json:"price" validate:"required"`
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
}

// UpdatePurchaseInput represents the input for updating an existing purchase.
type UpdatePurchaseInput struct {
	ProductID   *uuid.UUID `json:"product_id,omitempty"`
	LocationID  *uuid.UUID `json:"location_id,omitempty"`
	Quantity    *int       `json:"quantity,omitempty"`
	Price       *string    `json:"price,omitempty"`
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
}

// PurchaseUsecase defines the purchase use cases. Changes are restricted to the purchase's owner.
type PurchaseUsecase interface {
	ListPurchases(ctx context.Context, filter entity.PurchaseFilter) ([]*entity.Purchase, error)
	GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	CreatePurchase(ctx context.Context, userID uuid.UUID, input *CreatePurchaseInput) (*entity.Purchase, error)
	UpdatePurchase(ctx context.Context, userID, id uuid.UUID, input *UpdatePurchaseInput) (*entity.Purchase, error)
	DeletePurchase(ctx context.Context, userID, id uuid.UUID, mode DeleteMode) error
}
