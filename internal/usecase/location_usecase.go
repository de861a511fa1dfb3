package usecase

import (
	"context"

	"pocketratings/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLocationInput defines the data required to create a location.
type CreateLocationInput struct {
	Name string `json:"name" validate:"required"`
}

// UpdateLocationInput represents the input for updating an existing location.
type UpdateLocationInput struct {
	Name *string `json:"name,omitempty"`
}

// LocationUsecase defines the interface for location management use cases
type LocationUsecase interface {
	ListLocations(ctx context.Context, includeDeleted bool) ([]*entity.Location, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	CreateLocation(ctx context.Context, input *CreateLocationInput) (*entity.Location, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, input *UpdateLocationInput) (*entity.Location, error)
	DeleteLocation(ctx context.Context, id uuid.UUID, mode DeleteMode) error
}
