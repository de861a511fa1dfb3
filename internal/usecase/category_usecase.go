package usecase

import (
	"context"

	"pocketratings/internal/domain/entity"
	"pocketratings/internal/domain/hierarchy"

	"github.com/google/uuid"
)

// CreateCategoryInput defines the data required to create a category. A nil ParentID creates a root.
type CreateCategoryInput struct {
	Name     string     `json:"name" validate:"required"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

// UpdateCategoryInput changes a category. MoveToRoot detaches it from its parent and wins over ParentID.
type UpdateCategoryInput struct {
	Name       *string    `json:"name,omitempty"`
	ParentID   *uuid.UUID `json:"parent_id,omitempty"`
	MoveToRoot bool       `json:"move_to_root,omitempty"`
}

// CategoryTreeQuery selects a subtree. A nil ParentID starts from the roots; Depth <= 0 is unlimited.
type CategoryTreeQuery struct {
	ParentID       *uuid.UUID
	Depth          int
	IncludeDeleted bool
}

// CategoryUsecase defines the category management use cases.
type CategoryUsecase interface {
	GetTree(ctx context.Context, query CategoryTreeQuery) (*hierarchy.Node, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *UpdateCategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID, mode DeleteMode) error
}
