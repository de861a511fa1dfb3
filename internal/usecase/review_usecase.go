package usecase

import (
	"context"

	"pocketratings/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to review a product. Rating is decimal text in [1, 5].
type CreateReviewInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Rating    string    `json:"rating" validate:"required"`
	Text      *string   `json:"text,omitempty"`
}

// UpdateReviewInput represents the input for updating an existing review.
type UpdateReviewInput struct {
	Rating *string `json:"rating,omitempty"`
	Text   *string `json:"text,omitempty"`
}

// ReviewUsecase defines the review use cases. Changes are restricted to the review's author.
type ReviewUsecase interface {
	// ListReviews serves the cached review listing filtered in memory.
	ListReviews(ctx context.Context, filter entity.ReviewFilter) ([]entity.ReviewListing, error)
	GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	CreateReview(ctx context.Context, userID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)
	UpdateReview(ctx context.Context, userID, id uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, userID, id uuid.UUID, mode DeleteMode) error
}
