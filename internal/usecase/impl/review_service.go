package impl

import (
	"context"
	"log/slog"

	deliverycontext "pocketratings/internal/delivery/context"
	"pocketratings/internal/domain/entity"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/domain/repository"
	"pocketratings/internal/domain/service"
	"pocketratings/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type reviewService struct {
	txManager   repository.TransactionManager
	reviewRepo  repository.ReviewRepository
	reviewCache service.ListCache[entity.ReviewListing]
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ReviewRepo  repository.ReviewRepository
	ReviewCache service.ListCache[entity.ReviewListing]
	Logger      *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:   params.TxManager,
		reviewRepo:  params.ReviewRepo,
		reviewCache: params.ReviewCache,
		logger:      params.Logger,
	}
}

func (s *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *reviewService) ListReviews(ctx context.Context, filter entity.ReviewFilter) ([]entity.ReviewListing, error) {
	rows, err := s.reviewCache.List(ctx, filter.Matches)
	if err != nil {
		return nil, translate(err)
	}

	return rows, nil
}

func (s *reviewService) GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	return review, nil
}

// CreateReview stores a review by an active user of an active product.
func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	rating, err := entity.ParseRating(input.Rating)
	if err != nil {
		return nil, translate(err)
	}

	now := timeNow()
	review, err := entity.NewReview(entity.ReviewParams{
		ID:        uuid.New(),
		ProductID: input.ProductID,
		UserID:    userID,
		Rating:    rating,
		Text:      input.Text,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, translate(err)
	}

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		gw := repos.NewIntegrityGateway()
		if err := requireActive(ctx, gw, entity.KindUser, userID, domainerrors.ErrUserNotFound); err != nil {
			return err
		}
		if err := requireActive(ctx, gw, entity.KindProduct, input.ProductID, domainerrors.ErrProductNotFound); err != nil {
			return err
		}

		return repos.NewReviewRepository().Create(ctx, review)
	})
	if err != nil {
		return nil, translate(err)
	}

	s.reviewCache.Invalidate()
	s.log(ctx).Info("Review created",
		slog.String("reviewID", review.ID().String()),
		slog.String("productID", input.ProductID.String()),
		slog.String("rating", rating.String()),
	)

	return review, nil
}

// UpdateReview changes the rating or text of a review written by userID.
// A text that is present but blank clears the body.
func (s *reviewService) UpdateReview(ctx context.Context, userID, id uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	var updated *entity.Review
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		reviewRepo := repos.NewReviewRepository()
		if err := lockForWrite(ctx, repos.NewIntegrityGateway(), entity.KindReview, id); err != nil {
			return err
		}
		current, err := reviewRepo.FindActiveByID(ctx, id)
		if err != nil {
			return err
		}
		if current.UserID() != userID {
			return domainerrors.ErrForbidden
		}

		params := current.Params()
		if input.Rating != nil {
			rating, err := entity.ParseRating(*input.Rating)
			if err != nil {
				return err
			}
			params.Rating = rating
		}
		if input.Text != nil {
			params.Text = input.Text
		}
		params.UpdatedAt = timeNow()

		next, err := entity.NewReview(params)
		if err != nil {
			return err
		}
		if err := reviewRepo.Update(ctx, next); err != nil {
			return err
		}
		updated = next

		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	s.reviewCache.Invalidate()
	s.log(ctx).Info("Review updated", slog.String("reviewID", id.String()))

	return updated, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, userID, id uuid.UUID, mode usecase.DeleteMode) error {
	err := executeDelete(ctx, s.txManager, deletion{
		kind:   entity.KindReview,
		id:     id,
		mode:   mode,
		target: func(repos repository.RepositoryFactory) repository.Deleter { return repos.NewReviewRepository() },
		authorize: func(ctx context.Context, repos repository.RepositoryFactory) error {
			review, err := repos.NewReviewRepository().FindByID(ctx, id)
			if err != nil {
				return err
			}
			if review.UserID() != userID {
				return domainerrors.ErrForbidden
			}

			return nil
		},
	})
	if err != nil {
		return err
	}

	s.reviewCache.Invalidate()
	s.log(ctx).Info("Review deleted", slog.String("reviewID", id.String()), slog.String("mode", mode.String()))

	return nil
}
