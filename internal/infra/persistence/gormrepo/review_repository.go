package gormrepo

import (
	"context"
	"time"

	"pocketratings/internal/domain/entity"
	"pocketratings/internal/domain/repository"
	"pocketratings/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// FindByID returns the review whatever its status.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var row model.ReviewModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, readError(err, repository.ErrReviewNotFound, "failed to find review by ID")
	}

	return toReviewDomain(&row)
}

func (repo *reviewRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var row model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		Take(&row).Error
	if err != nil {
		return nil, readError(err, repository.ErrReviewNotFound, "failed to find review by ID")
	}

	return toReviewDomain(&row)
}

// ListWithRelations runs the reviews/products/users join behind the review list cache.
func (repo *reviewRepository) ListWithRelations(ctx context.Context) ([]entity.ReviewListing, error) {
	var rows []model.ReviewListingRow
	err := repo.db.WithContext(ctx).
		Table("reviews AS r").
		Select("r.id, r.product_id, r.user_id, r.rating, r.text, r.created_at, r.updated_at, r.deleted_at, " +
			"p.brand AS product_brand, p.name AS product_name, u.name AS user_name").
		Joins("JOIN products AS p ON p.id = r.product_id").
		Joins("JOIN users AS u ON u.id = r.user_id").
		Order("r.updated_at DESC, r.id").
		Scan(&rows).Error
	if err != nil {
		return nil, readError(err, nil, "failed to list reviews with relations")
	}

	out := make([]entity.ReviewListing, 0, len(rows))
	for i := range rows {
		listing, err := toReviewListing(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, listing)
	}

	return out, nil
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if err := repo.db.WithContext(ctx).Create(fromReviewDomain(review)).Error; err != nil {
		return writeError(err, "failed to create review")
	}

	return nil
}

func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return updateActive(ctx, repo.db, entity.KindReview, fromReviewDomain(review), review.ID(), repository.ErrReviewNotFound)
}

func (repo *reviewRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	return softDelete(ctx, repo.db, entity.KindReview, id, at)
}

func (repo *reviewRepository) HardDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	return hardDelete(ctx, repo.db, entity.KindReview, &model.ReviewModel{}, id)
}
