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

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

// FindByID returns the purchase whatever its status.
func (repo *purchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var row model.PurchaseModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, readError(err, repository.ErrPurchaseNotFound, "failed to find purchase by ID")
	}

	return toPurchaseDomain(&row)
}

func (repo *purchaseRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var row model.PurchaseModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		Take(&row).Error
	if err != nil {
		return nil, readError(err, repository.ErrPurchaseNotFound, "failed to find purchase by ID")
	}

	return toPurchaseDomain(&row)
}

// Find returns the purchases matching filter, newest first.
func (repo *purchaseRepository) Find(ctx context.Context, filter entity.PurchaseFilter) ([]*entity.Purchase, error) {
	query := repo.db.WithContext(ctx).Order("purchased_at DESC, id")
	if !filter.IncludeDeleted {
		query = query.Where("deleted_at IS NULL")
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.LocationID != nil {
		query = query.Where("location_id = ?", *filter.LocationID)
	}
	if filter.From != nil {
		query = query.Where("purchased_at >= ?", toUnix(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("purchased_at <= ?", toUnix(*filter.To))
	}

	var rows []model.PurchaseModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, readError(err, nil, "failed to list purchases")
	}

	return mapAll(rows, toPurchaseDomain)
}

func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	if err := repo.db.WithContext(ctx).Create(fromPurchaseDomain(purchase)).Error; err != nil {
		return writeError(err, "failed to create purchase")
	}

	return nil
}

func (repo *purchaseRepository) Update(ctx context.Context, purchase *entity.Purchase) error {
	return updateActive(ctx, repo.db, entity.KindPurchase, fromPurchaseDomain(purchase), purchase.ID(), repository.ErrPurchaseNotFound)
}

func (repo *purchaseRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	return softDelete(ctx, repo.db, entity.KindPurchase, id, at)
}

func (repo *purchaseRepository) HardDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	return hardDelete(ctx, repo.db, entity.KindPurchase, &model.PurchaseModel{}, id)
}
