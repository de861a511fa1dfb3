// Package gormrepo implements the persistence gateway with GORM on PostgreSQL or SQLite.
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

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// FindActiveByID returns the category unless it is missing or soft-deleted.
func (repo *categoryRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var row model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		Take(&row).Error
	if err != nil {
		return nil, readError(err, repository.ErrCategoryNotFound, "failed to find category by ID")
	}

	return toCategoryDomain(&row)
}

// FindAll returns every category ordered by name.
func (repo *categoryRepository) FindAll(ctx context.Context, includeDeleted bool) ([]*entity.Category, error) {
	query := repo.db.WithContext(ctx).Order("name, id")
	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var rows []model.CategoryModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, readError(err, nil, "failed to list categories")
	}

	return mapAll(rows, toCategoryDomain)
}

// FindChildren returns the active direct children of parentID, or the active roots when parentID is nil.
func (repo *categoryRepository) FindChildren(ctx context.Context, parentID *uuid.UUID) ([]*entity.Category, error) {
	query := repo.db.WithContext(ctx).Where("deleted_at IS NULL").Order("name, id")
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	var rows []model.CategoryModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, readError(err, nil, "failed to list child categories")
	}

	return mapAll(rows, toCategoryDomain)
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if err := repo.db.WithContext(ctx).Create(fromCategoryDomain(category)).Error; err != nil {
		return writeError(err, "failed to create category")
	}

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return updateActive(ctx, repo.db, entity.KindCategory, fromCategoryDomain(category), category.ID(), repository.ErrCategoryNotFound)
}

func (repo *categoryRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	return softDelete(ctx, repo.db, entity.KindCategory, id, at)
}

func (repo *categoryRepository) HardDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	return hardDelete(ctx, repo.db, entity.KindCategory, &model.CategoryModel{}, id)
}
