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

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (repo *locationRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var row model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		Take(&row).Error
	if err != nil {
		return nil, readError(err, repository.ErrLocationNotFound, "failed to find location by ID")
	}

	return toLocationDomain(&row)
}

func (repo *locationRepository) FindAll(ctx context.Context, includeDeleted bool) ([]*entity.Location, error) {
	query := repo.db.WithContext(ctx).Order("name, id")
	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var rows []model.LocationModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, readError(err, nil, "failed to list locations")
	}

	return mapAll(rows, toLocationDomain)
}

func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	if err := repo.db.WithContext(ctx).Create(fromLocationDomain(location)).Error; err != nil {
		return writeError(err, "failed to create location")
	}

	return nil
}

func (repo *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	return updateActive(ctx, repo.db, entity.KindLocation, fromLocationDomain(location), location.ID(), repository.ErrLocationNotFound)
}

func (repo *locationRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	return softDelete(ctx, repo.db, entity.KindLocation, id, at)
}

func (repo *locationRepository) HardDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	return hardDelete(ctx, repo.db, entity.KindLocation, &model.LocationModel{}, id)
}
