package gormrepo

import (
	"context"
	"strings"
	"time"

	"pocketratings/internal/domain/entity"
	"pocketratings/internal/domain/repository"
	"pocketratings/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var row model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		Take(&row).Error
	if err != nil {
		return nil, readError(err, repository.ErrUserNotFound, "failed to find user by ID")
	}

	return toUserDomain(&row)
}

// FindActiveByEmail matches the address case-insensitively.
func (repo *userRepository) FindActiveByEmail(ctx context.Context, email string) (*entity.User, error) {
	var row model.UserModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(email) = ? AND deleted_at IS NULL", strings.ToLower(strings.TrimSpace(email))).
		Take(&row).Error
	if err != nil {
		return nil, readError(err, repository.ErrUserNotFound, "failed to find user by email")
	}

	return toUserDomain(&row)
}

func (repo *userRepository) FindAll(ctx context.Context, includeDeleted bool) ([]*entity.User, error) {
	query := repo.db.WithContext(ctx).Order("name, id")
	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var rows []model.UserModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, readError(err, nil, "failed to list users")
	}

	return mapAll(rows, toUserDomain)
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := repo.db.WithContext(ctx).Create(fromUserDomain(user)).Error; err != nil {
		return writeError(err, "failed to create user")
	}

	return nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	return updateActive(ctx, repo.db, entity.KindUser, fromUserDomain(user), user.ID(), repository.ErrUserNotFound)
}

func (repo *userRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	return softDelete(ctx, repo.db, entity.KindUser, id, at)
}

func (repo *userRepository) HardDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	return hardDelete(ctx, repo.db, entity.KindUser, &model.UserModel{}, id)
}
