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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var row model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		Take(&row).Error
	if err != nil {
		return nil, readError(err, repository.ErrProductNotFound, "failed to find product by ID")
	}

	return toProductDomain(&row)
}

func (repo *productRepository) FindAll(ctx context.Context, includeDeleted bool) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Order("brand, name, id")
	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var rows []model.ProductModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, readError(err, nil, "failed to list products")
	}

	return mapAll(rows, toProductDomain)
}

// ListWithCategory runs the products/categories join behind the product list cache.
func (repo *productRepository) ListWithCategory(ctx context.Context) ([]entity.ProductListing, error) {
	var rows []model.ProductListingRow
	err := repo.db.WithContext(ctx).
		Table("products AS p").
		Select("p.id, p.category_id, p.brand, p.name, p.created_at, p.updated_at, p.deleted_at, c.name AS category_name").
		Joins("JOIN categories AS c ON c.id = p.category_id").
		Order("p.brand, p.name, p.id").
		Scan(&rows).Error
	if err != nil {
		return nil, readError(err, nil, "failed to list products with category")
	}

	out := make([]entity.ProductListing, 0, len(rows))
	for i := range rows {
		out = append(out, toProductListing(&rows[i]))
	}

	return out, nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := repo.db.WithContext(ctx).Create(fromProductDomain(product)).Error; err != nil {
		return writeError(err, "failed to create product")
	}

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return updateActive(ctx, repo.db, entity.KindProduct, fromProductDomain(product), product.ID(), repository.ErrProductNotFound)
}

func (repo *productRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	return softDelete(ctx, repo.db, entity.KindProduct, id, at)
}

func (repo *productRepository) HardDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	return hardDelete(ctx, repo.db, entity.KindProduct, &model.ProductModel{}, id)
}
