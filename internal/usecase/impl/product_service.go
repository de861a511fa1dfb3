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

type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	productCache service.ListCache[entity.ProductListing]
	reviewCache  service.ListCache[entity.ReviewListing]
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	ProductCache service.ListCache[entity.ProductListing]
	ReviewCache  service.ListCache[entity.ReviewListing]
	Logger       *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		productCache: params.ProductCache,
		reviewCache:  params.ReviewCache,
		logger:       params.Logger,
	}
}

func (s *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListProducts filters the cached product listing.
func (s *productService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.ProductListing, error) {
	rows, err := s.productCache.List(ctx, filter.Matches)
	if err != nil {
		return nil, translate(err)
	}

	return rows, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	return product, nil
}

// CreateProduct stores a new product in an active category.
func (s *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	now := timeNow()
	product, err := entity.NewProduct(entity.ProductParams{
		ID:         uuid.New(),
		CategoryID: input.CategoryID,
		Brand:      input.Brand,
		Name:       input.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, translate(err)
	}

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := requireActive(ctx, repos.NewIntegrityGateway(), entity.KindCategory, product.CategoryID(), domainerrors.ErrCategoryNotFound); err != nil {
			return err
		}

		return repos.NewProductRepository().Create(ctx, product)
	})
	if err != nil {
		return nil, translate(err)
	}

	s.invalidate()
	s.log(ctx).Info("Product created", slog.String("productID", product.ID().String()))

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	var updated *entity.Product
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		gw := repos.NewIntegrityGateway()
		productRepo := repos.NewProductRepository()

		if err := lockForWrite(ctx, gw, entity.KindProduct, id); err != nil {
			return err
		}
		current, err := productRepo.FindActiveByID(ctx, id)
		if err != nil {
			return err
		}

		params := current.Params()
		params.Brand = withDefault(input.Brand, params.Brand)
		params.Name = withDefault(input.Name, params.Name)
		params.UpdatedAt = timeNow()
		if input.CategoryID != nil && *input.CategoryID != params.CategoryID {
			if err := requireActive(ctx, gw, entity.KindCategory, *input.CategoryID, domainerrors.ErrCategoryNotFound); err != nil {
				return err
			}
			params.CategoryID = *input.CategoryID
		}

		next, err := entity.NewProduct(params)
		if err != nil {
			return err
		}
		if err := productRepo.Update(ctx, next); err != nil {
			return err
		}
		updated = next

		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	s.invalidate()
	s.log(ctx).Info("Product updated", slog.String("productID", id.String()))

	return updated, nil
}

// DeleteProduct removes a product that no purchase references, deleted purchases included.
func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID, mode usecase.DeleteMode) error {
	err := executeDelete(ctx, s.txManager, deletion{
		kind:   entity.KindProduct,
		id:     id,
		mode:   mode,
		target: func(repos repository.RepositoryFactory) repository.Deleter { return repos.NewProductRepository() },
	})
	if err != nil {
		s.log(ctx).Warn("Product delete rejected", slog.String("productID", id.String()), slog.String("mode", mode.String()), slog.Any("error", err))

		return err
	}

	s.invalidate()
	s.log(ctx).Info("Product deleted", slog.String("productID", id.String()), slog.String("mode", mode.String()))

	return nil
}

// invalidate drops both listings that embed product fields.
func (s *productService) invalidate() {
	s.productCache.Invalidate()
	s.reviewCache.Invalidate()
}
