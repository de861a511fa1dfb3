package impl

import (
	"context"
	"testing"

	"pocketratings/internal/domain/entity"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/domain/integrity"
	"pocketratings/internal/domain/repository"
	mockRepo "pocketratings/internal/mocks/repository"
	mockSvc "pocketratings/internal/mocks/service"
	"pocketratings/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service      usecase.ProductUsecase
	tx           *txFixture
	productRepo  *mockRepo.MockProductRepository
	productCache *mockSvc.MockListCache[entity.ProductListing]
	reviewCache  *mockSvc.MockListCache[entity.ReviewListing]
}

func createTestProductService(t *testing.T) productServiceFixtures {
	freezeClock(t)
	tx := newTxFixture(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	productCache := newProductCache(t)
	reviewCache := newReviewCache(t)

	service := NewProductService(ProductServiceParams{
		TxManager:    tx.txManager,
		ProductRepo:  productRepo,
		ProductCache: productCache,
		ReviewCache:  reviewCache,
		Logger:       newDiscardLogger(),
	})

	return productServiceFixtures{
		service:      service,
		tx:           tx,
		productRepo:  productRepo,
		productCache: productCache,
		reviewCache:  reviewCache,
	}
}

func (fx productServiceFixtures) expectInvalidate() {
	fx.productCache.EXPECT().Invalidate().Return().Once()
	fx.reviewCache.EXPECT().Invalidate().Return().Once()
}

func TestProductService_ListProducts_FiltersCachedRows(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	categoryID := uuid.New()
	rows := []entity.ProductListing{
		{ID: uuid.New(), CategoryID: categoryID, Brand: "Acme", Name: "Oat Milk"},
		{ID: uuid.New(), CategoryID: uuid.New(), Brand: "Other", Name: "Bread"},
	}

	fx.productCache.EXPECT().List(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, match func(entity.ProductListing) bool) ([]entity.ProductListing, error) {
			var out []entity.ProductListing
			for _, r := range rows {
				if match(r) {
					out = append(out, r)
				}
			}

			return out, nil
		})

	got, err := fx.service.ListProducts(ctx, entity.ProductFilter{CategoryID: &categoryID})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Oat Milk", got[0].Name)
}

func TestProductService_CreateProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	fx.tx.expectLock(entity.KindCategory, categoryID, repository.LockShare, true, true)
	fx.tx.products.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	fx.expectInvalidate()

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{CategoryID: categoryID, Brand: "Acme", Name: "Oat Milk"})

	require.NoError(t, err)
	assert.Equal(t, categoryID, product.CategoryID())
	assert.Equal(t, fixedNow, product.UpdatedAt())
}

func TestProductService_CreateProduct_DeletedCategory(t *testing.T) {
	fx := createTestProductService(t)
	categoryID := uuid.New()

	fx.tx.expectLock(entity.KindCategory, categoryID, repository.LockShare, true, false)

	_, err := fx.service.CreateProduct(context.Background(), &usecase.CreateProductInput{CategoryID: categoryID, Brand: "Acme", Name: "Oat Milk"})

	require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductService_UpdateProduct_MovesCategory(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	id, oldCategory, newCategory := uuid.New(), uuid.New(), uuid.New()

	fx.tx.expectLock(entity.KindProduct, id, repository.LockUpdate, true, true)
	fx.tx.expectLock(entity.KindCategory, newCategory, repository.LockShare, true, true)
	fx.tx.products.EXPECT().FindActiveByID(ctx, id).Return(testProduct(t, id, oldCategory), nil)
	fx.tx.products.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	fx.expectInvalidate()

	updated, err := fx.service.UpdateProduct(ctx, id, &usecase.UpdateProductInput{CategoryID: &newCategory})

	require.NoError(t, err)
	assert.Equal(t, newCategory, updated.CategoryID())
	assert.Equal(t, "Acme", updated.Brand())
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	id := uuid.New()

	fx.tx.expectLock(entity.KindProduct, id, repository.LockUpdate, true, false)

	_, err := fx.service.UpdateProduct(context.Background(), id, &usecase.UpdateProductInput{})

	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_DeleteProduct_BlockedByDeletedPurchase(t *testing.T) {
	fx := createTestProductService(t)
	id := uuid.New()

	fx.tx.expectLock(entity.KindProduct, id, repository.LockUpdate, false, true)
	fx.tx.gateway.EXPECT().
		CountDependents(mock.Anything, entity.KindPurchase, "product_id", id, false).
		Return(int64(1), nil)

	err := fx.service.DeleteProduct(context.Background(), id, usecase.HardDelete)

	require.ErrorIs(t, err, integrity.ErrViolation)
	fx.tx.products.AssertNotCalled(t, "HardDelete", mock.Anything, mock.Anything)
}

func TestProductService_DeleteProduct_InvalidatesBothListings(t *testing.T) {
	fx := createTestProductService(t)
	id := uuid.New()

	fx.tx.expectLock(entity.KindProduct, id, repository.LockUpdate, true, true)
	fx.tx.expectNoDependents()
	fx.tx.products.EXPECT().SoftDelete(mock.Anything, id, fixedNow).Return(int64(1), nil)
	fx.expectInvalidate()

	require.NoError(t, fx.service.DeleteProduct(context.Background(), id, usecase.SoftDelete))
}
