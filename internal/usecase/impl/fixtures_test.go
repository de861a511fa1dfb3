package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pocketratings/internal/domain/entity"
	"pocketratings/internal/domain/repository"
	mockRepo "pocketratings/internal/mocks/repository"
	mockSvc "pocketratings/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// freezeClock pins timeNow for the duration of the test.
func freezeClock(t *testing.T) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return fixedNow }
	t.Cleanup(func() { timeNow = prev })
}

// txFixture runs every transaction callback against mock repositories.
type txFixture struct {
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	gateway    *mockRepo.MockIntegrityGateway
	categories *mockRepo.MockCategoryRepository
	products   *mockRepo.MockProductRepository
	locations  *mockRepo.MockLocationRepository
	purchases  *mockRepo.MockPurchaseRepository
	reviews    *mockRepo.MockReviewRepository
	users      *mockRepo.MockUserRepository
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()

	f := &txFixture{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		gateway:    mockRepo.NewMockIntegrityGateway(t),
		categories: mockRepo.NewMockCategoryRepository(t),
		products:   mockRepo.NewMockProductRepository(t),
		locations:  mockRepo.NewMockLocationRepository(t),
		purchases:  mockRepo.NewMockPurchaseRepository(t),
		reviews:    mockRepo.NewMockReviewRepository(t),
		users:      mockRepo.NewMockUserRepository(t),
	}

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Maybe()

	f.factory.EXPECT().NewIntegrityGateway().Return(f.gateway).Maybe()
	f.factory.EXPECT().NewCategoryRepository().Return(f.categories).Maybe()
	f.factory.EXPECT().NewProductRepository().Return(f.products).Maybe()
	f.factory.EXPECT().NewLocationRepository().Return(f.locations).Maybe()
	f.factory.EXPECT().NewPurchaseRepository().Return(f.purchases).Maybe()
	f.factory.EXPECT().NewReviewRepository().Return(f.reviews).Maybe()
	f.factory.EXPECT().NewUserRepository().Return(f.users).Maybe()

	return f
}

// expectLock records a LockRow call that reports found.
func (f *txFixture) expectLock(kind entity.Kind, id uuid.UUID, mode repository.LockMode, activeOnly, found bool) {
	f.gateway.EXPECT().LockRow(mock.Anything, kind, id, mode, activeOnly).Return(found, nil).Once()
}

// expectNoDependents makes every dependency count zero.
func (f *txFixture) expectNoDependents() {
	f.gateway.EXPECT().
		CountDependents(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil).
		Maybe()
}

func newProductCache(t *testing.T) *mockSvc.MockListCache[entity.ProductListing] {
	return mockSvc.NewMockListCache[entity.ProductListing](t)
}

func newReviewCache(t *testing.T) *mockSvc.MockListCache[entity.ReviewListing] {
	return mockSvc.NewMockListCache[entity.ReviewListing](t)
}

func testCategory(t *testing.T, id uuid.UUID, parentID *uuid.UUID, name string, deletedAt *time.Time) *entity.Category {
	t.Helper()
	c, err := entity.NewCategory(entity.CategoryParams{
		ID:        id,
		ParentID:  parentID,
		Name:      name,
		CreatedAt: fixedNow.Add(-time.Hour),
		UpdatedAt: fixedNow.Add(-time.Hour),
		DeletedAt: deletedAt,
	})
	require.NoError(t, err)

	return c
}

func testProduct(t *testing.T, id, categoryID uuid.UUID) *entity.Product {
	t.Helper()
	p, err := entity.NewProduct(entity.ProductParams{
		ID:         id,
		CategoryID: categoryID,
		Brand:      "Acme",
		Name:       "Oat Milk",
		CreatedAt:  fixedNow.Add(-time.Hour),
		UpdatedAt:  fixedNow.Add(-time.Hour),
	})
	require.NoError(t, err)

	return p
}

func testPurchase(t *testing.T, id, userID uuid.UUID) *entity.Purchase {
	t.Helper()
	price, err := entity.ParsePrice("2.49")
	require.NoError(t, err)
	p, err := entity.NewPurchase(entity.PurchaseParams{
		ID:          id,
		UserID:      userID,
		ProductID:   uuid.New(),
		LocationID:  uuid.New(),
		Quantity:    1,
		Price:       price,
		PurchasedAt: fixedNow.Add(-time.Hour),
	})
	require.NoError(t, err)

	return p
}

func testReview(t *testing.T, id, userID uuid.UUID, text *string) *entity.Review {
	t.Helper()
	rating, err := entity.ParseRating("4")
	require.NoError(t, err)
	r, err := entity.NewReview(entity.ReviewParams{
		ID:        id,
		ProductID: uuid.New(),
		UserID:    userID,
		Rating:    rating,
		Text:      text,
		CreatedAt: fixedNow.Add(-time.Hour),
		UpdatedAt: fixedNow.Add(-time.Hour),
	})
	require.NoError(t, err)

	return r
}
