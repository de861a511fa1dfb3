package impl

import (
	"context"
	"testing"
	"time"

	"pocketratings/internal/domain/entity"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/domain/repository"
	mockRepo "pocketratings/internal/mocks/repository"
	"pocketratings/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPurchaseService(t *testing.T) (usecase.PurchaseUsecase, *txFixture, *mockRepo.MockPurchaseRepository) {
	freezeClock(t)
	tx := newTxFixture(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)

	service := NewPurchaseService(PurchaseServiceParams{
		TxManager:    tx.txManager,
		PurchaseRepo: purchaseRepo,
		Logger:       newDiscardLogger(),
	})

	return service, tx, purchaseRepo
}

func TestPurchaseService_CreatePurchase(t *testing.T) {
	service, tx, _ := createTestPurchaseService(t)
	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreatePurchaseInput{
		ProductID:  uuid.New(),
		LocationID: uuid.New(),
		Quantity:   2,
		Price:      "3.50",
	}

	tx.expectLock(entity.KindUser, userID, repository.LockShare, true, true)
	tx.expectLock(entity.KindProduct, input.ProductID, repository.LockShare, true, true)
	tx.expectLock(entity.KindLocation, input.LocationID, repository.LockShare, true, true)
	tx.purchases.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Purchase")).Return(nil)

	purchase, err := service.CreatePurchase(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, userID, purchase.UserID())
	assert.Equal(t, "3.50", purchase.Price().String())
	assert.Equal(t, fixedNow, purchase.PurchasedAt())
}

func TestPurchaseService_CreatePurchase_References(t *testing.T) {
	userID, productID, locationID := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name    string
		missing entity.Kind
		wantErr error
	}{
		{name: "deleted user", missing: entity.KindUser, wantErr: domainerrors.ErrUserNotFound},
		{name: "deleted product", missing: entity.KindProduct, wantErr: domainerrors.ErrProductNotFound},
		{name: "deleted location", missing: entity.KindLocation, wantErr: domainerrors.ErrLocationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, tx, _ := createTestPurchaseService(t)

			for _, ref := range []struct {
				kind entity.Kind
				id   uuid.UUID
			}{{entity.KindUser, userID}, {entity.KindProduct, productID}, {entity.KindLocation, locationID}} {
				found := ref.kind != tt.missing
				tx.expectLock(ref.kind, ref.id, repository.LockShare, true, found)
				if !found {
					break
				}
			}

			_, err := service.CreatePurchase(context.Background(), userID, &usecase.CreatePurchaseInput{
				ProductID:  productID,
				LocationID: locationID,
				Quantity:   1,
				Price:      "1",
			})

			require.ErrorIs(t, err, tt.wantErr)
			tx.purchases.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestPurchaseService_CreatePurchase_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.CreatePurchaseInput
	}{
		{name: "zero quantity", input: usecase.CreatePurchaseInput{Quantity: 0, Price: "1.00"}},
		{name: "negative price", input: usecase.CreatePurchaseInput{Quantity: 1, Price: "-0.01"}},
		{name: "price not a number", input: usecase.CreatePurchaseInput{Quantity: 1, Price: "cheap"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, tx, _ := createTestPurchaseService(t)

			_, err := service.CreatePurchase(context.Background(), uuid.New(), &tt.input)

			require.ErrorIs(t, err, entity.ErrInvalidEntity)
			tx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestPurchaseService_UpdatePurchase_OtherUser(t *testing.T) {
	service, tx, _ := createTestPurchaseService(t)
	ctx := context.Background()
	id, owner := uuid.New(), uuid.New()
	quantity := 5

	tx.expectLock(entity.KindPurchase, id, repository.LockUpdate, true, true)
	tx.purchases.EXPECT().FindActiveByID(ctx, id).Return(testPurchase(t, id, owner), nil)

	_, err := service.UpdatePurchase(ctx, uuid.New(), id, &usecase.UpdatePurchaseInput{Quantity: &quantity})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPurchaseService_UpdatePurchase_KeepsUnchangedReferences(t *testing.T) {
	service, tx, _ := createTestPurchaseService(t)
	ctx := context.Background()
	id, owner := uuid.New(), uuid.New()
	price := "9.99"
	at := fixedNow.Add(-48 * time.Hour)

	tx.expectLock(entity.KindPurchase, id, repository.LockUpdate, true, true)
	tx.purchases.EXPECT().FindActiveByID(ctx, id).Return(testPurchase(t, id, owner), nil)
	tx.purchases.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Purchase")).Return(nil)

	updated, err := service.UpdatePurchase(ctx, owner, id, &usecase.UpdatePurchaseInput{Price: &price, PurchasedAt: &at})

	require.NoError(t, err)
	assert.Equal(t, "9.99", updated.Price().String())
	assert.Equal(t, at, updated.PurchasedAt())
}

func TestPurchaseService_DeletePurchase_HardDeleteOfSoftDeletedRow(t *testing.T) {
	service, tx, _ := createTestPurchaseService(t)
	id, owner := uuid.New(), uuid.New()

	tx.expectLock(entity.KindPurchase, id, repository.LockUpdate, false, true)
	tx.purchases.EXPECT().FindByID(mock.Anything, id).Return(testPurchase(t, id, owner), nil)
	tx.purchases.EXPECT().HardDelete(mock.Anything, id).Return(int64(1), nil)

	require.NoError(t, service.DeletePurchase(context.Background(), owner, id, usecase.HardDelete))
}

func TestPurchaseService_DeletePurchase_NotOwner(t *testing.T) {
	service, tx, _ := createTestPurchaseService(t)
	id := uuid.New()

	tx.expectLock(entity.KindPurchase, id, repository.LockUpdate, true, true)
	tx.purchases.EXPECT().FindByID(mock.Anything, id).Return(testPurchase(t, id, uuid.New()), nil)

	err := service.DeletePurchase(context.Background(), uuid.New(), id, usecase.SoftDelete)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	tx.purchases.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseService_ListPurchases_PassesFilter(t *testing.T) {
	service, _, purchaseRepo := createTestPurchaseService(t)
	userID := uuid.New()
	filter := entity.PurchaseFilter{UserID: &userID}

	purchaseRepo.EXPECT().Find(mock.Anything, filter).Return([]*entity.Purchase{testPurchase(t, uuid.New(), userID)}, nil)

	got, err := service.ListPurchases(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
