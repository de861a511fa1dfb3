package impl

import (
	"context"
	"testing"

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

func createTestLocationService(t *testing.T) (usecase.LocationUsecase, *txFixture, *mockRepo.MockLocationRepository) {
	freezeClock(t)
	tx := newTxFixture(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)

	service := NewLocationService(LocationServiceParams{
		TxManager:    tx.txManager,
		LocationRepo: locationRepo,
		Logger:       newDiscardLogger(),
	})

	return service, tx, locationRepo
}

func TestLocationService_CreateLocation(t *testing.T) {
	service, _, locationRepo := createTestLocationService(t)
	ctx := context.Background()

	locationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Location")).Return(nil)

	location, err := service.CreateLocation(ctx, &usecase.CreateLocationInput{Name: " Corner Shop "})

	require.NoError(t, err)
	assert.Equal(t, "Corner Shop", location.Name())
}

func TestLocationService_CreateLocation_BlankName(t *testing.T) {
	service, _, _ := createTestLocationService(t)

	_, err := service.CreateLocation(context.Background(), &usecase.CreateLocationInput{Name: ""})

	require.ErrorIs(t, err, entity.ErrInvalidEntity)
}

func TestLocationService_UpdateLocation(t *testing.T) {
	service, tx, _ := createTestLocationService(t)
	ctx := context.Background()
	id := uuid.New()
	name := "Farmers Market"

	current, err := entity.NewLocation(entity.LocationParams{ID: id, Name: "Market"})
	require.NoError(t, err)

	tx.expectLock(entity.KindLocation, id, repository.LockUpdate, true, true)
	tx.locations.EXPECT().FindActiveByID(ctx, id).Return(current, nil)
	tx.locations.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Location")).Return(nil)

	updated, err := service.UpdateLocation(ctx, id, &usecase.UpdateLocationInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, name, updated.Name())
}

func TestLocationService_GetLocation_Deleted(t *testing.T) {
	service, _, locationRepo := createTestLocationService(t)
	id := uuid.New()

	locationRepo.EXPECT().FindActiveByID(mock.Anything, id).Return(nil, repository.ErrLocationNotFound)

	_, err := service.GetLocation(context.Background(), id)

	require.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestLocationService_DeleteLocation_ReferencedByPurchase(t *testing.T) {
	service, tx, _ := createTestLocationService(t)
	id := uuid.New()

	tx.expectLock(entity.KindLocation, id, repository.LockUpdate, true, true)
	tx.gateway.EXPECT().
		CountDependents(mock.Anything, entity.KindPurchase, "location_id", id, false).
		Return(int64(3), nil)

	err := service.DeleteLocation(context.Background(), id, usecase.SoftDelete)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
}
