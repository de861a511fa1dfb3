package impl

import (
	"context"
	"testing"

	"pocketratings/internal/domain/entity"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/domain/repository"
	mockRepo "pocketratings/internal/mocks/repository"
	mockSvc "pocketratings/internal/mocks/service"
	"pocketratings/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	tx          *txFixture
	reviewRepo  *mockRepo.MockReviewRepository
	reviewCache *mockSvc.MockListCache[entity.ReviewListing]
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	freezeClock(t)
	tx := newTxFixture(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	reviewCache := newReviewCache(t)

	service := NewReviewService(ReviewServiceParams{
		TxManager:   tx.txManager,
		ReviewRepo:  reviewRepo,
		ReviewCache: reviewCache,
		Logger:      newDiscardLogger(),
	})

	return reviewServiceFixtures{service: service, tx: tx, reviewRepo: reviewRepo, reviewCache: reviewCache}
}

func TestReviewService_CreateReview(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()
	text := "   "

	fx.tx.expectLock(entity.KindUser, userID, repository.LockShare, true, true)
	fx.tx.expectLock(entity.KindProduct, productID, repository.LockShare, true, true)
	fx.tx.reviews.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	fx.reviewCache.EXPECT().Invalidate().Return()

	review, err := fx.service.CreateReview(ctx, userID, &usecase.CreateReviewInput{ProductID: productID, Rating: "4.5", Text: &text})

	require.NoError(t, err)
	assert.Equal(t, "4.5", review.Rating().String())
	assert.Nil(t, review.Text())
}

func TestReviewService_CreateReview_RatingBounds(t *testing.T) {
	for _, rating := range []string{"0.999", "5.0001", "0", "five"} {
		t.Run(rating, func(t *testing.T) {
			fx := createTestReviewService(t)

			_, err := fx.service.CreateReview(context.Background(), uuid.New(), &usecase.CreateReviewInput{ProductID: uuid.New(), Rating: rating})

			require.ErrorIs(t, err, entity.ErrInvalidEntity)
		})
	}
}

func TestReviewService_CreateReview_DeletedProduct(t *testing.T) {
	fx := createTestReviewService(t)
	userID, productID := uuid.New(), uuid.New()

	fx.tx.expectLock(entity.KindUser, userID, repository.LockShare, true, true)
	fx.tx.expectLock(entity.KindProduct, productID, repository.LockShare, true, false)

	_, err := fx.service.CreateReview(context.Background(), userID, &usecase.CreateReviewInput{ProductID: productID, Rating: "5"})

	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestReviewService_UpdateReview_ClearsText(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	id, author := uuid.New(), uuid.New()
	original := "tasty"
	blank := ""
	rating := "1.5"

	fx.tx.expectLock(entity.KindReview, id, repository.LockUpdate, true, true)
	fx.tx.reviews.EXPECT().FindActiveByID(ctx, id).Return(testReview(t, id, author, &original), nil)
	fx.tx.reviews.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	fx.reviewCache.EXPECT().Invalidate().Return()

	updated, err := fx.service.UpdateReview(ctx, author, id, &usecase.UpdateReviewInput{Rating: &rating, Text: &blank})

	require.NoError(t, err)
	assert.Nil(t, updated.Text())
	assert.Equal(t, "1.5", updated.Rating().String())
	assert.Equal(t, fixedNow, updated.UpdatedAt())
}

func TestReviewService_UpdateReview_OtherUser(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.tx.expectLock(entity.KindReview, id, repository.LockUpdate, true, true)
	fx.tx.reviews.EXPECT().FindActiveByID(ctx, id).Return(testReview(t, id, uuid.New(), nil), nil)

	_, err := fx.service.UpdateReview(ctx, uuid.New(), id, &usecase.UpdateReviewInput{})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReviewService_DeleteReview_Twice(t *testing.T) {
	fx := createTestReviewService(t)
	id, author := uuid.New(), uuid.New()

	fx.tx.expectLock(entity.KindReview, id, repository.LockUpdate, true, true)
	fx.tx.reviews.EXPECT().FindByID(mock.Anything, id).Return(testReview(t, id, author, nil), nil)
	fx.tx.reviews.EXPECT().SoftDelete(mock.Anything, id, fixedNow).Return(int64(1), nil)
	fx.reviewCache.EXPECT().Invalidate().Return().Once()
	fx.tx.expectLock(entity.KindReview, id, repository.LockUpdate, true, false)

	require.NoError(t, fx.service.DeleteReview(context.Background(), author, id, usecase.SoftDelete))
	require.ErrorIs(t, fx.service.DeleteReview(context.Background(), author, id, usecase.SoftDelete), domainerrors.ErrAlreadyDeleted)
}

func TestReviewService_ListReviews(t *testing.T) {
	fx := createTestReviewService(t)
	productID := uuid.New()
	rows := []entity.ReviewListing{
		{ID: uuid.New(), ProductID: productID},
		{ID: uuid.New(), ProductID: productID, DeletedAt: &fixedNow},
		{ID: uuid.New(), ProductID: uuid.New()},
	}

	fx.reviewCache.EXPECT().List(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, match func(entity.ReviewListing) bool) ([]entity.ReviewListing, error) {
			var out []entity.ReviewListing
			for _, r := range rows {
				if match(r) {
					out = append(out, r)
				}
			}

			return out, nil
		})

	got, err := fx.service.ListReviews(context.Background(), entity.ReviewFilter{ProductID: &productID})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rows[0].ID, got[0].ID)
}
