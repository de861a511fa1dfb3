package impl

import (
	"context"
	"testing"
	"time"

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

type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	tx           *txFixture
	categoryRepo *mockRepo.MockCategoryRepository
	productCache *mockSvc.MockListCache[entity.ProductListing]
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	freezeClock(t)
	tx := newTxFixture(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productCache := newProductCache(t)

	service := NewCategoryService(CategoryServiceParams{
		TxManager:    tx.txManager,
		CategoryRepo: categoryRepo,
		ProductCache: productCache,
		Logger:       newDiscardLogger(),
	})

	return categoryServiceFixtures{
		service:      service,
		tx:           tx,
		categoryRepo: categoryRepo,
		productCache: productCache,
	}
}

func TestCategoryService_CreateCategory_UnderActiveParent(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	parentID := uuid.New()

	fx.tx.expectLock(entity.KindCategory, parentID, repository.LockShare, true, true)
	fx.tx.categories.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)
	fx.productCache.EXPECT().Invalidate().Return()

	category, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "  Dairy ", ParentID: &parentID})

	require.NoError(t, err)
	assert.Equal(t, "Dairy", category.Name())
	assert.True(t, category.HasParent(parentID))
	assert.Equal(t, fixedNow, category.CreatedAt())
	assert.True(t, category.IsActive())
}

func TestCategoryService_CreateCategory_ParentMissing(t *testing.T) {
	fx := createTestCategoryService(t)
	parentID := uuid.New()

	fx.tx.expectLock(entity.KindCategory, parentID, repository.LockShare, true, false)

	_, err := fx.service.CreateCategory(context.Background(), &usecase.CreateCategoryInput{Name: "Dairy", ParentID: &parentID})

	require.ErrorIs(t, err, domainerrors.ErrParentCategoryNotFound)
	fx.tx.categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryService_CreateCategory_BlankName(t *testing.T) {
	fx := createTestCategoryService(t)

	_, err := fx.service.CreateCategory(context.Background(), &usecase.CreateCategoryInput{Name: "   "})

	require.ErrorIs(t, err, entity.ErrInvalidEntity)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	fx.tx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCategoryService_UpdateCategory_RejectsMoveBelowDescendant(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	rootID, childID, grandchildID := uuid.New(), uuid.New(), uuid.New()
	root := testCategory(t, rootID, nil, "Food", nil)
	child := testCategory(t, childID, &rootID, "Dairy", nil)
	grandchild := testCategory(t, grandchildID, &childID, "Cheese", nil)

	fx.tx.expectLock(entity.KindCategory, rootID, repository.LockUpdate, true, true)
	fx.tx.expectLock(entity.KindCategory, grandchildID, repository.LockShare, true, true)
	fx.tx.categories.EXPECT().FindActiveByID(ctx, rootID).Return(root, nil)
	fx.tx.categories.EXPECT().FindAll(ctx, true).Return([]*entity.Category{root, child, grandchild}, nil)

	_, err := fx.service.UpdateCategory(ctx, rootID, &usecase.UpdateCategoryInput{ParentID: &grandchildID})

	require.ErrorIs(t, err, domainerrors.ErrCategoryCycle)
	fx.tx.categories.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCategoryService_UpdateCategory_RejectsSelfParent(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.tx.expectLock(entity.KindCategory, id, repository.LockUpdate, true, true)
	fx.tx.categories.EXPECT().FindActiveByID(ctx, id).Return(testCategory(t, id, nil, "Food", nil), nil)

	_, err := fx.service.UpdateCategory(ctx, id, &usecase.UpdateCategoryInput{ParentID: &id})

	require.ErrorIs(t, err, domainerrors.ErrCategoryCycle)
}

func TestCategoryService_UpdateCategory_MoveToRootAndRename(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	parentID, id := uuid.New(), uuid.New()
	name := "Cheeses"

	fx.tx.expectLock(entity.KindCategory, id, repository.LockUpdate, true, true)
	fx.tx.categories.EXPECT().FindActiveByID(ctx, id).Return(testCategory(t, id, &parentID, "Cheese", nil), nil)
	fx.tx.categories.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)
	fx.productCache.EXPECT().Invalidate().Return()

	updated, err := fx.service.UpdateCategory(ctx, id, &usecase.UpdateCategoryInput{Name: &name, MoveToRoot: true})

	require.NoError(t, err)
	assert.True(t, updated.IsRoot())
	assert.Equal(t, name, updated.Name())
	assert.Equal(t, fixedNow, updated.UpdatedAt())
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		mode    usecase.DeleteMode
		setup   func(fx categoryServiceFixtures)
		wantErr error
	}{
		{
			name: "soft delete of a leaf",
			mode: usecase.SoftDelete,
			setup: func(fx categoryServiceFixtures) {
				fx.tx.expectLock(entity.KindCategory, id, repository.LockUpdate, true, true)
				fx.tx.expectNoDependents()
				fx.tx.categories.EXPECT().SoftDelete(mock.Anything, id, fixedNow).Return(int64(1), nil)
				fx.productCache.EXPECT().Invalidate().Return()
			},
		},
		{
			name: "hard delete ignores status",
			mode: usecase.HardDelete,
			setup: func(fx categoryServiceFixtures) {
				fx.tx.expectLock(entity.KindCategory, id, repository.LockUpdate, false, true)
				fx.tx.expectNoDependents()
				fx.tx.categories.EXPECT().HardDelete(mock.Anything, id).Return(int64(1), nil)
				fx.productCache.EXPECT().Invalidate().Return()
			},
		},
		{
			name: "soft delete of a deleted row",
			mode: usecase.SoftDelete,
			setup: func(fx categoryServiceFixtures) {
				fx.tx.expectLock(entity.KindCategory, id, repository.LockUpdate, true, false)
			},
			wantErr: domainerrors.ErrAlreadyDeleted,
		},
		{
			name: "hard delete of a missing row",
			mode: usecase.HardDelete,
			setup: func(fx categoryServiceFixtures) {
				fx.tx.expectLock(entity.KindCategory, id, repository.LockUpdate, false, false)
			},
			wantErr: domainerrors.ErrCategoryNotFound,
		},
		{
			name: "lost race on the conditional update",
			mode: usecase.SoftDelete,
			setup: func(fx categoryServiceFixtures) {
				fx.tx.expectLock(entity.KindCategory, id, repository.LockUpdate, true, true)
				fx.tx.expectNoDependents()
				fx.tx.categories.EXPECT().SoftDelete(mock.Anything, id, fixedNow).Return(int64(0), nil)
			},
			wantErr: domainerrors.ErrAlreadyDeleted,
		},
		{
			name: "foreign key still set",
			mode: usecase.HardDelete,
			setup: func(fx categoryServiceFixtures) {
				fx.tx.expectLock(entity.KindCategory, id, repository.LockUpdate, false, true)
				fx.tx.expectNoDependents()
				fx.tx.categories.EXPECT().HardDelete(mock.Anything, id).Return(int64(0), repository.ErrStillReferenced)
			},
			wantErr: domainerrors.ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCategoryService(t)
			tt.setup(fx)

			err := fx.service.DeleteCategory(context.Background(), id, tt.mode)

			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCategoryService_DeleteCategory_BlockedByActiveChild(t *testing.T) {
	fx := createTestCategoryService(t)
	id := uuid.New()

	fx.tx.expectLock(entity.KindCategory, id, repository.LockUpdate, true, true)
	fx.tx.gateway.EXPECT().
		CountDependents(mock.Anything, entity.KindCategory, "parent_id", id, true).
		Return(int64(2), nil)

	err := fx.service.DeleteCategory(context.Background(), id, usecase.SoftDelete)

	var violation *integrity.ViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, entity.KindCategory, violation.Dependent)
	assert.Equal(t, int64(2), violation.Count)
	fx.tx.categories.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything, mock.Anything)
}

func TestCategoryService_GetTree(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	rootID, liveID, goneID := uuid.New(), uuid.New(), uuid.New()
	deletedAt := fixedNow.Add(-30 * time.Minute)
	flat := []*entity.Category{
		testCategory(t, rootID, nil, "Food", nil),
		testCategory(t, liveID, &rootID, "Dairy", nil),
		testCategory(t, goneID, &rootID, "Bakery", &deletedAt),
	}
	fx.categoryRepo.EXPECT().FindAll(ctx, true).Return(flat, nil).Times(2)

	tree, err := fx.service.GetTree(ctx, usecase.CategoryTreeQuery{ParentID: &rootID})
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "Dairy", tree.Children[0].Category.Name())

	tree, err = fx.service.GetTree(ctx, usecase.CategoryTreeQuery{ParentID: &rootID, IncludeDeleted: true})
	require.NoError(t, err)
	assert.Len(t, tree.Children, 2)
}

func TestCategoryService_GetTree_DeletedRoot(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()
	deletedAt := fixedNow

	fx.categoryRepo.EXPECT().FindAll(ctx, true).Return([]*entity.Category{testCategory(t, id, nil, "Food", &deletedAt)}, nil)

	_, err := fx.service.GetTree(ctx, usecase.CategoryTreeQuery{ParentID: &id})

	require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_GetTree_ShallowUsesChildrenQuery(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	rootID := uuid.New()

	fx.categoryRepo.EXPECT().FindChildren(ctx, (*uuid.UUID)(nil)).
		Return([]*entity.Category{testCategory(t, rootID, nil, "Food", nil)}, nil)

	tree, err := fx.service.GetTree(ctx, usecase.CategoryTreeQuery{Depth: 1})

	require.NoError(t, err)
	assert.True(t, tree.IsVirtual())
	require.Len(t, tree.Children, 1)
	fx.categoryRepo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}
