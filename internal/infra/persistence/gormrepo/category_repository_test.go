package gormrepo

import (
	"context"
	"testing"
	"time"

	"pocketratings/internal/domain/entity"
	"pocketratings/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_FindChildren(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)

	food := mustCategory(t, db, "Food", nil)
	drinks := mustCategory(t, db, "Drinks", nil)
	fruit := mustCategory(t, db, "Fruit", ptr(food.ID()))
	bread := mustCategory(t, db, "Bread", ptr(food.ID()))
	gone := mustCategory(t, db, "Gone", ptr(food.ID()))
	_, err := repo.SoftDelete(ctx, gone.ID(), t0.Add(time.Hour))
	require.NoError(t, err)

	roots, err := repo.FindChildren(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{drinks.ID(), food.ID()}, ids(roots))

	children, err := repo.FindChildren(ctx, ptr(food.ID()))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{bread.ID(), fruit.ID()}, ids(children))
}

func TestCategoryRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)

	parent := mustCategory(t, db, "Food", nil)
	child := mustCategory(t, db, "  Fruit ", ptr(parent.ID()))

	got, err := repo.FindActiveByID(ctx, child.ID())
	require.NoError(t, err)
	assert.Equal(t, "Fruit", got.Name())
	assert.Equal(t, parent.ID(), *got.ParentID())
	assert.True(t, got.CreatedAt().Equal(t0))
	assert.True(t, got.IsActive())

	_, err = repo.FindActiveByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestCategoryRepository_SoftDeleteIsConditional(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)
	c := mustCategory(t, db, "Food", nil)

	first := t0.Add(time.Hour)
	n, err := repo.SoftDelete(ctx, c.ID(), first)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.SoftDelete(ctx, c.ID(), first.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	all, err := repo.FindAll(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	deletedAt := entity.DeletedAt(all[0].Status())
	require.NotNil(t, deletedAt)
	assert.True(t, deletedAt.Equal(first))
	assert.True(t, all[0].UpdatedAt().Equal(first))

	active, err := repo.FindAll(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = repo.FindActiveByID(ctx, c.ID())
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestCategoryRepository_UpdateSkipsDeleted(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)
	c := mustCategory(t, db, "Food", nil)

	params := c.Params()
	params.Name = "Groceries"
	params.UpdatedAt = t0.Add(time.Minute)
	renamed, err := entity.NewCategory(params)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, renamed))

	got, err := repo.FindActiveByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Name())

	_, err = repo.SoftDelete(ctx, c.ID(), t0.Add(time.Hour))
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Update(ctx, renamed), repository.ErrCategoryNotFound)
}

func TestCategoryRepository_HardDeleteReferenced(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)

	parent := mustCategory(t, db, "Food", nil)
	mustCategory(t, db, "Fruit", ptr(parent.ID()))

	_, err := repo.HardDelete(ctx, parent.ID())
	assert.ErrorIs(t, err, repository.ErrStillReferenced)

	n, err := repo.HardDelete(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func ptr[T any](v T) *T { return &v }

func ids(categories []*entity.Category) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.ID())
	}

	return out
}
