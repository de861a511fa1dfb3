package gormrepo

import (
	"context"
	"testing"
	"time"

	"pocketratings/internal/domain/entity"
	"pocketratings/internal/domain/integrity"
	"pocketratings/internal/domain/repository"
	"pocketratings/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrityGateway_CountDependents(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	gw := NewIntegrityGateway(db)

	parent := mustCategory(t, db, "Food", nil)
	active := mustCategory(t, db, "Fruit", ptr(parent.ID()))
	deleted := mustCategory(t, db, "Stale", ptr(parent.ID()))
	_, err := NewCategoryRepository(db).SoftDelete(ctx, deleted.ID(), t0.Add(time.Hour))
	require.NoError(t, err)

	n, err := gw.CountDependents(ctx, entity.KindCategory, "parent_id", parent.ID(), true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = gw.CountDependents(ctx, entity.KindCategory, "parent_id", parent.ID(), false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = gw.CountDependents(ctx, entity.KindProduct, "category_id", active.ID(), true)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = gw.CountDependents(ctx, entity.KindCategory, "name; DROP TABLE categories", parent.ID(), true)
	assert.Error(t, err)
}

func TestIntegrityGateway_LockRow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	gw := NewIntegrityGateway(db)

	shop := mustLocation(t, db, "Corner shop")
	_, err := NewLocationRepository(db).SoftDelete(ctx, shop.ID(), t0)
	require.NoError(t, err)

	found, err := gw.LockRow(ctx, entity.KindLocation, shop.ID(), repository.LockUpdate, false)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = gw.LockRow(ctx, entity.KindLocation, shop.ID(), repository.LockShare, true)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = gw.LockRow(ctx, entity.KindUser, uuid.New(), repository.LockNone, false)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGuard_AgainstSQLite(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	guard := integrity.NewGuard(NewIntegrityGateway(db))

	c := mustCategory(t, db, "Dairy", nil)
	p := mustProduct(t, db, c.ID(), "Arla", "Milk")
	u := mustUser(t, db, "Ada", "ada@example.com")
	shop := mustLocation(t, db, "Corner shop")
	purchase := mustPurchase(t, db, u.ID(), p.ID(), shop.ID(), t0)
	_, err := NewPurchaseRepository(db).SoftDelete(ctx, purchase.ID(), t0.Add(time.Hour))
	require.NoError(t, err)

	err = guard.CanDelete(ctx, entity.KindCategory, c.ID())
	assert.ErrorIs(t, err, integrity.ErrViolation)

	// Soft-deleted purchases still pin the product and the location.
	var violation *integrity.ViolationError
	err = guard.CanDelete(ctx, entity.KindProduct, p.ID())
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, entity.KindPurchase, violation.Dependent)
	assert.Equal(t, int64(1), violation.Count)

	assert.ErrorIs(t, guard.CanDelete(ctx, entity.KindLocation, shop.ID()), integrity.ErrViolation)
	assert.NoError(t, guard.CanDelete(ctx, entity.KindUser, u.ID()))
}

func TestTransactionManager_RollsBack(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		l, err := entity.NewLocation(entity.LocationParams{ID: uuid.New(), Name: "Market"})
		require.NoError(t, err)
		require.NoError(t, f.NewLocationRepository().Create(ctx, l))

		return boom
	})
	assert.ErrorIs(t, err, boom)

	all, err := NewLocationRepository(db).FindAll(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		l, err := entity.NewLocation(entity.LocationParams{ID: uuid.New(), Name: "Market"})
		if err != nil {
			return err
		}

		return f.NewLocationRepository().Create(ctx, l)
	})
	require.NoError(t, err)

	all, err = NewLocationRepository(db).FindAll(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
