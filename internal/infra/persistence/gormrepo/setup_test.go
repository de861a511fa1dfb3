package gormrepo

import (
	"context"
	"testing"
	"time"

	"pocketratings/config"
	"pocketratings/internal/domain/entity"
	"pocketratings/internal/infra/persistence/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var t0 = time.Unix(1_700_000_000, 0)

// newTestDB opens a private in-memory SQLite database with the schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}}
	db, err := database.Open(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	require.NoError(t, database.Migrate(context.Background(), db))

	return db
}

func mustCategory(t *testing.T, db *gorm.DB, name string, parent *uuid.UUID) *entity.Category {
	t.Helper()
	c, err := entity.NewCategory(entity.CategoryParams{ID: uuid.New(), ParentID: parent, Name: name, CreatedAt: t0, UpdatedAt: t0})
	require.NoError(t, err)
	require.NoError(t, NewCategoryRepository(db).Create(context.Background(), c))

	return c
}

func mustProduct(t *testing.T, db *gorm.DB, categoryID uuid.UUID, brand, name string) *entity.Product {
	t.Helper()
	p, err := entity.NewProduct(entity.ProductParams{ID: uuid.New(), CategoryID: categoryID, Brand: brand, Name: name, CreatedAt: t0, UpdatedAt: t0})
	require.NoError(t, err)
	require.NoError(t, NewProductRepository(db).Create(context.Background(), p))

	return p
}

func mustLocation(t *testing.T, db *gorm.DB, name string) *entity.Location {
	t.Helper()
	l, err := entity.NewLocation(entity.LocationParams{ID: uuid.New(), Name: name})
	require.NoError(t, err)
	require.NoError(t, NewLocationRepository(db).Create(context.Background(), l))

	return l
}

func mustUser(t *testing.T, db *gorm.DB, name, email string) *entity.User {
	t.Helper()
	u, err := entity.NewUser(entity.UserParams{ID: uuid.New(), Name: name, Email: email, PasswordHash: "hash", CreatedAt: t0, UpdatedAt: t0})
	require.NoError(t, err)
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))

	return u
}

func mustPurchase(t *testing.T, db *gorm.DB, user, product, location uuid.UUID, at time.Time) *entity.Purchase {
	t.Helper()
	p, err := entity.NewPurchase(entity.PurchaseParams{
		ID: uuid.New(), UserID: user, ProductID: product, LocationID: location,
		Quantity: 1, Price: entity.NewDecimal(199, -2), PurchasedAt: at,
	})
	require.NoError(t, err)
	require.NoError(t, NewPurchaseRepository(db).Create(context.Background(), p))

	return p
}

func mustReview(t *testing.T, db *gorm.DB, product, user uuid.UUID, rating entity.Decimal, at time.Time) *entity.Review {
	t.Helper()
	r, err := entity.NewReview(entity.ReviewParams{ID: uuid.New(), ProductID: product, UserID: user, Rating: rating, CreatedAt: at, UpdatedAt: at})
	require.NoError(t, err)
	require.NoError(t, NewReviewRepository(db).Create(context.Background(), r))

	return r
}
