package gormrepo

import (
	"context"
	"testing"
	"time"

	"pocketratings/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_ListWithCategory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	dairy := mustCategory(t, db, "Dairy", nil)
	bakery := mustCategory(t, db, "Bakery", nil)
	milk := mustProduct(t, db, dairy.ID(), "Arla", "Milk")
	bread := mustProduct(t, db, bakery.ID(), "Aldi", "Rye")
	_, err := repo.SoftDelete(ctx, bread.ID(), t0.Add(time.Hour))
	require.NoError(t, err)

	rows, err := repo.ListWithCategory(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, bread.ID(), rows[0].ID)
	assert.Equal(t, "Bakery", rows[0].CategoryName)
	assert.NotNil(t, rows[0].DeletedAt)

	assert.Equal(t, milk.ID(), rows[1].ID)
	assert.Equal(t, "Dairy", rows[1].CategoryName)
	assert.Equal(t, "Arla", rows[1].Brand)
	assert.Nil(t, rows[1].DeletedAt)
}

func TestReviewRepository_ListWithRelations(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	c := mustCategory(t, db, "Dairy", nil)
	p := mustProduct(t, db, c.ID(), "Arla", "Milk")
	u := mustUser(t, db, "Ada", "ada@example.com")
	older := mustReview(t, db, p.ID(), u.ID(), entity.NewDecimal(45, -1), t0)
	newer := mustReview(t, db, p.ID(), u.ID(), entity.NewDecimal(2, 0), t0.Add(time.Hour))

	rows, err := NewReviewRepository(db).ListWithRelations(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, newer.ID(), rows[0].ID)
	assert.Equal(t, older.ID(), rows[1].ID)
	assert.Equal(t, "4.5", rows[1].Rating.String())
	assert.Equal(t, "Arla", rows[1].ProductBrand)
	assert.Equal(t, "Milk", rows[1].ProductName)
	assert.Equal(t, "Ada", rows[1].UserName)
}

func TestReviewRepository_TextRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewReviewRepository(db)

	c := mustCategory(t, db, "Dairy", nil)
	p := mustProduct(t, db, c.ID(), "Arla", "Milk")
	u := mustUser(t, db, "Ada", "ada@example.com")
	r := mustReview(t, db, p.ID(), u.ID(), entity.NewDecimal(5, 0), t0)

	params := r.Params()
	text := "creamy"
	params.Text = &text
	params.UpdatedAt = t0.Add(time.Minute)
	updated, err := entity.NewReview(params)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.FindActiveByID(ctx, r.ID())
	require.NoError(t, err)
	require.NotNil(t, got.Text())
	assert.Equal(t, "creamy", *got.Text())
	assert.Equal(t, 0, got.Rating().Cmp(entity.NewDecimal(5, 0)))
}

func TestPurchaseRepository_Find(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPurchaseRepository(db)

	c := mustCategory(t, db, "Dairy", nil)
	milk := mustProduct(t, db, c.ID(), "Arla", "Milk")
	cheese := mustProduct(t, db, c.ID(), "Arla", "Cheese")
	shop := mustLocation(t, db, "Corner shop")
	ada := mustUser(t, db, "Ada", "ada@example.com")
	bob := mustUser(t, db, "Bob", "bob@example.com")

	p1 := mustPurchase(t, db, ada.ID(), milk.ID(), shop.ID(), t0)
	p2 := mustPurchase(t, db, ada.ID(), cheese.ID(), shop.ID(), t0.Add(2*time.Hour))
	p3 := mustPurchase(t, db, bob.ID(), milk.ID(), shop.ID(), t0.Add(time.Hour))
	_, err := repo.SoftDelete(ctx, p3.ID(), t0.Add(3*time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter entity.PurchaseFilter
		want   []*entity.Purchase
	}{
		{name: "active newest first", filter: entity.PurchaseFilter{}, want: []*entity.Purchase{p2, p1}},
		{name: "include deleted", filter: entity.PurchaseFilter{IncludeDeleted: true}, want: []*entity.Purchase{p2, p3, p1}},
		{name: "by user", filter: entity.PurchaseFilter{UserID: ptr(ada.ID())}, want: []*entity.Purchase{p2, p1}},
		{name: "by product", filter: entity.PurchaseFilter{ProductID: ptr(milk.ID()), IncludeDeleted: true}, want: []*entity.Purchase{p3, p1}},
		{name: "by location", filter: entity.PurchaseFilter{LocationID: ptr(shop.ID())}, want: []*entity.Purchase{p2, p1}},
		{name: "time range", filter: entity.PurchaseFilter{From: ptr(t0.Add(time.Minute)), To: ptr(t0.Add(2 * time.Hour))}, want: []*entity.Purchase{p2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Find(ctx, tt.filter)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].ID(), got[i].ID())
			}
		})
	}

	found, err := repo.FindActiveByID(ctx, p1.ID())
	require.NoError(t, err)
	assert.Equal(t, "1.99", found.Price().String())
	assert.True(t, found.PurchasedAt().Equal(t0))
}

func TestLocationRepository_HardDeleteReferenced(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	c := mustCategory(t, db, "Dairy", nil)
	p := mustProduct(t, db, c.ID(), "Arla", "Milk")
	u := mustUser(t, db, "Ada", "ada@example.com")
	shop := mustLocation(t, db, "Corner shop")
	idle := mustLocation(t, db, "Market")
	mustPurchase(t, db, u.ID(), p.ID(), shop.ID(), t0)

	repo := NewLocationRepository(db)
	_, err := repo.HardDelete(ctx, shop.ID())
	require.Error(t, err)

	n, err := repo.HardDelete(ctx, idle.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
