package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketratings/internal/errors"
)

var baseTime = time.Unix(1_700_000_000, 0).UTC()

func mustDecimal(t *testing.T, text string) Decimal {
	t.Helper()
	d, err := ParseDecimal(text)
	require.NoError(t, err)

	return d
}

func reviewParams(rating Decimal) ReviewParams {
	return ReviewParams{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		UserID:    uuid.New(),
		Rating:    rating,
		CreatedAt: baseTime,
		UpdatedAt: baseTime,
	}
}

func TestNewReview_RatingBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		rating  string
		wantErr bool
	}{
		{name: "just below minimum", rating: "0.999999999", wantErr: true},
		{name: "zero", rating: "0", wantErr: true},
		{name: "minimum", rating: "1", wantErr: false},
		{name: "minimum with trailing zeros", rating: "1.000", wantErr: false},
		{name: "half step", rating: "3.5", wantErr: false},
		{name: "maximum", rating: "5", wantErr: false},
		{name: "just above maximum", rating: "5.0000000001", wantErr: true},
		{name: "negative", rating: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review, err := NewReview(reviewParams(mustDecimal(t, tt.rating)))
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, 0, review.Rating().Cmp(mustDecimal(t, tt.rating)))
				return
			}

			require.Error(t, err)
			assert.Nil(t, review)
			assert.True(t, errors.Is(err, ErrInvalidEntity))

			var rangeErr *RatingOutOfRangeError
			require.True(t, errors.As(err, &rangeErr))
			assert.Equal(t, tt.rating, rangeErr.Rating.String())
		})
	}
}

func TestNewPurchase_QuantityAndPrice(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		price     string
		wantQtyEr bool
		wantPrcEr bool
	}{
		{name: "quantity zero", quantity: 0, price: "1.00", wantQtyEr: true},
		{name: "quantity negative", quantity: -3, price: "1.00", wantQtyEr: true},
		{name: "quantity one", quantity: 1, price: "1.00"},
		{name: "price just below zero", quantity: 1, price: "-0.01", wantPrcEr: true},
		{name: "price zero", quantity: 1, price: "0"},
		{name: "price with cents", quantity: 2, price: "12.49"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purchase, err := NewPurchase(PurchaseParams{
				ID:          uuid.New(),
				UserID:      uuid.New(),
				ProductID:   uuid.New(),
				LocationID:  uuid.New(),
				Quantity:    tt.quantity,
				Price:       mustDecimal(t, tt.price),
				PurchasedAt: baseTime,
			})

			switch {
			case tt.wantQtyEr:
				var qtyErr *QuantityOutOfRangeError
				require.True(t, errors.As(err, &qtyErr))
				assert.Equal(t, tt.quantity, qtyErr.Quantity)
			case tt.wantPrcEr:
				var priceErr *NegativePriceError
				require.True(t, errors.As(err, &priceErr))
				assert.Equal(t, tt.price, priceErr.Price.String())
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.quantity, purchase.Quantity())
				assert.Equal(t, tt.price, purchase.Price().String())
				assert.True(t, purchase.IsActive())
			}
		})
	}
}

func TestTimestampMonotonicity(t *testing.T) {
	earlier := baseTime.Add(-time.Second)
	later := baseTime.Add(time.Second)

	tests := []struct {
		name      string
		createdAt time.Time
		updatedAt time.Time
		deletedAt *time.Time
		wantErr   any
	}{
		{name: "equal timestamps", createdAt: baseTime, updatedAt: baseTime},
		{name: "equal with deletion", createdAt: baseTime, updatedAt: baseTime, deletedAt: &baseTime},
		{name: "updated after created", createdAt: baseTime, updatedAt: later, deletedAt: &later},
		{name: "created after updated", createdAt: baseTime, updatedAt: earlier, wantErr: &CreatedAfterUpdatedError{}},
		{name: "deleted before created", createdAt: baseTime, updatedAt: baseTime, deletedAt: &earlier, wantErr: &CreatedAfterDeletedError{}},
	}

	constructors := map[string]func(created, updated time.Time, deleted *time.Time) error{
		"category": func(created, updated time.Time, deleted *time.Time) error {
			_, err := NewCategory(CategoryParams{ID: uuid.New(), Name: "Snacks", CreatedAt: created, UpdatedAt: updated, DeletedAt: deleted})
			return err
		},
		"product": func(created, updated time.Time, deleted *time.Time) error {
			_, err := NewProduct(ProductParams{ID: uuid.New(), CategoryID: uuid.New(), Brand: "Acme", Name: "Crisps", CreatedAt: created, UpdatedAt: updated, DeletedAt: deleted})
			return err
		},
		"review": func(created, updated time.Time, deleted *time.Time) error {
			p := reviewParams(NewDecimal(4, 0))
			p.CreatedAt, p.UpdatedAt, p.DeletedAt = created, updated, deleted
			_, err := NewReview(p)
			return err
		},
		"user": func(created, updated time.Time, deleted *time.Time) error {
			_, err := NewUser(UserParams{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", PasswordHash: "hash", CreatedAt: created, UpdatedAt: updated, DeletedAt: deleted})
			return err
		},
	}

	for kind, construct := range constructors {
		for _, tt := range tests {
			t.Run(kind+"/"+tt.name, func(t *testing.T) {
				err := construct(tt.createdAt, tt.updatedAt, tt.deletedAt)
				switch tt.wantErr.(type) {
				case nil:
					assert.NoError(t, err)
				case *CreatedAfterUpdatedError:
					var target *CreatedAfterUpdatedError
					require.True(t, errors.As(err, &target))
					assert.Equal(t, tt.createdAt, target.CreatedAt)
					assert.Equal(t, tt.updatedAt, target.UpdatedAt)
				case *CreatedAfterDeletedError:
					var target *CreatedAfterDeletedError
					require.True(t, errors.As(err, &target))
					assert.Equal(t, *tt.deletedAt, target.DeletedAt)
				}
			})
		}
	}
}

func TestBlankFields(t *testing.T) {
	_, err := NewCategory(CategoryParams{ID: uuid.New(), Name: "   ", CreatedAt: baseTime, UpdatedAt: baseTime})
	var blank *BlankFieldError
	require.True(t, errors.As(err, &blank))
	assert.Equal(t, KindCategory, blank.Kind)
	assert.Equal(t, "name", blank.Field)

	_, err = NewProduct(ProductParams{ID: uuid.New(), Brand: "", Name: "Crisps", CreatedAt: baseTime, UpdatedAt: baseTime})
	require.True(t, errors.As(err, &blank))
	assert.Equal(t, "brand", blank.Field)

	_, err = NewLocation(LocationParams{ID: uuid.New(), Name: "\t"})
	require.True(t, errors.As(err, &blank))
	assert.Equal(t, KindLocation, blank.Kind)

	_, err = NewUser(UserParams{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", CreatedAt: baseTime, UpdatedAt: baseTime})
	var emptyHash *EmptyPasswordHashError
	assert.True(t, errors.As(err, &emptyHash))
}

func TestNamesAreTrimmed(t *testing.T) {
	category, err := NewCategory(CategoryParams{ID: uuid.New(), Name: "  Dairy ", CreatedAt: baseTime, UpdatedAt: baseTime})
	require.NoError(t, err)
	assert.Equal(t, "Dairy", category.Name())
	assert.True(t, category.IsRoot())
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{email: "ada@example.com", want: true},
		{email: "a.b+c@mail.example.org", want: true},
		{email: "ada@localhost", want: false},
		{email: "@example.com", want: false},
		{email: "ada@@example.com", want: false},
		{email: "ada@example.com@x.io", want: false},
		{email: "ada@example..com", want: false},
		{email: "ada@.com", want: false},
		{email: "ada@example.", want: false},
		{email: "ada.example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}

func TestStatus(t *testing.T) {
	at := baseTime.Add(time.Hour)

	assert.Equal(t, Active{}, StatusFrom(nil))
	assert.Nil(t, DeletedAt(Active{}))

	status := StatusFrom(&at)
	assert.Equal(t, Deleted{At: at}, status)
	assert.False(t, status.Active())
	require.NotNil(t, DeletedAt(status))
	assert.Equal(t, at, *DeletedAt(status))
}

func TestReview_WhitespaceTextIsDropped(t *testing.T) {
	blank := "   "
	p := reviewParams(NewDecimal(3, 0))
	p.Text = &blank

	review, err := NewReview(p)
	require.NoError(t, err)
	assert.Nil(t, review.Text())
}

func TestParseDecimal(t *testing.T) {
	_, err := ParsePrice("ten")
	var decErr *InvalidDecimalError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, "price", decErr.Field)

	_, err = ParseRating("NaN")
	require.Error(t, err)

	for _, text := range []string{"1e50000", "1234567890123456789", "0.000000001", "1e-50000"} {
		_, err := ParsePrice(text)
		require.True(t, errors.As(err, &decErr), text)
		assert.ErrorIs(t, err, ErrInvalidEntity, text)
	}
	for _, text := range []string{"123456789012345678", "0.00000001", "1.500000000000", "0e99999", "2.49"} {
		_, err := ParsePrice(text)
		assert.NoError(t, err, text)
	}

	d := mustDecimal(t, "4.50")
	out, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"4.50"`, string(out))

	var back Decimal
	require.NoError(t, back.UnmarshalJSON([]byte("4.5")))
	assert.Equal(t, 0, back.Cmp(d))
}
