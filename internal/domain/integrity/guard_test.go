package integrity

import (
	"context"
	"testing"

	"pocketratings/internal/domain/entity"
	"pocketratings/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countKey struct {
	dependent  entity.Kind
	foreignKey string
	activeOnly bool
}

type stubCounter struct {
	counts map[countKey]int64
	err    error
	calls  []countKey
}

func (s *stubCounter) CountDependents(_ context.Context, dependent entity.Kind, foreignKey string, _ uuid.UUID, activeOnly bool) (int64, error) {
	key := countKey{dependent, foreignKey, activeOnly}
	s.calls = append(s.calls, key)
	if s.err != nil {
		return 0, s.err
	}

	return s.counts[key], nil
}

func TestGuard_CanDelete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name          string
		kind          entity.Kind
		counts        map[countKey]int64
		wantDependent entity.Kind
		wantCalls     int
	}{
		{
			name:      "category without dependents",
			kind:      entity.KindCategory,
			wantCalls: 2,
		},
		{
			name:          "category with active child",
			kind:          entity.KindCategory,
			counts:        map[countKey]int64{{entity.KindCategory, "parent_id", true}: 1},
			wantDependent: entity.KindCategory,
			wantCalls:     1,
		},
		{
			name:          "category with active product",
			kind:          entity.KindCategory,
			counts:        map[countKey]int64{{entity.KindProduct, "category_id", true}: 3},
			wantDependent: entity.KindProduct,
			wantCalls:     2,
		},
		{
			name:          "product with purchases of any status",
			kind:          entity.KindProduct,
			counts:        map[countKey]int64{{entity.KindPurchase, "product_id", false}: 1},
			wantDependent: entity.KindPurchase,
			wantCalls:     1,
		},
		{
			name:          "location with purchases",
			kind:          entity.KindLocation,
			counts:        map[countKey]int64{{entity.KindPurchase, "location_id", false}: 2},
			wantDependent: entity.KindPurchase,
			wantCalls:     1,
		},
		{name: "user has no rules", kind: entity.KindUser},
		{name: "review has no rules", kind: entity.KindReview},
		{name: "purchase has no rules", kind: entity.KindPurchase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := &stubCounter{counts: tt.counts}
			err := NewGuard(counter).CanDelete(context.Background(), tt.kind, id)

			assert.Len(t, counter.calls, tt.wantCalls)
			if tt.wantDependent == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrViolation))

			var violation *ViolationError
			require.True(t, errors.As(err, &violation))
			assert.Equal(t, tt.kind, violation.Kind)
			assert.Equal(t, id, violation.ID)
			assert.Equal(t, tt.wantDependent, violation.Dependent)
			assert.Positive(t, violation.Count)
			assert.Equal(t, 409, violation.HTTPCode())
		})
	}
}

func TestGuard_CounterFailurePropagates(t *testing.T) {
	boom := errors.New("connection reset")
	err := NewGuard(&stubCounter{err: boom}).CanDelete(context.Background(), entity.KindProduct, uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.False(t, errors.Is(err, ErrViolation))
}

func TestRulesFor_IsACopy(t *testing.T) {
	got := RulesFor(entity.KindCategory)
	require.Len(t, got, 2)
	got[0].Reason = "changed"

	assert.Equal(t, "category has active child categories", RulesFor(entity.KindCategory)[0].Reason)
	assert.Empty(t, RulesFor(entity.KindUser))
}
