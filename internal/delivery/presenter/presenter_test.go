package presenter

import (
	"encoding/json"
	"testing"
	"time"

	"pocketratings/internal/domain/entity"
	"pocketratings/internal/domain/hierarchy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategoryTree_VirtualRootHasOnlyChildren(t *testing.T) {
	now := time.Unix(1_700_000_000, 0).UTC()
	root, err := entity.NewCategory(entity.CategoryParams{ID: uuid.New(), Name: "Food", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	tree := NewCategoryTree(&hierarchy.Node{Children: []*hierarchy.Node{{Category: root}}})

	raw, err := json.Marshal(tree)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "id")
	children, ok := decoded["children"].([]any)
	require.True(t, ok)
	require.Len(t, children, 1)
	assert.Equal(t, "Food", children[0].(map[string]any)["name"])
}

func TestNewReview_KeepsDecimalDigits(t *testing.T) {
	rating, err := entity.ParseRating("4.50")
	require.NoError(t, err)
	now := time.Unix(1_700_000_000, 0).UTC()
	review, err := entity.NewReview(entity.ReviewParams{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		UserID:    uuid.New(),
		Rating:    rating,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	raw, err := json.Marshal(NewReview(review))
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"rating":"4.50"`)
	assert.Contains(t, string(raw), `"text":null`)
	assert.NotContains(t, string(raw), "deleted_at")
}

func TestNewUser_OmitsPasswordHash(t *testing.T) {
	now := time.Unix(1_700_000_000, 0).UTC()
	user, err := entity.NewUser(entity.UserParams{
		ID:           uuid.New(),
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "secret-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)

	raw, err := json.Marshal(NewUser(user))
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret-hash")
}
