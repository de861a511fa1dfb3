package hierarchy

import (
	"testing"
	"time"

	"pocketratings/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Unix(1_700_000_000, 0).UTC()

func newCategory(t *testing.T, name string, parent *entity.Category, deleted bool) *entity.Category {
	t.Helper()

	params := entity.CategoryParams{ID: uuid.New(), Name: name, CreatedAt: now, UpdatedAt: now}
	if parent != nil {
		id := parent.ID()
		params.ParentID = &id
	}
	if deleted {
		params.DeletedAt = &now
	}

	c, err := entity.NewCategory(params)
	require.NoError(t, err)

	return c
}

func names(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Category.Name())
	}

	return out
}

func TestBuild_VirtualRoot(t *testing.T) {
	a := newCategory(t, "A", nil, false)
	b := newCategory(t, "B", a, false)

	tree := Build([]*entity.Category{b, a}, nil)

	require.True(t, tree.IsVirtual())
	require.Len(t, tree.Children, 1)
	assert.Equal(t, a.ID(), tree.Children[0].Category.ID())
	require.Len(t, tree.Children[0].Children, 1)
	assert.Equal(t, b.ID(), tree.Children[0].Children[0].Category.ID())
	assert.Empty(t, tree.Children[0].Children[0].Children)
}

func TestBuild_Rooted(t *testing.T) {
	a := newCategory(t, "A", nil, false)
	b := newCategory(t, "B", a, false)

	tree := Build([]*entity.Category{a, b}, a)
	require.False(t, tree.IsVirtual())
	assert.Equal(t, a.ID(), tree.Category.ID())
	require.Len(t, tree.Children, 1)
	assert.Equal(t, b.ID(), tree.Children[0].Category.ID())
	assert.Empty(t, tree.Children[0].Children)

	leaf := Build(nil, a)
	assert.Equal(t, a.ID(), leaf.Category.ID())
	assert.Empty(t, leaf.Children)
}

func TestBuild_Completeness(t *testing.T) {
	food := newCategory(t, "Food", nil, false)
	drinks := newCategory(t, "Drinks", nil, false)
	dairy := newCategory(t, "Dairy", food, false)
	cheese := newCategory(t, "Cheese", dairy, false)
	milk := newCategory(t, "Milk", dairy, false)
	snacks := newCategory(t, "Snacks", food, false)
	coffee := newCategory(t, "Coffee", drinks, false)
	flat := []*entity.Category{milk, coffee, food, cheese, snacks, dairy, drinks}

	tree := Build(flat, nil)
	assert.Equal(t, len(flat), tree.Size())

	seen := map[uuid.UUID]int{}
	tree.Walk(func(node *Node, _ int) {
		if node.IsVirtual() {
			return
		}
		seen[node.Category.ID()]++
		for _, child := range node.Children {
			require.NotNil(t, child.Category.ParentID())
			assert.Equal(t, node.Category.ID(), *child.Category.ParentID())
		}
	})
	for _, c := range flat {
		assert.Equal(t, 1, seen[c.ID()], c.Name())
	}

	assert.Equal(t, []string{"Drinks", "Food"}, names(tree.Children))
	assert.Equal(t, []string{"Dairy", "Snacks"}, names(tree.Children[1].Children))
	assert.Equal(t, []string{"Cheese", "Milk"}, names(tree.Children[1].Children[0].Children))
}

func TestBuild_Depth(t *testing.T) {
	a := newCategory(t, "A", nil, false)
	b := newCategory(t, "B", a, false)
	c := newCategory(t, "C", b, false)
	flat := []*entity.Category{a, b, c}

	one := Build(flat, nil, WithDepth(1))
	require.Len(t, one.Children, 1)
	assert.Empty(t, one.Children[0].Children)

	two := Build(flat, nil, WithDepth(2))
	require.Len(t, two.Children[0].Children, 1)
	assert.Empty(t, two.Children[0].Children[0].Children)

	unlimited := Build(flat, nil, WithDepth(0))
	assert.Equal(t, 3, unlimited.Size())
}

func TestBuild_ActiveOnly(t *testing.T) {
	a := newCategory(t, "A", nil, false)
	gone := newCategory(t, "Gone", a, true)
	under := newCategory(t, "Under", gone, false)
	kept := newCategory(t, "Kept", a, false)
	flat := []*entity.Category{a, gone, under, kept}

	assert.Equal(t, 4, Build(flat, nil).Size())

	active := Build(flat, nil, ActiveOnly())
	assert.Equal(t, 2, active.Size())
	assert.Equal(t, []string{"Kept"}, names(active.Children[0].Children))
}

func TestBuild_DanglingParentIsUnreachable(t *testing.T) {
	a := newCategory(t, "A", nil, false)
	missing := newCategory(t, "Missing", nil, false)
	orphan := newCategory(t, "Orphan", missing, false)
	flat := []*entity.Category{a, orphan}

	tree := Build(flat, nil)
	assert.Equal(t, 1, tree.Size())

	orphans := Orphans(flat)
	require.Len(t, orphans, 1)
	assert.Equal(t, orphan.ID(), orphans[0].ID())
	assert.Empty(t, Orphans([]*entity.Category{a}))
}

func TestChildren(t *testing.T) {
	a := newCategory(t, "A", nil, false)
	z := newCategory(t, "Zed", a, false)
	b := newCategory(t, "Bee", a, false)

	nodes := Children([]*entity.Category{z, b})
	assert.Equal(t, []string{"Bee", "Zed"}, names(nodes))
	for _, n := range nodes {
		assert.Nil(t, n.Children)
	}
}

func TestDescendants(t *testing.T) {
	a := newCategory(t, "A", nil, false)
	b := newCategory(t, "B", a, false)
	c := newCategory(t, "C", b, false)
	other := newCategory(t, "Other", nil, false)
	flat := []*entity.Category{a, b, c, other}

	got := Descendants(flat, a.ID())
	assert.Len(t, got, 2)
	assert.Contains(t, got, b.ID())
	assert.Contains(t, got, c.ID())
	assert.Empty(t, Descendants(flat, c.ID()))
}
