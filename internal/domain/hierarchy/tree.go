// Package hierarchy rebuilds the category tree from a flat category listing.
package hierarchy

import (
	"cmp"
	"slices"

	"pocketratings/internal/domain/entity"

	"github.com/google/uuid"
)

// Node is one level of the category tree. The virtual top node has a nil Category.
type Node struct {
	Category *entity.Category
	Children []*Node
}

// IsVirtual reports whether n is the synthetic top node of a forest.
func (n *Node) IsVirtual() bool {
	return n.Category == nil
}

// Size counts the categories in the subtree, excluding the virtual top node.
func (n *Node) Size() int {
	size := 0
	if n.Category != nil {
		size = 1
	}
	for _, child := range n.Children {
		size += child.Size()
	}

	return size
}

// Walk visits every node depth-first, parents before children.
func (n *Node) Walk(visit func(node *Node, depth int)) {
	n.walk(visit, 0)
}

func (n *Node) walk(visit func(node *Node, depth int), depth int) {
	visit(n, depth)
	for _, child := range n.Children {
		child.walk(visit, depth+1)
	}
}

type options struct {
	depth      int
	activeOnly bool
}

// Option tunes Build.
type Option func(*options)

// WithDepth limits the number of levels materialized below the root. Zero or less means no limit.
func WithDepth(depth int) Option {
	return func(o *options) {
		o.depth = depth
	}
}

// ActiveOnly drops deleted categories together with their subtrees.
func ActiveOnly() Option {
	return func(o *options) {
		o.activeOnly = true
	}
}

// Build groups flat by parent id and materializes the tree under root.
// A nil root yields a virtual node whose children are the parentless categories.
// Categories whose parent is missing from flat are unreachable and left out; see Orphans.
// The input must be acyclic.
func Build(flat []*entity.Category, root *entity.Category, opts ...Option) *Node {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	children := groupByParent(flat, o.activeOnly)

	var key uuid.UUID // uuid.Nil keys the roots
	if root != nil {
		key = root.ID()
	}

	return &Node{
		Category: root,
		Children: materialize(children, key, o.depth),
	}
}

// Children returns the direct children as leaf nodes, the shallow projection of Build with depth one.
func Children(direct []*entity.Category) []*Node {
	sorted := slices.Clone(direct)
	sortCategories(sorted)

	nodes := make([]*Node, 0, len(sorted))
	for _, c := range sorted {
		nodes = append(nodes, &Node{Category: c})
	}

	return nodes
}

// Orphans returns the categories whose parent id does not appear in flat.
func Orphans(flat []*entity.Category) []*entity.Category {
	known := make(map[uuid.UUID]struct{}, len(flat))
	for _, c := range flat {
		known[c.ID()] = struct{}{}
	}

	var orphans []*entity.Category
	for _, c := range flat {
		parent := c.ParentID()
		if parent == nil {
			continue
		}
		if _, ok := known[*parent]; !ok {
			orphans = append(orphans, c)
		}
	}

	return orphans
}

// Descendants reports the ids of every category below id in flat, used to reject cyclic re-parenting.
func Descendants(flat []*entity.Category, id uuid.UUID) map[uuid.UUID]struct{} {
	children := groupByParent(flat, false)
	seen := make(map[uuid.UUID]struct{})

	stack := []uuid.UUID{id}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range children[current] {
			if _, ok := seen[child.ID()]; ok {
				continue
			}
			seen[child.ID()] = struct{}{}
			stack = append(stack, child.ID())
		}
	}

	return seen
}

func groupByParent(flat []*entity.Category, activeOnly bool) map[uuid.UUID][]*entity.Category {
	children := make(map[uuid.UUID][]*entity.Category, len(flat))
	for _, c := range flat {
		if activeOnly && !c.IsActive() {
			continue
		}
		var parent uuid.UUID
		if p := c.ParentID(); p != nil {
			parent = *p
		}
		children[parent] = append(children[parent], c)
	}
	for _, list := range children {
		sortCategories(list)
	}

	return children
}

func materialize(children map[uuid.UUID][]*entity.Category, parent uuid.UUID, depth int) []*Node {
	list := children[parent]
	if len(list) == 0 {
		return nil
	}

	nodes := make([]*Node, 0, len(list))
	for _, c := range list {
		node := &Node{Category: c}
		if depth != 1 {
			node.Children = materialize(children, c.ID(), max(depth-1, 0))
		}
		nodes = append(nodes, node)
	}

	return nodes
}

func sortCategories(list []*entity.Category) {
	slices.SortFunc(list, func(a, b *entity.Category) int {
		if c := cmp.Compare(a.Name(), b.Name()); c != 0 {
			return c
		}

		return cmp.Compare(a.ID().String(), b.ID().String())
	})
}
