// Package tree builds a filterable navigation tree over a category
// hierarchy. Filtering is predicate-driven and non-destructive: every node
// keeps its permanent source children and exposes a visible subset that is
// recomputed when the predicate changes, so filtered-out nodes are never
// discarded.
package tree

import (
	"github.com/Dicklesworthstone/prefnav/pkg/model"
)

// Predicate decides whether a category matches the current filter.
type Predicate func(*model.Category) bool

// ShowAll matches every category. This is the library default; callers
// wanting a specific initial screen layer that on top via WithPredicate
// or WithInitialCategory.
func ShowAll(*model.Category) bool { return true }

// Node wraps a category in the navigation tree. The two synthetic levels
// above the top-level categories (the invisible super-root and the "true
// source" node holding the input forest) carry a nil category.
type Node struct {
	category *model.Category
	parent   *Node
	source   []*Node // permanent child set, insertion order
	visible  []*Node // predicate-derived subset of source
	depth    int     // 0 for top-level categories

	// Expanded tracks the view's expand state. Seeded from the category's
	// expand flag; the root levels are always expanded.
	Expanded bool
}

// Category returns the wrapped category, or nil for synthetic nodes.
func (n *Node) Category() *model.Category { return n.category }

// Parent returns the parent node, or nil for the super-root.
func (n *Node) Parent() *Node { return n.parent }

// Depth returns the nesting level, 0 for top-level categories.
func (n *Node) Depth() int { return n.depth }

// SourceChildren returns the permanent child set in insertion order.
func (n *Node) SourceChildren() []*Node { return n.source }

// VisibleChildren returns the children matching the current predicate,
// preserving source order.
func (n *Node) VisibleChildren() []*Node { return n.visible }

// Tree is the filterable navigation tree. The root is never rendered: it
// stays expanded but invisible, per the root-visibility policy.
type Tree struct {
	root      *Node // synthetic super-root, never rendered
	origin    *Node // "true source" node holding the top-level categories
	predicate Predicate
	selected  *Node
	initial   string
}

// Option configures tree construction.
type Option func(*Tree)

// WithPredicate sets the initial visibility predicate. The default shows
// every category.
func WithPredicate(p Predicate) Option {
	return func(t *Tree) {
		if p != nil {
			t.predicate = p
		}
	}
}

// WithInitialCategory selects the first node whose category description
// equals name once construction completes. If no node matches, the
// selection falls back to the first visible category.
func WithInitialCategory(name string) Option {
	return func(t *Tree) {
		t.initial = name
	}
}

// New builds a filterable tree from the ordered list of top-level
// categories. An empty list is valid and produces a tree with a root and
// no visible nodes. The category forest must be acyclic; recursion depth
// is bounded only by the input's depth.
func New(categories []*model.Category, opts ...Option) *Tree {
	t := &Tree{predicate: ShowAll}

	t.root = &Node{depth: -2, Expanded: true}
	t.origin = &Node{parent: t.root, depth: -1, Expanded: true}
	t.root.source = []*Node{t.origin}

	insert(t.origin, categories, 0)

	for _, opt := range opts {
		opt(t)
	}

	t.Refilter()
	t.selectInitial()
	return t
}

// insert wraps categories under parent in pre-order, parent before
// children, keeping input order.
func insert(parent *Node, categories []*model.Category, depth int) {
	for _, category := range categories {
		node := &Node{
			category: category,
			parent:   parent,
			depth:    depth,
			Expanded: category.IsExpand(),
		}
		parent.source = append(parent.source, node)
		if category.Children() != nil {
			insert(node, category.Children(), depth+1)
		}
	}
}

// Root returns the invisible super-root.
func (t *Tree) Root() *Node { return t.root }

// SetPredicate swaps the visibility predicate and recomputes every node's
// visible children. A nil predicate restores ShowAll. Applying the same
// predicate twice yields the same visible set.
func (t *Tree) SetPredicate(p Predicate) {
	if p == nil {
		p = ShowAll
	}
	t.predicate = p
	t.Refilter()
	t.ensureSelectionVisible()
}

// Refilter recomputes visible children from source children under the
// current predicate. Source order is preserved; no node is discarded.
func (t *Tree) Refilter() {
	t.refilterNode(t.root)
}

// refilterNode returns true if the node or any descendant matches, and
// rebuilds the visible subsets on the way. A node with a matching
// descendant stays visible so the match remains reachable.
func (t *Tree) refilterNode(n *Node) bool {
	anyChild := false
	n.visible = n.visible[:0]
	for _, child := range n.source {
		if t.refilterNode(child) {
			n.visible = append(n.visible, child)
			anyChild = true
		}
	}
	if n.category == nil {
		// Synthetic levels are forced visible regardless of the predicate.
		return true
	}
	return anyChild || t.predicate(n.category)
}

// VisibleNodes flattens the visible category nodes in pre-order, skipping
// the synthetic levels. Collapsed nodes still report their visible
// children here; the view applies expand state separately.
func (t *Tree) VisibleNodes() []*Node {
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, child := range n.visible {
			out = append(out, child)
			walk(child)
		}
	}
	walk(t.origin)
	return out
}

// Select moves the selection to the first visible node whose category
// description equals name. Returns false, leaving the selection unchanged,
// if no visible node matches.
func (t *Tree) Select(name string) bool {
	for _, n := range t.VisibleNodes() {
		if n.category.Description() == name {
			t.selected = n
			return true
		}
	}
	return false
}

// SelectNode sets the selection directly. A nil node clears it.
func (t *Tree) SelectNode(n *Node) {
	t.selected = n
}

// Selected returns the currently selected node, or nil when the tree has
// no selectable nodes.
func (t *Tree) Selected() *Node {
	return t.selected
}

func (t *Tree) selectInitial() {
	if t.initial != "" && t.Select(t.initial) {
		return
	}
	if nodes := t.VisibleNodes(); len(nodes) > 0 {
		t.selected = nodes[0]
	}
}

// ensureSelectionVisible resets the selection to the first visible node
// when re-filtering hid the selected one.
func (t *Tree) ensureSelectionVisible() {
	if t.selected == nil {
		t.selectInitial()
		return
	}
	for _, n := range t.VisibleNodes() {
		if n == t.selected {
			return
		}
	}
	t.selected = nil
	t.selectInitial()
}
