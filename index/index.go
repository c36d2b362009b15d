// Package index builds the navigation tree over hierarchical page metadata
// and answers structural queries on it.
package index

import (
	"github.com/fwojciec/docindex"
)

// Index owns the entries built from a navigation tree.
// It is not safe for concurrent mutation; queries on a built index are.
type Index struct {
	entries      []*docindex.Entry
	format       docindex.FormatFunc
	styler       docindex.StyleFunc
	bulletStyler docindex.StyleFunc
}

// Option configures an Index before it is built.
type Option func(*Index)

// WithFormatter sets the function that turns node values into display text.
func WithFormatter(f docindex.FormatFunc) Option {
	return func(idx *Index) {
		idx.format = f
	}
}

// WithStyler sets the hook invoked once per entry to decorate its label.
func WithStyler(f docindex.StyleFunc) Option {
	return func(idx *Index) {
		idx.styler = f
	}
}

// WithBulletStyler sets the hook invoked once per entry to decorate its bullet.
func WithBulletStyler(f docindex.StyleFunc) Option {
	return func(idx *Index) {
		idx.bulletStyler = f
	}
}

// DefaultFormatter returns the value's string form.
func DefaultFormatter(v *docindex.Value) string {
	return v.String()
}

// Build constructs an index over the tree rooted at root.
// Entries are laid out in depth-first pre-order, preserving child order.
// Returns EMALFORMED if root or any child is nil, or if a node is reachable
// more than once.
func Build(root *docindex.Node, opts ...Option) (*Index, error) {
	idx := &Index{}
	for _, opt := range opts {
		opt(idx)
	}
	if idx.format == nil {
		idx.format = DefaultFormatter
	}

	if root == nil {
		return nil, docindex.Errorf(docindex.EMALFORMED, "tree has no root node")
	}

	seen := make(map[*docindex.Node]bool)
	if err := idx.add(root, docindex.NoParent, 0, seen); err != nil {
		return nil, err
	}

	for _, e := range idx.entries {
		e.Display = idx.format(e.Node.Value)
	}
	idx.apply(idx.bulletStyler)
	idx.apply(idx.styler)

	return idx, nil
}

// add appends the entry for n and recursively its children.
func (idx *Index) add(n *docindex.Node, parent, depth int, seen map[*docindex.Node]bool) error {
	if seen[n] {
		return docindex.Errorf(docindex.EMALFORMED, "node %q appears more than once in the tree", n.Value.String())
	}
	seen[n] = true

	e := &docindex.Entry{
		ID:     len(idx.entries),
		Node:   n,
		Parent: parent,
		Depth:  depth,
	}
	idx.entries = append(idx.entries, e)

	for i, child := range n.Children {
		if child == nil {
			return docindex.Errorf(docindex.EMALFORMED, "child %d of node %q is nil", i, n.Value.String())
		}
		e.Children = append(e.Children, len(idx.entries))
		if err := idx.add(child, e.ID, depth+1, seen); err != nil {
			return err
		}
	}

	e.Size = len(idx.entries) - e.ID
	return nil
}

func (idx *Index) apply(f docindex.StyleFunc) {
	if f == nil {
		return
	}
	for _, e := range idx.entries {
		f(e, e.Node)
	}
}

// SetFormatter replaces the formatter and re-derives every entry's display
// text. A nil formatter restores DefaultFormatter.
func (idx *Index) SetFormatter(f docindex.FormatFunc) {
	if f == nil {
		f = DefaultFormatter
	}
	idx.format = f
	for _, e := range idx.entries {
		e.Display = f(e.Node.Value)
	}
}

// SetStyler registers the label styler and invokes it once per entry.
func (idx *Index) SetStyler(f docindex.StyleFunc) {
	idx.styler = f
	idx.apply(f)
}

// SetBulletStyler registers the bullet styler and invokes it once per entry.
func (idx *Index) SetBulletStyler(f docindex.StyleFunc) {
	idx.bulletStyler = f
	idx.apply(f)
}

// Root returns the root entry.
func (idx *Index) Root() *docindex.Entry {
	return idx.entries[0]
}

// Len returns the number of entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Entry returns the entry with the given ID, or nil if there is none.
func (idx *Index) Entry(id int) *docindex.Entry {
	if id < 0 || id >= len(idx.entries) {
		return nil
	}
	return idx.entries[id]
}

// Entries returns all entries in pre-order.
func (idx *Index) Entries() []*docindex.Entry {
	return idx.AllChildren(nil)
}

// Parent returns the parent of e, or nil for the root.
func (idx *Index) Parent(e *docindex.Entry) *docindex.Entry {
	if e.IsRoot() {
		return nil
	}
	return idx.entries[e.Parent]
}

// ChildrenOf returns the direct children of e in order.
func (idx *Index) ChildrenOf(e *docindex.Entry) []*docindex.Entry {
	children := make([]*docindex.Entry, len(e.Children))
	for i, id := range e.Children {
		children[i] = idx.entries[id]
	}
	return children
}

// AllChildren returns every entry of the subtree rooted at root, root
// included, in pre-order. A nil root means the tree root.
func (idx *Index) AllChildren(root *docindex.Entry) []*docindex.Entry {
	if root == nil {
		root = idx.Root()
	}
	out := make([]*docindex.Entry, root.Size)
	copy(out, idx.entries[root.ID:root.ID+root.Size])
	return out
}

// FindSubtree returns every entry that lies on a path from the root to an
// entry satisfying pred. The result is empty if nothing matches.
func (idx *Index) FindSubtree(pred func(*docindex.Entry) bool) docindex.EntrySet {
	set := make(docindex.EntrySet)
	for _, leaf := range idx.entries {
		if !pred(leaf) {
			continue
		}
		// Once an ancestor is in the set, so is the rest of its chain.
		for e := leaf; e != nil && !set.Has(e.ID); e = idx.Parent(e) {
			set[e.ID] = e
		}
	}
	return set
}
