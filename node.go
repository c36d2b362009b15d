package docindex

import "sort"

// NoParent is the Parent value of the root entry.
const NoParent = -1

// Value is the application payload carried by a tree node.
type Value struct {
	Title string `json:"title"`
	Link  string `json:"link,omitempty"`
	Type  string `json:"type,omitempty"`
}

// String returns the value's display form.
func (v *Value) String() string {
	if v == nil {
		return ""
	}
	return v.Title
}

// Node is a node of the externally supplied navigation tree.
// Child order is significant and determines render order.
type Node struct {
	Value    *Value  `json:"value"`
	Children []*Node `json:"children,omitempty"`
}

// Entry is the tree-position-aware wrapper around a Node.
//
// Entries live in an arena owned by the index; Parent and Children are arena
// indexes, so upward links never own anything.
type Entry struct {
	ID       int
	Node     *Node
	Parent   int // NoParent for the root
	Children []int
	Depth    int

	// Size is the number of entries in the subtree rooted at this entry,
	// the entry itself included.
	Size int

	// Display is the formatter output for the node's value.
	Display string
}

// IsRoot reports whether the entry has no parent.
func (e *Entry) IsRoot() bool {
	return e.Parent == NoParent
}

// HasChildren reports whether the entry has at least one child.
func (e *Entry) HasChildren() bool {
	return len(e.Children) > 0
}

// Link returns the link of the entry's value, or "" if there is none.
func (e *Entry) Link() string {
	if e.Node == nil || e.Node.Value == nil {
		return ""
	}
	return e.Node.Value.Link
}

// EntrySet is a set of entries keyed by entry ID.
type EntrySet map[int]*Entry

// Has reports whether the entry with the given ID is in the set.
func (s EntrySet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of entries in the set.
func (s EntrySet) Len() int {
	return len(s)
}

// IDs returns the IDs of the entries in ascending order.
func (s EntrySet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Sorted returns the entries ordered by ID, which is tree pre-order.
func (s EntrySet) Sorted() []*Entry {
	entries := make([]*Entry, 0, len(s))
	for _, id := range s.IDs() {
		entries = append(entries, s[id])
	}
	return entries
}

// FormatFunc turns a node value into display markup.
type FormatFunc func(v *Value) string

// StyleFunc decorates the rendering of an entry. It is invoked once per
// entry and its effects are opaque to the index.
type StyleFunc func(e *Entry, n *Node)

// Renderer is the rendering collaborator driven by location correlation.
type Renderer interface {
	// Mark flags the entry as part of the active location.
	Mark(e *Entry)

	// Unmark clears the active flag of the entry.
	Unmark(e *Entry)

	// Reveal makes the entry's children visible.
	Reveal(e *Entry)
}
