package docindex_test

import (
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/stretchr/testify/assert"
)

func TestValue_String(t *testing.T) {
	t.Parallel()

	var nilValue *docindex.Value
	assert.Empty(t, nilValue.String())
	assert.Equal(t, "Guide", (&docindex.Value{Title: "Guide", Link: "guide.html"}).String())
}

func TestEntry(t *testing.T) {
	t.Parallel()

	root := &docindex.Entry{ID: 0, Parent: docindex.NoParent, Children: []int{1}, Node: &docindex.Node{}}
	leaf := &docindex.Entry{ID: 1, Parent: 0, Node: &docindex.Node{Value: &docindex.Value{Link: "a.html"}}}

	assert.True(t, root.IsRoot())
	assert.True(t, root.HasChildren())
	assert.Empty(t, root.Link())

	assert.False(t, leaf.IsRoot())
	assert.False(t, leaf.HasChildren())
	assert.Equal(t, "a.html", leaf.Link())
}

func TestEntrySet(t *testing.T) {
	t.Parallel()

	a := &docindex.Entry{ID: 4}
	b := &docindex.Entry{ID: 0}
	c := &docindex.Entry{ID: 2}
	set := docindex.EntrySet{a.ID: a, b.ID: b, c.ID: c}

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Has(2))
	assert.False(t, set.Has(1))
	assert.Equal(t, []int{0, 2, 4}, set.IDs())
	assert.Equal(t, []*docindex.Entry{b, c, a}, set.Sorted())

	empty := docindex.EntrySet{}
	assert.Empty(t, empty.IDs())
	assert.Empty(t, empty.Sorted())
}
