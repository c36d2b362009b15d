package nav_test

import (
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/index"
	"github.com/fwojciec/docindex/mock"
	"github.com/fwojciec/docindex/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(title, link string, children ...*docindex.Node) *docindex.Node {
	return &docindex.Node{
		Value:    &docindex.Value{Title: title, Link: link},
		Children: children,
	}
}

func buildIndex(t *testing.T) *index.Index {
	t.Helper()
	idx, err := index.Build(node("docs", "",
		node("guide", "guide.html",
			node("intro", "guide.html#intro"),
			node("install", "guide.html#install"),
		),
		node("api", "api.html",
			node("Parse Config", "api.html#Parse%20Config"),
		),
	))
	require.NoError(t, err)
	return idx
}

// recorder tracks renderer state per entry ID.
type recorder struct {
	marked   map[int]bool
	revealed map[int]bool
	unmarks  int
}

func newRecorder() (*recorder, *mock.Renderer) {
	rec := &recorder{marked: map[int]bool{}, revealed: map[int]bool{}}
	return rec, &mock.Renderer{
		MarkFn:   func(e *docindex.Entry) { rec.marked[e.ID] = true },
		UnmarkFn: func(e *docindex.Entry) { delete(rec.marked, e.ID); rec.unmarks++ },
		RevealFn: func(e *docindex.Entry) { rec.revealed[e.ID] = true },
	}
}

func markedIDs(rec *recorder) []int {
	set := make(docindex.EntrySet)
	for id := range rec.marked {
		set[id] = nil
	}
	return set.IDs()
}

func TestCorrelator_OnLocationChanged(t *testing.T) {
	t.Parallel()

	t.Run("marks matching entries and their ancestors", func(t *testing.T) {
		t.Parallel()

		rec, r := newRecorder()
		c := nav.NewCorrelator(buildIndex(t), r)

		c.OnLocationChanged("https://example.com/docs/intro")

		assert.Equal(t, nav.StateLocated, c.State())
		assert.Equal(t, []int{0, 1, 2}, markedIDs(rec))
		assert.Equal(t, []int{0, 1, 2}, c.Marked().IDs())
		assert.True(t, rec.revealed[0])
		assert.True(t, rec.revealed[1])
		assert.True(t, rec.revealed[2])
		assert.False(t, rec.revealed[4])
	})

	t.Run("clears the previous marks first", func(t *testing.T) {
		t.Parallel()

		rec, r := newRecorder()
		idx := buildIndex(t)
		c := nav.NewCorrelator(idx, r)

		c.OnLocationChanged("https://example.com/docs/intro")
		c.OnLocationChanged("https://example.com/docs/api.html")

		assert.Equal(t, []int{0, 4, 5}, markedIDs(rec))
		assert.Equal(t, 2*idx.Len(), rec.unmarks)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		rec, r := newRecorder()
		c := nav.NewCorrelator(buildIndex(t), r)

		c.OnLocationChanged("https://example.com/docs/install")
		first := markedIDs(rec)
		c.OnLocationChanged("https://example.com/docs/install")

		assert.Equal(t, first, markedIDs(rec))
		assert.Equal(t, []int{0, 1, 3}, first)
	})

	t.Run("marks nothing at the top of the site", func(t *testing.T) {
		t.Parallel()

		rec, r := newRecorder()
		c := nav.NewCorrelator(buildIndex(t), r)

		c.OnLocationChanged("https://example.com/docs/intro")
		c.OnLocationChanged("https://example.com/docs/")

		assert.Equal(t, nav.StateIdle, c.State())
		assert.Empty(t, rec.marked)
		assert.Equal(t, 0, c.Marked().Len())
		assert.Equal(t, "https://example.com/docs/", c.Location())
	})

	t.Run("compares decoded token with decoded links", func(t *testing.T) {
		t.Parallel()

		rec, r := newRecorder()
		c := nav.NewCorrelator(buildIndex(t), r)

		c.OnLocationChanged("https://example.com/docs/api.html%23Parse%20Config")

		assert.Equal(t, []int{0, 4, 5}, markedIDs(rec))
	})

	t.Run("marks nothing when no link matches", func(t *testing.T) {
		t.Parallel()

		rec, r := newRecorder()
		c := nav.NewCorrelator(buildIndex(t), r)

		c.OnLocationChanged("https://example.com/docs/missing.html")

		assert.Equal(t, nav.StateLocated, c.State())
		assert.Empty(t, rec.marked)
	})
}

func TestToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		location string
		want     string
	}{
		{"https://example.com/docs/intro", "intro"},
		{"https://example.com/docs/", ""},
		{"intro.html", "intro.html"},
		{"/docs/Parse%20Config", "Parse Config"},
		{"/docs/bad%zz", "bad%zz"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nav.Token(tt.location), "location %q", tt.location)
	}
}

func TestUp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://example.com/docs", nav.Up("https://example.com/docs/intro"))
	assert.Equal(t, "", nav.Up("intro"))
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", nav.StateIdle.String())
	assert.Equal(t, "located", nav.StateLocated.String())
}
