// Package nav keeps the navigation index highlighting in sync with the
// current location.
package nav

import (
	"net/url"
	"strings"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/index"
)

// State is the correlator state.
type State int

// Correlator states.
const (
	StateIdle State = iota
	StateLocated
)

func (s State) String() string {
	switch s {
	case StateLocated:
		return "located"
	default:
		return "idle"
	}
}

// Correlator marks the index entries that lead to the current location.
//
// OnLocationChanged must not be called concurrently; the host is expected to
// deliver location events one at a time, including once at startup.
type Correlator struct {
	idx      *index.Index
	renderer docindex.Renderer

	state    State
	location string
	marked   docindex.EntrySet
}

// NewCorrelator returns an idle correlator over idx that drives r.
func NewCorrelator(idx *index.Index, r docindex.Renderer) *Correlator {
	return &Correlator{
		idx:      idx,
		renderer: r,
		marked:   make(docindex.EntrySet),
	}
}

// OnLocationChanged recomputes the marked entries for location.
//
// Every entry is unmarked first. If the location token is empty nothing is
// marked; otherwise every entry whose decoded link contains the token is
// marked together with its ancestors, and their children are revealed.
// Calling it twice with the same location yields the same marked set.
func (c *Correlator) OnLocationChanged(location string) {
	for _, e := range c.idx.AllChildren(nil) {
		c.renderer.Unmark(e)
	}
	c.marked = make(docindex.EntrySet)
	c.location = location

	token := Token(location)
	if token == "" {
		c.state = StateIdle
		return
	}
	c.state = StateLocated

	c.marked = c.idx.FindSubtree(func(e *docindex.Entry) bool {
		link := e.Link()
		return link != "" && strings.Contains(decode(link), token)
	})
	for _, e := range c.marked.Sorted() {
		c.renderer.Reveal(e)
		c.renderer.Mark(e)
	}
}

// State returns the current state.
func (c *Correlator) State() State {
	return c.state
}

// Location returns the last location passed to OnLocationChanged.
func (c *Correlator) Location() string {
	return c.location
}

// Marked returns the currently marked entries.
func (c *Correlator) Marked() docindex.EntrySet {
	out := make(docindex.EntrySet, len(c.marked))
	for id, e := range c.marked {
		out[id] = e
	}
	return out
}

// Token returns the correlation token of a location: its last path segment,
// URL-decoded. An empty result means the location is the top of the site.
func Token(location string) string {
	if i := strings.LastIndex(location, "/"); i >= 0 {
		location = location[i+1:]
	}
	return decode(location)
}

// Up returns location with its last path segment removed, or "" when no
// parent remains.
func Up(location string) string {
	i := strings.LastIndex(location, "/")
	if i < 0 {
		return ""
	}
	return location[:i]
}

// decode URL-decodes s, returning s unchanged if it is not valid encoding.
func decode(s string) string {
	d, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return d
}
