package mock

import "github.com/fwojciec/docindex"

var _ docindex.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docindex.Renderer.
type Renderer struct {
	MarkFn   func(e *docindex.Entry)
	UnmarkFn func(e *docindex.Entry)
	RevealFn func(e *docindex.Entry)
}

func (r *Renderer) Mark(e *docindex.Entry) {
	r.MarkFn(e)
}

func (r *Renderer) Unmark(e *docindex.Entry) {
	r.UnmarkFn(e)
}

func (r *Renderer) Reveal(e *docindex.Entry) {
	r.RevealFn(e)
}
