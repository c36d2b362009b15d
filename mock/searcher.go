package mock

import "github.com/fwojciec/docindex"

var _ docindex.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of docindex.Searcher.
type Searcher struct {
	SearchFn func(query string) []docindex.SearchResult
}

func (s *Searcher) Search(query string) []docindex.SearchResult {
	return s.SearchFn(query)
}
