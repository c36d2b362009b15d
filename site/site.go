// Package site wires the navigation index, its renderer, location
// correlation and search together once the site data has loaded.
package site

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/goquery"
	"github.com/fwojciec/docindex/index"
	"github.com/fwojciec/docindex/nav"
	"github.com/fwojciec/docindex/search"
	docslog "github.com/fwojciec/docindex/slog"
	"golang.org/x/sync/errgroup"
)

// DefaultIndexID is the id of the rendered index container.
const DefaultIndexID = "index"

// Site owns the index and search features of a documentation site.
// Either feature stays unavailable if its data failed to load.
// It is safe for concurrent use after Load returns.
type Site struct {
	Trees       docindex.TreeSource
	Feeds       docindex.FeedSource
	Diagnostics docindex.DiagnosticSink

	// Logger enables search logging when set.
	Logger *slog.Logger

	// IndexID is the id of the rendered index container.
	IndexID string

	mu         sync.Mutex
	index      *index.Index
	renderer   *goquery.Renderer
	correlator *nav.Correlator
	corpus     *search.Corpus
	searcher   docindex.Searcher
}

// Load fetches the tree and the feed concurrently and builds whatever
// arrives. A failed tree load leaves the index unavailable without a
// diagnostic; a failed feed load is reported to Diagnostics and leaves
// search unavailable. Load only returns an error if ctx is done.
func (s *Site) Load(ctx context.Context) error {
	var g errgroup.Group

	if s.Trees != nil {
		g.Go(func() error {
			root, err := s.Trees.LoadTree(ctx)
			if err != nil {
				return nil
			}
			s.buildIndex(root)
			return nil
		})
	}

	if s.Feeds != nil {
		g.Go(func() error {
			items, err := s.Feeds.LoadFeed(ctx)
			if err != nil {
				if s.Diagnostics != nil {
					s.Diagnostics.Report(ctx, "feed", err)
				}
				return nil
			}
			s.buildCorpus(items)
			return nil
		})
	}

	_ = g.Wait()
	return ctx.Err()
}

func (s *Site) buildIndex(root *docindex.Node) {
	idx, err := index.Build(root, index.WithFormatter(goquery.LinkFormatter))
	if err != nil {
		return
	}

	id := s.IndexID
	if id == "" {
		id = DefaultIndexID
	}
	r := goquery.NewRenderer(idx, id)
	idx.SetBulletStyler(r.StyleBullet)
	idx.SetStyler(r.Style)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = idx
	s.renderer = r
	s.correlator = nav.NewCorrelator(idx, r)
}

func (s *Site) buildCorpus(items []docindex.FeedItem) {
	corpus := search.BuildCorpus(items)
	var searcher docindex.Searcher = corpus
	if s.Logger != nil {
		searcher = docslog.NewLoggingSearcher(corpus, s.Logger)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.corpus = corpus
	s.searcher = searcher
}

// Index returns the built index, or nil if it is unavailable.
func (s *Site) Index() *index.Index {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Corpus returns the built search corpus, or nil if it is unavailable.
func (s *Site) Corpus() *search.Corpus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.corpus
}

// Search runs query against the corpus.
// Returns EUNAVAILABLE if the feed did not load.
func (s *Site) Search(query string) ([]docindex.SearchResult, error) {
	s.mu.Lock()
	searcher := s.searcher
	s.mu.Unlock()

	if searcher == nil {
		return nil, docindex.Errorf(docindex.EUNAVAILABLE, "search is unavailable")
	}
	return searcher.Search(query), nil
}

// RenderIndex correlates the index with location and returns the rendered
// index. The output depends only on location, never on earlier calls.
// Returns EUNAVAILABLE if the tree did not load.
func (s *Site) RenderIndex(location string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.correlator == nil {
		return "", docindex.Errorf(docindex.EUNAVAILABLE, "index is unavailable")
	}
	s.renderer.Reset()
	s.correlator.OnLocationChanged(location)
	return s.renderer.HTML()
}

// Marked returns the entries marked for the last rendered location.
// Returns EUNAVAILABLE if the tree did not load.
func (s *Site) Marked() (docindex.EntrySet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.correlator == nil {
		return nil, docindex.Errorf(docindex.EUNAVAILABLE, "index is unavailable")
	}
	return s.correlator.Marked(), nil
}
