package http

import (
	"bytes"
	"context"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/etree"
	docjson "github.com/fwojciec/docindex/json"
)

// Compile-time interface verification.
var (
	_ docindex.TreeSource = (*TreeSource)(nil)
	_ docindex.FeedSource = (*FeedSource)(nil)
)

// TreeSource loads the navigation tree from a JSON document over HTTP.
type TreeSource struct {
	fetcher *Fetcher
	url     string
}

// NewTreeSource creates a TreeSource reading from url.
// If fetcher is nil, a Fetcher with default options is used.
func NewTreeSource(fetcher *Fetcher, url string) *TreeSource {
	if fetcher == nil {
		fetcher = NewFetcher()
	}
	return &TreeSource{fetcher: fetcher, url: url}
}

// LoadTree fetches and decodes the tree.
func (s *TreeSource) LoadTree(ctx context.Context) (*docindex.Node, error) {
	body, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, err
	}
	return docjson.UnmarshalTree(body)
}

// FeedSource loads the page feed from an RSS document over HTTP.
type FeedSource struct {
	fetcher *Fetcher
	url     string
}

// NewFeedSource creates a FeedSource reading from url.
// If fetcher is nil, a Fetcher with default options is used.
func NewFeedSource(fetcher *Fetcher, url string) *FeedSource {
	if fetcher == nil {
		fetcher = NewFetcher()
	}
	return &FeedSource{fetcher: fetcher, url: url}
}

// LoadFeed fetches and parses the feed.
func (s *FeedSource) LoadFeed(ctx context.Context) ([]docindex.FeedItem, error) {
	body, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, err
	}
	return etree.ParseFeed(bytes.NewReader(body))
}
