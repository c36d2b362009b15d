// Package fs provides file-based access to a generated documentation site.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/etree"
	docjson "github.com/fwojciec/docindex/json"
)

// Default file names within a site directory.
const (
	TreeFile = "index.json"
	FeedFile = "feed.rss"
)

// Compile-time interface verification.
var (
	_ docindex.TreeSource = (*TreeSource)(nil)
	_ docindex.FeedSource = (*FeedSource)(nil)
)

// TreeSource reads the navigation tree from a JSON file.
type TreeSource struct {
	path string
}

// NewTreeSource creates a TreeSource reading siteDir/index.json.
func NewTreeSource(siteDir string) *TreeSource {
	return &TreeSource{path: filepath.Join(siteDir, TreeFile)}
}

// LoadTree reads and decodes the tree file.
func (s *TreeSource) LoadTree(ctx context.Context) (*docindex.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return docjson.DecodeTree(f)
}

// FeedSource reads the page feed from an RSS file.
type FeedSource struct {
	path string
}

// NewFeedSource creates a FeedSource reading siteDir/feed.rss.
func NewFeedSource(siteDir string) *FeedSource {
	return &FeedSource{path: filepath.Join(siteDir, FeedFile)}
}

// LoadFeed reads and parses the feed file.
func (s *FeedSource) LoadFeed(ctx context.Context) ([]docindex.FeedItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return etree.ParseFeed(f)
}

// open opens path, mapping a missing file to ENOTFOUND.
func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "%s not found", path)
	}
	return f, err
}
