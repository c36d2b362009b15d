package docindex

import "context"

// DefaultCategory is the category assigned to feed items without one.
const DefaultCategory = "Others"

// FeedItem is a flat record from the page feed.
// Description encodes "category:level:index:path".
type FeedItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GUID        string `json:"guid"`
}

// SearchRecord is an entry of the search corpus.
type SearchRecord struct {
	// Label is "path:title"; it is what queries match against.
	Label    string `json:"label"`
	Path     string `json:"path"`
	Category string `json:"category"`
	ID       string `json:"id"`
	Link     string `json:"link"`
}

// SearchResult is a display-ready search match.
type SearchResult struct {
	// Label is the record label with matches wrapped in emphasis markup.
	Label    string `json:"label"`
	Value    string `json:"value"`
	Category string `json:"category"`
	Link     string `json:"link"`
}

// Searcher answers free-text queries over a search corpus.
type Searcher interface {
	// Search returns matches in corpus order. An empty query matches all.
	Search(query string) []SearchResult
}

// TreeSource loads the navigation tree.
type TreeSource interface {
	LoadTree(ctx context.Context) (*Node, error)
}

// FeedSource loads the page feed.
type FeedSource interface {
	LoadFeed(ctx context.Context) ([]FeedItem, error)
}

// DiagnosticSink receives load failures that should be surfaced to the user.
type DiagnosticSink interface {
	Report(ctx context.Context, source string, err error)
}
