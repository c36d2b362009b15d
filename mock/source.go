package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

// Compile-time interface verification.
var (
	_ docindex.TreeSource     = (*TreeSource)(nil)
	_ docindex.FeedSource     = (*FeedSource)(nil)
	_ docindex.DiagnosticSink = (*DiagnosticSink)(nil)
)

// TreeSource is a mock implementation of docindex.TreeSource.
type TreeSource struct {
	LoadTreeFn func(ctx context.Context) (*docindex.Node, error)
}

func (s *TreeSource) LoadTree(ctx context.Context) (*docindex.Node, error) {
	return s.LoadTreeFn(ctx)
}

// FeedSource is a mock implementation of docindex.FeedSource.
type FeedSource struct {
	LoadFeedFn func(ctx context.Context) ([]docindex.FeedItem, error)
}

func (s *FeedSource) LoadFeed(ctx context.Context) ([]docindex.FeedItem, error) {
	return s.LoadFeedFn(ctx)
}

// DiagnosticSink is a mock implementation of docindex.DiagnosticSink.
type DiagnosticSink struct {
	ReportFn func(ctx context.Context, source string, err error)
}

func (s *DiagnosticSink) Report(ctx context.Context, source string, err error) {
	s.ReportFn(ctx, source, err)
}
