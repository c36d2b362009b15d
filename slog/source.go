// Package slog provides log/slog decorators for docindex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Compile-time interface verification.
var (
	_ docindex.TreeSource = (*LoggingTreeSource)(nil)
	_ docindex.FeedSource = (*LoggingFeedSource)(nil)
)

// LoggingTreeSource wraps a TreeSource with debug logging.
// Tree load failures are silent to the user, so they are logged at debug level.
type LoggingTreeSource struct {
	next   docindex.TreeSource
	logger *slog.Logger
}

// NewLoggingTreeSource creates a new LoggingTreeSource.
func NewLoggingTreeSource(next docindex.TreeSource, logger *slog.Logger) *LoggingTreeSource {
	return &LoggingTreeSource{next: next, logger: logger}
}

// LoadTree delegates to the wrapped source and logs the operation.
func (s *LoggingTreeSource) LoadTree(ctx context.Context) (root *docindex.Node, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("tree load",
			"ok", root != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadTree(ctx)
}

// LoggingFeedSource wraps a FeedSource with logging.
type LoggingFeedSource struct {
	next   docindex.FeedSource
	logger *slog.Logger
}

// NewLoggingFeedSource creates a new LoggingFeedSource.
func NewLoggingFeedSource(next docindex.FeedSource, logger *slog.Logger) *LoggingFeedSource {
	return &LoggingFeedSource{next: next, logger: logger}
}

// LoadFeed delegates to the wrapped source and logs the operation.
func (s *LoggingFeedSource) LoadFeed(ctx context.Context) (items []docindex.FeedItem, err error) {
	defer func(begin time.Time) {
		s.logger.Info("feed load",
			"count", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadFeed(ctx)
}
