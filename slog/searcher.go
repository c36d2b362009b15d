package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

var _ docindex.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   docindex.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next docindex.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the query.
func (s *LoggingSearcher) Search(query string) (results []docindex.SearchResult) {
	defer func(begin time.Time) {
		s.logger.Debug("search",
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Search(query)
}
