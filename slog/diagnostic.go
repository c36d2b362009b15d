package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/docindex"
)

var _ docindex.DiagnosticSink = (*DiagnosticSink)(nil)

// DiagnosticSink reports load failures as error records.
type DiagnosticSink struct {
	logger *slog.Logger
}

// NewDiagnosticSink creates a new DiagnosticSink.
func NewDiagnosticSink(logger *slog.Logger) *DiagnosticSink {
	return &DiagnosticSink{logger: logger}
}

// Report logs err for the named source.
func (s *DiagnosticSink) Report(ctx context.Context, source string, err error) {
	s.logger.ErrorContext(ctx, "load failed",
		"source", source,
		"code", docindex.ErrorCode(err),
		"err", err,
	)
}
