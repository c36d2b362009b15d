package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/docindex"
	docslog "github.com/fwojciec/docindex/slog"
	"github.com/stretchr/testify/assert"
)

func TestDiagnosticSink_Report(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	docslog.NewDiagnosticSink(logger).Report(context.Background(), "feed.rss",
		docindex.Errorf(docindex.EUNAVAILABLE, "HTTP 500"))

	output := buf.String()
	assert.Contains(t, output, "level=ERROR")
	assert.Contains(t, output, "load failed")
	assert.Contains(t, output, "source=feed.rss")
	assert.Contains(t, output, "code=unavailable")
}
