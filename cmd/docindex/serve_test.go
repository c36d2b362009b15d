package main_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/fwojciec/docindex"
	main "github.com/fwojciec/docindex/cmd/docindex"
	"github.com/stretchr/testify/assert"
)

func TestServeCmd_Run_StopsOnCancel(t *testing.T) {
	t.Parallel()

	deps, _, _ := newDeps(t, treeSource(sampleTree(), nil), feedSource(sampleFeed(), nil))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	deps.Ctx = ctx
	deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	err := (&main.ServeCmd{Addr: "127.0.0.1:0"}).Run(deps)

	assert.NoError(t, err)
}

func TestServeCmd_Run_WatchRequiresDirectory(t *testing.T) {
	t.Parallel()

	deps, _, stderr := newDeps(t, treeSource(sampleTree(), nil), nil)
	deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	err := (&main.ServeCmd{Addr: "127.0.0.1:0", Watch: true}).Run(deps)

	assert.Equal(t, docindex.EINVALID, docindex.ErrorCode(err))
	assert.Contains(t, stderr.String(), "--watch requires a site directory")
}

func TestServeCmd_Run_WatchesDirectory(t *testing.T) {
	t.Parallel()

	deps, _, _ := newDeps(t, treeSource(sampleTree(), nil), nil)
	deps.SiteDir = t.TempDir()
	deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	deps.Ctx = ctx

	err := (&main.ServeCmd{Addr: "127.0.0.1:0", Watch: true}).Run(deps)

	assert.NoError(t, err)
}
