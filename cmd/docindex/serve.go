package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/chi"
	"github.com/fwojciec/docindex/fs"
	"github.com/fwojciec/docindex/fsnotify"
)

// shutdownTimeout bounds how long in-flight requests may take to finish.
const shutdownTimeout = 10 * time.Second

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, cancel := context.WithCancel(deps.Ctx)
	defer cancel()

	if c.Watch {
		if err := c.watch(ctx, deps); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
			return err
		}
	}

	srv := &http.Server{
		Addr:              c.Addr,
		Handler:           chi.NewServer(deps.Site, deps.Logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		deps.Logger.Info("server starting", "addr", c.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	deps.Logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}

// watch reloads the site whenever its tree or feed file changes.
func (c *ServeCmd) watch(ctx context.Context, deps *Dependencies) error {
	if deps.SiteDir == "" {
		return docindex.Errorf(docindex.EINVALID, "--watch requires a site directory")
	}

	w, err := fsnotify.NewWatcher(deps.SiteDir, []string{fs.TreeFile, fs.FeedFile},
		fsnotify.WithOnError(func(err error) {
			deps.Logger.Warn("watch error", "error", err)
		}),
	)
	if err != nil {
		return err
	}

	go func() {
		_ = w.Run(ctx, func() {
			deps.Logger.Info("site changed, reloading", "dir", deps.SiteDir)
			_ = deps.Site.Load(ctx)
		})
	}()
	return nil
}
