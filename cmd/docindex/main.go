package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/fs"
	"github.com/fwojciec/docindex/htmltomarkdown"
	dochttp "github.com/fwojciec/docindex/http"
	"github.com/fwojciec/docindex/site"
	docslog "github.com/fwojciec/docindex/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Sources for end-to-end testing. When nil, sources are chosen from
	// the --site flag.
	Trees docindex.TreeSource
	Feeds docindex.FeedSource
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docindex"),
		kong.Description("Browse and search a documentation site's index."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docindex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	trees, feeds, err := m.sources(cli)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: --site must be a directory or an http(s) URL")
		return err
	}

	s := &site.Site{
		Trees:       docslog.NewLoggingTreeSource(trees, logger),
		Feeds:       docslog.NewLoggingFeedSource(feeds, logger),
		Diagnostics: docslog.NewDiagnosticSink(logger),
		Logger:      logger,
	}
	if err := s.Load(ctx); err != nil {
		return err
	}

	deps.Logger = logger
	deps.Site = s
	if m.Trees == nil && !isURL(cli.Site) {
		deps.SiteDir = cli.Site
	}
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}

// sources selects the tree and feed sources for the configured site root.
func (m *Main) sources(cli *CLI) (docindex.TreeSource, docindex.FeedSource, error) {
	if m.Trees != nil && m.Feeds != nil {
		return m.Trees, m.Feeds, nil
	}

	if !isURL(cli.Site) {
		info, err := os.Stat(cli.Site)
		if err != nil {
			return nil, nil, docindex.Errorf(docindex.ENOTFOUND, "site %q not found", cli.Site)
		}
		if !info.IsDir() {
			return nil, nil, docindex.Errorf(docindex.EINVALID, "site %q is not a directory", cli.Site)
		}
		return fs.NewTreeSource(cli.Site), fs.NewFeedSource(cli.Site), nil
	}

	treeURL, err := url.JoinPath(cli.Site, fs.TreeFile)
	if err != nil {
		return nil, nil, docindex.Errorf(docindex.EINVALID, "invalid site URL %q", cli.Site)
	}
	feedURL, err := url.JoinPath(cli.Site, fs.FeedFile)
	if err != nil {
		return nil, nil, docindex.Errorf(docindex.EINVALID, "invalid site URL %q", cli.Site)
	}

	fetcher := dochttp.NewFetcher(dochttp.WithTimeout(cli.Timeout))
	return dochttp.NewTreeSource(fetcher, treeURL), dochttp.NewFeedSource(fetcher, feedURL), nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
