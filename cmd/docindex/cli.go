package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/site"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Site      *site.Site
	SiteDir   string // empty unless the site is a local directory
	Converter docindex.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Site    string        `short:"s" env:"DOCINDEX_SITE" default:"." help:"Site root directory or http(s) URL"`
	Timeout time.Duration `default:"10s" help:"Timeout for HTTP site requests"`
	Verbose bool          `short:"v" help:"Enable debug logging"`

	Search SearchCmd `cmd:"" help:"Search the site's pages and symbols"`
	Tree   TreeCmd   `cmd:"" help:"Show the navigation index"`
	Render RenderCmd `cmd:"" help:"Render the navigation index as HTML"`
	Serve  ServeCmd  `cmd:"" help:"Serve the search and index API"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query, optionally prefixed with <category>:"`
}

// TreeCmd is the "tree" subcommand.
type TreeCmd struct {
	Location string `short:"l" help:"Page location to highlight in the index"`
	JSON     bool   `help:"Print the tree as JSON"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	Location string `short:"l" help:"Page location to highlight in the index"`
	Output   string `short:"o" type:"path" help:"Write HTML to file instead of stdout"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr  string `env:"DOCINDEX_ADDR" default:":8080" help:"Listen address"`
	Watch bool   `short:"w" help:"Reload when the site directory changes"`
}

// markdown converts label markup for terminal output. The markup is returned
// unchanged if it cannot be converted.
func markdown(c docindex.Converter, label string) string {
	md, err := c.Convert(label)
	if err != nil {
		return label
	}
	return md
}
