package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/docindex"
	main "github.com/fwojciec/docindex/cmd/docindex"
	"github.com/fwojciec/docindex/htmltomarkdown"
	"github.com/fwojciec/docindex/mock"
	"github.com/fwojciec/docindex/site"
	"github.com/stretchr/testify/require"
)

func node(title, link string, children ...*docindex.Node) *docindex.Node {
	return &docindex.Node{
		Value:    &docindex.Value{Title: title, Link: link},
		Children: children,
	}
}

func sampleTree() *docindex.Node {
	return node("docs", "index.html",
		node("guide", "guide.html",
			node("intro", "guide.html#intro"),
		),
		node("api", "api.html"),
	)
}

func sampleFeed() []docindex.FeedItem {
	return []docindex.FeedItem{
		{Title: "Parse", Description: "function:2:0:api", GUID: "api.html#Parse"},
		{Title: "Render", Description: "function:2:1:api", GUID: "api.html#Render"},
		{Title: "intro", Description: "section:2:0:guide", GUID: "guide.html#intro"},
	}
}

func treeSource(root *docindex.Node, err error) *mock.TreeSource {
	return &mock.TreeSource{
		LoadTreeFn: func(ctx context.Context) (*docindex.Node, error) { return root, err },
	}
}

func feedSource(items []docindex.FeedItem, err error) *mock.FeedSource {
	return &mock.FeedSource{
		LoadFeedFn: func(ctx context.Context) ([]docindex.FeedItem, error) { return items, err },
	}
}

// newDeps loads a site from the given sources and returns command
// dependencies writing to fresh buffers.
func newDeps(t *testing.T, trees docindex.TreeSource, feeds docindex.FeedSource) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	s := &site.Site{Trees: trees, Feeds: feeds}
	require.NoError(t, s.Load(context.Background()))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Site:      s,
		Converter: htmltomarkdown.NewConverter(),
	}, stdout, stderr
}
