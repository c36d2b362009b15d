package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/json"
	"github.com/fwojciec/docindex/nav"
)

// Run executes the tree command.
func (c *TreeCmd) Run(deps *Dependencies) error {
	idx := deps.Site.Index()
	if idx == nil {
		err := docindex.Errorf(docindex.EUNAVAILABLE, "index is unavailable")
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return json.EncodeTree(deps.Stdout, idx.Root().Node)
	}

	if _, err := deps.Site.RenderIndex(c.Location); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}
	marked, err := deps.Site.Marked()
	if err != nil {
		return err
	}

	if up := nav.Up(c.Location); up != "" {
		fmt.Fprintf(deps.Stdout, "Up: %s\n", up)
	}
	for _, e := range idx.Entries() {
		marker := " "
		if marked.Has(e.ID) {
			marker = ">"
		}
		fmt.Fprintf(deps.Stdout, "%s %s%s\n", marker, strings.Repeat("  ", e.Depth), markdown(deps.Converter, e.Display))
	}

	return nil
}
