package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/search"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Site.Search(c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Query)
		return nil
	}

	for i, g := range search.GroupResults(results) {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "%s (%d)\n", g.Category, len(g.Results))
		for _, r := range g.Results {
			fmt.Fprintf(deps.Stdout, "  %s  %s\n", markdown(deps.Converter, r.Label), r.Link)
		}
	}

	return nil
}
