package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/fs"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	out, err := deps.Site.RenderIndex(c.Location)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	if c.Output == "" {
		fmt.Fprintln(deps.Stdout, out)
		return nil
	}

	if err := fs.WriteFile(c.Output, []byte(out)); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to write %s\n", c.Output)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Output)
	return nil
}
