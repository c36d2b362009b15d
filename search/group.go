package search

import "github.com/fwojciec/docindex"

// Group is a run of consecutive results sharing a category.
type Group struct {
	Category string
	Results  []docindex.SearchResult
}

// GroupResults splits results into groups, starting a new group whenever the
// category differs from the previous result's. Results are not reordered,
// so a category may appear in more than one group.
func GroupResults(results []docindex.SearchResult) []Group {
	var groups []Group
	for _, r := range results {
		if len(groups) == 0 || groups[len(groups)-1].Category != r.Category {
			groups = append(groups, Group{Category: r.Category})
		}
		g := &groups[len(groups)-1]
		g.Results = append(g.Results, r)
	}
	return groups
}
