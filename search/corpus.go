// Package search builds a categorized search corpus from the page feed and
// answers prefix-filtered, highlighted substring queries over it.
package search

import (
	"sort"
	"strings"

	"github.com/fwojciec/docindex"
)

// Description is the parsed form of a feed item description,
// "category:level:index:path". Missing trailing fields are empty.
type Description struct {
	Category string
	Level    string
	Index    string
	Path     string
}

// ParseDescription splits a feed item description into its fields.
// The category defaults to docindex.DefaultCategory.
func ParseDescription(desc string) Description {
	fields := strings.Split(desc, ":")
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	d := Description{
		Category: field(0),
		Level:    field(1),
		Index:    field(2),
		Path:     field(3),
	}
	if d.Category == "" {
		d.Category = docindex.DefaultCategory
	}
	return d
}

// Ensure Corpus implements docindex.Searcher at compile time.
var _ docindex.Searcher = (*Corpus)(nil)

// Corpus is the sorted, query-independent list of search records.
// It is immutable once built.
type Corpus struct {
	records []docindex.SearchRecord
}

// BuildCorpus derives one record per feed item and sorts the records by
// path, then category, both compared case-insensitively. Items from the same
// page therefore stay together.
func BuildCorpus(items []docindex.FeedItem) *Corpus {
	records := make([]docindex.SearchRecord, 0, len(items))
	for _, item := range items {
		d := ParseDescription(item.Description)
		records = append(records, docindex.SearchRecord{
			Label:    d.Path + ":" + item.Title,
			Path:     d.Path,
			Category: d.Category,
			ID:       item.Title,
			Link:     item.GUID,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		pi, pj := strings.ToLower(records[i].Path), strings.ToLower(records[j].Path)
		if pi != pj {
			return pi < pj
		}
		return strings.ToLower(records[i].Category) < strings.ToLower(records[j].Category)
	})

	return &Corpus{records: records}
}

// Records returns the records in corpus order.
func (c *Corpus) Records() []docindex.SearchRecord {
	out := make([]docindex.SearchRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records.
func (c *Corpus) Len() int {
	return len(c.records)
}
