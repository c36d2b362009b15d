package search

import (
	"regexp"
	"strings"

	"github.com/fwojciec/docindex"
)

// categoryPrefixRe matches queries of the form "<category>:<term>".
var categoryPrefixRe = regexp.MustCompile(`^([A-Za-z0-9]+):(.*)`)

// markupRe matches tags and character entities, which highlighting skips.
var markupRe = regexp.MustCompile(`<[^<>]*>|&[^&;\s]+;`)

// Search returns the records matching query, in corpus order.
//
// A query "<category>:<term>" restricts the search to records whose category
// equals the lowercased prefix; the comparison against the stored category is
// case-sensitive. The term is matched case-insensitively as a literal
// substring of the label, and an empty term matches every record.
func (c *Corpus) Search(query string) []docindex.SearchResult {
	records := c.records
	term := query
	if m := categoryPrefixRe.FindStringSubmatch(query); m != nil {
		category := strings.ToLower(m[1])
		term = m[2]
		records = filterCategory(records, category)
	}

	matcher := compileTerm(term)

	results := []docindex.SearchResult{}
	for _, r := range records {
		if r.Label == "" {
			continue
		}
		if term != "" && !matcher.MatchString(r.Label) {
			continue
		}
		link := r.Link
		if link == "" {
			link = "#"
		}
		results = append(results, docindex.SearchResult{
			Label:    highlight(r.Label, matcher),
			Value:    r.Label,
			Category: r.Category,
			Link:     link,
		})
	}
	return results
}

func filterCategory(records []docindex.SearchRecord, category string) []docindex.SearchRecord {
	var out []docindex.SearchRecord
	for _, r := range records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// compileTerm returns a case-insensitive literal matcher for term, or nil
// for an empty term. Invalid UTF-8 is replaced with U+FFFD so compilation
// cannot fail.
func compileTerm(term string) *regexp.Regexp {
	if term == "" {
		return nil
	}
	term = strings.ToValidUTF8(term, "\uFFFD")
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))
}

// Highlight wraps every case-insensitive, non-overlapping occurrence of term
// in label with <b></b>. Occurrences inside tags or character entities are
// left alone.
func Highlight(label, term string) string {
	return highlight(label, compileTerm(term))
}

func highlight(label string, matcher *regexp.Regexp) string {
	if matcher == nil {
		return label
	}

	var b strings.Builder
	last := 0
	for _, loc := range markupRe.FindAllStringIndex(label, -1) {
		b.WriteString(emphasize(label[last:loc[0]], matcher))
		b.WriteString(label[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(emphasize(label[last:], matcher))
	return b.String()
}

func emphasize(text string, matcher *regexp.Regexp) string {
	return matcher.ReplaceAllStringFunc(text, func(s string) string {
		return "<b>" + s + "</b>"
	})
}
