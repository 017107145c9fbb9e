package feed

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Filter narrows entries to fuzzy matches of query, best match first. An
// empty query returns the entries unchanged.
func Filter(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)
	out := make([]Entry, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, entries[r.OriginalIndex])
	}
	return out
}
