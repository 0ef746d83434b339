// Package search provides fuzzy lookups over doa titles: the jump-to
// finder and "did you mean" suggestions for searches with no match.
package search

import (
	"sort"
	"strings"

	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/goresan/goresan/internal/domain"
)

// titleSource implements sahilm/fuzzy.Source over record titles
type titleSource []domain.Doa

func (s titleSource) String(i int) string { return s[i].Title }
func (s titleSource) Len() int            { return len(s) }

// Match is a jump-to result with the matched rune positions for highlighting
type Match struct {
	Doa            domain.Doa
	MatchedIndexes []int
	Score          int
}

// Jump ranks records by fuzzy title match (best first).
// An empty query returns no matches.
func Jump(query string, records []domain.Doa, limit int) []Match {
	query = strings.TrimSpace(query)
	if query == "" || len(records) == 0 {
		return nil
	}

	found := fuzzy.FindFrom(query, titleSource(records))
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}

	matches := make([]Match, len(found))
	for i, f := range found {
		matches[i] = Match{
			Doa:            records[f.Index],
			MatchedIndexes: f.MatchedIndexes,
			Score:          f.Score,
		}
	}
	return matches
}

// Suggest returns up to limit titles close to query, closest first.
// Used when a substring search matched nothing.
func Suggest(query string, titles []string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	ranks := fuzzysearch.RankFindNormalizedFold(query, titles)
	if len(ranks) == 0 {
		// fall back to per-word matching so "tidr bangun" still finds something
		for _, word := range strings.Fields(query) {
			ranks = append(ranks, fuzzysearch.RankFindNormalizedFold(word, titles)...)
		}
	}
	sort.Sort(ranks)

	seen := make(map[string]bool)
	var out []string
	for _, r := range ranks {
		if seen[r.Target] {
			continue
		}
		seen[r.Target] = true
		out = append(out, r.Target)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
