package search

import (
	"sort"
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/sahilm/fuzzy"
)

// FilterResult is one row of a filtered result list
type FilterResult struct {
	Index          int   // Position in the unfiltered list
	MatchedIndexes []int // Rune positions in the display title (for highlighting)
}

// titleSource implements fuzzy.Source over lowercase display titles
type titleSource []string

func (s titleSource) String(i int) string { return s[i] }
func (s titleSource) Len() int            { return len(s) }

// FilterMovies fuzzy-matches query against the display titles of movies.
// An empty query returns nil, meaning "no filter". Results keep list order
// so the active sort key still applies to the filtered view.
func FilterMovies(movies []domain.MovieSummary, query string) []FilterResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	titles := make(titleSource, len(movies))
	for i, m := range movies {
		titles[i] = strings.ToLower(m.DisplayTitle())
	}

	matches := fuzzy.FindFrom(query, titles)

	results := make([]FilterResult, len(matches))
	for i, match := range matches {
		results[i] = FilterResult{Index: match.Index, MatchedIndexes: match.MatchedIndexes}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
