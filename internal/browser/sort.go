package browser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
)

// SortKey selects how the result list is ordered
type SortKey int

const (
	SortNone     SortKey = iota // Order of the last fetch
	SortYearDesc                // Newest first
	SortYearAsc                 // Oldest first
)

// SortKeys lists every key in menu order
func SortKeys() []SortKey {
	return []SortKey{SortNone, SortYearDesc, SortYearAsc}
}

// String returns the display name for the sort key
func (k SortKey) String() string {
	switch k {
	case SortNone:
		return "Default"
	case SortYearDesc:
		return "Year (newest first)"
	case SortYearAsc:
		return "Year (oldest first)"
	default:
		return "Unknown"
	}
}

// Flag returns the command-line spelling of the key
func (k SortKey) Flag() string {
	switch k {
	case SortYearDesc:
		return "year-desc"
	case SortYearAsc:
		return "year-asc"
	default:
		return "none"
	}
}

// ParseSortKey parses the command-line / config spelling of a sort key
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "default":
		return SortNone, nil
	case "year-desc", "year", "desc":
		return SortYearDesc, nil
	case "year-asc", "asc":
		return SortYearAsc, nil
	default:
		return SortNone, fmt.Errorf("unknown sort key %q (want none, year-desc or year-asc)", s)
	}
}

// SortMovies returns a new slice ordered by key. The input is never modified.
// Ties keep their relative input order; SortNone returns the input order.
func SortMovies(movies []domain.MovieSummary, key SortKey) []domain.MovieSummary {
	out := make([]domain.MovieSummary, len(movies))
	copy(out, movies)

	switch key {
	case SortYearDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	case SortYearAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	}
	return out
}
