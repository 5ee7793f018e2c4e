// Package browser holds the search/selection/sort state machine.
//
// State is a plain value. Every user action or fetch outcome is applied by a
// transition method that returns the next State plus, at most, one Effect
// describing I/O the caller must perform. Fetch outcomes carry the sequence
// number of the request that produced them; outcomes for superseded requests
// are ignored, so the last request always wins.
package browser

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mmcdole/marquee/internal/debounce"
	"github.com/mmcdole/marquee/internal/domain"
)

// DefaultMinQueryLength is the shortest query that reaches the network
const DefaultMinQueryLength = 3

// SearchStatus is the state of the search fetcher
type SearchStatus int

const (
	SearchIdle SearchStatus = iota
	SearchLoading
	SearchSuccess
	SearchError
)

// DetailStatus is the state of the detail fetcher
type DetailStatus int

const (
	DetailIdle    DetailStatus = iota // Nothing selected
	DetailPending                     // Selected, waiting out the debounce delay
	DetailLoading
	DetailReady
	DetailError
)

// Options configures a new State
type Options struct {
	MinQueryLength int
	DetailDebounce time.Duration
	Sort           SortKey
}

// State is the complete browser state
type State struct {
	minQueryLength int

	// Search
	query        string
	searchSeq    uint64
	searchStatus SearchStatus
	fetched      []domain.MovieSummary // Fetch order, source for SortNone
	results      []domain.MovieSummary // Displayed order
	errMsg       string
	sortKey      SortKey

	// Selection / detail
	selectedID   string
	debouncer    debounce.Debouncer
	detailSeq    uint64
	detailStatus DetailStatus
	detail       *domain.MovieDetail
	detailErr    string
}

// New creates an empty browser state
func New(opts Options) State {
	if opts.MinQueryLength <= 0 {
		opts.MinQueryLength = DefaultMinQueryLength
	}
	return State{
		minQueryLength: opts.MinQueryLength,
		sortKey:        opts.Sort,
		debouncer:      debounce.New(opts.DetailDebounce),
	}
}

// === Search ===

// SetQuery applies a new query value. Queries shorter than the minimum
// length clear the results without touching the network.
func (s State) SetQuery(raw string) (State, Effect) {
	q := strings.TrimSpace(raw)
	if q == s.query {
		return s, nil
	}

	s.query = q
	s.searchSeq++
	s.errMsg = ""

	if utf8.RuneCountInString(q) < s.minQueryLength {
		s.searchStatus = SearchIdle
		s.fetched = nil
		s.results = nil
		return s, CancelSearch{}
	}

	s.searchStatus = SearchLoading
	return s, FetchSearch{Seq: s.searchSeq, Query: q}
}

// SearchSucceeded applies the result of the search request seq
func (s State) SearchSucceeded(seq uint64, movies []domain.MovieSummary) State {
	if seq != s.searchSeq || s.searchStatus != SearchLoading {
		return s
	}
	s.fetched = movies
	s.results = SortMovies(movies, s.sortKey)
	s.searchStatus = SearchSuccess
	s.errMsg = ""
	return s
}

// SearchFailed applies the failure of the search request seq.
// The result list is cleared.
func (s State) SearchFailed(seq uint64, err error) State {
	if seq != s.searchSeq || s.searchStatus != SearchLoading {
		return s
	}
	s.fetched = nil
	s.results = nil
	s.searchStatus = SearchError
	s.errMsg = SearchErrorMessage(s.query, err)
	return s
}

// SetSort reorders the current results. It never refetches.
func (s State) SetSort(key SortKey) State {
	s.sortKey = key
	s.results = SortMovies(s.fetched, key)
	return s
}

// === Selection ===

// Select toggles selection of id: selecting the current id clears it,
// anything else replaces it and schedules a debounced detail fetch.
func (s State) Select(id string) (State, Effect) {
	if id == "" {
		return s, nil
	}
	if id == s.selectedID {
		return s.Close()
	}

	s.selectedID = id
	s.detailSeq++
	s.detail = nil
	s.detailErr = ""
	s.detailStatus = DetailPending
	ticket := s.debouncer.Schedule(id)
	return s, ScheduleDetail{Ticket: ticket}
}

// Close clears the selection unconditionally
func (s State) Close() (State, Effect) {
	s.selectedID = ""
	s.debouncer.Cancel()
	s.detailSeq++
	s.detail = nil
	s.detailErr = ""
	s.detailStatus = DetailIdle
	return s, CancelDetail{}
}

// DetailDue is called when a scheduled ticket's delay has elapsed.
// Only the live ticket for the current selection starts a fetch.
func (s State) DetailDue(t debounce.Ticket) (State, Effect) {
	if t.Key != s.selectedID || !s.debouncer.Fire(t) {
		return s, nil
	}
	s.detailSeq++
	s.detailStatus = DetailLoading
	return s, FetchDetail{Seq: s.detailSeq, ID: t.Key}
}

// DetailSucceeded applies the result of the detail request seq
func (s State) DetailSucceeded(seq uint64, detail *domain.MovieDetail) State {
	if seq != s.detailSeq || s.detailStatus != DetailLoading {
		return s
	}
	s.detail = detail
	s.detailErr = ""
	s.detailStatus = DetailReady
	return s
}

// DetailFailed applies the failure of the detail request seq
func (s State) DetailFailed(seq uint64, err error) State {
	if seq != s.detailSeq || s.detailStatus != DetailLoading {
		return s
	}
	s.detail = nil
	s.detailErr = DetailErrorMessage(err)
	s.detailStatus = DetailError
	return s
}

// Teardown invalidates every outstanding request and ticket
func (s State) Teardown() State {
	s.searchSeq++
	s.detailSeq++
	s.debouncer.Cancel()
	if s.searchStatus == SearchLoading {
		s.searchStatus = SearchIdle
	}
	return s
}

// === Queries ===

// Query returns the normalized current query
func (s State) Query() string { return s.query }

// MinQueryLength returns the query length gate
func (s State) MinQueryLength() int { return s.minQueryLength }

// SearchStatus returns the search fetcher state
func (s State) SearchStatus() SearchStatus { return s.searchStatus }

// Results returns the displayed result list. Callers must not modify it.
func (s State) Results() []domain.MovieSummary { return s.results }

// ErrorMessage returns the user-facing search error, empty when none
func (s State) ErrorMessage() string { return s.errMsg }

// SortKey returns the active sort key
func (s State) SortKey() SortKey { return s.sortKey }

// SelectedID returns the selected identifier, empty when nothing is selected
func (s State) SelectedID() string { return s.selectedID }

// DetailStatus returns the detail fetcher state
func (s State) DetailStatus() DetailStatus { return s.detailStatus }

// Detail returns the loaded detail record, nil unless DetailReady
func (s State) Detail() *domain.MovieDetail { return s.detail }

// DetailError returns the user-facing detail error, empty when none
func (s State) DetailError() string { return s.detailErr }

// SelectedSummary returns the result entry for the current selection
func (s State) SelectedSummary() (domain.MovieSummary, bool) {
	if s.selectedID == "" {
		return domain.MovieSummary{}, false
	}
	for _, m := range s.results {
		if m.ID == s.selectedID {
			return m, true
		}
	}
	return domain.MovieSummary{}, false
}

// === Error messages ===

// SearchErrorMessage maps a search failure to the text shown in place of the results
func SearchErrorMessage(query string, err error) string {
	switch {
	case errors.Is(err, domain.ErrNoResults):
		return fmt.Sprintf("No movies found with name %s", query)
	case errors.Is(err, domain.ErrAuthFailed):
		return "Invalid OMDb API key"
	case errors.Is(err, domain.ErrUnexpectedStatus), errors.Is(err, domain.ErrServerOffline):
		return "Something went wrong"
	case err == nil:
		return "Something went wrong"
	default:
		return err.Error()
	}
}

// DetailErrorMessage maps a detail failure to the text shown in the detail pane
func DetailErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrMovieNotFound):
		return "Movie not found"
	case errors.Is(err, domain.ErrAuthFailed):
		return "Invalid OMDb API key"
	case errors.Is(err, domain.ErrUnexpectedStatus), errors.Is(err, domain.ErrServerOffline):
		return "Something went wrong"
	case err == nil:
		return "Something went wrong"
	default:
		return err.Error()
	}
}
