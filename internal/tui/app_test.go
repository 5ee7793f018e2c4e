package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/adapter"
	"github.com/mmcdole/marquee/internal/browser"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMovies struct {
	mu        sync.Mutex
	searches  []string
	details   []string
	results   map[string][]domain.MovieSummary
	searchErr error
}

func (f *fakeMovies) Search(_ context.Context, query string) ([]domain.MovieSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, query)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if r, ok := f.results[query]; ok {
		return r, nil
	}
	return nil, domain.ErrNoResults
}

func (f *fakeMovies) Detail(_ context.Context, id string) (*domain.MovieDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.details = append(f.details, id)
	return &domain.MovieDetail{
		ID:         id,
		Title:      "Title " + id,
		YearLabel:  "2000",
		Runtime:    "90 min",
		Actors:     "Anna Faris",
		Director:   "Keenen Ivory Wayans",
		IMDbRating: "6.2",
	}, nil
}

func (f *fakeMovies) Suggestions(string) []string { return nil }

func (f *fakeMovies) detailCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.details...)
}

func (f *fakeMovies) searchCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searches...)
}

type recordingOpener struct {
	urls []string
}

func (o *recordingOpener) Open(url string) error {
	o.urls = append(o.urls, url)
	return nil
}

func newFakeMovies() *fakeMovies {
	return &fakeMovies{results: map[string][]domain.MovieSummary{
		"movie": {
			{ID: "tt1", Title: "Scary Movie", Year: 2000, YearLabel: "2000"},
			{ID: "tt2", Title: "Movie 43", Year: 2013, YearLabel: "2013"},
			{ID: "tt3", Title: "The Movie", Year: 1990, YearLabel: "1990"},
		},
	}}
}

func newTestModel(t *testing.T, svc *fakeMovies) Model {
	t.Helper()
	cfg := adapter.DefaultConfig()
	cfg.Search.DetailDebounce = time.Millisecond
	m := NewModel(svc, nil, &recordingOpener{}, cfg)
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// exec runs cmd (and any batched children) and returns the produced messages
func exec(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, exec(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// deliver feeds every message of the given types produced by cmd back into m
func deliver(m Model, cmd tea.Cmd) Model {
	for _, msg := range exec(cmd) {
		switch msg.(type) {
		case SearchResultMsg, SearchErrMsg, DetailDueMsg, DetailResultMsg, DetailErrMsg:
			var next tea.Cmd
			m, next = update(m, msg)
			m = deliver(m, next)
		}
	}
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ready returns a model with the initial results loaded and the list focused
func ready(t *testing.T, svc *fakeMovies) Model {
	t.Helper()
	m := newTestModel(t, svc)
	m = deliver(m, m.Init())
	require.Equal(t, browser.SearchSuccess, m.Browser.SearchStatus())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Results.IsFocused())
	return m
}

func TestModel_InitialQuerySearches(t *testing.T) {
	svc := newFakeMovies()
	m := newTestModel(t, svc)
	assert.Equal(t, "movie", m.SearchBar.Value())
	assert.Equal(t, browser.SearchLoading, m.Browser.SearchStatus())

	m = deliver(m, m.Init())
	assert.Equal(t, []string{"movie"}, svc.searchCalls())
	assert.Equal(t, 3, m.Results.ItemCount())

	view := m.View()
	assert.Contains(t, view, "Found 3 results")
	assert.Contains(t, view, "Scary Movie (2000)")
	assert.Contains(t, view, components.NoSelection)
}

func TestModel_SearchErrorShownInPlaceOfResults(t *testing.T) {
	svc := newFakeMovies()
	svc.searchErr = domain.ErrNoResults
	m := newTestModel(t, svc)
	m = deliver(m, m.Init())

	assert.Equal(t, browser.SearchError, m.Browser.SearchStatus())
	assert.Equal(t, 0, m.Results.ItemCount())
	assert.Contains(t, m.View(), "No movies found with name movie")
}

func TestModel_ShortQueryClearsWithoutFetching(t *testing.T) {
	svc := newFakeMovies()
	m := newTestModel(t, svc)
	m = deliver(m, m.Init())

	var pending []tea.Cmd
	for i := 0; i < 3; i++ { // "movie" -> "mo"
		var cmd tea.Cmd
		m, cmd = update(m, tea.KeyMsg{Type: tea.KeyBackspace})
		pending = append(pending, cmd)
	}
	assert.Equal(t, "mo", m.Browser.Query())
	assert.Equal(t, browser.SearchIdle, m.Browser.SearchStatus())
	assert.Equal(t, 0, m.Results.ItemCount())

	// Responses for "movi" and "mov" arrive late and are discarded
	for _, cmd := range pending {
		m = deliver(m, cmd)
	}
	assert.Equal(t, browser.SearchIdle, m.Browser.SearchStatus())
	assert.Equal(t, 0, m.Results.ItemCount())
	view := m.View()
	assert.Contains(t, view, components.ShortQueryHint(3))
	assert.NotContains(t, view, components.EmptyPrompt)
}

func TestModel_EmptyQueryShowsPrompt(t *testing.T) {
	svc := newFakeMovies()
	m := newTestModel(t, svc)
	m = deliver(m, m.Init())

	for i := 0; i < len("movie"); i++ {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	assert.Equal(t, "", m.Browser.Query())

	view := m.View()
	assert.Contains(t, view, components.EmptyPrompt)
	assert.NotContains(t, view, components.ShortQueryHint(3))
}

func TestModel_SelectLoadsDetailAfterDebounce(t *testing.T) {
	svc := newFakeMovies()
	m := ready(t, svc)

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "tt1", m.Browser.SelectedID())
	assert.Equal(t, browser.DetailPending, m.Browser.DetailStatus())
	assert.Empty(t, svc.detailCalls(), "no fetch before the delay elapses")

	m = deliver(m, cmd)
	assert.Equal(t, []string{"tt1"}, svc.detailCalls())
	assert.Equal(t, browser.DetailReady, m.Browser.DetailStatus())

	content := m.Detail.Content()
	assert.Contains(t, content, "Title tt1 (2000)")
	assert.Contains(t, content, "★ 6.2")
	assert.Contains(t, content, "Starring")
	assert.Contains(t, content, "Directed by")
}

func TestModel_RapidSelectionFetchesOnlyLast(t *testing.T) {
	svc := newFakeMovies()
	m := ready(t, svc)

	m, first := update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(m, keyRunes("j"))
	m, second := update(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "tt2", m.Browser.SelectedID())

	m = deliver(m, first)
	m = deliver(m, second)
	assert.Equal(t, []string{"tt2"}, svc.detailCalls())
	assert.Equal(t, "tt2", m.Browser.Detail().ID)
}

func TestModel_SelectThenDeselectFetchesNothing(t *testing.T) {
	svc := newFakeMovies()
	m := ready(t, svc)

	m, first := update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "", m.Browser.SelectedID())

	m = deliver(m, first)
	assert.Empty(t, svc.detailCalls())
	assert.Contains(t, m.Detail.Content(), components.NoSelection)
}

func TestModel_CloseClearsSelection(t *testing.T) {
	svc := newFakeMovies()
	m := ready(t, svc)

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = deliver(m, cmd)
	require.Equal(t, browser.DetailReady, m.Browser.DetailStatus())

	m, _ = update(m, keyRunes("x"))
	assert.Equal(t, "", m.Browser.SelectedID())
	assert.Equal(t, browser.DetailIdle, m.Browser.DetailStatus())
}

func TestModel_SortReordersWithoutRefetch(t *testing.T) {
	svc := newFakeMovies()
	m := ready(t, svc)

	m, _ = update(m, keyRunes("s"))
	require.True(t, m.SortModal.IsVisible())
	m, _ = update(m, keyRunes("j"))
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.SortModal.IsVisible())
	assert.Equal(t, browser.SortYearDesc, m.Browser.SortKey())

	ids := make([]string, 0, 3)
	for _, mv := range m.Browser.Results() {
		ids = append(ids, mv.ID)
	}
	assert.Equal(t, []string{"tt2", "tt1", "tt3"}, ids)
	assert.Equal(t, []string{"movie"}, svc.searchCalls())

	// Cursor follows the movie it was on
	cur, ok := m.Results.CursorMovie()
	require.True(t, ok)
	assert.Equal(t, "tt1", cur.ID)
}

func TestModel_FilterNarrowsList(t *testing.T) {
	svc := newFakeMovies()
	m := ready(t, svc)

	m, _ = update(m, keyRunes("/"))
	require.True(t, m.Results.IsFilterTyping())
	for _, r := range "sca" {
		m, _ = update(m, keyRunes(string(r)))
	}
	assert.Equal(t, 1, m.Results.ItemCount())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Results.IsFiltering())
	assert.Equal(t, 3, m.Results.ItemCount())
	assert.Equal(t, []string{"movie"}, svc.searchCalls(), "filtering never refetches")
}

func TestModel_QuitCancelsOutstandingWork(t *testing.T) {
	svc := newFakeMovies()
	m := ready(t, svc)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(m, keyRunes("q"))

	msgs := exec(cmd)
	require.Len(t, msgs, 1)
	assert.IsType(t, tea.QuitMsg{}, msgs[0])
	assert.Error(t, m.fetches.root.Err())
}

func TestModel_OpenIMDbPage(t *testing.T) {
	svc := newFakeMovies()
	m := ready(t, svc)

	m, _ = update(m, keyRunes("j"))
	_, cmd := update(m, keyRunes("o"))
	msgs := exec(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, StatusMsg{Message: "Opened IMDb page"}, msgs[0])
	assert.Equal(t, []string{"https://www.imdb.com/title/tt2/"}, m.Opener.(*recordingOpener).urls)
}

func TestModel_OpenPosterWithoutPoster(t *testing.T) {
	svc := newFakeMovies()
	m := ready(t, svc)

	_, cmd := update(m, keyRunes("p"))
	msgs := exec(cmd)
	require.Len(t, msgs, 1)
	status, ok := msgs[0].(StatusMsg)
	require.True(t, ok)
	assert.True(t, status.IsError)
	assert.Empty(t, m.Opener.(*recordingOpener).urls)
}
