package tui

import (
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/adapter"
	"github.com/mmcdole/marquee/internal/browser"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
	StateConfirmLogout
)

// MovieService is what the TUI needs from the service layer
type MovieService interface {
	domain.MovieClient
	Suggestions(prefix string) []string
}

// URLOpener opens links outside the terminal
type URLOpener interface {
	Open(url string) error
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State   ApplicationState
	Ready   bool
	Browser browser.State

	// Services
	Movies     MovieService
	SessionSvc *service.SessionService
	Opener     URLOpener
	Config     *adapter.Config

	// UI Components
	SearchBar components.SearchBar
	Results   components.ResultsList
	Detail    components.DetailPane
	SortModal components.SortModal
	Spinner   spinner.Model
	Help      help.Model

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	LoggedOut   bool

	fetches *fetchControl
	pending browser.Effect // Effect of the initial query, run by Init
}

// NewModel creates a new application model and applies the initial query
func NewModel(movies MovieService, sessionSvc *service.SessionService, opener URLOpener, cfg *adapter.Config) Model {
	if cfg == nil {
		cfg = adapter.DefaultConfig()
	}
	sortKey, err := browser.ParseSortKey(cfg.UI.DefaultSort)
	if err != nil {
		sortKey = browser.SortNone
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	m := Model{
		State:      StateBrowsing,
		Movies:     movies,
		SessionSvc: sessionSvc,
		Opener:     opener,
		Config:     cfg,
		Browser: browser.New(browser.Options{
			MinQueryLength: cfg.Search.MinQueryLength,
			DetailDebounce: cfg.Search.DetailDebounce,
			Sort:           sortKey,
		}),
		SearchBar: components.NewSearchBar(),
		Results:   components.NewResultsList(),
		Detail:    components.NewDetailPane(cfg.UI.ShowPosters),
		SortModal: components.NewSortModal(),
		Spinner:   sp,
		Help:      h,
		fetches:   newFetchControl(),
	}

	m.SearchBar.SetValue(cfg.Search.InitialQuery)
	m.SearchBar.Focus()
	m.Browser, m.pending = m.Browser.SetQuery(cfg.Search.InitialQuery)
	m.syncViews()
	return m
}

// Init starts the initial search
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.runEffect(m.pending),
		m.Spinner.Tick,
		textinput.Blink,
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		m.syncViews()
		return m, cmd

	case SearchResultMsg:
		m.Browser = m.Browser.SearchSucceeded(msg.Seq, msg.Movies)
		m.Results.SetMovies(m.Browser.Results())
		m.syncViews()
		return m, nil

	case SearchErrMsg:
		m.Browser = m.Browser.SearchFailed(msg.Seq, msg.Err)
		m.Results.SetMovies(m.Browser.Results())
		m.syncViews()
		return m, nil

	case DetailDueMsg:
		var eff browser.Effect
		m.Browser, eff = m.Browser.DetailDue(msg.Ticket)
		m.syncViews()
		return m, m.runEffect(eff)

	case DetailResultMsg:
		m.Browser = m.Browser.DetailSucceeded(msg.Seq, msg.Detail)
		m.syncViews()
		return m, nil

	case DetailErrMsg:
		m.Browser = m.Browser.DetailFailed(msg.Seq, msg.Err)
		m.syncViews()
		return m, nil

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil

	case LogoutCompleteMsg:
		if msg.Err != nil {
			m.State = StateBrowsing
			m.StatusMsg = "Logout failed: " + msg.Err.Error()
			m.StatusIsErr = true
			return m, ClearStatusCmd(3 * time.Second)
		}
		m.LoggedOut = true
		return m.quit()
	}

	// Cursor blink and other input messages
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.SearchBar, cmd, _ = m.SearchBar.Update(msg)
	cmds = append(cmds, cmd)
	m.Results, cmd = m.Results.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// setQuery applies the search bar value to the browser state
func (m Model) setQuery(value string) (Model, tea.Cmd) {
	var eff browser.Effect
	m.Browser, eff = m.Browser.SetQuery(value)
	if eff != nil {
		m.Results.SetMovies(m.Browser.Results())
	}
	if m.Movies != nil {
		m.SearchBar.SetSuggestions(m.Movies.Suggestions(value))
	}
	m.syncViews()
	return m, m.runEffect(eff)
}

// selectUnderCursor toggles selection of the movie under the list cursor
func (m Model) selectUnderCursor() (Model, tea.Cmd) {
	movie, ok := m.Results.CursorMovie()
	if !ok {
		return m, nil
	}
	var eff browser.Effect
	m.Browser, eff = m.Browser.Select(movie.ID)
	m.syncViews()
	return m, m.runEffect(eff)
}

// closeDetail clears the selection
func (m Model) closeDetail() (Model, tea.Cmd) {
	if m.Browser.SelectedID() == "" {
		return m, nil
	}
	var eff browser.Effect
	m.Browser, eff = m.Browser.Close()
	m.syncViews()
	return m, m.runEffect(eff)
}

// applySort reorders the results without refetching
func (m Model) applySort(key browser.SortKey) (Model, tea.Cmd) {
	m.Browser = m.Browser.SetSort(key)
	m.Results.SetMovies(m.Browser.Results())
	m.syncViews()
	return m, func() tea.Msg {
		return StatusMsg{Message: "Sorted by " + key.String()}
	}
}

// openLink opens the IMDb page (or poster) of the selected movie, falling back to the cursor
func (m Model) openLink(poster bool) (Model, tea.Cmd) {
	if m.Opener == nil {
		return m, nil
	}

	var movie domain.MovieSummary
	if d := m.Browser.Detail(); d != nil {
		movie = d.Summary()
	} else if s, ok := m.Browser.SelectedSummary(); ok {
		movie = s
	} else if c, ok := m.Results.CursorMovie(); ok {
		movie = c
	} else {
		return m, nil
	}

	if !poster {
		return m, OpenURLCmd(m.Opener, adapter.IMDbTitleURL(movie.ID), "Opened IMDb page")
	}
	if movie.PosterURL == "" {
		return m, func() tea.Msg {
			return StatusMsg{Message: "No poster for " + movie.Title, IsError: true}
		}
	}
	return m, OpenURLCmd(m.Opener, movie.PosterURL, "Opened poster")
}

// quit invalidates outstanding work and exits
func (m Model) quit() (Model, tea.Cmd) {
	m.Browser = m.Browser.Teardown()
	m.fetches.stopAll()
	return m, tea.Quit
}

// syncViews pushes browser state into the components
func (m *Model) syncViews() {
	frame := m.Spinner.View()

	m.Results.SetLoading(m.Browser.SearchStatus() == browser.SearchLoading, frame)
	m.Results.SetError(m.Browser.ErrorMessage())
	switch q := m.Browser.Query(); {
	case q == "":
		m.Results.SetHint(components.EmptyPrompt)
	case utf8.RuneCountInString(q) < m.Browser.MinQueryLength():
		m.Results.SetHint(components.ShortQueryHint(m.Browser.MinQueryLength()))
	default:
		m.Results.SetHint("No results")
	}
	m.Results.SetSelectedID(m.Browser.SelectedID())

	view := components.DetailView{
		Status:  m.Browser.DetailStatus(),
		Detail:  m.Browser.Detail(),
		Err:     m.Browser.DetailError(),
		Spinner: frame,
	}
	if summary, ok := m.Browser.SelectedSummary(); ok {
		view.Summary = &summary
	} else if view.Detail != nil {
		summary := view.Detail.Summary()
		view.Summary = &summary
	}
	m.Detail.SetView(view)
}
