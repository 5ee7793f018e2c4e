package tui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/adapter"
	"github.com/mmcdole/marquee/internal/browser"
	"github.com/mmcdole/marquee/internal/debounce"
	"github.com/mmcdole/marquee/internal/service"
)

// Command factories for async operations

// SearchCmd runs search request seq
func SearchCmd(ctx context.Context, svc MovieService, seq uint64, query string) tea.Cmd {
	return func() tea.Msg {
		movies, err := svc.Search(ctx, query)
		if err != nil {
			return SearchErrMsg{Seq: seq, Query: query, Err: err}
		}
		return SearchResultMsg{Seq: seq, Query: query, Movies: movies}
	}
}

// DetailCmd runs detail request seq
func DetailCmd(ctx context.Context, svc MovieService, seq uint64, id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := svc.Detail(ctx, id)
		if err != nil {
			return DetailErrMsg{Seq: seq, Err: err}
		}
		return DetailResultMsg{Seq: seq, Detail: detail}
	}
}

// DetailDueCmd delivers ticket back to the model once its delay has elapsed
func DetailDueCmd(ticket debounce.Ticket) tea.Cmd {
	return tea.Tick(ticket.Delay, func(time.Time) tea.Msg {
		return DetailDueMsg{Ticket: ticket}
	})
}

// ClearStatusCmd returns a command that clears the status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// OpenURLCmd opens url and reports the outcome in the footer
func OpenURLCmd(opener URLOpener, url, done string) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(url); err != nil {
			return StatusMsg{Message: err.Error(), IsError: true}
		}
		return StatusMsg{Message: done}
	}
}

// LogoutCmd clears the stored API key
func LogoutCmd(svc *service.SessionService, cfg *adapter.Config) tea.Cmd {
	return func() tea.Msg {
		return LogoutCompleteMsg{Err: svc.Logout(cfg)}
	}
}

// fetchControl owns the cancellation handles of in-flight requests.
// It is shared by every copy of the Model.
type fetchControl struct {
	mu     sync.Mutex
	root   context.Context
	stop   context.CancelFunc
	search context.CancelFunc
	detail context.CancelFunc
}

func newFetchControl() *fetchControl {
	root, stop := context.WithCancel(context.Background())
	return &fetchControl{root: root, stop: stop}
}

// startSearch cancels the previous search and returns the context for the next one
func (f *fetchControl) startSearch() context.Context {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.search != nil {
		f.search()
	}
	ctx, cancel := context.WithCancel(f.root)
	f.search = cancel
	return ctx
}

func (f *fetchControl) cancelSearch() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.search != nil {
		f.search()
		f.search = nil
	}
}

// startDetail cancels the previous detail fetch and returns the context for the next one
func (f *fetchControl) startDetail() context.Context {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.detail != nil {
		f.detail()
	}
	ctx, cancel := context.WithCancel(f.root)
	f.detail = cancel
	return ctx
}

func (f *fetchControl) cancelDetail() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.detail != nil {
		f.detail()
		f.detail = nil
	}
}

// stopAll cancels every outstanding request
func (f *fetchControl) stopAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stop()
	f.search = nil
	f.detail = nil
}

// runEffect performs the I/O described by a state transition
func (m Model) runEffect(eff browser.Effect) tea.Cmd {
	switch e := eff.(type) {
	case browser.FetchSearch:
		return SearchCmd(m.fetches.startSearch(), m.Movies, e.Seq, e.Query)
	case browser.CancelSearch:
		m.fetches.cancelSearch()
	case browser.ScheduleDetail:
		m.fetches.cancelDetail()
		return DetailDueCmd(e.Ticket)
	case browser.FetchDetail:
		return DetailCmd(m.fetches.startDetail(), m.Movies, e.Seq, e.ID)
	case browser.CancelDetail:
		m.fetches.cancelDetail()
	}
	return nil
}
