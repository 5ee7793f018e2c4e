package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even while typing
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	// Handle state-specific keys
	switch m.State {
	case StateHelp:
		m.State = StateBrowsing
		return m, nil

	case StateConfirmLogout:
		switch {
		case key.Matches(msg, Keys.Confirm):
			if m.SessionSvc == nil {
				m.State = StateBrowsing
				return m, nil
			}
			return m, LogoutCmd(m.SessionSvc, m.Config)
		case key.Matches(msg, Keys.Deny):
			m.State = StateBrowsing
		}
		return m, nil
	}

	if m.SearchBar.IsFocused() {
		return m.handleSearchKey(msg)
	}

	// Route to the sort modal if open
	if m.SortModal.IsVisible() {
		handled, selection := m.SortModal.HandleKey(msg)
		if handled && selection != nil {
			return m.applySort(*selection)
		}
		return m, nil
	}

	// Filter typing owns the keyboard
	if m.Results.IsFilterTyping() {
		var cmd tea.Cmd
		m.Results, cmd = m.Results.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m.quit()

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Logout):
		m.State = StateConfirmLogout
		return m, nil

	case key.Matches(msg, Keys.FocusSearch):
		return m.focusSearch()

	case key.Matches(msg, Keys.Filter):
		m.Results.ToggleFilter()
		return m, nil

	case key.Matches(msg, Keys.Sort):
		m.SortModal.Show(m.Browser.SortKey())
		return m, nil

	case key.Matches(msg, Keys.Open):
		return m.openLink(false)

	case key.Matches(msg, Keys.Poster):
		return m.openLink(true)

	case key.Matches(msg, Keys.Select):
		return m.selectUnderCursor()

	case key.Matches(msg, Keys.Close):
		// Esc clears an accepted filter before closing the details
		if msg.String() == "esc" && m.Results.IsFiltering() {
			m.Results.ClearFilter()
			return m, nil
		}
		return m.closeDetail()

	case key.Matches(msg, components.DetailPaneKeys.Up, components.DetailPaneKeys.Down):
		var cmd tea.Cmd
		m.Detail, cmd = m.Detail.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.Results, cmd = m.Results.Update(msg)
	return m, cmd
}

// handleSearchKey handles keys while the query input is focused
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.FocusResults) {
		return m.focusResults(), nil
	}

	var cmd tea.Cmd
	var changed bool
	m.SearchBar, cmd, changed = m.SearchBar.Update(msg)
	if !changed {
		return m, cmd
	}

	m, queryCmd := m.setQuery(m.SearchBar.Value())
	return m, tea.Batch(cmd, queryCmd)
}

func (m Model) focusSearch() (Model, tea.Cmd) {
	m.Results.SetFocused(false)
	cmd := m.SearchBar.Focus()
	return m, cmd
}

func (m Model) focusResults() Model {
	m.SearchBar.Blur()
	m.Results.SetFocused(true)
	return m
}
