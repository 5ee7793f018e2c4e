package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	switch m.State {
	case StateHelp:
		return m.renderHelp()
	case StateConfirmLogout:
		return m.renderLogoutConfirmation()
	}

	l := calculateLayout(m.Width, m.Height)

	var content string
	if m.SortModal.IsVisible() {
		content = lipgloss.Place(m.Width, l.contentHeight,
			lipgloss.Center, lipgloss.Center,
			m.SortModal.View())
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.Results.View(), m.Detail.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.SearchBar.View(),
		content,
		m.renderFooter(),
	)
}

// renderFooter renders the status line and key hints
func (m Model) renderFooter() string {
	// Left side: status message, or the active sort
	var left string
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		left = styles.ErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		left = styles.DimStyle.Render(m.StatusMsg)
	default:
		left = styles.DimStyle.Render("Sort: ") + styles.AccentStyle.Render(m.Browser.SortKey().String())
	}

	// Right side: context key hints
	var right string
	if m.SearchBar.IsFocused() {
		right = m.Help.ShortHelpView(searchKeys{Keys}.ShortHelp())
	} else {
		right = m.Help.ShortHelpView(Keys.ShortHelp())
	}

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	full := m.Help.FullHelpView(Keys.FullHelp())
	body := styles.ModalTitleStyle.Render("Keys") + "\n" + full + "\n\n" +
		styles.DimStyle.Render("Press any key to return...")

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(body))
}

// renderLogoutConfirmation renders the logout confirmation modal
func (m Model) renderLogoutConfirmation() string {
	modal := `
        Forget API key?

  The OMDb API key will be removed
  from your config file and marquee
  will exit.

        [Y] Yes      [N] No
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(modal))
}
