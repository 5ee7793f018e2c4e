package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// SearchBar is the query input. Past queries are offered as inline completions.
type SearchBar struct {
	input   textinput.Model
	width   int
	focused bool
}

// NewSearchBar creates a new search bar
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search for a film or TV show..."
	ti.CharLimit = 100
	ti.Prompt = "🔍 "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	ti.CompletionStyle = styles.DimStyle
	ti.ShowSuggestions = true

	// Up/down belong to the result list
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))
	ti.KeyMap.AcceptSuggestion = key.NewBinding(key.WithKeys("tab"))

	return SearchBar{input: ti}
}

// Focus gives the input keyboard focus
func (s *SearchBar) Focus() tea.Cmd {
	s.focused = true
	return s.input.Focus()
}

// Blur removes keyboard focus
func (s *SearchBar) Blur() {
	s.focused = false
	s.input.Blur()
}

// IsFocused returns whether the input has keyboard focus
func (s SearchBar) IsFocused() bool {
	return s.focused
}

// Value returns the raw input text
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetValue replaces the input text
func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
	s.input.CursorEnd()
}

// SetSuggestions sets the completion candidates, best first
func (s *SearchBar) SetSuggestions(suggestions []string) {
	s.input.SetSuggestions(suggestions)
}

// SetWidth updates the component width
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	s.input.Width = max(width-BorderWidth-6, 1)
}

// Update forwards input to the text field; changed reports whether the value changed
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd, bool) {
	if !s.focused {
		return s, nil, false
	}
	prev := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, s.input.Value() != prev
}

// View renders the input inside its border
func (s SearchBar) View() string {
	style := styles.InactiveBorder
	if s.focused {
		style = styles.ActiveBorder
	}
	return style.Width(max(s.width-BorderWidth, 0)).Render(s.input.View())
}
