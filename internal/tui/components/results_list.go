package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/search"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Layout constants for the result list
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2
)

// EmptyPrompt is shown while the query is empty
const EmptyPrompt = "Search for a film or TV show!"

// ShortQueryHint is shown while the query is too short to search
func ShortQueryHint(minLength int) string {
	return fmt.Sprintf("Type at least %d characters to search", minLength)
}

// ResultsList is the scrollable list of search results
type ResultsList struct {
	movies []domain.MovieSummary

	// Cursor is the highlighted row; selectedID is the movie shown in the detail pane
	cursor     int
	offset     int
	maxVisible int
	selectedID string

	// Dimensions
	width   int
	height  int
	focused bool

	// Status
	loading bool
	spinner string
	errMsg  string
	hint    string // Shown when there are no results and no error

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filtered     []search.FilterResult // nil when no filter query
}

// NewResultsList creates an empty result list
func NewResultsList() ResultsList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return ResultsList{
		filterInput: ti,
		hint:        EmptyPrompt,
	}
}

// Update handles navigation and filter typing
func (l ResultsList) Update(msg tea.Msg) (ResultsList, tea.Cmd) {
	if !l.focused {
		return l, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)

	if l.IsFilterTyping() {
		if ok {
			switch {
			case key.Matches(keyMsg, ResultsListKeys.Escape):
				l.clearFilter()
				return l, nil
			case key.Matches(keyMsg, ResultsListKeys.Enter):
				// Accept filter, blur input to allow navigation
				l.filterInput.Blur()
				return l, nil
			}
		}
		var cmd tea.Cmd
		prev := l.filterInput.Value()
		l.filterInput, cmd = l.filterInput.Update(msg)
		if l.filterInput.Value() != prev {
			l.applyFilter()
		}
		return l, cmd
	}

	if !ok {
		return l, nil
	}

	count := l.ItemCount()
	half := max(l.maxVisible/2, 1)

	switch {
	case key.Matches(keyMsg, ResultsListKeys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
	case key.Matches(keyMsg, ResultsListKeys.Down):
		if l.cursor < count-1 {
			l.cursor++
		}
	case key.Matches(keyMsg, ResultsListKeys.Home):
		l.cursor = 0
	case key.Matches(keyMsg, ResultsListKeys.End):
		l.cursor = max(count-1, 0)
	case key.Matches(keyMsg, ResultsListKeys.HalfUp):
		l.cursor = max(l.cursor-half, 0)
	case key.Matches(keyMsg, ResultsListKeys.HalfDown):
		l.cursor = max(min(l.cursor+half, count-1), 0)
	case key.Matches(keyMsg, ResultsListKeys.PageUp):
		l.cursor = max(l.cursor-l.maxVisible, 0)
	case key.Matches(keyMsg, ResultsListKeys.PageDown):
		l.cursor = max(min(l.cursor+l.maxVisible, count-1), 0)
	case key.Matches(keyMsg, ResultsListKeys.Escape):
		if l.filterActive {
			l.clearFilter()
		}
	}
	l.ensureVisible()
	return l, nil
}

// View renders the list inside its border
func (l ResultsList) View() string {
	style := styles.InactiveBorder
	if l.focused {
		style = styles.ActiveBorder
	}
	return style.
		Width(max(l.width-BorderWidth, 0)).
		Height(max(l.height-BorderHeight, 0)).
		Render(l.renderContent())
}

// SetSize updates the component dimensions
func (l *ResultsList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.filterInput.Width = max(width-BorderWidth-4, 1)
	l.recalcMaxVisible()
	l.ensureVisible()
}

// SetFocused sets keyboard focus
func (l *ResultsList) SetFocused(focused bool) {
	l.focused = focused
}

// IsFocused returns whether the list has keyboard focus
func (l ResultsList) IsFocused() bool {
	return l.focused
}

// SetMovies replaces the list contents, keeping the cursor on the same movie when it is still present
func (l *ResultsList) SetMovies(movies []domain.MovieSummary) {
	var cursorID string
	if m, ok := l.CursorMovie(); ok {
		cursorID = m.ID
	}

	l.movies = movies
	l.applyFilter()

	l.cursor = 0
	if cursorID != "" {
		for i := 0; i < l.ItemCount(); i++ {
			if l.movies[l.mapIndex(i)].ID == cursorID {
				l.cursor = i
				break
			}
		}
	}
	l.offset = 0
	l.ensureVisible()
}

// Movies returns the unfiltered list contents
func (l ResultsList) Movies() []domain.MovieSummary {
	return l.movies
}

// SetSelectedID marks the movie currently shown in the detail pane
func (l *ResultsList) SetSelectedID(id string) {
	l.selectedID = id
}

// SetLoading sets the loading state; spinner is the current spinner frame
func (l *ResultsList) SetLoading(loading bool, spinner string) {
	l.loading = loading
	l.spinner = spinner
}

// SetError sets the error shown in place of the results
func (l *ResultsList) SetError(msg string) {
	l.errMsg = msg
}

// SetHint sets the text shown when the list is empty without an error
func (l *ResultsList) SetHint(hint string) {
	l.hint = hint
}

// CursorMovie returns the movie under the cursor
func (l ResultsList) CursorMovie() (domain.MovieSummary, bool) {
	if l.cursor < 0 || l.cursor >= l.ItemCount() {
		return domain.MovieSummary{}, false
	}
	return l.movies[l.mapIndex(l.cursor)], true
}

// Cursor returns the cursor row in the visible (filtered) list
func (l ResultsList) Cursor() int {
	return l.cursor
}

// ItemCount returns the number of visible rows
func (l ResultsList) ItemCount() int {
	if l.filtered != nil {
		return len(l.filtered)
	}
	return len(l.movies)
}

// ToggleFilter activates the filter input
func (l *ResultsList) ToggleFilter() {
	l.filterActive = true
	l.filterInput.Focus()
	l.recalcMaxVisible()
}

// IsFiltering returns true if filter mode is active
func (l ResultsList) IsFiltering() bool {
	return l.filterActive
}

// IsFilterTyping returns true if filter is active AND input is focused
func (l ResultsList) IsFilterTyping() bool {
	return l.filterActive && l.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all items
func (l *ResultsList) ClearFilter() {
	l.clearFilter()
}

// Internal methods

func (l *ResultsList) recalcMaxVisible() {
	// Interior height minus the header line and scroll indicators
	l.maxVisible = l.height - BorderHeight - ScrollIndicatorLines - 1
	if l.filterActive {
		l.maxVisible--
	}
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
}

func (l *ResultsList) ensureVisible() {
	if l.maxVisible <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
}

func (l *ResultsList) clearFilter() {
	l.filterActive = false
	l.filterQuery = ""
	l.filtered = nil
	l.filterInput.SetValue("")
	l.filterInput.Blur()
	l.recalcMaxVisible()
	l.ensureVisible()
}

func (l *ResultsList) applyFilter() {
	l.filterQuery = l.filterInput.Value()
	l.filtered = search.FilterMovies(l.movies, l.filterQuery)
	if l.filtered == nil && strings.TrimSpace(l.filterQuery) != "" {
		l.filtered = []search.FilterResult{}
	}
	l.cursor = 0
	l.offset = 0
}

func (l ResultsList) mapIndex(i int) int {
	if l.filtered != nil && i < len(l.filtered) {
		return l.filtered[i].Index
	}
	return i
}

func (l ResultsList) matchedIndexes(i int) []int {
	if l.filtered != nil && i < len(l.filtered) {
		return l.filtered[i].MatchedIndexes
	}
	return nil
}

// Rendering

func (l ResultsList) header(width int) string {
	switch {
	case l.loading:
		return styles.AccentStyle.Render(l.spinner + " Searching...")
	case len(l.movies) > 0:
		text := fmt.Sprintf("Found %d results", len(l.movies))
		if len(l.movies) == 1 {
			text = "Found 1 result"
		}
		return styles.AccentStyle.Render(styles.Truncate(text, width))
	default:
		return styles.AccentStyle.Render("Results")
	}
}

func (l ResultsList) renderContent() string {
	itemWidth := max(l.width-BorderWidth, 10)
	titleLine := l.header(itemWidth)

	if l.errMsg != "" && !l.loading {
		return titleLine + "\n \n" + styles.ErrorStyle.Render(wordWrap(l.errMsg, itemWidth-1))
	}

	count := l.ItemCount()
	if count == 0 {
		var msg string
		switch {
		case l.loading:
			msg = ""
		case l.filterActive && l.filterQuery != "":
			msg = styles.DimStyle.Render("No matches")
		default:
			msg = styles.DimStyle.Render(wordWrap(l.hint, itemWidth-1))
		}
		content := titleLine + "\n \n" + msg
		if l.filterActive {
			content += "\n" + l.renderFilterBar()
		}
		return content
	}

	end := min(l.offset+l.maxVisible, count)
	lines := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		movie := l.movies[l.mapIndex(i)]
		lines = append(lines, l.renderMovieItem(movie, l.matchedIndexes(i), i == l.cursor, itemWidth))
	}

	// Always reserve the indicator lines to prevent layout shifts
	header := " "
	if l.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}

	content := titleLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
	if l.filterActive {
		content += "\n" + l.renderFilterBar()
	}
	return content
}

func (l ResultsList) renderMovieItem(movie domain.MovieSummary, matched []int, cursor bool, width int) string {
	indicator := " "
	if movie.ID == l.selectedID {
		indicator = styles.SelectedChar
	}
	indicatorFg := styles.MarqueeGold

	// Available space: width - indicator(1) - space(1) - margins(2)
	title := styles.Truncate(movie.DisplayTitle(), max(width-4, 5))

	parts := []styles.RowPart{
		{Text: indicator, Foreground: &indicatorFg},
		{Text: " "},
	}
	parts = append(parts, highlightParts(title, matched)...)
	return styles.RenderListRow(parts, cursor, width)
}

// highlightParts splits text into row parts with matched runes emphasised
func highlightParts(text string, matched []int) []styles.RowPart {
	if len(matched) == 0 {
		return []styles.RowPart{{Text: text}}
	}

	matchSet := make(map[int]bool, len(matched))
	for _, idx := range matched {
		matchSet[idx] = true
	}

	gold := styles.MarqueeGold
	bold := lipgloss.NewStyle().Bold(true)

	// Batch consecutive runes with the same match state
	var parts []styles.RowPart
	runes := []rune(text)
	for i := 0; i < len(runes); {
		isMatch := matchSet[i]
		start := i
		for i < len(runes) && matchSet[i] == isMatch {
			i++
		}
		part := styles.RowPart{Text: string(runes[start:i])}
		if isMatch {
			part.Foreground = &gold
			part.Style = bold
		}
		parts = append(parts, part)
	}
	return parts
}

func (l ResultsList) renderFilterBar() string {
	input := l.filterInput.View()
	if l.filterQuery == "" {
		return input
	}
	return input + styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", l.ItemCount(), len(l.movies)))
}

// wordWrap wraps text to the specified width
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var b strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(text) {
		wordLen := lipgloss.Width(word)
		if lineLen > 0 && lineLen+wordLen+1 > width {
			b.WriteString("\n")
			lineLen = 0
		}
		if lineLen > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += wordLen
	}
	return b.String()
}
