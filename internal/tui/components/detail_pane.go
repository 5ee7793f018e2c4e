package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/browser"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// NoSelection is the placeholder shown when nothing is selected
const NoSelection = "No movie selected"

// DetailView is everything the detail pane renders
type DetailView struct {
	Status  browser.DetailStatus
	Summary *domain.MovieSummary // List entry for the selection, shown while loading
	Detail  *domain.MovieDetail
	Err     string
	Spinner string // Current spinner frame
}

// DetailPane displays the full record for the selected movie
type DetailPane struct {
	viewport    viewport.Model
	view        DetailView
	width       int
	height      int
	showPosters bool
}

// NewDetailPane creates a new detail pane
func NewDetailPane(showPosters bool) DetailPane {
	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		Up:   DetailPaneKeys.Up,
		Down: DetailPaneKeys.Down,
	}
	return DetailPane{
		viewport:    vp,
		showPosters: showPosters,
	}
}

// SetSize updates the component dimensions
func (d *DetailPane) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.viewport.Width = max(width-BorderWidth-2, 1)
	d.viewport.Height = max(height-BorderHeight, 1)
	d.refresh()
}

// SetView replaces what the pane shows. Scroll resets when the movie changes.
func (d *DetailPane) SetView(v DetailView) {
	if viewKey(v) != viewKey(d.view) {
		d.viewport.GotoTop()
	}
	d.view = v
	d.refresh()
}

// Current returns what the pane is showing
func (d DetailPane) Current() DetailView {
	return d.view
}

// Content returns the rendered body without the border
func (d DetailPane) Content() string {
	return d.render(d.viewport.Width)
}

// Update handles scroll keys
func (d DetailPane) Update(msg tea.Msg) (DetailPane, tea.Cmd) {
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View renders the pane inside its border
func (d DetailPane) View() string {
	return styles.InactiveBorder.
		Width(max(d.width-BorderWidth, 0)).
		Height(max(d.height-BorderHeight, 0)).
		PaddingLeft(1).
		Render(d.viewport.View())
}

func (d *DetailPane) refresh() {
	d.viewport.SetContent(d.render(d.viewport.Width))
}

func viewKey(v DetailView) string {
	switch {
	case v.Detail != nil:
		return v.Detail.ID
	case v.Summary != nil:
		return v.Summary.ID
	default:
		return ""
	}
}

func (d DetailPane) render(width int) string {
	width = max(width, 10)
	v := d.view

	switch v.Status {
	case browser.DetailIdle:
		return styles.DimStyle.Render(NoSelection)

	case browser.DetailPending, browser.DetailLoading:
		var b strings.Builder
		if v.Summary != nil {
			b.WriteString(styles.TitleStyle.Render(styles.Truncate(v.Summary.DisplayTitle(), width)))
			b.WriteString("\n\n")
		}
		b.WriteString(styles.AccentStyle.Render(v.Spinner + " Loading..."))
		return b.String()

	case browser.DetailError:
		var b strings.Builder
		if v.Summary != nil {
			b.WriteString(styles.TitleStyle.Render(styles.Truncate(v.Summary.DisplayTitle(), width)))
			b.WriteString("\n\n")
		}
		b.WriteString(styles.ErrorStyle.Render(wordWrap(v.Err, width)))
		return b.String()
	}

	if v.Detail == nil {
		return styles.DimStyle.Render(NoSelection)
	}
	return d.renderDetail(*v.Detail, width)
}

func (d DetailPane) renderDetail(m domain.MovieDetail, width int) string {
	var b strings.Builder

	// Title
	title := m.Title
	if domain.Known(m.YearLabel) {
		title = fmt.Sprintf("%s (%s)", m.Title, m.YearLabel)
	}
	b.WriteString(styles.TitleStyle.Render(wordWrap(title, width)))
	b.WriteString("\n")

	// Meta line: Released · Runtime · Rated
	if meta := m.MetaLine(); meta != "" {
		b.WriteString(styles.DimStyle.Render(meta))
		b.WriteString("\n")
	}
	if domain.Known(m.Genre) {
		b.WriteString(styles.SubtitleStyle.Render(m.Genre))
		b.WriteString("\n")
	}

	// IMDb rating
	if domain.Known(m.IMDbRating) {
		b.WriteString("\n")
		rating := ratingStyle(m.IMDbRating).Render("★ " + m.IMDbRating)
		if domain.Known(m.IMDbVotes) {
			rating += styles.DimStyle.Render(fmt.Sprintf("  (%s votes)", m.IMDbVotes))
		}
		b.WriteString(rating)
		b.WriteString("\n")
	}

	// Other sources
	for _, r := range m.Ratings {
		if r.Source == "Internet Movie Database" {
			continue
		}
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("%s: ", r.Source)))
		b.WriteString(styles.SubtitleStyle.Render(r.Value))
		b.WriteString("\n")
	}

	if domain.Known(m.Plot) {
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Render(wordWrap(m.Plot, min(width, 80))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	writeField(&b, "Starring", m.Actors, width)
	writeField(&b, "Directed by", m.Director, width)
	writeField(&b, "Written by", m.Writer, width)
	writeField(&b, "Language", m.Language, width)
	writeField(&b, "Country", m.Country, width)
	writeField(&b, "Awards", m.Awards, width)

	if d.showPosters && m.PosterURL != "" {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("Poster "))
		b.WriteString(styles.LinkStyle.Render(m.PosterURL))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeField(b *strings.Builder, label, value string, width int) {
	if !domain.Known(value) {
		return
	}
	b.WriteString(styles.LabelStyle.Render(label))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(wordWrap(value, width)))
	b.WriteString("\n")
}

// ratingStyle colors an IMDb score: green from 7, gold from 5, red below
func ratingStyle(rating string) lipgloss.Style {
	score, err := strconv.ParseFloat(rating, 64)
	if err != nil {
		return styles.DimStyle
	}
	switch {
	case score >= 7:
		return lipgloss.NewStyle().Foreground(styles.Green)
	case score >= 5:
		return lipgloss.NewStyle().Foreground(styles.MarqueeGold)
	default:
		return lipgloss.NewStyle().Foreground(styles.Red)
	}
}
