package tui

// Layout proportions
const (
	ResultsPercent  = 40 // Result list share of the width
	MinResultsWidth = 30
	MinDetailWidth  = 30

	SearchBarHeight = 3 // Input line plus border
	FooterHeight    = 1
)

// paneLayout holds calculated pane sizes for the View
type paneLayout struct {
	resultsWidth  int
	detailWidth   int
	contentHeight int
}

// calculateLayout splits the window between the result list and the detail pane
func calculateLayout(width, height int) paneLayout {
	l := paneLayout{
		contentHeight: max(height-SearchBarHeight-FooterHeight, 3),
	}

	l.resultsWidth = max(width*ResultsPercent/100, MinResultsWidth)
	if width-l.resultsWidth < MinDetailWidth {
		// Narrow terminal: split evenly
		l.resultsWidth = width / 2
	}
	l.detailWidth = width - l.resultsWidth
	return l
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	l := calculateLayout(m.Width, m.Height)
	m.SearchBar.SetWidth(m.Width)
	m.Results.SetSize(l.resultsWidth, l.contentHeight)
	m.Detail.SetSize(l.detailWidth, l.contentHeight)
	m.Help.Width = m.Width
}
