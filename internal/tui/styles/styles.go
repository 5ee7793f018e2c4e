package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	MarqueeGold = lipgloss.Color("#F5C518")
	SlateDark   = lipgloss.Color("#1F2937")
	SlateLight  = lipgloss.Color("#374151")
	DimGray     = lipgloss.Color("#6B7280")
	LightGray   = lipgloss.Color("#9CA3AF")
	White       = lipgloss.Color("#F9FAFB")
	Green       = lipgloss.Color("#10B981")
	Red         = lipgloss.Color("#EF4444")
	Blue        = lipgloss.Color("#3B82F6")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MarqueeGold)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(MarqueeGold)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	LabelStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Bold(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(Blue).
			Underline(true)
)

// Selection marker for the movie shown in the detail pane
const SelectedChar = "●"

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MarqueeGold).
			Padding(1, 2).
			Background(SlateDark)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(MarqueeGold)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Badge styles
var (
	DimBadgeStyle = lipgloss.NewStyle().
		Foreground(LightGray).
		Background(SlateLight).
		Padding(0, 1)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(MarqueeGold)
)

// Filter styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(MarqueeGold)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(MarqueeGold).
				Bold(true)
)

// Match highlight styles for filtered results
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(MarqueeGold).
				Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().
					Foreground(MarqueeGold).
					Background(SlateLight).
					Bold(true)
)

// Helper functions

// Truncate truncates a string to the given width (in runes) with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// Pad pads a string to the given width
func Pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// RenderListRow renders a complete list row with uniform background when selected.
// Each part is styled explicitly to avoid ANSI reset code issues.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	bg := SlateLight

	var b strings.Builder
	visibleLen := 0

	for _, part := range parts {
		style := part.Style
		if part.Foreground != nil {
			style = style.Foreground(*part.Foreground)
		} else if selected {
			style = style.Foreground(White)
		} else {
			style = style.Foreground(LightGray)
		}
		if selected {
			style = style.Background(bg)
		}
		b.WriteString(style.Render(part.Text))
		visibleLen += lipgloss.Width(part.Text)
	}

	// Fill the row (subtract 2 for left/right margin)
	marginStyle := lipgloss.NewStyle()
	if selected {
		marginStyle = marginStyle.Background(bg)
	}
	if pad := width - visibleLen - 2; pad > 0 {
		b.WriteString(marginStyle.Render(strings.Repeat(" ", pad)))
	}

	margin := marginStyle.Render(" ")
	return margin + b.String() + margin
}

// RowPart is one segment of a list row.
// Foreground overrides the default text color; Style carries extra attributes like Bold.
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
	Style      lipgloss.Style
}
