package components

import "github.com/charmbracelet/bubbles/key"

// ResultsListKeyMap defines key bindings for result list navigation
type ResultsListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	HalfUp   key.Binding
	HalfDown key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Escape   key.Binding
	Enter    key.Binding
}

// DefaultResultsListKeyMap returns the default result list key bindings
func DefaultResultsListKeyMap() ResultsListKeyMap {
	return ResultsListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),
		HalfUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("C-u", "half page up"),
		),
		HalfDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "half page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "page down"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept filter"),
		),
	}
}

// DetailPaneKeyMap defines key bindings for scrolling the detail pane
type DetailPaneKeyMap struct {
	Up   key.Binding
	Down key.Binding
}

// DefaultDetailPaneKeyMap returns the default detail pane key bindings
func DefaultDetailPaneKeyMap() DetailPaneKeyMap {
	return DetailPaneKeyMap{
		Up: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "scroll details up"),
		),
		Down: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "scroll details down"),
		),
	}
}

// SortModalKeyMap defines key bindings for the sort modal
type SortModalKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Escape key.Binding
}

// DefaultSortModalKeyMap returns the default sort modal key bindings
func DefaultSortModalKeyMap() SortModalKeyMap {
	return SortModalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "s"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Package-level key map instances
var (
	ResultsListKeys = DefaultResultsListKeyMap()
	DetailPaneKeys  = DefaultDetailPaneKeyMap()
	SortModalKeys   = DefaultSortModalKeyMap()
)
