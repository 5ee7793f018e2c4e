package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up           key.Binding
	Down         key.Binding
	FocusSearch  key.Binding
	FocusResults key.Binding
	ScrollDetail key.Binding

	// Actions
	Select key.Binding
	Close  key.Binding
	Filter key.Binding
	Sort   key.Binding
	Open   key.Binding
	Poster key.Binding
	Quit   key.Binding
	Help   key.Binding
	Logout key.Binding

	// Confirmations
	Confirm key.Binding
	Deny    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("i", "tab"),
			key.WithHelp("i/tab", "edit query"),
		),
		FocusResults: key.NewBinding(
			key.WithKeys("enter", "down", "esc"),
			key.WithHelp("enter/↓", "results"),
		),
		ScrollDetail: key.NewBinding(
			key.WithKeys("J", "K"),
			key.WithHelp("J/K", "scroll details"),
		),

		// Actions
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select/deselect"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc/x", "close details"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open on IMDb"),
		),
		Poster: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "open poster"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "forget API key"),
		),

		// Confirmations
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Filter, k.Sort, k.FocusSearch, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ScrollDetail, k.FocusSearch, k.FocusResults},
		{k.Select, k.Close, k.Filter, k.Sort},
		{k.Open, k.Poster},
		{k.Logout, k.Help, k.Quit},
	}
}

// searchKeys is the short help shown while typing a query
type searchKeys struct{ KeyMap }

// ShortHelp implements help.KeyMap
func (k searchKeys) ShortHelp() []key.Binding {
	return []key.Binding{
		k.FocusResults,
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("C-c", "quit")),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
