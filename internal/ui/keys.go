package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/docshell/internal/nav"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit          key.Binding
	Help          key.Binding
	CycleTheme    key.Binding
	Narrower      key.Binding
	Wider         key.Binding
	NextPane      key.Binding
	ToggleSidebar key.Binding
	Close         key.Binding

	// Topic list
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Open   key.Binding
	Search key.Binding

	// Search input
	LeaveSearch key.Binding

	// Content
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Narrower: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Narrow sidebar"),
		),
		Wider: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Widen sidebar"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next pane"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys(nav.KeyToggleSidebar),
			key.WithHelp("ctrl+s", "Toggle sidebar"),
		),
		Close: key.NewBinding(
			key.WithKeys(nav.KeyClose),
			key.WithHelp("esc", "Close"),
		),

		// Topic list
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open topic"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search topics"),
		),

		// Search input
		LeaveSearch: key.NewBinding(
			key.WithKeys("enter", "down", "tab"),
			key.WithHelp("enter", "Go to list"),
		),

		// Content
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),
	}
}

// shortHelp returns the footer bindings for the focused area.
func (k keyMap) shortHelp(f focusArea) []key.Binding {
	switch f {
	case focusSearch:
		return []key.Binding{k.LeaveSearch, k.ToggleSidebar, k.Close}
	case focusContent:
		return []key.Binding{k.Up, k.Down, k.HalfPageDown, k.NextPane, k.ToggleSidebar, k.Close}
	default:
		return []key.Binding{k.Up, k.Down, k.Open, k.Search, k.NextPane, k.ToggleSidebar, k.Help}
	}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Topics
		{k.Up, k.Down, k.Top, k.Bottom, k.Open, k.Search},
		// Content
		{k.PageUp, k.PageDown, k.HalfPageUp, k.HalfPageDown},
		// General
		{k.NextPane, k.ToggleSidebar, k.Narrower, k.Wider, k.CycleTheme, k.Help, k.Close, k.Quit},
	}
}
