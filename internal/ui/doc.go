// Package ui provides the terminal interface for docshell.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns a nav.Controller and plays
// every role the controller needs:
//
//   - Model implements nav.Host (search focus, close, window title)
//   - contentPane implements nav.Surface (placeholder spinner, rendered
//     document, key hook)
//   - scheduler implements nav.Scheduler with tea.Tick, so delayed loads
//     fire inside Update like every other message
//
// Controller callbacks never return commands directly. They push onto a
// shared cmdQueue which Update drains into its return value.
//
// # Layout
//
//	┌ header: docshell, page title, theme ────────────────────┐
//	│ / search        │ Page title                            │
//	│ ─────────────── │                                       │
//	│ Section         │ rendered document (viewport)          │
//	│   Topic         │                                       │
//	└ footer: key help for the focused area ──────────────────┘
//
// Ctrl+S hides the sidebar and lets the document span the full width.
// Showing it again moves focus to the search input.
//
// # Focus
//
// Keys go to one of three areas: the search input, the topic list or the
// document. The controller shortcuts are checked first in the sidebar; in
// the document they only work once the controller has hooked the loaded
// page.
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context:   ctx,
//		Tree:      topics.Default(),
//		Loader:    content.NewLoader(docs.FS(), ""),
//		ThemeName: "Dracula",
//	})
package ui
