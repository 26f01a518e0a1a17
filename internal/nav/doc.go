// Package nav implements the docshell navigation controller.
//
// # Overview
//
// The Controller owns the topic tree and every piece of presentation state
// the sidebar needs: which topic is selected, which rows survive the current
// search filter, whether the sidebar is visible, and where the content
// surface is in its load sequence. It never draws anything itself.
//
// # Collaborators
//
//   - Surface: displays content by locator and optionally accepts a key hook
//   - Host: focuses the search field, closes the program, sets the title
//   - Scheduler: runs a function after a delay and can cancel it
//
// The terminal UI implements all three; tests substitute fakes.
//
// # Load Sequence
//
//	LoadContent(locator)
//	   │
//	   ├─> Surface.Navigate(placeholder)      phase Placeholder
//	   └─> Scheduler.Schedule(delay)
//	          │
//	          └─> Surface.Navigate(locator)   phase Requested
//	                 │
//	                 └─> SurfaceLoaded(gen)   phase Loaded or Failed
//
// Each load carries a generation number. Starting a new load stops the
// pending task of the previous one, and SurfaceLoaded ignores any
// generation other than the current one, so the most recent selection
// always wins.
//
// # Threading
//
// A Controller is not safe for concurrent use. Drive it from a single
// goroutine, which in docshell is the Bubble Tea update loop.
package nav
