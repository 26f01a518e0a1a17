// Package app provides the orchestration layer for docshell.
//
// # Overview
//
// This package wires together configuration, logging, the topic sources, the
// content watcher and the UI. It is the composition root where all
// dependencies are initialized and connected.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> LoadConfig()       config file + CLI overrides
//	       ├─────> logging.Setup()    logrus to the log file
//	       ├─────> ResolveSources()   topic tree + docs filesystem
//	       ├─────> prefs.Load()       theme and sidebar width
//	       ├─────> StartWatcher()     fsnotify over the docs dir
//	       └─────> ui.Run()           TUI (blocks)
//
// # Topic sources
//
// ResolveSources picks, in order: an explicit topic file, the docs dir's
// topics.toml, a scan of the docs dir, and finally the built-in tree with
// the embedded pages. Every locator in the tree is resolved against the
// chosen filesystem.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - config file unreadable or invalid
//   - log file cannot be opened
//   - topic file missing (when named explicitly) or invalid
//   - docs dir missing
//
// Recoverable errors (logged, the UI keeps running):
//   - watcher cannot start
//   - a topic's document is missing or cannot be rendered
//   - preferences cannot be saved
package app
