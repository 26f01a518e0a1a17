// Package config loads docshell settings from a TOML file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/docshell/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/docshell/config.toml
//   - Docs directory: none (the embedded pages are shown)
//   - Topic file: <docs_dir>/topics.toml
//   - Loading delay: 800ms
//   - Watch: true
//   - Log file: ~/.local/state/docshell/docshell.log
//   - Log level/format: info, text
//
// # TOML Format
//
//	docs_dir = "~/projects/handbook"
//	topics_file = "~/projects/handbook/topics.toml"
//	loading_delay = "300ms"
//	watch = true
//	log_file = "~/.local/state/docshell/docshell.log"
//	log_level = "debug"
//	log_format = "json"
//
// Every field is optional. Tilde expansion is performed on paths.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML syntax errors and unparsable durations. A missing
// config file is not an error.
package config
