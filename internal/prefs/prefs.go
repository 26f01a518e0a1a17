// Package prefs persists docshell user preferences.
// Preferences are stored in ~/.config/docshell/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/docshell/internal/config"
)

// Prefs holds user preferences for docshell.
type Prefs struct {
	Theme        string `toml:"theme"`
	SidebarWidth int    `toml:"sidebar_width"`
}

const (
	defaultPrefsPath    = "~/.config/docshell/prefs.toml"
	defaultTheme        = "Dracula"
	defaultSidebarWidth = 30

	minSidebarWidth = 16
	maxSidebarWidth = 60
)

// Defaults returns the preferences used when nothing is saved.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, SidebarWidth: defaultSidebarWidth}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path. Missing or unreadable files yield the
// defaults; preferences never block startup.
func Load(path string) Prefs {
	p := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return p
	}
	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return p
	}
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Defaults()
	}
	return p.normalized()
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p.normalized())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func (p Prefs) normalized() Prefs {
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	if p.SidebarWidth == 0 {
		p.SidebarWidth = defaultSidebarWidth
	}
	p.SidebarWidth = ClampSidebarWidth(p.SidebarWidth)
	return p
}

// ClampSidebarWidth limits w to the supported sidebar widths.
func ClampSidebarWidth(w int) int {
	switch {
	case w < minSidebarWidth:
		return minSidebarWidth
	case w > maxSidebarWidth:
		return maxSidebarWidth
	}
	return w
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
