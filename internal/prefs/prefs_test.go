package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load("")
	if p != Defaults() {
		t.Fatalf("Load = %+v, want %+v", p, Defaults())
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "docshell")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"Slate\"\nsidebar_width = 40\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load("")
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "Slate")
	}
	if p.SidebarWidth != 40 {
		t.Fatalf("SidebarWidth = %d, want 40", p.SidebarWidth)
	}
}

func TestLoad_InvalidTOMLUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = ["), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if p := Load(path); p != Defaults() {
		t.Fatalf("Load = %+v, want defaults", p)
	}
}

func TestLoad_ClampsSidebarWidth(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"too narrow", "sidebar_width = 3\n", minSidebarWidth},
		{"too wide", "sidebar_width = 500\n", maxSidebarWidth},
		{"unset", "theme = \"Slate\"\n", defaultSidebarWidth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(path, []byte(tc.in), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if got := Load(path).SidebarWidth; got != tc.want {
				t.Fatalf("SidebarWidth = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSave_RoundTripsAndCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Slate", SidebarWidth: 24}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	p := Load(path)
	if p.Theme != "Slate" || p.SidebarWidth != 24 {
		t.Fatalf("Load after Save = %+v, want Slate/24", p)
	}
}

func TestDefaultPath(t *testing.T) {
	if DefaultPath() != "~/.config/docshell/prefs.toml" {
		t.Fatalf("DefaultPath = %q", DefaultPath())
	}
}
