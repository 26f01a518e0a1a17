package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DocsDir != "" {
		t.Fatalf("DocsDir = %q, want empty", cfg.DocsDir)
	}
	if cfg.LoadingDelay != defaultLoadingDelay {
		t.Fatalf("LoadingDelay = %v, want %v", cfg.LoadingDelay, defaultLoadingDelay)
	}
	if !cfg.Watch {
		t.Fatalf("Watch = false, want true")
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if cfg.TopicsPath() != "" {
		t.Fatalf("TopicsPath = %q, want empty", cfg.TopicsPath())
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
docs_dir = "  ~/handbook  "
loading_delay = " 250ms "
watch = false
log_level = "DEBUG"
log_format = "json"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DocsDir != filepath.Join(home, "handbook") {
		t.Fatalf("DocsDir = %q, want under HOME %q", cfg.DocsDir, home)
	}
	if cfg.LoadingDelay != 250*time.Millisecond {
		t.Fatalf("LoadingDelay = %v, want 250ms", cfg.LoadingDelay)
	}
	if cfg.Watch {
		t.Fatalf("Watch = true, want false")
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("log settings = %q/%q, want debug/json", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.TopicsPath() != filepath.Join(home, "handbook", "topics.toml") {
		t.Fatalf("TopicsPath = %q, want topics.toml in docs dir", cfg.TopicsPath())
	}
}

func TestLoad_ExplicitTopicsFileWins(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
docs_dir = "/srv/docs"
topics_file = "/etc/docshell/topics.toml"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !strings.HasSuffix(cfg.TopicsPath(), filepath.FromSlash("/etc/docshell/topics.toml")) {
		t.Fatalf("TopicsPath = %q, want the explicit topics file", cfg.TopicsPath())
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`docs_dir = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidDelayFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`loading_delay = "soon"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "loading_delay") {
		t.Fatalf("Load error = %v, want loading_delay error", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
