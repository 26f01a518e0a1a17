package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds docshell settings.
type Config struct {
	DocsDir      string // empty uses the embedded pages
	TopicsFile   string
	LoadingDelay time.Duration
	Watch        bool
	LogFile      string
	LogLevel     string
	LogFormat    string
}

const (
	defaultConfigPath   = "~/.config/docshell/config.toml"
	defaultLogFile      = "~/.local/state/docshell/docshell.log"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultLoadingDelay = 800 * time.Millisecond
	topicsFileName      = "topics.toml"
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		LoadingDelay: defaultLoadingDelay,
		Watch:        true,
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
		LogFormat:    defaultLogFormat,
	}
}

// Load locates and parses the docshell config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DocsDir      string `toml:"docs_dir"`
		TopicsFile   string `toml:"topics_file"`
		LoadingDelay string `toml:"loading_delay"`
		Watch        *bool  `toml:"watch"`
		LogFile      string `toml:"log_file"`
		LogLevel     string `toml:"log_level"`
		LogFormat    string `toml:"log_format"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.DocsDir); dir != "" {
		cfg.DocsDir = mustExpand(dir)
	}
	if topics := strings.TrimSpace(raw.TopicsFile); topics != "" {
		cfg.TopicsFile = mustExpand(topics)
	}
	if delay := strings.TrimSpace(raw.LoadingDelay); delay != "" {
		d, err := time.ParseDuration(delay)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: loading_delay: %w", err)
		}
		cfg.LoadingDelay = d
	}
	if raw.Watch != nil {
		cfg.Watch = *raw.Watch
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if format := strings.TrimSpace(raw.LogFormat); format != "" {
		cfg.LogFormat = strings.ToLower(format)
	}

	return cfg, nil
}

// TopicsPath returns the topic file to read. It is empty when neither a
// topic file nor a docs directory is configured.
func (c Config) TopicsPath() string {
	if strings.TrimSpace(c.TopicsFile) != "" {
		return c.TopicsFile
	}
	if strings.TrimSpace(c.DocsDir) == "" {
		return ""
	}
	return filepath.Join(c.DocsDir, topicsFileName)
}

// ExpandPath resolves "~" and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
