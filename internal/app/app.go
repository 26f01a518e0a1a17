package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/five82/docshell/internal/config"
	"github.com/five82/docshell/internal/content"
	"github.com/five82/docshell/internal/logging"
	"github.com/five82/docshell/internal/prefs"
	"github.com/five82/docshell/internal/ui"
)

// Options configure the docshell application. Non-empty fields override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/docshell/prefs.toml
	DocsDir    string
	TopicsFile string
	ThemeName  string
	Delay      *time.Duration
	NoWatch    bool
}

// LoadConfig reads the config file and applies the option overrides.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if dir := strings.TrimSpace(opts.DocsDir); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return config.Config{}, fmt.Errorf("docs dir: %w", err)
		}
		cfg.DocsDir = expanded
	}
	if file := strings.TrimSpace(opts.TopicsFile); file != "" {
		expanded, err := config.ExpandPath(file)
		if err != nil {
			return config.Config{}, fmt.Errorf("topics file: %w", err)
		}
		cfg.TopicsFile = expanded
	}
	if opts.Delay != nil {
		cfg.LoadingDelay = *opts.Delay
	}
	if opts.NoWatch {
		cfg.Watch = false
	}
	return cfg, nil
}

// Run boots the docshell TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.Setup(logging.Options{
		File:   cfg.LogFile,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closer.Close()
	log := logging.Component(logger, "app")

	src, err := ResolveSources(cfg)
	if err != nil {
		return fmt.Errorf("load topics: %w", err)
	}
	log.WithFields(logrus.Fields{
		"origin":   src.Origin,
		"sections": len(src.Tree.Sections),
		"topics":   src.Tree.Len(),
	}).Info("docshell starting")

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)
	themeName := userPrefs.Theme
	if opts.ThemeName != "" {
		themeName = opts.ThemeName
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var changes <-chan string
	if cfg.Watch && !src.Embedded() {
		changes = StartWatcher(ctx, src.Root, logging.Component(logger, "watch"))
	}

	err = ui.Run(ui.Options{
		Context:      ctx,
		Tree:         src.Tree,
		Loader:       content.NewLoader(src.FS, ""),
		Logger:       logging.Component(logger, "nav"),
		Delay:        controllerDelay(cfg.LoadingDelay),
		ThemeName:    themeName,
		SidebarWidth: userPrefs.SidebarWidth,
		PrefsPath:    prefsPath,
		Changes:      changes,
	})
	if err != nil {
		log.WithError(err).Error("ui exited with error")
		return err
	}
	log.Info("docshell stopped")
	return nil
}

// controllerDelay maps the configured delay onto nav.Options, where zero
// means the default and a negative value loads without a placeholder pause.
func controllerDelay(configured time.Duration) time.Duration {
	if configured <= 0 {
		return -1
	}
	return configured
}
