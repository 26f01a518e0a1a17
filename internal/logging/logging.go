// Package logging configures the logrus logger docshell writes to. The
// terminal belongs to the UI, so log output always goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// LevelEnv overrides the configured level when set.
const LevelEnv = "DOCSHELL_LOG_LEVEL"

// Options select where and how to log.
type Options struct {
	File   string // empty discards output
	Level  string
	Format string // "text" or "json"
}

// Setup builds a logger from opts. The returned closer releases the log
// file and is never nil.
func Setup(opts Options) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetLevel(parseLevel(opts.Level))

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	if strings.TrimSpace(opts.File) == "" {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(file)
	return logger, file, nil
}

// Component returns an entry tagged with the component name.
func Component(logger logrus.FieldLogger, name string) *logrus.Entry {
	return logger.WithField("component", name)
}

func parseLevel(configured string) logrus.Level {
	levelStr := "info"
	if env := strings.TrimSpace(os.Getenv(LevelEnv)); env != "" {
		levelStr = env
	} else if configured != "" {
		levelStr = configured
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
