package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// Line is one log line with the level it was written at.
type Line struct {
	Text     string
	Level    logrus.Level
	HasLevel bool
}

var textLevel = regexp.MustCompile(`^(?:time="[^"]*"\s+)?level="?(\w+)`)

// Read returns the last maxLines lines of the file at path, or every line
// when maxLines <= 0. A missing file yields no lines.
func Read(path string, maxLines int) ([]Line, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var (
		all   []string
		ring  []string
		count int
		idx   int
	)
	if maxLines > 0 {
		ring = make([]string, maxLines)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if maxLines <= 0 {
			all = append(all, scanner.Text())
			continue
		}
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if maxLines > 0 {
		all = make([]string, count)
		if count == maxLines {
			for i := 0; i < count; i++ {
				all[i] = ring[(idx+i)%maxLines]
			}
		} else {
			copy(all, ring[:count])
		}
	}

	lines := make([]Line, len(all))
	for i, text := range all {
		lines[i] = Parse(text)
	}
	return lines, nil
}

// Parse extracts the level from a logrus text or JSON formatted line.
func Parse(text string) Line {
	line := Line{Text: text}

	var raw string
	if trimmed := strings.TrimSpace(text); strings.HasPrefix(trimmed, "{") {
		var fields struct {
			Level string `json:"level"`
		}
		if err := json.Unmarshal([]byte(trimmed), &fields); err == nil {
			raw = fields.Level
		}
	} else if m := textLevel.FindStringSubmatch(text); m != nil {
		raw = m[1]
	}

	if raw == "" {
		return line
	}
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		return line
	}
	line.Level = level
	line.HasLevel = true
	return line
}

// Filter keeps lines at or above min severity. Lines without a level are
// kept as continuation output.
func Filter(lines []Line, min logrus.Level) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if !l.HasLevel || l.Level <= min {
			out = append(out, l)
		}
	}
	return out
}
