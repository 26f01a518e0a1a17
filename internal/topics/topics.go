// Package topics defines the static topic tree shown in the docshell sidebar
// and loads it from TOML topic files.
package topics

import (
	"errors"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Topic is a named document with the locator of its content.
type Topic struct {
	Name string `toml:"name"`
	File string `toml:"file"`
}

// Section groups topics under one header.
type Section struct {
	Header string  `toml:"header"`
	Topics []Topic `toml:"topic"`
}

// Tree is the ordered list of sections. It is never mutated once loaded.
type Tree struct {
	Sections []Section `toml:"section"`
}

var (
	ErrEmptyHeader  = errors.New("section header is empty")
	ErrEmptySection = errors.New("section has no topics")
	ErrEmptyTopic   = errors.New("topic name or file is empty")
)

// Load reads and validates the topic file at path.
func Load(path string) (Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tree{}, fmt.Errorf("read topics: %w", err)
	}
	return Parse(data)
}

// Parse decodes a TOML topic tree and validates it.
func Parse(data []byte) (Tree, error) {
	var tree Tree
	if err := toml.Unmarshal(data, &tree); err != nil {
		return Tree{}, fmt.Errorf("parse topics: %w", err)
	}
	tree = tree.trimmed()
	if err := tree.Validate(); err != nil {
		return Tree{}, err
	}
	return tree, nil
}

// Validate reports every malformed section or topic in the tree.
func (t Tree) Validate() error {
	var errs []error
	for i, s := range t.Sections {
		if strings.TrimSpace(s.Header) == "" {
			errs = append(errs, fmt.Errorf("section %d: %w", i+1, ErrEmptyHeader))
		}
		if len(s.Topics) == 0 {
			errs = append(errs, fmt.Errorf("section %q: %w", s.Header, ErrEmptySection))
		}
		for j, topic := range s.Topics {
			if strings.TrimSpace(topic.Name) == "" || strings.TrimSpace(topic.File) == "" {
				errs = append(errs, fmt.Errorf("section %q topic %d: %w", s.Header, j+1, ErrEmptyTopic))
			}
		}
	}
	return errors.Join(errs...)
}

// First returns the first topic of the first section.
func (t Tree) First() (Topic, bool) {
	for _, s := range t.Sections {
		if len(s.Topics) > 0 {
			return s.Topics[0], true
		}
	}
	return Topic{}, false
}

// Len returns the number of topics across all sections.
func (t Tree) Len() int {
	n := 0
	for _, s := range t.Sections {
		n += len(s.Topics)
	}
	return n
}

// Empty reports whether the tree holds no topics at all.
func (t Tree) Empty() bool {
	return t.Len() == 0
}

func (t Tree) trimmed() Tree {
	out := Tree{Sections: make([]Section, len(t.Sections))}
	for i, s := range t.Sections {
		sec := Section{Header: strings.TrimSpace(s.Header), Topics: make([]Topic, len(s.Topics))}
		for j, topic := range s.Topics {
			sec.Topics[j] = Topic{
				Name: strings.TrimSpace(topic.Name),
				File: strings.TrimSpace(topic.File),
			}
		}
		out.Sections[i] = sec
	}
	return out
}
