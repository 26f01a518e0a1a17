package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/docshell/internal/config"
	"github.com/five82/docshell/internal/docs"
	"github.com/five82/docshell/internal/topics"
)

// Sources is the topic tree together with the filesystem its locators
// resolve against.
type Sources struct {
	Tree topics.Tree
	FS   fs.FS
	// Root is the docs directory on disk. It is empty for the embedded pages.
	Root string
	// Origin describes where the tree came from, for logging.
	Origin string
}

// Embedded reports whether the sources are the built-in pages.
func (s Sources) Embedded() bool {
	return s.Root == ""
}

// ResolveSources picks the topic tree and docs filesystem for cfg:
//
//   - an explicit topics_file is loaded, with locators relative to docs_dir
//     or, without one, to the topics file's directory
//   - a docs_dir with a topics.toml uses that file
//   - a docs_dir without one is scanned for documents
//   - otherwise the embedded pages are used
func ResolveSources(cfg config.Config) (Sources, error) {
	docsDir := strings.TrimSpace(cfg.DocsDir)
	topicsFile := strings.TrimSpace(cfg.TopicsFile)

	if topicsFile != "" {
		tree, err := topics.Load(topicsFile)
		if err != nil {
			return Sources{}, err
		}
		root := docsDir
		if root == "" {
			root = filepath.Dir(topicsFile)
		}
		if err := checkDir(root); err != nil {
			return Sources{}, err
		}
		return Sources{Tree: tree, FS: os.DirFS(root), Root: root, Origin: topicsFile}, nil
	}

	if docsDir == "" {
		return Sources{Tree: topics.Default(), FS: docs.FS(), Origin: "embedded"}, nil
	}

	if err := checkDir(docsDir); err != nil {
		return Sources{}, err
	}
	fsys := os.DirFS(docsDir)
	path := cfg.TopicsPath()
	tree, err := topics.Load(path)
	switch {
	case err == nil:
		return Sources{Tree: tree, FS: fsys, Root: docsDir, Origin: path}, nil
	case !errors.Is(err, fs.ErrNotExist):
		return Sources{}, err
	}

	tree, err = topics.Scan(fsys)
	if err != nil {
		return Sources{}, fmt.Errorf("scan %s: %w", docsDir, err)
	}
	return Sources{Tree: tree, FS: fsys, Root: docsDir, Origin: "scan"}, nil
}

func checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("docs dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("docs dir %s is not a directory", dir)
	}
	return nil
}
