package topics

import (
	"errors"
	"io/fs"
	"path"
	"strings"
)

// RootHeader is the section header for documents at the top of a scanned
// directory.
const RootHeader = "Documentation"

// ErrNoDocuments is returned by Scan when the directory holds no documents.
var ErrNoDocuments = errors.New("no documents found")

var documentExts = map[string]bool{
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".txt":      true,
}

// Scan builds a tree from the documents in fsys. Every directory holding
// documents becomes a section, in lexical order with the root first. Hidden
// files and directories are skipped.
func Scan(fsys fs.FS) (Tree, error) {
	var tree Tree
	index := make(map[string]int)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !documentExts[strings.ToLower(path.Ext(p))] {
			return nil
		}

		dir := path.Dir(p)
		i, ok := index[dir]
		if !ok {
			i = len(tree.Sections)
			index[dir] = i
			tree.Sections = append(tree.Sections, Section{Header: headerFor(dir)})
		}
		tree.Sections[i].Topics = append(tree.Sections[i].Topics, Topic{
			Name: displayName(strings.TrimSuffix(d.Name(), path.Ext(p))),
			File: p,
		})
		return nil
	})
	if err != nil {
		return Tree{}, err
	}
	if tree.Empty() {
		return Tree{}, ErrNoDocuments
	}
	if i, ok := index["."]; ok && i > 0 {
		root := tree.Sections[i]
		copy(tree.Sections[1:i+1], tree.Sections[:i])
		tree.Sections[0] = root
	}
	return tree, nil
}

func headerFor(dir string) string {
	if dir == "." {
		return RootHeader
	}
	parts := strings.Split(dir, "/")
	for i, part := range parts {
		parts[i] = displayName(part)
	}
	return strings.Join(parts, " / ")
}

// displayName turns "getting-started" into "Getting Started".
func displayName(base string) string {
	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return base
	}
	return strings.Join(words, " ")
}
