// Package content resolves topic locators against a docs root and renders
// the documents for display in a terminal.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/charmbracelet/glamour"
)

// Kind classifies a document by how it is rendered.
type Kind int

const (
	KindText Kind = iota
	KindMarkdown
	KindHTML
	KindRemote
)

var (
	ErrNotFound       = errors.New("document not found")
	ErrInvalidLocator = errors.New("invalid locator")
)

const (
	minWidth     = 20
	DefaultStyle = "dark"
)

// Document is a rendered topic.
type Document struct {
	Locator string
	Title   string
	Body    string
	Kind    Kind
}

// Foreign reports whether the document lives outside the docs root and was
// not rendered locally.
func (d Document) Foreign() bool {
	return d.Kind == KindRemote
}

// Loader reads documents from an fs.FS. It is safe for concurrent use.
type Loader struct {
	fsys fs.FS

	mu        sync.Mutex
	style     string
	renderers map[int]*glamour.TermRenderer
	html      *md.Converter
}

// NewLoader creates a loader rooted at fsys. style names a glamour standard
// style; empty uses DefaultStyle.
func NewLoader(fsys fs.FS, style string) *Loader {
	if style == "" {
		style = DefaultStyle
	}
	return &Loader{
		fsys:      fsys,
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
		html:      md.NewConverter("", true, nil),
	}
}

// SetStyle switches the glamour style used for subsequent renders.
func (l *Loader) SetStyle(style string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if style == "" || style == l.style {
		return
	}
	l.style = style
	l.renderers = make(map[int]*glamour.TermRenderer)
}

// Style returns the current glamour style.
func (l *Loader) Style() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.style
}

// Load resolves locator and renders it wrapped to width columns.
func (l *Loader) Load(locator string, width int) (Document, error) {
	if IsRemote(locator) {
		return remoteDocument(locator), nil
	}

	name, err := Clean(locator)
	if err != nil {
		return Document{}, err
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, fmt.Errorf("%w: %s", ErrNotFound, locator)
		}
		return Document{}, fmt.Errorf("read %s: %w", locator, err)
	}

	doc := Document{Locator: locator, Kind: kindOf(name)}
	source := string(data)

	switch doc.Kind {
	case KindHTML:
		converted, err := l.html.ConvertString(source)
		if err != nil {
			return Document{}, fmt.Errorf("convert %s: %w", locator, err)
		}
		source = converted
		fallthrough
	case KindMarkdown:
		doc.Title = Title([]byte(source))
		body, err := l.RenderMarkdown(source, width)
		if err != nil {
			return Document{}, fmt.Errorf("render %s: %w", locator, err)
		}
		doc.Body = body
	default:
		doc.Body = source
	}

	if doc.Title == "" {
		doc.Title = path.Base(name)
	}
	return doc, nil
}

// RenderMarkdown renders markdown source for the terminal.
func (l *Loader) RenderMarkdown(source string, width int) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, err := l.renderer(width)
	if err != nil {
		return "", err
	}
	return r.Render(source)
}

// renderer returns a cached renderer for width. Callers hold l.mu.
func (l *Loader) renderer(width int) (*glamour.TermRenderer, error) {
	if width < minWidth {
		width = minWidth
	}
	if r, ok := l.renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(l.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	l.renderers[width] = r
	return r, nil
}

// Clean turns a locator into a path valid for fs.FS lookups. Query strings
// and fragments are dropped.
func Clean(locator string) (string, error) {
	name := strings.TrimSpace(locator)
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if name == "" || !fs.ValidPath(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocator, locator)
	}
	return name, nil
}

// IsRemote reports whether locator points outside the docs root.
func IsRemote(locator string) bool {
	l := strings.ToLower(strings.TrimSpace(locator))
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

func kindOf(name string) Kind {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown":
		return KindMarkdown
	case ".html", ".htm":
		return KindHTML
	default:
		return KindText
	}
}

func remoteDocument(locator string) Document {
	return Document{
		Locator: locator,
		Title:   locator,
		Kind:    KindRemote,
		Body:    "This topic links to external content:\n\n  " + locator + "\n\nOpen it in a browser to read it.",
	}
}
