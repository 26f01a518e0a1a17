package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/docshell/internal/content"
	"github.com/five82/docshell/internal/nav"
)

type paneState int

const (
	paneEmpty paneState = iota
	paneLoading
	paneRendering
	paneReady
	paneFailed
)

// documentMsg carries a rendered document back to the update loop.
type documentMsg struct {
	req     nav.Request
	doc     content.Document
	err     error
	refresh bool
}

// contentPane is the document surface. It implements nav.Surface.
type contentPane struct {
	loader *content.Loader
	queue  *cmdQueue

	state    paneState
	req      nav.Request
	doc      content.Document
	err      error
	stale    bool // resized while rendering
	hook     nav.KeyHandler
	viewport viewport.Model
	spinner  spinner.Model
}

func newContentPane(loader *content.Loader, queue *cmdQueue) *contentPane {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &contentPane{
		loader:   loader,
		queue:    queue,
		viewport: viewport.New(0, 0),
		spinner:  s,
	}
}

// Navigate implements nav.Surface.
func (p *contentPane) Navigate(req nav.Request) {
	p.req = req
	p.hook = nil
	p.err = nil
	p.stale = false

	if req.Placeholder() {
		p.state = paneLoading
		p.doc = content.Document{}
		p.queue.push(p.spinner.Tick)
		return
	}
	p.state = paneRendering
	p.queue.push(p.render(req, false))
}

// HookKeys implements nav.Surface. Only documents rendered from the docs
// root accept the hook.
func (p *contentPane) HookKeys(h nav.KeyHandler) bool {
	if p.state != paneReady || p.doc.Foreign() {
		return false
	}
	p.hook = h
	return true
}

// handleKey offers key to the installed hook.
func (p *contentPane) handleKey(key string) bool {
	if p.hook == nil || p.state != paneReady {
		return false
	}
	return p.hook(key)
}

func (p *contentPane) render(req nav.Request, refresh bool) tea.Cmd {
	loader := p.loader
	width := p.textWidth()
	return func() tea.Msg {
		doc, err := loader.Load(req.Locator, width)
		return documentMsg{req: req, doc: doc, err: err, refresh: refresh}
	}
}

// refresh re-renders the displayed document in place.
func (p *contentPane) refresh() {
	switch p.state {
	case paneReady, paneFailed:
		p.queue.push(p.render(p.req, true))
	case paneRendering:
		p.stale = true
	}
}

// current reports whether msg belongs to the request on display.
func (p *contentPane) current(msg documentMsg) bool {
	if p.req.Placeholder() || p.state == paneEmpty || p.state == paneLoading {
		return false
	}
	return msg.req.Generation == p.req.Generation && msg.req.Locator == p.req.Locator
}

func (p *contentPane) apply(msg documentMsg) {
	if msg.err != nil {
		p.state = paneFailed
		p.err = msg.err
		p.doc = content.Document{Locator: msg.req.Locator, Title: msg.req.Name}
		p.viewport.SetContent(p.errorPage(msg.req, msg.err))
	} else {
		p.state = paneReady
		p.err = nil
		p.doc = msg.doc
		p.viewport.SetContent(msg.doc.Body)
	}
	if !msg.refresh {
		p.viewport.GotoTop()
	}
	if p.stale {
		p.stale = false
		p.refresh()
	}
}

func (p *contentPane) errorPage(req nav.Request, err error) string {
	var src string
	if errors.Is(err, content.ErrNotFound) {
		src = fmt.Sprintf("# Topic Not Found\n\nThe file for '%s' was not found.\n", req.Name)
	} else {
		src = fmt.Sprintf("# Topic Could Not Be Loaded\n\n'%s' failed to load:\n\n    %v\n", req.Name, err)
	}
	out, rerr := p.loader.RenderMarkdown(src, p.textWidth())
	if rerr != nil {
		return src
	}
	return out
}

func (p *contentPane) setSize(width, height int) {
	p.viewport.Width = maxInt(width, 1)
	p.viewport.Height = maxInt(height, 1)
}

func (p *contentPane) textWidth() int {
	return maxInt(p.viewport.Width-2, 1)
}

// title returns the heading shown above the document.
func (p *contentPane) title() string {
	if p.doc.Title != "" {
		return p.doc.Title
	}
	return p.req.Name
}

func (p *contentPane) view(m *Model) string {
	styles := m.theme.Styles()
	switch p.state {
	case paneEmpty:
		return styles.MutedText.Render("No topic selected")
	case paneLoading, paneRendering:
		name := strings.TrimSpace(p.req.Name)
		return p.spinner.View() + " " + styles.MutedText.Render("Loading "+name+"...")
	default:
		return p.viewport.View()
	}
}
