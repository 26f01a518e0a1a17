package ui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/five82/docshell/internal/content"
	"github.com/five82/docshell/internal/docs"
	"github.com/five82/docshell/internal/nav"
	"github.com/five82/docshell/internal/prefs"
	"github.com/five82/docshell/internal/topics"
)

// focusArea is the part of the screen receiving keys.
type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusContent
)

const sidebarStep = 2

// Options configures the UI.
type Options struct {
	Context      context.Context
	Tree         topics.Tree
	Loader       *content.Loader
	Logger       logrus.FieldLogger
	Delay        time.Duration // zero uses nav.DefaultDelay
	ThemeName    string
	SidebarWidth int
	PrefsPath    string        // empty disables saving preferences
	Changes      <-chan string // docs-relative paths that changed on disk
}

// Model is the root application state for Bubble Tea. It implements
// nav.Host for the navigation controller it owns.
type Model struct {
	ctx       context.Context
	log       logrus.FieldLogger
	loader    *content.Loader
	prefsPath string
	changes   <-chan string

	ctrl    *nav.Controller
	cmds    *cmdQueue
	sched   *scheduler
	sidebar sidebar
	content *contentPane

	// UI state
	keys         keyMap
	help         help.Model
	theme        Theme
	sidebarWidth int
	focus        focusArea
	width        int
	height       int
	ready        bool
	showHelp     bool
	title        string
	quitting     bool
}

// New creates the model and initializes navigation, which queues the
// first topic load.
func New(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	log := opts.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	theme := GetTheme(opts.ThemeName)
	loader := opts.Loader
	if loader == nil {
		loader = content.NewLoader(docs.FS(), theme.GlamourStyle)
	}
	loader.SetStyle(theme.GlamourStyle)

	width := opts.SidebarWidth
	if width == 0 {
		width = prefs.Defaults().SidebarWidth
	}

	queue := &cmdQueue{}
	m := &Model{
		ctx:          ctx,
		log:          log,
		loader:       loader,
		prefsPath:    opts.PrefsPath,
		changes:      opts.Changes,
		cmds:         queue,
		sched:        newScheduler(queue),
		sidebar:      newSidebar(),
		content:      newContentPane(loader, queue),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		theme:        theme,
		sidebarWidth: prefs.ClampSidebarWidth(width),
		focus:        focusList,
	}
	m.ctrl = nav.New(nav.Options{
		Tree:      opts.Tree,
		Surface:   m.content,
		Host:      m,
		Scheduler: m.sched,
		Logger:    log,
		Delay:     opts.Delay,
	})
	m.ctrl.Initialize()
	selected, _ := m.ctrl.Selected()
	m.sidebar.syncCursor(m.ctrl.Rows(), selected)
	return m
}

// Controller returns the navigation controller driving the model.
func (m *Model) Controller() *nav.Controller {
	return m.ctrl
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.cmds.drain(), waitForChange(m.changes), watchContext(m.ctx))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		m.ready = true

	case timerMsg:
		m.sched.fire(msg.id)

	case documentMsg:
		m.handleDocument(msg)

	case spinner.TickMsg:
		if m.content.state == paneLoading || m.content.state == paneRendering {
			var cmd tea.Cmd
			m.content.spinner, cmd = m.content.spinner.Update(msg)
			m.cmds.push(cmd)
		}

	case fileChangedMsg:
		m.handleFileChanged(msg)

	case contextDoneMsg:
		m.Close()
	}

	return m, m.cmds.drain()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// FocusSearch implements nav.Host.
func (m *Model) FocusSearch() {
	m.setFocus(focusSearch)
}

// Close implements nav.Host.
func (m *Model) Close() {
	if m.quitting {
		return
	}
	m.quitting = true
	m.cmds.push(tea.Quit)
}

// SetTitle implements nav.Host.
func (m *Model) SetTitle(title string) {
	m.title = title
	m.cmds.push(tea.SetWindowTitle(title))
}

func (m *Model) handleDocument(msg documentMsg) {
	if !m.content.current(msg) {
		m.log.WithFields(logrus.Fields{
			"locator":    msg.req.Locator,
			"generation": msg.req.Generation,
		}).Debug("discarding superseded document")
		return
	}
	m.content.apply(msg)
	if msg.refresh {
		return
	}
	m.ctrl.SurfaceLoaded(msg.req.Generation, msg.err)
}

func (m *Model) handleFileChanged(msg fileChangedMsg) {
	m.cmds.push(waitForChange(m.changes))
	name, err := content.Clean(m.content.req.Locator)
	if err != nil || name != msg.path {
		return
	}
	m.log.WithField("path", msg.path).Debug("displayed document changed, refreshing")
	m.content.refresh()
}

// handleKey processes keyboard input for the focused area.
func (m *Model) handleKey(msg tea.KeyMsg) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return
	}
	if key.Matches(msg, m.keys.Quit) {
		m.Close()
		return
	}

	switch m.focus {
	case focusSearch:
		m.handleSearchKey(msg)
	case focusContent:
		m.handleContentKey(msg)
	default:
		m.handleListKey(msg)
	}
	m.ensureFocus()
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) {
	if m.ctrl.HandleKey(msg.String()) {
		return
	}
	if key.Matches(msg, m.keys.LeaveSearch) {
		m.setFocus(focusList)
		return
	}

	var cmd tea.Cmd
	m.sidebar.search, cmd = m.sidebar.search.Update(msg)
	m.cmds.push(cmd)
	if text := m.sidebar.search.Value(); text != m.ctrl.Filter() {
		m.ctrl.FilterTopics(text)
		selected, _ := m.ctrl.Selected()
		m.sidebar.syncCursor(m.ctrl.Rows(), selected)
	}
}

func (m *Model) handleListKey(msg tea.KeyMsg) {
	if m.ctrl.HandleKey(msg.String()) {
		return
	}

	rows := m.ctrl.Rows()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.sidebar.move(rows, -1)
	case key.Matches(msg, m.keys.Down):
		m.sidebar.move(rows, 1)
	case key.Matches(msg, m.keys.Top):
		m.sidebar.home(rows)
	case key.Matches(msg, m.keys.Bottom):
		m.sidebar.end(rows)
	case key.Matches(msg, m.keys.Open):
		if m.sidebar.cursor >= 0 {
			m.ctrl.SelectTopic(m.sidebar.cursor)
		}
	case key.Matches(msg, m.keys.Search):
		m.setFocus(focusSearch)
	case key.Matches(msg, m.keys.NextPane):
		m.cycleFocus()
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Narrower):
		m.resizeSidebar(-sidebarStep)
	case key.Matches(msg, m.keys.Wider):
		m.resizeSidebar(sidebarStep)
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	default:
		m.scrollContent(msg)
	}
}

func (m *Model) handleContentKey(msg tea.KeyMsg) {
	if m.content.handleKey(msg.String()) {
		return
	}
	// Pages without a hook still get the host shortcuts.
	if m.ctrl.HandleKey(msg.String()) {
		return
	}

	switch {
	case key.Matches(msg, m.keys.NextPane):
		m.cycleFocus()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Up):
		m.content.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.content.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Top):
		m.content.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.content.viewport.GotoBottom()
	default:
		m.scrollContent(msg)
	}
}

// scrollContent handles the paging keys shared by the list and content.
func (m *Model) scrollContent(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.PageUp):
		m.content.viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.content.viewport.PageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.content.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.content.viewport.HalfPageDown()
	}
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusSearch {
		m.cmds.push(m.sidebar.search.Focus())
		return
	}
	m.sidebar.search.Blur()
}

// cycleFocus moves focus search -> list -> content -> search. With the
// sidebar hidden the content keeps focus.
func (m *Model) cycleFocus() {
	if !m.ctrl.SidebarVisible() {
		m.setFocus(focusContent)
		return
	}
	switch m.focus {
	case focusSearch:
		m.setFocus(focusList)
	case focusList:
		m.setFocus(focusContent)
	default:
		m.setFocus(focusSearch)
	}
}

// ensureFocus keeps focus off the sidebar while it is hidden and re-lays
// out the panes after a visibility change.
func (m *Model) ensureFocus() {
	if !m.ctrl.SidebarVisible() && m.focus != focusContent {
		m.setFocus(focusContent)
	}
	m.layout()
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.loader.SetStyle(m.theme.GlamourStyle)
	m.content.refresh()
	m.savePrefs()
}

func (m *Model) resizeSidebar(delta int) {
	width := prefs.ClampSidebarWidth(m.sidebarWidth + delta)
	if width == m.sidebarWidth {
		return
	}
	m.sidebarWidth = width
	m.layout()
	m.savePrefs()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, SidebarWidth: m.sidebarWidth}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.WithError(err).Warn("save preferences failed")
	}
}

// Messages

type fileChangedMsg struct {
	path string
}

type contextDoneMsg struct{}

// Commands

func waitForChange(changes <-chan string) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-changes
		if !ok {
			return nil
		}
		return fileChangedMsg{path: path}
	}
}

func watchContext(ctx context.Context) tea.Cmd {
	if ctx.Done() == nil {
		return nil
	}
	return func() tea.Msg {
		<-ctx.Done()
		return contextDoneMsg{}
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
