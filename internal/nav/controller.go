package nav

import (
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/five82/docshell/internal/topics"
)

const (
	// DefaultDelay is how long the placeholder stays up before the real
	// content is requested.
	DefaultDelay = 800 * time.Millisecond

	// PlaceholderLocator is the locator shown while a topic is loading.
	PlaceholderLocator = "about:loading"

	titlePrefix = "Documentation - "
)

// Request tells a Surface what to display. Generation identifies the load
// the request belongs to and must be echoed back through SurfaceLoaded.
type Request struct {
	Locator    string
	Name       string
	Generation uint64
}

// Placeholder reports whether the request is for the loading placeholder.
func (r Request) Placeholder() bool {
	return r.Locator == PlaceholderLocator
}

// KeyHandler receives a key name (for example "ctrl+s") and reports whether
// it consumed the key.
type KeyHandler func(key string) bool

// Surface displays content by locator.
type Surface interface {
	Navigate(req Request)
	// HookKeys installs h on the currently displayed document. It returns
	// false when the document cannot route keys back to the controller.
	HookKeys(h KeyHandler) bool
}

// Host is the program that embeds the sidebar and the surface.
type Host interface {
	FocusSearch()
	Close()
	SetTitle(title string)
}

// Timer is a scheduled task that can be cancelled before it runs.
type Timer interface {
	Stop() bool
}

// Scheduler runs fn once after d.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Timer
}

// Options configure a Controller.
type Options struct {
	Tree        topics.Tree
	Surface     Surface
	Host        Host
	Scheduler   Scheduler
	Logger      logrus.FieldLogger
	Delay       time.Duration // zero uses DefaultDelay, negative loads directly
	Placeholder string        // empty uses PlaceholderLocator
	Now         func() time.Time
}

// Controller holds navigation state for one docshell session.
type Controller struct {
	tree        topics.Tree
	surface     Surface
	host        Host
	scheduler   Scheduler
	log         logrus.FieldLogger
	delay       time.Duration
	placeholder string
	now         func() time.Time

	rows           []Row
	selected       int // row index, -1 when nothing is selected
	filter         string
	matched        bool
	sidebarVisible bool

	load    LoadState
	pending Timer
}

// New creates a controller. Initialize must be called before use.
func New(opts Options) *Controller {
	delay := opts.Delay
	if delay == 0 {
		delay = DefaultDelay
	}
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = PlaceholderLocator
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	log := opts.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Controller{
		tree:           opts.Tree,
		surface:        opts.Surface,
		host:           opts.Host,
		scheduler:      opts.Scheduler,
		log:            log,
		delay:          delay,
		placeholder:    placeholder,
		now:            now,
		selected:       -1,
		matched:        true,
		sidebarVisible: true,
	}
}

// Initialize builds the rows and loads the first topic of the first
// section. An empty tree leaves the controller with no rows and no load.
func (c *Controller) Initialize() {
	c.rows = buildRows(c.tree)
	c.selected = -1
	c.filter = ""
	c.matched = true

	if c.tree.Empty() {
		c.log.Warn("topic tree is empty, nothing to display")
		return
	}
	for i, r := range c.rows {
		if r.IsTopic() {
			c.SelectTopic(i)
			return
		}
	}
}

// SelectTopic marks the topic at row as the only selected row and starts
// loading its content. It returns false when row is not a topic.
func (c *Controller) SelectTopic(row int) bool {
	if row < 0 || row >= len(c.rows) || !c.rows[row].IsTopic() {
		return false
	}
	c.selected = row
	r := c.rows[row]
	c.LoadContent(r.Locator, r.Label)
	return true
}

// SelectByName selects the first topic whose name equals name.
func (c *Controller) SelectByName(name string) bool {
	for i, r := range c.rows {
		if r.IsTopic() && r.Label == name {
			return c.SelectTopic(i)
		}
	}
	return false
}

// FilterTopics applies a case-insensitive substring filter to topic names.
// A header stays visible only when a topic beneath it is visible. It
// returns whether any topic matched.
func (c *Controller) FilterTopics(text string) bool {
	c.filter = text
	foundAny := false
	lastHeader := -1

	for i := range c.rows {
		row := &c.rows[i]
		if row.Kind == RowHeader {
			row.Visible = false
			lastHeader = i
			continue
		}
		row.Visible = Match(row.Label, text)
		if !row.Visible {
			continue
		}
		foundAny = true
		if lastHeader >= 0 {
			c.rows[lastHeader].Visible = true
		}
	}

	c.matched = foundAny
	c.log.WithFields(logrus.Fields{"filter": text, "matched": foundAny}).Debug("filtered topics")
	return foundAny
}

// ToggleSidebar flips sidebar visibility and returns the new state.
func (c *Controller) ToggleSidebar() bool {
	c.sidebarVisible = !c.sidebarVisible
	return c.sidebarVisible
}

// HandleKey routes the controller shortcuts. It is used both by the host
// and, through HookKeys, by the content surface.
func (c *Controller) HandleKey(key string) bool {
	switch strings.ToLower(key) {
	case KeyToggleSidebar:
		if c.ToggleSidebar() && c.host != nil {
			c.host.FocusSearch()
		}
		return true
	case KeyClose:
		if c.host != nil {
			c.host.Close()
		}
		return true
	}
	return false
}

// Rows returns a copy of the rendered rows.
func (c *Controller) Rows() []Row {
	out := make([]Row, len(c.rows))
	copy(out, c.rows)
	return out
}

// Selected returns the selected row index.
func (c *Controller) Selected() (int, bool) {
	return c.selected, c.selected >= 0
}

// SelectedTopic returns the selected row.
func (c *Controller) SelectedTopic() (Row, bool) {
	if c.selected < 0 {
		return Row{}, false
	}
	return c.rows[c.selected], true
}

// Filter returns the current search text.
func (c *Controller) Filter() string { return c.filter }

// Matched reports whether the last filter matched any topic.
func (c *Controller) Matched() bool { return c.matched }

// SidebarVisible reports whether the sidebar is shown.
func (c *Controller) SidebarVisible() bool { return c.sidebarVisible }

// FullWidth reports whether the content area spans the whole width.
func (c *Controller) FullWidth() bool { return !c.sidebarVisible }

// Tree returns the topic tree the controller was built with.
func (c *Controller) Tree() topics.Tree { return c.tree }
