package nav

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/docshell/internal/topics"
)

type fakeSurface struct {
	requests []Request
	hookOK   bool
	hook     KeyHandler
}

func (s *fakeSurface) Navigate(req Request) { s.requests = append(s.requests, req) }

func (s *fakeSurface) HookKeys(h KeyHandler) bool {
	if !s.hookOK {
		return false
	}
	s.hook = h
	return true
}

func (s *fakeSurface) locator() string {
	if len(s.requests) == 0 {
		return ""
	}
	return s.requests[len(s.requests)-1].Locator
}

type fakeHost struct {
	focused int
	closed  int
	title   string
}

func (h *fakeHost) FocusSearch()          { h.focused++ }
func (h *fakeHost) Close()                { h.closed++ }
func (h *fakeHost) SetTitle(title string) { h.title = title }

// manualScheduler fires tasks only when the test advances time.
type manualScheduler struct {
	now   time.Time
	tasks []*manualTimer
}

type manualTimer struct {
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *manualScheduler) Schedule(d time.Duration, fn func()) Timer {
	t := &manualTimer{at: s.now.Add(d), fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *manualScheduler) Advance(d time.Duration) {
	s.now = s.now.Add(d)
	for _, t := range s.tasks {
		if !t.stopped && !t.fired && !t.at.After(s.now) {
			t.fired = true
			t.fn()
		}
	}
}

func (s *manualScheduler) Now() time.Time { return s.now }

func gettingStarted() topics.Tree {
	return topics.Tree{Sections: []topics.Section{{
		Header: "Getting Started",
		Topics: []topics.Topic{
			{Name: "Introduction", File: "intro.html"},
			{Name: "Installation", File: "install.html"},
		},
	}}}
}

type harness struct {
	ctrl    *Controller
	surface *fakeSurface
	host    *fakeHost
	sched   *manualScheduler
}

func newHarness(t *testing.T, tree topics.Tree) *harness {
	t.Helper()
	h := &harness{
		surface: &fakeSurface{hookOK: true},
		host:    &fakeHost{},
		sched:   &manualScheduler{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	h.ctrl = New(Options{
		Tree:      tree,
		Surface:   h.surface,
		Host:      h.host,
		Scheduler: h.sched,
		Now:       h.sched.Now,
	})
	return h
}

// settle fires the pending timer and reports the requested document as loaded.
func (h *harness) settle(t *testing.T) {
	t.Helper()
	h.sched.Advance(DefaultDelay)
	require.Equal(t, PhaseRequested, h.ctrl.Load().Phase)
	require.True(t, h.ctrl.SurfaceLoaded(h.ctrl.Load().Generation, nil))
}

func selectedCount(rows []Row, selected int) int {
	n := 0
	for i := range rows {
		if i == selected {
			n++
		}
	}
	return n
}

func visibleLabels(rows []Row) []string {
	var out []string
	for _, r := range rows {
		if r.Visible {
			out = append(out, r.Label)
		}
	}
	return out
}

func TestInitialize_SelectsFirstTopicAndLoadsIt(t *testing.T) {
	h := newHarness(t, gettingStarted())
	h.ctrl.Initialize()

	row, ok := h.ctrl.SelectedTopic()
	require.True(t, ok)
	assert.Equal(t, "Introduction", row.Label)
	idx, _ := h.ctrl.Selected()
	assert.Equal(t, 1, selectedCount(h.ctrl.Rows(), idx))

	// Placeholder goes up first.
	assert.Equal(t, PlaceholderLocator, h.surface.locator())
	assert.Equal(t, PhasePlaceholder, h.ctrl.Load().Phase)

	h.settle(t)
	assert.Equal(t, "intro.html", h.surface.locator())
	assert.Equal(t, PhaseLoaded, h.ctrl.Load().Phase)
	assert.Equal(t, "Documentation - Introduction", h.host.title)
}

func TestInitialize_EmptyTreeIsNoop(t *testing.T) {
	h := newHarness(t, topics.Tree{})
	h.ctrl.Initialize()

	_, ok := h.ctrl.Selected()
	assert.False(t, ok)
	assert.Empty(t, h.ctrl.Rows())
	assert.Empty(t, h.surface.requests)
	assert.Equal(t, PhaseIdle, h.ctrl.Load().Phase)
}

func TestSelectTopic_SwitchesSelection(t *testing.T) {
	h := newHarness(t, gettingStarted())
	h.ctrl.Initialize()
	h.settle(t)

	require.True(t, h.ctrl.SelectByName("Installation"))
	h.settle(t)

	row, ok := h.ctrl.SelectedTopic()
	require.True(t, ok)
	assert.Equal(t, "Installation", row.Label)
	assert.Equal(t, "install.html", h.surface.locator())
	assert.Equal(t, "Documentation - Installation", h.host.title)
}

func TestSelectTopic_TwiceKeepsSingleSelection(t *testing.T) {
	h := newHarness(t, gettingStarted())
	h.ctrl.Initialize()

	require.True(t, h.ctrl.SelectTopic(2))
	require.True(t, h.ctrl.SelectTopic(2))

	idx, ok := h.ctrl.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, 1, selectedCount(h.ctrl.Rows(), idx))
	assert.Equal(t, "Installation", h.ctrl.Rows()[idx].Label)
}

func TestSelectTopic_RejectsHeadersAndOutOfRange(t *testing.T) {
	h := newHarness(t, gettingStarted())
	h.ctrl.Initialize()

	assert.False(t, h.ctrl.SelectTopic(0))
	assert.False(t, h.ctrl.SelectTopic(-1))
	assert.False(t, h.ctrl.SelectTopic(99))
	assert.False(t, h.ctrl.SelectByName("Nope"))

	row, _ := h.ctrl.SelectedTopic()
	assert.Equal(t, "Introduction", row.Label)
}

func TestLoadContent_SupersededLoadNeverCommits(t *testing.T) {
	h := newHarness(t, gettingStarted())
	h.ctrl.Initialize()
	first := h.ctrl.Load().Generation

	// Select again before the first timer fires.
	h.sched.Advance(DefaultDelay / 2)
	h.ctrl.SelectByName("Installation")
	h.sched.Advance(DefaultDelay)

	for _, req := range h.surface.requests {
		assert.NotEqual(t, "intro.html", req.Locator, "superseded locator was requested")
	}
	assert.Equal(t, "install.html", h.surface.locator())

	// A late result for the first load is dropped.
	assert.False(t, h.ctrl.SurfaceLoaded(first, nil))
	assert.Equal(t, PhaseRequested, h.ctrl.Load().Phase)

	assert.True(t, h.ctrl.SurfaceLoaded(h.ctrl.Load().Generation, nil))
	assert.Equal(t, "Documentation - Installation", h.host.title)
}

func TestLoadContent_PlaceholderResultIsIgnored(t *testing.T) {
	h := newHarness(t, gettingStarted())
	h.ctrl.Initialize()

	assert.False(t, h.ctrl.SurfaceLoaded(h.ctrl.Load().Generation, nil))
	assert.Equal(t, PhasePlaceholder, h.ctrl.Load().Phase)
}

func TestLoadContent_NegativeDelayLoadsDirectly(t *testing.T) {
	surface := &fakeSurface{}
	ctrl := New(Options{Tree: gettingStarted(), Surface: surface, Delay: -1})
	ctrl.Initialize()

	require.Len(t, surface.requests, 2)
	assert.Equal(t, PlaceholderLocator, surface.requests[0].Locator)
	assert.Equal(t, "intro.html", surface.requests[1].Locator)
	assert.Equal(t, surface.requests[0].Generation, surface.requests[1].Generation)
}

func TestSurfaceLoaded_RecordsElapsed(t *testing.T) {
	h := newHarness(t, gettingStarted())
	h.ctrl.Initialize()
	h.sched.Advance(DefaultDelay)
	h.sched.Advance(200 * time.Millisecond)
	h.ctrl.SurfaceLoaded(h.ctrl.Load().Generation, nil)

	assert.Equal(t, DefaultDelay+200*time.Millisecond, h.ctrl.Load().Elapsed)
}

func TestSurfaceLoaded_FailureIsRecorded(t *testing.T) {
	h := newHarness(t, gettingStarted())
	h.ctrl.Initialize()
	h.sched.Advance(DefaultDelay)

	loadErr := errors.New("missing")
	require.True(t, h.ctrl.SurfaceLoaded(h.ctrl.Load().Generation, loadErr))

	state := h.ctrl.Load()
	assert.Equal(t, PhaseFailed, state.Phase)
	assert.ErrorIs(t, state.Err, loadErr)
	assert.Empty(t, h.host.title)
	assert.Nil(t, h.surface.hook)
}

func TestSurfaceLoaded_HookFailureIsNotFatal(t *testing.T) {
	h := newHarness(t, gettingStarted())
	h.surface.hookOK = false
	h.ctrl.Initialize()
	h.settle(t)

	assert.Equal(t, PhaseLoaded, h.ctrl.Load().Phase)
	assert.False(t, h.ctrl.Load().Hooked)
	assert.Equal(t, "Documentation - Introduction", h.host.title)
}

func TestSurfaceHook_RoutesShortcuts(t *testing.T) {
	h := newHarness(t, gettingStarted())
	h.ctrl.Initialize()
	h.settle(t)
	require.NotNil(t, h.surface.hook)

	assert.True(t, h.surface.hook("ctrl+s"))
	assert.False(t, h.ctrl.SidebarVisible())
	assert.Equal(t, 0, h.host.focused)

	assert.True(t, h.surface.hook("ctrl+s"))
	assert.True(t, h.ctrl.SidebarVisible())
	assert.Equal(t, 1, h.host.focused)

	assert.True(t, h.surface.hook("esc"))
	assert.Equal(t, 1, h.host.closed)

	assert.False(t, h.surface.hook("j"))
}

func TestFilterTopics(t *testing.T) {
	tree := topics.Tree{Sections: []topics.Section{
		{Header: "Getting Started", Topics: []topics.Topic{
			{Name: "Introduction", File: "intro.html"},
			{Name: "Installation", File: "install.html"},
		}},
		{Header: "Features", Topics: []topics.Topic{
			{Name: "Basic Features", File: "basic.html"},
			{Name: "Advanced Features", File: "advanced.html"},
		}},
	}}

	tests := []struct {
		name        string
		query       string
		wantMatch   bool
		wantVisible []string
	}{
		{
			name:        "empty shows everything",
			query:       "",
			wantMatch:   true,
			wantVisible: []string{"Getting Started", "Introduction", "Installation", "Features", "Basic Features", "Advanced Features"},
		},
		{
			name:        "case insensitive",
			query:       "INST",
			wantMatch:   true,
			wantVisible: []string{"Getting Started", "Installation"},
		},
		{
			name:        "matches across sections",
			query:       "ti",
			wantMatch:   true,
			wantVisible: []string{"Getting Started", "Introduction", "Installation"},
		},
		{
			name:        "header text alone does not match",
			query:       "getting",
			wantMatch:   false,
			wantVisible: nil,
		},
		{
			name:        "no match",
			query:       "zzz",
			wantMatch:   false,
			wantVisible: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tree)
			h.ctrl.Initialize()

			got := h.ctrl.FilterTopics(tt.query)
			assert.Equal(t, tt.wantMatch, got)
			assert.Equal(t, tt.wantMatch, h.ctrl.Matched())
			assert.Equal(t, tt.wantVisible, visibleLabels(h.ctrl.Rows()))
			assert.Equal(t, tt.query, h.ctrl.Filter())
		})
	}
}

func TestFilterTopics_HeaderFollowsChildren(t *testing.T) {
	h := newHarness(t, topics.Default())
	h.ctrl.Initialize()

	for _, q := range []string{"", "a", "feat", "faq", "x", "zzz", "IN"} {
		h.ctrl.FilterTopics(q)
		rows := h.ctrl.Rows()
		for i, r := range rows {
			if r.IsTopic() {
				assert.Equal(t, Match(r.Label, q), r.Visible, "topic %q query %q", r.Label, q)
				continue
			}
			anyChild := false
			for j := i + 1; j < len(rows) && rows[j].IsTopic(); j++ {
				anyChild = anyChild || rows[j].Visible
			}
			assert.Equal(t, anyChild, r.Visible, "header %q query %q", r.Label, q)
		}
	}
}

func TestGettingStartedScenario(t *testing.T) {
	h := newHarness(t, gettingStarted())
	h.ctrl.Initialize()
	h.settle(t)

	assert.True(t, h.ctrl.FilterTopics("inst"))
	assert.Equal(t, []string{"Getting Started", "Installation"}, visibleLabels(h.ctrl.Rows()))

	assert.False(t, h.ctrl.FilterTopics("zzz"))
	assert.Empty(t, visibleLabels(h.ctrl.Rows()))

	// Filtering never touches the selection.
	row, _ := h.ctrl.SelectedTopic()
	assert.Equal(t, "Introduction", row.Label)
}

func TestToggleSidebar_IsInvolution(t *testing.T) {
	h := newHarness(t, gettingStarted())
	before := h.ctrl.SidebarVisible()

	assert.Equal(t, !before, h.ctrl.ToggleSidebar())
	assert.True(t, h.ctrl.FullWidth())
	assert.Equal(t, before, h.ctrl.ToggleSidebar())
	assert.False(t, h.ctrl.FullWidth())
}

func TestHandleKey_HostShortcuts(t *testing.T) {
	h := newHarness(t, gettingStarted())

	assert.True(t, h.ctrl.HandleKey("ctrl+s"))
	assert.False(t, h.ctrl.SidebarVisible())
	assert.True(t, h.ctrl.HandleKey("ctrl+s"))
	assert.Equal(t, 1, h.host.focused)

	assert.True(t, h.ctrl.HandleKey("esc"))
	assert.Equal(t, 1, h.host.closed)

	assert.False(t, h.ctrl.HandleKey("enter"))
}

func TestMatch(t *testing.T) {
	assert.True(t, Match("Installation", ""))
	assert.True(t, Match("Installation", "STALL"))
	assert.False(t, Match("Installation", "intro"))
}
