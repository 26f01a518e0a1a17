package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/docshell/internal/nav"
)

// cmdQueue collects commands produced while the model is being updated so
// they can be returned from Update in one batch.
type cmdQueue struct {
	cmds []tea.Cmd
}

func (q *cmdQueue) push(cmd tea.Cmd) {
	if cmd != nil {
		q.cmds = append(q.cmds, cmd)
	}
}

func (q *cmdQueue) drain() tea.Cmd {
	if len(q.cmds) == 0 {
		return nil
	}
	cmds := q.cmds
	q.cmds = nil
	return tea.Batch(cmds...)
}

// timerMsg fires a scheduled task.
type timerMsg struct {
	id uint64
}

// scheduler implements nav.Scheduler on top of tea.Tick so that scheduled
// tasks run inside Update, on the same goroutine as every other state
// change.
type scheduler struct {
	queue *cmdQueue
	next  uint64
	tasks map[uint64]func()
}

func newScheduler(queue *cmdQueue) *scheduler {
	return &scheduler{
		queue: queue,
		tasks: make(map[uint64]func()),
	}
}

// Schedule implements nav.Scheduler.
func (s *scheduler) Schedule(d time.Duration, fn func()) nav.Timer {
	s.next++
	id := s.next
	s.tasks[id] = fn
	s.queue.push(tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
	return &teaTimer{s: s, id: id}
}

// fire runs the task for id unless it was stopped or already ran.
func (s *scheduler) fire(id uint64) bool {
	fn, ok := s.tasks[id]
	if !ok {
		return false
	}
	delete(s.tasks, id)
	fn()
	return true
}

func (s *scheduler) pending() int {
	return len(s.tasks)
}

type teaTimer struct {
	s  *scheduler
	id uint64
}

// Stop implements nav.Timer. The tick still arrives but finds no task.
func (t *teaTimer) Stop() bool {
	if _, ok := t.s.tasks[t.id]; !ok {
		return false
	}
	delete(t.s.tasks, t.id)
	return true
}
