package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/five82/docshell/internal/nav"
)

// sidebar holds the search input and the list cursor. The rows themselves
// live in the controller.
type sidebar struct {
	search textinput.Model
	cursor int // row index, -1 when no topic is visible
	offset int // first list line shown
}

func newSidebar() sidebar {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search topics"
	ti.CharLimit = 64
	return sidebar{search: ti, cursor: -1}
}

// visibleTopics returns the row indexes of the visible topics.
func visibleTopics(rows []nav.Row) []int {
	out := make([]int, 0, len(rows))
	for i, r := range rows {
		if r.IsTopic() && r.Visible {
			out = append(out, i)
		}
	}
	return out
}

// syncCursor keeps the cursor on a visible topic, preferring the current
// position, then the selected topic, then the first visible topic.
func (s *sidebar) syncCursor(rows []nav.Row, selected int) {
	visible := visibleTopics(rows)
	if len(visible) == 0 {
		s.cursor = -1
		return
	}
	for _, i := range visible {
		if i == s.cursor {
			return
		}
	}
	for _, i := range visible {
		if i == selected {
			s.cursor = i
			return
		}
	}
	s.cursor = visible[0]
}

// move shifts the cursor by delta visible topics, stopping at the ends.
func (s *sidebar) move(rows []nav.Row, delta int) {
	visible := visibleTopics(rows)
	if len(visible) == 0 {
		s.cursor = -1
		return
	}
	pos := 0
	for i, r := range visible {
		if r == s.cursor {
			pos = i
			break
		}
	}
	s.cursor = visible[clamp(pos+delta, 0, len(visible)-1)]
}

func (s *sidebar) home(rows []nav.Row) {
	if visible := visibleTopics(rows); len(visible) > 0 {
		s.cursor = visible[0]
	}
}

func (s *sidebar) end(rows []nav.Row) {
	if visible := visibleTopics(rows); len(visible) > 0 {
		s.cursor = visible[len(visible)-1]
	}
}

// render draws the sidebar into a width x height block.
func (s *sidebar) render(m *Model, width, height int) string {
	styles := m.theme.Styles()
	inner := maxInt(width-2, 1)

	var b strings.Builder
	s.search.Width = maxInt(inner-len(s.search.Prompt)-1, 1)
	b.WriteString(s.search.View())
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", inner)))
	b.WriteString("\n")

	listHeight := maxInt(height-2, 1)
	rows := m.ctrl.Rows()
	if !m.ctrl.Matched() {
		b.WriteString(styles.MutedText.Render("No topics match"))
		return b.String()
	}

	lines := make([]string, 0, len(rows))
	cursorLine := 0
	selected, _ := m.ctrl.Selected()
	for i, r := range rows {
		if !r.Visible {
			continue
		}
		if !r.IsTopic() {
			lines = append(lines, styles.SectionHeader.Render(truncate(r.Label, inner)))
			continue
		}
		if i == s.cursor {
			cursorLine = len(lines)
		}
		marker := "  "
		if i == s.cursor && m.focus == focusList {
			marker = styles.Cursor.Render("› ")
		}
		label := padRight(truncate(r.Label, inner-2), inner-2)
		if i == selected {
			label = styles.Selected.Render(label)
		} else {
			label = styles.Text.Render(label)
		}
		lines = append(lines, marker+label)
	}

	s.scrollTo(cursorLine, listHeight)
	if s.offset > len(lines) {
		s.offset = maxInt(len(lines)-listHeight, 0)
	}
	end := minInt(s.offset+listHeight, len(lines))
	b.WriteString(strings.Join(lines[s.offset:end], "\n"))
	return b.String()
}

// scrollTo adjusts the offset so line stays within a window of height lines.
func (s *sidebar) scrollTo(line, height int) {
	if line < s.offset {
		s.offset = line
	}
	if line >= s.offset+height {
		s.offset = line - height + 1
	}
	if s.offset < 0 {
		s.offset = 0
	}
}
