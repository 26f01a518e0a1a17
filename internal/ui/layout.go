package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 1
	footerHeight = 1
	titleHeight  = 1
)

// bodyHeight is the height left for the sidebar and content pane.
func (m *Model) bodyHeight() int {
	return maxInt(m.height-headerHeight-footerHeight, 1)
}

// sidebarOuterWidth is the sidebar width including its border, or zero
// when the sidebar is hidden.
func (m *Model) sidebarOuterWidth() int {
	if !m.ctrl.SidebarVisible() {
		return 0
	}
	return minInt(m.sidebarWidth+1, maxInt(m.width-20, 0))
}

func (m *Model) contentWidth() int {
	return maxInt(m.width-m.sidebarOuterWidth(), 1)
}

// layout resizes the content pane to the current geometry and re-renders
// the document when the wrap width changed.
func (m *Model) layout() {
	width := maxInt(m.contentWidth()-2, 1)
	height := maxInt(m.bodyHeight()-titleHeight, 1)
	changed := width != m.content.viewport.Width
	m.content.setSize(width, height)
	if changed {
		m.content.refresh()
	}
}

// renderMain renders the full UI.
func (m *Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("docshell", styles.Logo)}
	if m.title != "" {
		parts = append(parts, bg.Render(truncate(m.title, maxInt(m.width-30, 10)), styles.Text))
	}
	left := bg.Join(parts, "  ")
	right := bg.Render(m.theme.Name, styles.MutedText)

	gap := maxInt(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + right)
}

func (m *Model) renderBody() string {
	height := m.bodyHeight()
	contentStyle := lipgloss.NewStyle().
		Width(m.contentWidth()).
		Height(height).
		MaxHeight(height).
		Padding(0, 1)
	pane := contentStyle.Render(m.renderContentPane())

	if !m.ctrl.SidebarVisible() {
		return pane
	}

	width := m.sidebarOuterWidth() - 1
	sidebarStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(m.theme.BorderColor(m.focus != focusContent))
	side := sidebarStyle.Render(m.sidebar.render(m, width, height))

	return lipgloss.JoinHorizontal(lipgloss.Top, side, pane)
}

func (m *Model) renderContentPane() string {
	styles := m.theme.Styles()
	title := styles.ContentTitle.Render(truncate(m.content.title(), maxInt(m.contentWidth()-4, 1)))
	if m.focus == focusContent {
		title = styles.ContentTitle.Foreground(m.theme.BorderColor(true)).Render(truncate(m.content.title(), maxInt(m.contentWidth()-4, 1)))
	}
	return title + "\n" + m.content.view(m)
}

func (m *Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	line := bg.FillLine(m.help.ShortHelpView(m.keys.shortHelp(m.focus)), maxInt(m.width-2, 0))
	return styles.Footer.Render(line)
}
