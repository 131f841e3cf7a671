package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#808080")).
			Padding(0, 1)
	activePaneStyle = paneStyle.BorderForeground(lipgloss.Color("#FF8C00"))
	cursorStyle     = lipgloss.NewStyle().Reverse(true)
)

func (m tuiModel) View() string {
	calBox := m.paneFrame(paneCalendar).Render(m.renderCalendarPane())
	taskBox := m.paneFrame(paneTasks).
		Width(max(m.width-lipgloss.Width(calBox)-4, 30)).
		Render(m.renderTaskPane())

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, calBox, " ", taskBox))
	b.WriteString("\n")
	b.WriteString(m.paneFrame(paneAll).Render(m.renderAllPane()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m tuiModel) paneFrame(p pane) lipgloss.Style {
	if m.focus == p && !m.adding {
		return activePaneStyle
	}
	return paneStyle
}

func (m tuiModel) renderCalendarPane() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(rangeTitle(m.sess.Calendar())))
	b.WriteString("\n")
	b.WriteString(renderGrid(m.sess.Cells(), m.selectedKey(), m.sess.Counts))
	return strings.TrimRight(b.String(), "\n")
}

func (m tuiModel) renderTaskPane() string {
	var b strings.Builder
	key := m.selectedKey()
	if key.IsZero() {
		b.WriteString(Silent("no day selected"))
		return b.String()
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("Tasks for %s", key)))
	b.WriteString("\n")

	if len(m.dayTasks) == 0 {
		b.WriteString(Silent("no tasks"))
	}
	for i, t := range m.dayTasks {
		line := fmt.Sprintf("%s %s", checkbox(t.Done), t.Text)
		switch {
		case m.focus == paneTasks && i == m.cursor && !m.adding:
			line = cursorStyle.Render(line)
		case t.Done:
			line = Done(line)
		}
		b.WriteString(line)
		if i < len(m.dayTasks)-1 {
			b.WriteString("\n")
		}
	}

	if m.adding {
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
	}
	return b.String()
}

// allPaneRows bounds the all-tasks pane so the grid stays on screen.
func (m tuiModel) allPaneRows() int {
	rows := m.height - 20
	if rows < 3 {
		return 3
	}
	return rows
}

func (m tuiModel) renderAllPane() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("All tasks"))
	b.WriteString("\n")

	if len(m.allTasks) == 0 {
		b.WriteString(Silent("no tasks yet"))
		return b.String()
	}

	// Scroll so the cursor row stays visible.
	limit := m.allPaneRows()
	first := 0
	if m.allCursor >= limit {
		first = m.allCursor - limit + 1
	}
	last := min(first+limit, len(m.allTasks))

	if first > 0 {
		b.WriteString(Silent(fmt.Sprintf("... %d above", first)))
		b.WriteString("\n")
	}
	for i := first; i < last; i++ {
		d := m.allTasks[i]
		line := fmt.Sprintf("%s %s %s", d.Key, checkbox(d.Task.Done), d.Task.Text)
		switch {
		case m.focus == paneAll && i == m.allCursor && !m.adding:
			line = cursorStyle.Render(line)
		case !m.sess.Calendar().ContainsKey(d.Key):
			line = Warning(line)
		case d.Task.Done:
			line = Done(line)
		}
		b.WriteString(line)
		if i < last-1 {
			b.WriteString("\n")
		}
	}
	if last < len(m.allTasks) {
		b.WriteString("\n")
		b.WriteString(Silent(fmt.Sprintf("... %d more", len(m.allTasks)-last)))
	}
	return b.String()
}

func (m tuiModel) renderFooter() string {
	var help string
	switch {
	case m.adding:
		help = "enter: add | esc: cancel"
	case m.focus == paneTasks:
		help = "↑↓: move | space: toggle | d: delete | a: add | tab: all tasks | q: quit"
	case m.focus == paneAll:
		help = "↑↓: move | space: toggle | d: delete | tab: calendar | q: quit"
	default:
		help = "←→: day | ↑↓: week | c: clear | enter/tab: tasks | a: add | q: quit"
	}

	switch {
	case m.footerMsg == "":
	case m.footerErr:
		return footerStyle.Render(help) + "\n" + Error(m.footerMsg)
	default:
		return footerStyle.Render(help) + "\n" + Info(m.footerMsg)
	}
	return footerStyle.Render(help)
}
