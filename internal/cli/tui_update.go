package cli

import (
	"fmt"

	"github.com/Flyrell/daytask/internal/calendar"
	"github.com/Flyrell/daytask/internal/session"
	"github.com/Flyrell/daytask/internal/task"
	tea "github.com/charmbracelet/bubbletea"
)

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.updateAdding(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.focus = (m.focus + 1) % (paneAll + 1)
			return m, nil
		case "shift+tab":
			m.focus = (m.focus + paneAll) % (paneAll + 1)
			return m, nil
		case "a":
			return m.startAdd()
		}
		switch m.focus {
		case paneCalendar:
			return m.updateCalendar(msg)
		case paneTasks:
			return m.updateTasks(msg)
		case paneAll:
			return m.updateAll(msg)
		}
	}
	return m, nil
}

// updateCalendar moves the selection by a day or a week.
func (m tuiModel) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		return m.moveSelection(-1), nil
	case "right", "l":
		return m.moveSelection(1), nil
	case "up", "k":
		return m.moveSelection(-7), nil
	case "down", "j":
		return m.moveSelection(7), nil
	case "c":
		m.refresh(m.sess.Clear())
		m.dayTasks = nil
		m.cursor = 0
		m.info("Selection cleared")
	case "enter":
		m.focus = paneTasks
	}
	return m, nil
}

func (m tuiModel) moveSelection(days int) tuiModel {
	current := m.selectedKey()
	if current.IsZero() {
		current = calendar.KeyOf(m.sess.Calendar().Start)
		days = 0
	}
	next := calendar.KeyOf(current.Time().AddDate(0, 0, days))

	stale, err := m.sess.Select(next)
	if err != nil {
		// Stay on the edge of the rendered range.
		return m
	}
	m.footerMsg = ""
	m.cursor = 0
	m.refresh(stale)
	return m
}

func (m tuiModel) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.dayTasks)-1 {
			m.cursor++
		}
	case " ", "x", "enter":
		if len(m.dayTasks) > 0 {
			return m.toggle(m.selectedKey(), m.cursor), nil
		}
	case "d", "delete", "backspace":
		if len(m.dayTasks) > 0 {
			return m.remove(m.selectedKey(), m.cursor), nil
		}
	}
	return m, nil
}

// updateAll edits tasks through the all-tasks pane, which also reaches days
// outside the calendar range.
func (m tuiModel) updateAll(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.allCursor > 0 {
			m.allCursor--
		}
	case "down", "j":
		if m.allCursor < len(m.allTasks)-1 {
			m.allCursor++
		}
	case " ", "x", "enter":
		if d, ok := m.datedAt(); ok {
			return m.toggle(d.Key, d.Index), nil
		}
	case "d", "delete", "backspace":
		if d, ok := m.datedAt(); ok {
			return m.remove(d.Key, d.Index), nil
		}
	}
	return m, nil
}

func (m tuiModel) toggle(key calendar.DateKey, index int) tuiModel {
	t, stale, err := m.sess.Toggle(key, index)
	if err != nil {
		m.fail(err)
		return m
	}
	m.refresh(stale)
	if t.Done {
		m.info("Task done")
	} else {
		m.info("Task reopened")
	}
	return m.noteDegraded()
}

func (m tuiModel) remove(key calendar.DateKey, index int) tuiModel {
	t, stale, err := m.sess.Delete(key, index)
	if err != nil {
		m.fail(err)
		return m
	}
	m.refresh(stale)
	m.info(fmt.Sprintf("Removed %q", t.Text))
	return m.noteDegraded()
}

func (m tuiModel) startAdd() (tea.Model, tea.Cmd) {
	if m.selectedKey().IsZero() {
		m.info("Select a day first")
		return m, nil
	}
	m.adding = true
	m.footerMsg = ""
	m.input.SetValue("")
	return m, m.input.Focus()
}

// updateAdding routes keys to the text input until the task is submitted
// or cancelled.
func (m tuiModel) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			m.adding = false
			m.input.Blur()
			m.footerMsg = ""
			return m, nil
		case "enter":
			_, stale, err := m.sess.Add(m.input.Value())
			if err != nil {
				// Keep the input open so the text can be corrected.
				m.fail(err)
				return m, nil
			}
			m.adding = false
			m.input.Blur()
			m.input.SetValue("")
			m.refresh(stale)
			m.focus = paneTasks
			m.cursor = len(m.dayTasks) - 1
			m.info("Task added")
			return m.noteDegraded(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *tuiModel) info(msg string) {
	m.footerMsg = msg
	m.footerErr = false
}

func (m *tuiModel) fail(err error) {
	m.footerMsg = "Error: " + err.Error()
	m.footerErr = true
}

func (m tuiModel) noteDegraded() tuiModel {
	if m.sess.Degraded() {
		m.footerMsg += " (not saved: storage unavailable)"
	}
	return m
}

var _ tea.Model = tuiModel{}

// staleAll marks every view stale.
func staleAll(key calendar.DateKey) []session.Stale {
	return []session.Stale{
		{View: session.ViewCalendar},
		{View: session.ViewDay, Key: key},
		{View: session.ViewAll},
	}
}

// datedAt reports the all-tasks row under the cursor.
func (m tuiModel) datedAt() (task.Dated, bool) {
	if m.allCursor < 0 || m.allCursor >= len(m.allTasks) {
		return task.Dated{}, false
	}
	return m.allTasks[m.allCursor], true
}
