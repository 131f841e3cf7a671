package cli

import (
	"io"
	"os"
	"time"

	"github.com/Flyrell/daytask/internal/calendar"
	"github.com/Flyrell/daytask/internal/session"
	"github.com/Flyrell/daytask/internal/task"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var tuiCmd = LeafCommand{
	Use:      "tui",
	Short:    "Browse the calendar and edit tasks interactively",
	StrFlags: []StringFlag{dateFlag},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		date, _ := cmd.Flags().GetString("date")
		return runTUI(cmd, homeDir, date, time.Now)
	},
}.Build()

// pane identifies which part of the TUI receives keys.
type pane int

const (
	paneCalendar pane = iota
	paneTasks
	paneAll
)

type tuiModel struct {
	sess      *session.Session
	focus     pane
	cursor    int // selected task in the day pane
	allCursor int // selected task in the all-tasks pane
	dayTasks  []task.Task
	allTasks  []task.Dated
	input     textinput.Model
	adding    bool
	footerMsg string
	footerErr bool
	width     int
	height    int
}

func newTUIModel(sess *session.Session) tuiModel {
	ti := textinput.New()
	ti.Placeholder = "what needs doing?"
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := tuiModel{
		sess:   sess,
		input:  ti,
		width:  100,
		height: 30,
	}
	key, _ := sess.Selected()
	m.refresh(staleAll(key))
	return m
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

// refresh reloads the cached views named by stale. The calendar grid is
// rendered from the session directly and needs no cache.
func (m *tuiModel) refresh(stale []session.Stale) {
	selected, _ := m.sess.Selected()
	for _, s := range stale {
		switch s.View {
		case session.ViewDay:
			if s.Key == selected {
				m.dayTasks = m.sess.Tasks(selected)
			}
		case session.ViewAll:
			m.allTasks = m.sess.AllTasks()
		}
	}
	m.cursor = clampCursor(m.cursor, len(m.dayTasks))
	m.allCursor = clampCursor(m.allCursor, len(m.allTasks))
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// selectedKey returns the current selection or the zero key.
func (m tuiModel) selectedKey() calendar.DateKey {
	key, _ := m.sess.Selected()
	return key
}

func runTUI(cmd *cobra.Command, homeDir, dateFlag string, nowFn func() time.Time) error {
	now := nowFn()
	sess, err := openSession(cmd, homeDir, now)
	if err != nil {
		return err
	}
	if _, err := selectDate(sess, dateFlag, now); err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	// Non-TTY fallback: print the static views
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return printStaticViews(out, sess)
	}

	p := tea.NewProgram(newTUIModel(sess), tea.WithAltScreen(), tea.WithOutput(out))
	_, err = p.Run()
	return err
}

func printStaticViews(w io.Writer, sess *session.Session) error {
	if err := printCalendar(w, sess); err != nil {
		return err
	}
	_, _ = io.WriteString(w, "\n")
	return printAllTasks(w, sess.AllTasks())
}
