// Package session holds the state of one calendar task-list session: the
// calendar, the task store, the active selection and where snapshots go.
// Every operation returns the views it made stale so any front end can
// refresh only what changed.
package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Flyrell/daytask/internal/calendar"
	"github.com/Flyrell/daytask/internal/storage"
	"github.com/Flyrell/daytask/internal/task"
	"github.com/charmbracelet/log"
)

var (
	// ErrNoSelection is returned by Add when no day is selected.
	ErrNoSelection = errors.New("select a date first")
	// ErrOutOfRange is returned when selecting a day that is not rendered.
	ErrOutOfRange = errors.New("date is outside the calendar range")
)

// View names a part of the UI that renders session state.
type View int

const (
	ViewCalendar View = iota // the grid, including the selection highlight
	ViewDay                  // the task list of one day
	ViewAll                  // the flattened, date-sorted task list
)

func (v View) String() string {
	switch v {
	case ViewCalendar:
		return "calendar"
	case ViewDay:
		return "day"
	case ViewAll:
		return "all"
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// Stale tells the front end that a view needs re-rendering. Key is set for
// ViewDay.
type Stale struct {
	View View
	Key  calendar.DateKey
}

// Session is not safe for concurrent use.
type Session struct {
	cal      calendar.Config
	cells    []calendar.Cell
	tasks    *task.Store
	selected calendar.DateKey
	backend  storage.Backend
	degraded bool
	logger   *log.Logger
}

// Open loads the task snapshot from backend and selects the default day for
// now. A corrupt snapshot starts an empty store; an unavailable backend
// switches the session to memory only. Both are logged as warnings.
func Open(cal calendar.Config, backend storage.Backend, now time.Time, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cal:     cal,
		cells:   calendar.Generate(cal),
		backend: backend,
		logger:  logger,
	}

	store, err := storage.LoadTasks(backend)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrCorruptSnapshot):
		logger.Warn("ignoring unreadable task snapshot", "err", err, "backup", storage.CorruptKey)
	default:
		logger.Warn("storage unavailable, changes will not be saved", "err", err)
		s.degrade()
	}
	s.tasks = store

	s.selected = calendar.DefaultSelection(cal, now)
	logger.Debug("session opened", "selected", s.selected, "tasks", store.Len())
	return s
}

// Calendar returns the session's calendar configuration.
func (s *Session) Calendar() calendar.Config {
	return s.cal
}

// Cells returns the generated calendar grid.
func (s *Session) Cells() []calendar.Cell {
	return s.cells
}

// Selected returns the active day and whether one is set.
func (s *Session) Selected() (calendar.DateKey, bool) {
	return s.selected, !s.selected.IsZero()
}

// Degraded reports whether changes are kept in memory only.
func (s *Session) Degraded() bool {
	return s.degraded
}

// Select makes key the active day, replacing any previous selection.
func (s *Session) Select(key calendar.DateKey) ([]Stale, error) {
	if !s.cal.ContainsKey(key) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfRange, key)
	}
	s.selected = key
	return []Stale{{View: ViewCalendar}, {View: ViewDay, Key: key}}, nil
}

// Clear drops the selection.
func (s *Session) Clear() []Stale {
	s.selected = ""
	return []Stale{{View: ViewCalendar}}
}

// Add appends a task to the selected day and saves the snapshot.
func (s *Session) Add(text string) (task.Task, []Stale, error) {
	key, ok := s.Selected()
	if !ok {
		return task.Task{}, nil, ErrNoSelection
	}
	t, err := s.tasks.Add(key, text)
	if err != nil {
		return task.Task{}, nil, err
	}
	s.save()
	return t, mutated(key), nil
}

// Toggle flips the done flag of a task and saves the snapshot.
func (s *Session) Toggle(key calendar.DateKey, index int) (task.Task, []Stale, error) {
	t, err := s.tasks.Toggle(key, index)
	if err != nil {
		return task.Task{}, nil, err
	}
	s.save()
	return t, mutated(key), nil
}

// Delete removes a task and saves the snapshot.
func (s *Session) Delete(key calendar.DateKey, index int) (task.Task, []Stale, error) {
	t, err := s.tasks.Delete(key, index)
	if err != nil {
		return task.Task{}, nil, err
	}
	s.save()
	return t, mutated(key), nil
}

// Tasks returns the tasks of key.
func (s *Session) Tasks(key calendar.DateKey) []task.Task {
	return s.tasks.List(key)
}

// AllTasks returns every task ordered by day.
func (s *Session) AllTasks() []task.Dated {
	return s.tasks.ListAllSorted()
}

// Counts returns the done and total task counts of key.
func (s *Session) Counts(key calendar.DateKey) (done, total int) {
	return s.tasks.Counts(key)
}

func mutated(key calendar.DateKey) []Stale {
	return []Stale{{View: ViewCalendar}, {View: ViewDay, Key: key}, {View: ViewAll}}
}

// save writes the full snapshot. A failed write keeps the change in memory
// and moves the session to an in-memory backend.
func (s *Session) save() {
	if err := storage.SaveTasks(s.backend, s.tasks); err != nil {
		s.logger.Warn("could not save tasks, continuing in memory", "err", err)
		s.degrade()
		_ = storage.SaveTasks(s.backend, s.tasks)
		return
	}
	s.logger.Debug("tasks saved", "tasks", s.tasks.Len())
}

func (s *Session) degrade() {
	s.degraded = true
	s.backend = storage.NewMemoryBackend()
}
