package task

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Flyrell/daytask/internal/calendar"
)

// Task is a short piece of text attached to a day.
// It has no identity beyond its position in that day's list.
type Task struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Dated is a task together with the day and position it belongs to.
type Dated struct {
	Key   calendar.DateKey
	Index int
	Task  Task
}

// ValidationError reports input that cannot become a task.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ErrEmptyText is returned by Add when the text is blank after trimming.
var ErrEmptyText = &ValidationError{Reason: "task text is required"}

// IndexError reports a task index that does not exist for a day.
type IndexError struct {
	Key   calendar.DateKey
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("no tasks on %s", e.Key)
	}
	return fmt.Sprintf("task %d not found on %s (have %d)", e.Index+1, e.Key, e.Len)
}

// Store maps days to their ordered task lists.
// A day without tasks is never kept as an empty list. The zero value is an
// empty store ready to use.
type Store struct {
	days map[calendar.DateKey][]Task
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{days: make(map[calendar.DateKey][]Task)}
}

// Add appends a new, not done task to key's list.
func (s *Store) Add(key calendar.DateKey, text string) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyText
	}
	t := Task{Text: text}
	if s.days == nil {
		s.days = make(map[calendar.DateKey][]Task)
	}
	s.days[key] = append(s.days[key], t)
	return t, nil
}

// Toggle flips the done flag of the task at index and returns the result.
func (s *Store) Toggle(key calendar.DateKey, index int) (Task, error) {
	if err := s.checkIndex(key, index); err != nil {
		return Task{}, err
	}
	s.days[key][index].Done = !s.days[key][index].Done
	return s.days[key][index], nil
}

// Delete removes the task at index; later tasks of the same day shift down.
func (s *Store) Delete(key calendar.DateKey, index int) (Task, error) {
	if err := s.checkIndex(key, index); err != nil {
		return Task{}, err
	}
	list := s.days[key]
	removed := list[index]
	list = append(list[:index:index], list[index+1:]...)
	if len(list) == 0 {
		delete(s.days, key)
	} else {
		s.days[key] = list
	}
	return removed, nil
}

func (s *Store) checkIndex(key calendar.DateKey, index int) error {
	n := len(s.days[key])
	if index < 0 || index >= n {
		return &IndexError{Key: key, Index: index, Len: n}
	}
	return nil
}

// List returns a copy of key's tasks. It never creates an entry.
func (s *Store) List(key calendar.DateKey) []Task {
	list, ok := s.days[key]
	if !ok {
		return []Task{}
	}
	out := make([]Task, len(list))
	copy(out, list)
	return out
}

// Counts returns how many of key's tasks are done and how many exist.
func (s *Store) Counts(key calendar.DateKey) (done, total int) {
	for _, t := range s.days[key] {
		if t.Done {
			done++
		}
	}
	return done, len(s.days[key])
}

// Dates returns every day that has tasks, in chronological order.
func (s *Store) Dates() []calendar.DateKey {
	keys := make([]calendar.DateKey, 0, len(s.days))
	for k, list := range s.days {
		if len(list) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}

// ListAllSorted flattens the store by day, oldest first, keeping each day's
// own task order.
func (s *Store) ListAllSorted() []Dated {
	var all []Dated
	for _, k := range s.Dates() {
		for i, t := range s.days[k] {
			all = append(all, Dated{Key: k, Index: i, Task: t})
		}
	}
	return all
}

// Len returns the total number of tasks across all days.
func (s *Store) Len() int {
	n := 0
	for _, list := range s.days {
		n += len(list)
	}
	return n
}
