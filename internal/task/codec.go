package task

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Flyrell/daytask/internal/calendar"
)

// MarshalJSON encodes the store as {"YYYY-MM-DD": [{"text": ..., "done": ...}]}.
func (s *Store) MarshalJSON() ([]byte, error) {
	out := make(map[string][]Task, len(s.days))
	for k, list := range s.days {
		if len(list) == 0 {
			continue
		}
		out[string(k)] = list
	}
	return json.Marshal(out)
}

// UnmarshalJSON replaces the store contents with a decoded snapshot.
// Unpadded keys such as "2025-9-5" are canonicalised; lists whose keys
// collide after canonicalisation are concatenated in key order.
func (s *Store) UnmarshalJSON(data []byte) error {
	var raw map[string][]Task
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	days := make(map[calendar.DateKey][]Task, len(raw))
	for _, name := range names {
		key, err := calendar.ParseKey(name)
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		if len(raw[name]) == 0 {
			continue
		}
		days[key] = append(days[key], raw[name]...)
	}

	s.days = days
	return nil
}
