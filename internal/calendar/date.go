package calendar

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate parses a date expression relative to now.
// Supports: "today", "tomorrow", "yesterday", "monday", "next tuesday",
// "on friday", "2025-09-22", "2025-9-22", "sep 22", "sep 22 2025",
// "september 22", "22 sep", "22 september 2025".
// The result is always midnight UTC of the resolved calendar day.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSpace(strings.TrimPrefix(s, "on "))

	switch s {
	case "today":
		return truncateToDay(now), nil
	case "tomorrow":
		return truncateToDay(now).AddDate(0, 0, 1), nil
	case "yesterday":
		return truncateToDay(now).AddDate(0, 0, -1), nil
	}

	cleaned := strings.TrimPrefix(s, "next ")
	if wd, ok := weekdays[cleaned]; ok {
		return nextWeekday(now, wd), nil
	}

	layouts := []string{
		looseKeyLayout,
		"Jan 2",
		"Jan 2 2006",
		"January 2",
		"January 2 2006",
		"2 Jan",
		"2 Jan 2006",
		"2 January",
		"2 January 2006",
	}

	// Month names match case-insensitively, so the lowered input still parses.
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if !strings.Contains(layout, "2006") {
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// truncateToDay returns midnight UTC of the calendar day t falls on in its
// own location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// nextWeekday returns the next occurrence of wd after now.
// If now is that weekday, it returns the following week.
func nextWeekday(now time.Time, wd time.Weekday) time.Time {
	today := truncateToDay(now)
	daysAhead := int(wd) - int(today.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return today.AddDate(0, 0, daysAhead)
}
