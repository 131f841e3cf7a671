package calendar

import "time"

// DefaultSelection returns the key selected at startup: today when today's
// wall-clock date is rendered, otherwise the first rendered day.
func DefaultSelection(cfg Config, now time.Time) DateKey {
	if cfg.Contains(now) {
		return KeyOf(truncateToDay(now))
	}
	return KeyOf(truncateToDay(cfg.Start))
}
