package calendar

import (
	"fmt"
	"strings"
	"time"
)

// KeyLayout is the canonical zero-padded layout of a DateKey.
const KeyLayout = "2006-01-02"

// looseKeyLayout accepts both "2025-09-05" and the unpadded "2025-9-5".
const looseKeyLayout = "2006-1-2"

// DateKey identifies a single calendar day as "YYYY-MM-DD".
// The zero value means no date.
type DateKey string

// KeyOf returns the canonical key for the calendar day of t.
// Only the year, month and day components of t are used.
func KeyOf(t time.Time) DateKey {
	return DateKey(t.Format(KeyLayout))
}

// ParseKey parses a date key, accepting unpadded month and day, and returns
// its canonical form.
func ParseKey(s string) (DateKey, error) {
	t, err := time.Parse(looseKeyLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid date key %q, expected YYYY-MM-DD", s)
	}
	return KeyOf(t), nil
}

// Time returns midnight UTC of the day identified by k.
// The zero time is returned for an empty or malformed key.
func (k DateKey) Time() time.Time {
	t, err := time.Parse(looseKeyLayout, string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

// IsZero reports whether k is the empty key.
func (k DateKey) IsZero() bool {
	return k == ""
}

func (k DateKey) String() string {
	return string(k)
}

// Before reports whether k is chronologically before other.
func (k DateKey) Before(other DateKey) bool {
	return k.Time().Before(other.Time())
}
