package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// ErrInvalidRange is returned when a calendar ends before it starts.
var ErrInvalidRange = errors.New("calendar end date is before start date")

// Config describes the rendered date range and the highlighted holidays.
// Start and End are inclusive, as are HolidayStart and HolidayEnd. The
// holiday range may lie partly or fully outside [Start, End].
type Config struct {
	Start        time.Time
	End          time.Time
	HolidayStart time.Time
	HolidayEnd   time.Time
	Holidays     *rrule.RRule // optional recurring holidays
}

// NewConfig builds a validated Config with every date truncated to its day.
func NewConfig(start, end, holidayStart, holidayEnd time.Time) (Config, error) {
	cfg := Config{
		Start:        truncateToDay(start),
		End:          truncateToDay(end),
		HolidayStart: truncateToDay(holidayStart),
		HolidayEnd:   truncateToDay(holidayEnd),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the Start <= End invariant.
func (c Config) Validate() error {
	if c.Start.IsZero() || c.End.IsZero() {
		return fmt.Errorf("calendar start and end dates are required")
	}
	if truncateToDay(c.End).Before(truncateToDay(c.Start)) {
		return fmt.Errorf("%w (%s < %s)", ErrInvalidRange, KeyOf(c.End), KeyOf(c.Start))
	}
	return nil
}

// Contains reports whether the calendar day of t is rendered.
func (c Config) Contains(t time.Time) bool {
	d := truncateToDay(t)
	return !d.Before(truncateToDay(c.Start)) && !d.After(truncateToDay(c.End))
}

// ContainsKey reports whether k is a rendered day.
func (c Config) ContainsKey(k DateKey) bool {
	t := k.Time()
	return !t.IsZero() && c.Contains(t)
}

// Days returns the number of day cells in the range.
func (c Config) Days() int {
	n := 0
	for d := truncateToDay(c.Start); !d.After(truncateToDay(c.End)); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

// IsHoliday reports whether the calendar day of t is highlighted, either
// because it falls within [HolidayStart, HolidayEnd] or because it matches
// the recurring Holidays rule.
func (c Config) IsHoliday(t time.Time) bool {
	d := truncateToDay(t)
	if c.inHolidayRange(d) {
		return true
	}
	return c.recurringHolidays(d, d)[KeyOf(d)]
}

func (c Config) inHolidayRange(d time.Time) bool {
	hs, he := truncateToDay(c.HolidayStart), truncateToDay(c.HolidayEnd)
	if c.HolidayStart.IsZero() || c.HolidayEnd.IsZero() || he.Before(hs) {
		return false
	}
	return !d.Before(hs) && !d.After(he)
}

// recurringHolidays expands the Holidays rule between from and to inclusive.
func (c Config) recurringHolidays(from, to time.Time) map[DateKey]bool {
	if c.Holidays == nil {
		return nil
	}

	opts := c.Holidays.OrigOptions
	if opts.Dtstart.IsZero() {
		opts.Dtstart = truncateToDay(c.Start)
	}
	r, err := rrule.NewRRule(opts)
	if err != nil {
		return nil
	}

	set := make(map[DateKey]bool)
	for _, d := range r.Between(from, to, true) {
		set[KeyOf(d)] = true
	}
	return set
}
