package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustConfig(t *testing.T, start, end, hs, he time.Time) Config {
	t.Helper()
	cfg, err := NewConfig(start, end, hs, he)
	require.NoError(t, err)
	return cfg
}

func dayCells(cells []Cell) []Cell {
	var out []Cell
	for _, c := range cells {
		if !c.Blank {
			out = append(out, c)
		}
	}
	return out
}

func leadingBlanks(cells []Cell) int {
	n := 0
	for _, c := range cells {
		if !c.Blank {
			break
		}
		n++
	}
	return n
}

func TestGenerateThreeDaysOutsideHoliday(t *testing.T) {
	cfg := mustConfig(t, date(2025, 9, 22), date(2025, 9, 24), date(2025, 10, 3), date(2025, 10, 12))

	cells := Generate(cfg)

	assert.Equal(t, int(time.Monday), leadingBlanks(cells))
	days := dayCells(cells)
	require.Len(t, days, 3)
	for i, want := range []int{22, 23, 24} {
		assert.Equal(t, want, days[i].Day)
		assert.False(t, days[i].Categories.Has(Holiday))
	}
	assert.Equal(t, DateKey("2025-09-22"), days[0].Key)
	assert.Equal(t, DateKey("2025-09-24"), days[2].Key)
}

func TestGenerateCellCounts(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		days  int
	}{
		{name: "single day", start: date(2025, 9, 22), end: date(2025, 9, 22), days: 1},
		{name: "starts on sunday", start: date(2025, 9, 21), end: date(2025, 9, 27), days: 7},
		{name: "starts on saturday", start: date(2025, 9, 27), end: date(2025, 10, 13), days: 17},
		{name: "month rollover in leap year", start: date(2024, 2, 27), end: date(2024, 3, 2), days: 5},
		{name: "year rollover", start: date(2025, 12, 30), end: date(2026, 1, 2), days: 4},
		{name: "full default range", start: date(2025, 9, 22), end: date(2025, 10, 13), days: 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := mustConfig(t, tt.start, tt.end, time.Time{}, time.Time{})

			cells := Generate(cfg)

			assert.Equal(t, int(tt.start.Weekday()), leadingBlanks(cells))
			assert.Len(t, dayCells(cells), tt.days)
			assert.Len(t, cells, int(tt.start.Weekday())+tt.days)
			assert.Equal(t, tt.days, cfg.Days())
		})
	}
}

func TestGenerateRolloverKeys(t *testing.T) {
	cfg := mustConfig(t, date(2024, 2, 27), date(2024, 3, 2), time.Time{}, time.Time{})

	var keys []DateKey
	for _, c := range dayCells(Generate(cfg)) {
		keys = append(keys, c.Key)
	}

	assert.Equal(t, []DateKey{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}, keys)
}

func TestGenerateWeekendCategories(t *testing.T) {
	cfg := mustConfig(t, date(2025, 9, 26), date(2025, 9, 29), time.Time{}, time.Time{})

	days := dayCells(Generate(cfg))
	require.Len(t, days, 4)

	assert.Equal(t, Category(0), days[0].Categories) // Fri 26
	assert.True(t, days[1].Categories.Has(Saturday))
	assert.False(t, days[1].Categories.Has(Sunday))
	assert.True(t, days[2].Categories.Has(Sunday))
	assert.Equal(t, "normal", days[3].Categories.String())
	assert.Equal(t, "sunday", days[2].Categories.String())
}

func TestGenerateHolidayRange(t *testing.T) {
	cfg := mustConfig(t, date(2025, 9, 22), date(2025, 10, 13), date(2025, 10, 3), date(2025, 10, 12))

	days := dayCells(Generate(cfg))
	holidays := 0
	for _, c := range days {
		d := c.Key.Time()
		inRange := !d.Before(date(2025, 10, 3)) && !d.After(date(2025, 10, 12))
		assert.Equal(t, inRange, c.Categories.Has(Holiday), c.Key)
		if c.Categories.Has(Holiday) {
			holidays++
		}
	}
	assert.Equal(t, 10, holidays)

	last := days[len(days)-1]
	assert.Equal(t, DateKey("2025-10-12"), days[len(days)-2].Key)
	assert.Equal(t, "sunday|holiday", days[len(days)-2].Categories.String())
	assert.False(t, last.Categories.Has(Holiday))
}

func TestGenerateHolidayPartlyOutsideRange(t *testing.T) {
	cfg := mustConfig(t, date(2025, 10, 10), date(2025, 10, 15), date(2025, 10, 3), date(2025, 10, 12))

	days := dayCells(Generate(cfg))
	require.Len(t, days, 6)
	for i, want := range []bool{true, true, true, false, false, false} {
		assert.Equal(t, want, days[i].Categories.Has(Holiday), days[i].Key)
	}
}

func TestGenerateInvertedHolidayRange(t *testing.T) {
	cfg := mustConfig(t, date(2025, 9, 22), date(2025, 10, 13), date(2025, 10, 12), date(2025, 10, 3))

	for _, c := range dayCells(Generate(cfg)) {
		assert.False(t, c.Categories.Has(Holiday), c.Key)
	}
}

func TestGenerateRecurringHolidays(t *testing.T) {
	cfg := mustConfig(t, date(2025, 9, 22), date(2025, 10, 13), time.Time{}, time.Time{})
	rule, err := ParseRecurrence("every sunday")
	require.NoError(t, err)
	cfg.Holidays = rule

	var got []DateKey
	for _, c := range dayCells(Generate(cfg)) {
		if c.Categories.Has(Holiday) {
			got = append(got, c.Key)
		}
	}

	assert.Equal(t, []DateKey{"2025-09-28", "2025-10-05", "2025-10-12"}, got)
	assert.True(t, cfg.IsHoliday(date(2025, 10, 5)))
	assert.False(t, cfg.IsHoliday(date(2025, 10, 6)))
}

func TestGenerateInvalidConfig(t *testing.T) {
	cfg := Config{Start: date(2025, 10, 2), End: date(2025, 10, 1)}
	assert.Nil(t, Generate(cfg))
}

func TestNewConfigRejectsInvertedRange(t *testing.T) {
	_, err := NewConfig(date(2025, 10, 2), date(2025, 10, 1), time.Time{}, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestConfigContains(t *testing.T) {
	cfg := mustConfig(t, date(2025, 9, 22), date(2025, 10, 13), time.Time{}, time.Time{})

	assert.True(t, cfg.Contains(date(2025, 9, 22)))
	assert.True(t, cfg.Contains(time.Date(2025, 10, 13, 23, 59, 0, 0, time.UTC)))
	assert.False(t, cfg.Contains(date(2025, 9, 21)))
	assert.False(t, cfg.Contains(date(2025, 10, 14)))
	assert.True(t, cfg.ContainsKey("2025-10-01"))
	assert.False(t, cfg.ContainsKey(""))
}

func TestRows(t *testing.T) {
	cfg := mustConfig(t, date(2025, 9, 22), date(2025, 10, 13), time.Time{}, time.Time{})
	cells := Generate(cfg)

	rows := Rows(cells)

	require.Len(t, rows, 4)
	assert.Len(t, rows[0], 7)
	assert.Len(t, rows[3], 2)
	assert.True(t, rows[0][0].Blank)
	assert.Equal(t, 22, rows[0][1].Day)
}

func TestWeekdayHeader(t *testing.T) {
	h := WeekdayHeader()
	assert.Equal(t, "Sun", h[0])
	assert.Equal(t, "Sat", h[6])
}
