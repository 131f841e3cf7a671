package calendar

import (
	"strings"
	"time"
)

// Category is a set of visual tags carried by a day cell.
type Category uint8

const (
	Sunday Category = 1 << iota
	Saturday
	Holiday
)

// Has reports whether all tags of o are set in c.
func (c Category) Has(o Category) bool {
	return c&o == o && o != 0
}

// String returns the tags joined by "|", or "normal" when none are set.
func (c Category) String() string {
	var parts []string
	if c.Has(Sunday) {
		parts = append(parts, "sunday")
	}
	if c.Has(Saturday) {
		parts = append(parts, "saturday")
	}
	if c.Has(Holiday) {
		parts = append(parts, "holiday")
	}
	if len(parts) == 0 {
		return "normal"
	}
	return strings.Join(parts, "|")
}

// Cell is one unit of the calendar grid: either leading padding or a day.
type Cell struct {
	Blank      bool
	Key        DateKey
	Day        int // day of month
	Weekday    time.Weekday
	Categories Category
}

var weekdayHeader = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayHeader returns the fixed column headers, Sunday first.
func WeekdayHeader() [7]string {
	return weekdayHeader
}

// Generate lays out cfg as a Sunday-first grid: Start.Weekday() blank cells
// followed by one day cell per date in [Start, End]. No trailing padding is
// added. An invalid config yields no cells.
func Generate(cfg Config) []Cell {
	if cfg.Validate() != nil {
		return nil
	}

	start, end := truncateToDay(cfg.Start), truncateToDay(cfg.End)
	recurring := cfg.recurringHolidays(start, end)

	lead := int(start.Weekday())
	cells := make([]Cell, 0, lead+cfg.Days())
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{Blank: true})
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := KeyOf(d)
		cell := Cell{
			Key:     key,
			Day:     d.Day(),
			Weekday: d.Weekday(),
		}
		switch d.Weekday() {
		case time.Sunday:
			cell.Categories |= Sunday
		case time.Saturday:
			cell.Categories |= Saturday
		}
		if cfg.inHolidayRange(d) || recurring[key] {
			cell.Categories |= Holiday
		}
		cells = append(cells, cell)
	}
	return cells
}

// Rows splits cells into weeks of seven. The last row may be shorter.
func Rows(cells []Cell) [][]Cell {
	var rows [][]Cell
	for i := 0; i < len(cells); i += 7 {
		end := i + 7
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, cells[i:end])
	}
	return rows
}
