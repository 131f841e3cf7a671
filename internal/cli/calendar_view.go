package cli

import (
	"fmt"
	"strings"

	"github.com/Flyrell/daytask/internal/calendar"
)

const cellWidth = 6

// taskCounter reports done and total task counts for a day.
type taskCounter func(key calendar.DateKey) (done, total int)

// renderGrid draws the calendar as a 7-column grid. Each day cell reads
// "[dd]*+": brackets mark the selection, "*" a holiday and "+" a day with
// open tasks.
func renderGrid(cells []calendar.Cell, selected calendar.DateKey, counts taskCounter) string {
	var b strings.Builder

	header := calendar.WeekdayHeader()
	for i, name := range header {
		if i > 0 {
			b.WriteString(" ")
		}
		style := headerStyle
		switch i {
		case 0:
			style = sundayStyle.Bold(true)
		case 6:
			style = saturdayStyle.Bold(true)
		}
		b.WriteString(style.Render(padCenter(name, cellWidth)))
	}
	b.WriteString("\n")

	for _, row := range calendar.Rows(cells) {
		for i, c := range row {
			if i > 0 {
				b.WriteString(" ")
			}
			if c.Blank {
				b.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			b.WriteString(renderDayCell(c, c.Key == selected, counts))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderDayCell(c calendar.Cell, selected bool, counts taskCounter) string {
	lb, rb := " ", " "
	if selected {
		lb, rb = "[", "]"
	}
	holiday := " "
	if c.Categories.Has(calendar.Holiday) {
		holiday = "*"
	}
	pending := " "
	if counts != nil {
		if done, total := counts(c.Key); total > done {
			pending = "+"
		}
	}

	label := fmt.Sprintf("%s%2d%s%s%s", lb, c.Day, rb, holiday, pending)
	style := dayStyle(c.Categories)
	if selected {
		style = style.Inherit(selectedStyle)
	}
	return style.Render(label)
}

// rangeTitle describes the rendered range, e.g. "--- 2025-09-22 to 2025-10-13 ---".
func rangeTitle(cal calendar.Config) string {
	return fmt.Sprintf("--- %s to %s ---", calendar.KeyOf(cal.Start), calendar.KeyOf(cal.End))
}

func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
