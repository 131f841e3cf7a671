package cli

import (
	"github.com/Flyrell/daytask/internal/calendar"
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	textStyle    = lipgloss.NewStyle()
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")).Strikethrough(true)
)

// Calendar cell styles. Holiday wins over the weekday colour.
var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	sundayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E05050"))
	saturdayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5080E0"))
	holidayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
)

func Primary(text string) string { return primaryStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }
func Text(text string) string    { return textStyle.Render(text) }
func Done(text string) string    { return doneStyle.Render(text) }

// dayStyle picks the colour of a day cell from its categories.
func dayStyle(c calendar.Category) lipgloss.Style {
	switch {
	case c.Has(calendar.Holiday):
		return holidayStyle
	case c.Has(calendar.Sunday):
		return sundayStyle
	case c.Has(calendar.Saturday):
		return saturdayStyle
	}
	return textStyle
}
