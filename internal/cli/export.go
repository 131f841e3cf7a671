package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/Flyrell/daytask/internal/calendar"
	"github.com/Flyrell/daytask/internal/task"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/spf13/cobra"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export every task to a PDF",
	StrFlags: []StringFlag{
		{Name: "output", Shorthand: "o", Usage: "output file", Default: "daytask.pdf"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		return runExport(cmd, homeDir, output, time.Now)
	},
}.Build()

func runExport(cmd *cobra.Command, homeDir, outputPath string, nowFn func() time.Time) error {
	sess, err := openSession(cmd, homeDir, nowFn())
	if err != nil {
		return err
	}

	all := sess.AllTasks()
	if err := renderExportPDF(sess.Calendar(), all, outputPath); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d tasks to %s\n", len(all), Primary(outputPath))
	return nil
}

// exportDay groups the tasks of one date for rendering.
type exportDay struct {
	Key   calendar.DateKey
	Tasks []task.Task
	Done  int
}

// groupByDay splits a date-ordered task list into one group per date.
func groupByDay(all []task.Dated) []exportDay {
	var days []exportDay
	for _, d := range all {
		if len(days) == 0 || days[len(days)-1].Key != d.Key {
			days = append(days, exportDay{Key: d.Key})
		}
		day := &days[len(days)-1]
		day.Tasks = append(day.Tasks, d.Task)
		if d.Task.Done {
			day.Done++
		}
	}
	return days
}

// renderExportPDF writes a task list grouped by day to outputPath.
func renderExportPDF(cal calendar.Config, all []task.Dated, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, "Tasks", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%s to %s", calendar.KeyOf(cal.Start), calendar.KeyOf(cal.End)), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	days := groupByDay(all)
	total, done := 0, 0
	for _, day := range days {
		date := day.Key.Time()
		label := fmt.Sprintf("%s %d, %s", date.Month(), date.Day(), date.Weekday())
		if cal.IsHoliday(date) {
			label += " (holiday)"
		}

		m.AddRow(8,
			text.NewCol(9, label, props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(3, fmt.Sprintf("%d/%d", day.Done, len(day.Tasks)), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Align: align.Right,
				Color: &pdfHeaderColor,
			}),
		)

		for _, t := range day.Tasks {
			style := props.Text{Size: 9}
			if t.Done {
				style.Color = &pdfMutedColor
			}
			m.AddRow(6,
				text.NewCol(1, checkbox(t.Done), style),
				text.NewCol(11, t.Text, style),
			)
		}

		total += len(day.Tasks)
		done += day.Done
		m.AddRow(4)
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(9, "Done", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(3, fmt.Sprintf("%d/%d", done, total), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}
