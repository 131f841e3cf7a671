package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Flyrell/daytask/internal/session"
	"github.com/spf13/cobra"
)

var calendarCmd = LeafCommand{
	Use:      "calendar",
	Aliases:  []string{"cal"},
	Short:    "Show the calendar grid",
	StrFlags: []StringFlag{dateFlag},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		date, _ := cmd.Flags().GetString("date")
		return runCalendar(cmd, homeDir, date, time.Now)
	},
}.Build()

func runCalendar(cmd *cobra.Command, homeDir, dateFlag string, nowFn func() time.Time) error {
	now := nowFn()
	sess, err := openSession(cmd, homeDir, now)
	if err != nil {
		return err
	}
	if _, err := selectDate(sess, dateFlag, now); err != nil {
		return err
	}
	return printCalendar(cmd.OutOrStdout(), sess)
}

// printCalendar writes the static calendar view with a legend and a summary
// of the selected day.
func printCalendar(w io.Writer, sess *session.Session) error {
	_, _ = fmt.Fprintln(w, headerStyle.Render(rangeTitle(sess.Calendar())))
	key, _ := sess.Selected()
	_, _ = fmt.Fprint(w, renderGrid(sess.Cells(), key, sess.Counts))
	_, _ = fmt.Fprintln(w, footerStyle.Render("[dd] selected  * holiday  + open tasks"))

	if key.IsZero() {
		return nil
	}
	done, total := sess.Counts(key)
	_, err := fmt.Fprintf(w, "%s %s  %s\n",
		Silent("Selected:"),
		Primary(key.String()),
		Text(fmt.Sprintf("%d/%d done", done, total)),
	)
	return err
}
