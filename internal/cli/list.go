package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = LeafCommand{
	Use:      "list",
	Aliases:  []string{"ls"},
	Short:    "List the tasks of one day",
	StrFlags: []StringFlag{dateFlag},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		date, _ := cmd.Flags().GetString("date")
		return runList(cmd, homeDir, date, time.Now)
	},
}.Build()

func runList(cmd *cobra.Command, homeDir, dateFlag string, nowFn func() time.Time) error {
	now := nowFn()
	sess, err := openSession(cmd, homeDir, now)
	if err != nil {
		return err
	}
	key, err := taskDate(sess, dateFlag, now)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Tasks for %s", key)))

	tasks := sess.Tasks(key)
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, Silent("no tasks"))
		return nil
	}
	for i, t := range tasks {
		_, _ = fmt.Fprintf(w, "%2d. %s %s\n", i+1, checkbox(t.Done), taskText(t.Text, t.Done))
	}
	return nil
}

// taskText styles a task's text, striking it through once done.
func taskText(s string, done bool) string {
	if done {
		return Done(s)
	}
	return Text(s)
}
