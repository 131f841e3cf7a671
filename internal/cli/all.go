package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Flyrell/daytask/internal/task"
	"github.com/spf13/cobra"
)

var allCmd = LeafCommand{
	Use:   "all",
	Short: "List every task grouped by day",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runAll(cmd, homeDir, time.Now)
	},
}.Build()

func runAll(cmd *cobra.Command, homeDir string, nowFn func() time.Time) error {
	sess, err := openSession(cmd, homeDir, nowFn())
	if err != nil {
		return err
	}
	return printAllTasks(cmd.OutOrStdout(), sess.AllTasks())
}

// printAllTasks writes tasks under one heading per date, oldest date first.
func printAllTasks(w io.Writer, all []task.Dated) error {
	if len(all) == 0 {
		_, err := fmt.Fprintln(w, Silent("no tasks yet"))
		return err
	}

	for i, d := range all {
		if i == 0 || all[i-1].Key != d.Key {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			_, _ = fmt.Fprintln(w, headerStyle.Render(d.Key.String()))
		}
		_, _ = fmt.Fprintf(w, "%2d. %s %s\n", d.Index+1, checkbox(d.Task.Done), taskText(d.Task.Text, d.Task.Done))
	}
	return nil
}
