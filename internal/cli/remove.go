package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var removeCmd = LeafCommand{
	Use:     "remove [number]",
	Aliases: []string{"rm"},
	Short:   "Delete a task from a day",
	Args:    cobra.MaximumNArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	StrFlags: []StringFlag{dateFlag},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		date, _ := cmd.Flags().GetString("date")
		yesFlag, _ := cmd.Flags().GetBool("yes")
		number := ""
		if len(args) > 0 {
			number = args[0]
		}

		pk := NewPromptKit()
		if yesFlag {
			pk.Confirm = AlwaysYes()
		}

		return runRemove(cmd, homeDir, date, number, pk, time.Now)
	},
}.Build()

func runRemove(cmd *cobra.Command, homeDir, dateFlag, number string, pk PromptKit, nowFn func() time.Time) error {
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
	tasks := sess.Tasks(key)

	var idx int
	if number != "" {
		if idx, err = parseIndex(number); err != nil {
			return err
		}
	} else {
		if len(tasks) == 0 {
			_, _ = fmt.Fprintf(w, "no tasks on %s\n", Primary(key.String()))
			return nil
		}
		if pk.Select == nil {
			return fmt.Errorf("task number is required")
		}
		options := make([]string, len(tasks))
		for i, t := range tasks {
			options[i] = fmt.Sprintf("%s %s", checkbox(t.Done), t.Text)
		}
		if idx, err = pk.Select(fmt.Sprintf("Remove a task from %s", key), options); err != nil {
			return err
		}
	}

	if idx >= 0 && idx < len(tasks) {
		_, _ = fmt.Fprintf(w, "  date: %s\n", Primary(key.String()))
		_, _ = fmt.Fprintf(w, "  task: %s\n", Primary(tasks[idx].Text))

		if pk.Confirm != nil {
			ok, err := pk.Confirm("Remove this task?")
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintln(w, "cancelled")
				return nil
			}
		}
	}

	removed, _, err := sess.Delete(key, idx)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "removed %s\n", Silent(removed.Text))
	warnDegraded(cmd, sess.Degraded())
	return nil
}
