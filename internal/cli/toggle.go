package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var toggleCmd = LeafCommand{
	Use:      "toggle [number]",
	Aliases:  []string{"done"},
	Short:    "Flip a task between open and done",
	Args:     cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{dateFlag},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		date, _ := cmd.Flags().GetString("date")
		number := ""
		if len(args) > 0 {
			number = args[0]
		}
		return runToggle(cmd, homeDir, date, number, NewPromptKit(), time.Now)
	},
}.Build()

func runToggle(cmd *cobra.Command, homeDir, dateFlag, number string, pk PromptKit, nowFn func() time.Time) error {
	now := nowFn()
	sess, err := openSession(cmd, homeDir, now)
	if err != nil {
		return err
	}
	key, err := taskDate(sess, dateFlag, now)
	if err != nil {
		return err
	}

	var indices []int
	if number != "" {
		idx, err := parseIndex(number)
		if err != nil {
			return err
		}
		indices = []int{idx}
	} else {
		tasks := sess.Tasks(key)
		if len(tasks) == 0 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no tasks on %s\n", Primary(key.String()))
			return nil
		}
		if pk.MultiSelect == nil {
			return fmt.Errorf("task number is required")
		}
		options := make([]string, len(tasks))
		for i, t := range tasks {
			options[i] = fmt.Sprintf("%s %s", checkbox(t.Done), t.Text)
		}
		indices, err = pk.MultiSelect(fmt.Sprintf("Toggle tasks on %s", key), options)
		if err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	for _, idx := range indices {
		t, _, err := sess.Toggle(key, idx)
		if err != nil {
			return err
		}
		state := "open"
		if t.Done {
			state = "done"
		}
		_, _ = fmt.Fprintf(w, "%s %s %s\n", checkbox(t.Done), Text(t.Text), Silent("("+state+")"))
	}
	warnDegraded(cmd, sess.Degraded())
	return nil
}
