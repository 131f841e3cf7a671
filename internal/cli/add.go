package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var addCmd = LeafCommand{
	Use:      "add [text]",
	Short:    "Add a task to a day",
	Args:     cobra.ArbitraryArgs,
	StrFlags: []StringFlag{dateFlag},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		date, _ := cmd.Flags().GetString("date")
		return runAdd(cmd, homeDir, date, strings.Join(args, " "), NewPromptKit(), time.Now)
	},
}.Build()

func runAdd(cmd *cobra.Command, homeDir, dateFlag, text string, pk PromptKit, nowFn func() time.Time) error {
	now := nowFn()
	sess, err := openSession(cmd, homeDir, now)
	if err != nil {
		return err
	}
	key, err := selectDate(sess, dateFlag, now)
	if err != nil {
		return err
	}

	if strings.TrimSpace(text) == "" && pk.Prompt != nil {
		text, err = pk.Prompt(fmt.Sprintf("Task for %s", key))
		if err != nil {
			return err
		}
	}

	added, _, err := sess.Add(text)
	if err != nil {
		return err
	}

	_, total := sess.Counts(key)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s to %s (#%d)\n",
		Primary(added.Text),
		Primary(key.String()),
		total,
	)
	warnDegraded(cmd, sess.Degraded())
	return nil
}

// warnDegraded tells the user that the change was not written to disk.
func warnDegraded(cmd *cobra.Command, degraded bool) {
	if degraded {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s storage unavailable, changes are kept for this session only\n", Warning("Warning:"))
	}
}
