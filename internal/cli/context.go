package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Flyrell/daytask/internal/calendar"
	"github.com/Flyrell/daytask/internal/config"
	"github.com/Flyrell/daytask/internal/session"
	"github.com/Flyrell/daytask/internal/storage"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newLogger returns the stderr logger for cmd, at debug level with --verbose.
func newLogger(cmd *cobra.Command) *log.Logger {
	level := log.WarnLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "daytask",
		Level:  level,
	})
}

// openSession loads the configuration for homeDir, honours --dir and opens
// the task session with the default selection for now.
func openSession(cmd *cobra.Command, homeDir string, now time.Time) (*session.Session, error) {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		cfg.Storage.Dir = dir
	}

	cal, err := cfg.CalendarConfig()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd)
	backend := storage.NewFileBackend(cfg.DataDir(homeDir))
	logger.Debug("opening task storage", "dir", backend.Dir())
	return session.Open(cal, backend, now, logger), nil
}

// selectDate applies the --date flag. An empty flag keeps the default
// selection.
func selectDate(sess *session.Session, dateFlag string, now time.Time) (calendar.DateKey, error) {
	if dateFlag != "" {
		d, err := calendar.ParseDate(dateFlag, now)
		if err != nil {
			return "", fmt.Errorf("invalid --date: %w", err)
		}
		if _, err := sess.Select(calendar.KeyOf(d)); err != nil {
			cal := sess.Calendar()
			return "", fmt.Errorf("%w (%s to %s)", err, calendar.KeyOf(cal.Start), calendar.KeyOf(cal.End))
		}
	}

	key, ok := sess.Selected()
	if !ok {
		return "", session.ErrNoSelection
	}
	return key, nil
}

// taskDate resolves the day whose existing tasks a command edits. Unlike
// selectDate it also accepts a day outside the calendar range, as long as
// that day still has tasks, so nothing listed by "all" is out of reach.
func taskDate(sess *session.Session, dateFlag string, now time.Time) (calendar.DateKey, error) {
	if dateFlag != "" {
		d, err := calendar.ParseDate(dateFlag, now)
		if err != nil {
			return "", fmt.Errorf("invalid --date: %w", err)
		}
		if key := calendar.KeyOf(d); !sess.Calendar().ContainsKey(key) {
			if _, total := sess.Counts(key); total > 0 {
				return key, nil
			}
		}
	}
	return selectDate(sess, dateFlag, now)
}

// parseIndex converts a 1-based task number from the command line into a
// 0-based index.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid task number %q: expected 1 or more", s)
	}
	return n - 1, nil
}

// checkbox renders a task's state for list output.
func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
