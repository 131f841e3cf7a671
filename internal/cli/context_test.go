package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Flyrell/daytask/internal/calendar"
	"github.com/Flyrell/daytask/internal/session"
	"github.com/Flyrell/daytask/internal/storage"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is a Thursday inside the default range 2025-09-22..2025-10-13.
func fixedNow() time.Time {
	return time.Date(2025, 9, 25, 10, 30, 0, 0, time.UTC)
}

// outsideNow lies after the default range.
func outsideNow() time.Time {
	return time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
}

// captureOutput points cmd at fresh buffers for stdout and stderr.
func captureOutput(cmd *cobra.Command) (stdout, stderr *bytes.Buffer) {
	stdout, stderr = new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return stdout, stderr
}

// seedTasks adds tasks to the given days through the real command path.
func seedTasks(t *testing.T, homeDir string, tasks map[string][]string) {
	t.Helper()
	for date, texts := range tasks {
		for _, text := range texts {
			captureOutput(addCmd)
			require.NoError(t, runAdd(addCmd, homeDir, date, text, PromptKit{}, fixedNow))
		}
	}
}

func TestOpenSessionDefaults(t *testing.T) {
	homeDir := t.TempDir()
	captureOutput(listCmd)

	sess, err := openSession(listCmd, homeDir, fixedNow())

	require.NoError(t, err)
	key, ok := sess.Selected()
	assert.True(t, ok)
	assert.Equal(t, calendar.DateKey("2025-09-25"), key)
	assert.False(t, sess.Degraded())
	assert.Len(t, sess.Cells(), 1+22)
}

func TestOpenSessionOutsideRangeSelectsStart(t *testing.T) {
	homeDir := t.TempDir()
	captureOutput(listCmd)

	sess, err := openSession(listCmd, homeDir, outsideNow())

	require.NoError(t, err)
	key, _ := sess.Selected()
	assert.Equal(t, calendar.DateKey("2025-09-22"), key)
}

func TestSelectDate(t *testing.T) {
	homeDir := t.TempDir()
	captureOutput(listCmd)
	sess, err := openSession(listCmd, homeDir, fixedNow())
	require.NoError(t, err)

	tests := []struct {
		name    string
		flag    string
		want    calendar.DateKey
		wantErr error
	}{
		{"empty keeps default", "", "2025-09-25", nil},
		{"iso date", "2025-10-01", "2025-10-01", nil},
		{"unpadded date", "2025-9-30", "2025-09-30", nil},
		{"relative", "tomorrow", "2025-09-26", nil},
		{"month name", "oct 3", "2025-10-03", nil},
		{"out of range", "2025-12-01", "", session.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectDate(sess, tt.flag, fixedNow())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "2025-09-22 to 2025-10-13")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectDateInvalid(t *testing.T) {
	homeDir := t.TempDir()
	captureOutput(listCmd)
	sess, err := openSession(listCmd, homeDir, fixedNow())
	require.NoError(t, err)

	_, err = selectDate(sess, "someday", fixedNow())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --date")
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1", 0, false},
		{" 3 ", 2, false},
		{"0", 0, true},
		{"-2", 0, true},
		{"two", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseIndex(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckbox(t *testing.T) {
	assert.Equal(t, "[x]", checkbox(true))
	assert.Equal(t, "[ ]", checkbox(false))
}

// seedSnapshot writes a raw task snapshot into the default data directory.
func seedSnapshot(t *testing.T, homeDir, snapshot string) {
	t.Helper()
	writeFile(t, storage.NewFileBackend(storage.DefaultDir(homeDir)).Path(storage.SnapshotKey), snapshot)
}

func TestTaskDate(t *testing.T) {
	homeDir := t.TempDir()
	seedSnapshot(t, homeDir, `{"2025-11-05": [{"text": "orphan"}]}`)
	captureOutput(listCmd)
	sess, err := openSession(listCmd, homeDir, fixedNow())
	require.NoError(t, err)

	t.Run("out of range day with tasks", func(t *testing.T) {
		key, err := taskDate(sess, "2025-11-05", fixedNow())
		require.NoError(t, err)
		assert.Equal(t, calendar.DateKey("2025-11-05"), key)
	})

	t.Run("selection is left alone", func(t *testing.T) {
		key, _ := sess.Selected()
		assert.Equal(t, calendar.DateKey("2025-09-25"), key)
	})

	t.Run("out of range day without tasks", func(t *testing.T) {
		_, err := taskDate(sess, "2025-11-06", fixedNow())
		assert.ErrorIs(t, err, session.ErrOutOfRange)
	})

	t.Run("in range day", func(t *testing.T) {
		key, err := taskDate(sess, "2025-10-02", fixedNow())
		require.NoError(t, err)
		assert.Equal(t, calendar.DateKey("2025-10-02"), key)
	})
}

func TestOpenSessionHonoursDirAndVerbose(t *testing.T) {
	homeDir := t.TempDir()
	dataDir := filepath.Join(t.TempDir(), "tasks")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("verbose", true, "")
	cmd.Flags().String("dir", dataDir, "")
	_, stderr := captureOutput(cmd)

	sess, err := openSession(cmd, homeDir, fixedNow())
	require.NoError(t, err)
	_, _, err = sess.Add("elsewhere")
	require.NoError(t, err)

	assert.Contains(t, stderr.String(), dataDir)
	_, err = os.Stat(filepath.Join(dataDir, storage.SnapshotKey+".json"))
	assert.NoError(t, err)
}
