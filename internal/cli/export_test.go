package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Flyrell/daytask/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDay(t *testing.T) {
	all := []task.Dated{
		{Key: "2025-09-22", Index: 0, Task: task.Task{Text: "a", Done: true}},
		{Key: "2025-09-22", Index: 1, Task: task.Task{Text: "b"}},
		{Key: "2025-10-01", Index: 0, Task: task.Task{Text: "c"}},
	}

	days := groupByDay(all)

	require.Len(t, days, 2)
	assert.Equal(t, "2025-09-22", days[0].Key.String())
	assert.Len(t, days[0].Tasks, 2)
	assert.Equal(t, 1, days[0].Done)
	assert.Equal(t, "2025-10-01", days[1].Key.String())
	assert.Equal(t, 0, days[1].Done)
}

func TestExportCreatesPDF(t *testing.T) {
	homeDir := t.TempDir()
	seedTasks(t, homeDir, map[string][]string{
		"2025-09-22": {"kickoff"},
		"2025-10-04": {"holiday errand"},
	})
	outPath := filepath.Join(t.TempDir(), "tasks.pdf")
	stdout, _ := captureOutput(exportCmd)

	err := runExport(exportCmd, homeDir, outPath, fixedNow)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "exported 2 tasks")

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportEmpty(t *testing.T) {
	homeDir := t.TempDir()
	outPath := filepath.Join(t.TempDir(), "empty.pdf")
	captureOutput(exportCmd)

	err := runExport(exportCmd, homeDir, outPath, fixedNow)

	require.NoError(t, err)
	_, err = os.Stat(outPath)
	assert.NoError(t, err)
}
