package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Flyrell/daytask/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, homeDir, content string) {
	t.Helper()
	path := Path(homeDir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(home)

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, filepath.Join(home, ".daytask"), cfg.DataDir(home))
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	writeConfigFile(t, home, `
[calendar]
start = "2025-12-01"
end = "2025-12-31"
holidays = "weekends"

[storage]
dir = "/tmp/daytask-data"
`)

	cfg, err := Load(home)

	require.NoError(t, err)
	assert.Equal(t, "2025-12-01", cfg.Calendar.Start)
	assert.Equal(t, "2025-12-31", cfg.Calendar.End)
	assert.Equal(t, "2025-10-03", cfg.Calendar.HolidayStart, "unset keys keep defaults")
	assert.Equal(t, "weekends", cfg.Calendar.Holidays)
	assert.Equal(t, "/tmp/daytask-data", cfg.DataDir(home))
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	writeConfigFile(t, home, "[calendar]\nstart = \"2025-12-01\"\nend = \"2025-12-31\"\n")
	t.Setenv("DAYTASK_START", "2025-12-15")
	t.Setenv("DAYTASK_DIR", "/srv/tasks")

	cfg, err := Load(home)

	require.NoError(t, err)
	assert.Equal(t, "2025-12-15", cfg.Calendar.Start)
	assert.Equal(t, "2025-12-31", cfg.Calendar.End)
	assert.Equal(t, "/srv/tasks", cfg.Storage.Dir)
}

func TestLoadMalformedFile(t *testing.T) {
	home := t.TempDir()
	writeConfigFile(t, home, "[calendar\nstart = ")

	_, err := Load(home)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestWriteThenReadFile(t *testing.T) {
	home := t.TempDir()
	cfg := Default()
	require.NoError(t, cfg.Set("calendar.end", "2025-10-20"))

	require.NoError(t, Write(home, cfg))
	got, err := ReadFile(home)

	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestGetSet(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name    string
		key     string
		value   string
		want    string
		wantErr bool
	}{
		{name: "canonicalises date", key: "calendar.start", value: "2025-9-1", want: "2025-09-01"},
		{name: "case-insensitive key", key: "Calendar.End", value: "2025-10-31", want: "2025-10-31"},
		{name: "clears holiday start", key: "calendar.holiday_start", value: "", want: ""},
		{name: "recurrence", key: "calendar.holidays", value: "every sunday", want: "every sunday"},
		{name: "storage dir", key: "storage.dir", value: "/data", want: "/data"},
		{name: "bad date", key: "calendar.end", value: "soon", wantErr: true},
		{name: "start required", key: "calendar.start", value: "", wantErr: true},
		{name: "bad recurrence", key: "calendar.holidays", value: "sometimes", wantErr: true},
		{name: "unknown key", key: "calendar.colour", value: "red", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			got, err := cfg.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := cfg.Get("nope")
	assert.ErrorContains(t, err, "unknown config key")
}

func TestCalendarConfigFromDefaults(t *testing.T) {
	cal, err := Default().CalendarConfig()

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC), cal.Start)
	assert.Equal(t, time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), cal.End)
	assert.True(t, cal.IsHoliday(time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC)))
	assert.Nil(t, cal.Holidays)
	assert.Equal(t, 22, cal.Days())
}

func TestCalendarConfigWithRecurringHolidays(t *testing.T) {
	cfg := Default()
	cfg.Calendar.HolidayStart = ""
	cfg.Calendar.HolidayEnd = ""
	cfg.Calendar.Holidays = "every saturday"

	cal, err := cfg.CalendarConfig()

	require.NoError(t, err)
	require.NotNil(t, cal.Holidays)
	assert.True(t, cal.IsHoliday(time.Date(2025, 9, 27, 0, 0, 0, 0, time.UTC)))
	assert.False(t, cal.IsHoliday(time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC)))
}

func TestCalendarConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{name: "inverted range", mutate: func(c *Config) { c.Calendar.End = "2025-09-01" }, want: "before start"},
		{name: "bad start", mutate: func(c *Config) { c.Calendar.Start = "someday" }, want: "calendar.start"},
		{name: "bad holiday end", mutate: func(c *Config) { c.Calendar.HolidayEnd = "x" }, want: "calendar.holiday_end"},
		{name: "bad recurrence", mutate: func(c *Config) { c.Calendar.Holidays = "often" }, want: "calendar.holidays"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			_, err := cfg.CalendarConfig()

			assert.ErrorContains(t, err, tt.want)
		})
	}

	cfg := Default()
	cfg.Calendar.End = "2025-09-01"
	_, err := cfg.CalendarConfig()
	assert.ErrorIs(t, err, calendar.ErrInvalidRange)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{
		"calendar.end",
		"calendar.holiday_end",
		"calendar.holiday_start",
		"calendar.holidays",
		"calendar.start",
		"storage.dir",
	}, Keys())
}
