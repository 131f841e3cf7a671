package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Flyrell/daytask/internal/calendar"
	"github.com/Flyrell/daytask/internal/storage"
)

// Config is the on-disk configuration, stored as TOML.
type Config struct {
	Calendar CalendarSection `toml:"calendar"`
	Storage  StorageSection  `toml:"storage"`
}

// CalendarSection holds the rendered range and holidays as YYYY-MM-DD dates.
type CalendarSection struct {
	Start        string `toml:"start"`
	End          string `toml:"end"`
	HolidayStart string `toml:"holiday_start"`
	HolidayEnd   string `toml:"holiday_end"`
	Holidays     string `toml:"holidays"` // optional recurrence, e.g. "every sunday"
}

// StorageSection configures where task snapshots are written.
type StorageSection struct {
	Dir string `toml:"dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Calendar: CalendarSection{
			Start:        "2025-09-22",
			End:          "2025-10-13",
			HolidayStart: "2025-10-03",
			HolidayEnd:   "2025-10-12",
		},
	}
}

// Path returns the config file location for homeDir.
func Path(homeDir string) string {
	return filepath.Join(storage.DefaultDir(homeDir), "config.toml")
}

// Load builds the configuration from defaults, the config file (if any) and
// DAYTASK_* environment variables, in increasing precedence.
func Load(homeDir string) (*Config, error) {
	cfg, err := ReadFile(homeDir)
	if err != nil {
		return nil, err
	}
	loadFromEnv(cfg)
	return cfg, nil
}

// ReadFile returns the defaults overlaid with the config file only.
func ReadFile(homeDir string) (*Config, error) {
	cfg := Default()
	path := Path(homeDir)
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}
	return cfg, nil
}

// Write saves cfg as TOML, creating the directory if needed.
func Write(homeDir string, cfg *Config) error {
	path := Path(homeDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

var envVars = map[string]string{
	"DAYTASK_START":         "calendar.start",
	"DAYTASK_END":           "calendar.end",
	"DAYTASK_HOLIDAY_START": "calendar.holiday_start",
	"DAYTASK_HOLIDAY_END":   "calendar.holiday_end",
	"DAYTASK_HOLIDAYS":      "calendar.holidays",
	"DAYTASK_DIR":           "storage.dir",
}

func loadFromEnv(cfg *Config) {
	for env, key := range envVars {
		if v, ok := os.LookupEnv(env); ok {
			*cfg.field(key) = v
		}
	}
}

// field returns a pointer to the value behind a dotted key, or nil.
func (c *Config) field(key string) *string {
	switch key {
	case "calendar.start":
		return &c.Calendar.Start
	case "calendar.end":
		return &c.Calendar.End
	case "calendar.holiday_start":
		return &c.Calendar.HolidayStart
	case "calendar.holiday_end":
		return &c.Calendar.HolidayEnd
	case "calendar.holidays":
		return &c.Calendar.Holidays
	case "storage.dir":
		return &c.Storage.Dir
	}
	return nil
}

// Keys returns every settable dotted key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(envVars))
	for _, k := range envVars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key such as "calendar.start".
func (c *Config) Get(key string) (string, error) {
	f := c.field(strings.ToLower(key))
	if f == nil {
		return "", fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	return *f, nil
}

// Set validates and assigns a dotted key. Date keys are stored canonically.
func (c *Config) Set(key, value string) error {
	key = strings.ToLower(key)
	f := c.field(key)
	if f == nil {
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}

	value = strings.TrimSpace(value)
	switch key {
	case "calendar.start", "calendar.end", "calendar.holiday_start", "calendar.holiday_end":
		if value != "" || key == "calendar.start" || key == "calendar.end" {
			k, err := calendar.ParseKey(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			value = k.String()
		}
	case "calendar.holidays":
		if value != "" {
			if _, err := calendar.ParseRecurrence(value); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
	}

	*f = value
	return nil
}

// CalendarConfig builds the validated calendar configuration.
func (c *Config) CalendarConfig() (calendar.Config, error) {
	start, err := parseDay("calendar.start", c.Calendar.Start)
	if err != nil {
		return calendar.Config{}, err
	}
	end, err := parseDay("calendar.end", c.Calendar.End)
	if err != nil {
		return calendar.Config{}, err
	}
	hs, err := parseOptionalDay("calendar.holiday_start", c.Calendar.HolidayStart)
	if err != nil {
		return calendar.Config{}, err
	}
	he, err := parseOptionalDay("calendar.holiday_end", c.Calendar.HolidayEnd)
	if err != nil {
		return calendar.Config{}, err
	}

	cal, err := calendar.NewConfig(start, end, hs, he)
	if err != nil {
		return calendar.Config{}, err
	}

	if c.Calendar.Holidays != "" {
		rule, err := calendar.ParseRecurrence(c.Calendar.Holidays)
		if err != nil {
			return calendar.Config{}, fmt.Errorf("calendar.holidays: %w", err)
		}
		cal.Holidays = rule
	}
	return cal, nil
}

// DataDir returns the configured storage directory, defaulting to
// ~/.daytask.
func (c *Config) DataDir(homeDir string) string {
	if c.Storage.Dir != "" {
		return c.Storage.Dir
	}
	return storage.DefaultDir(homeDir)
}

func parseDay(key, value string) (time.Time, error) {
	k, err := calendar.ParseKey(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", key, err)
	}
	return k.Time(), nil
}

func parseOptionalDay(key, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	return parseDay(key, value)
}
