// Package config loads the validator's TOML configuration: display templates,
// the reference clock, validation messages and logging.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jdlien/validator/internal/constants"
	"github.com/jdlien/validator/internal/dateparse"
	"github.com/jdlien/validator/internal/errorutil"
	"github.com/jdlien/validator/internal/logger"
	"github.com/jdlien/validator/internal/validate"
)

// Config represents the main configuration structure
type Config struct {
	Formats  FormatsConfig     `toml:"formats" json:"formats" yaml:"formats"`
	Clock    ClockConfig       `toml:"clock" json:"clock" yaml:"clock"`
	Messages validate.Messages `toml:"messages" json:"messages" yaml:"messages"`
	Logging  logger.Config     `toml:"logging" json:"logging" yaml:"logging"`
}

// FormatsConfig holds the display templates for normalized values
type FormatsConfig struct {
	Date     string `toml:"date" json:"date" yaml:"date"`
	Time     string `toml:"time" json:"time" yaml:"time"`
	DateTime string `toml:"datetime" json:"datetime" yaml:"datetime"`
}

// ClockConfig pins the reference time. Now is any string the date parser
// accepts, e.g. "2024-01-17 12:00:00"; Location is an IANA zone name.
type ClockConfig struct {
	Now      string `toml:"now" json:"now" yaml:"now"`
	Location string `toml:"location" json:"location" yaml:"location"`
}

// ConfigError represents configuration-related errors
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e ConfigError) Error() string {
	if e.Field != "" {
		return "config." + e.Field + ": " + e.Message
	}
	return e.Message
}

func (e ConfigError) Unwrap() error {
	return e.Err
}

var (
	ErrFileNotFound  = errors.New("configuration file not found")
	ErrInvalidFormat = errors.New("invalid configuration file format")
)

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// LoadConfig reads a TOML file over the defaults, applies VALIDATOR_*
// environment overrides and validates the result
func LoadConfig(filepath string) (*Config, error) {
	if err := errorutil.ValidateFileExists(filepath, "load config"); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filepath)
		}
		return nil, err
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filepath, err)
	}

	var loaded Config
	md, err := toml.Decode(string(data), &loaded)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - %v", ErrInvalidFormat, filepath, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: %s - unknown keys: %s", ErrInvalidFormat, filepath, strings.Join(keys, ", "))
	}

	config := mergeWithDefaults(&loaded, md, DefaultConfig())
	config.ApplyEnvironmentOverrides()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Load returns the configuration at path, or the defaults with environment
// overrides when path is empty
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadConfig(path)
	}
	config := DefaultConfig()
	config.ApplyEnvironmentOverrides()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func DefaultConfig() *Config {
	return &Config{
		Formats: FormatsConfig{
			Date:     constants.DefaultDateFormat,
			Time:     constants.DefaultTimeFormat,
			DateTime: constants.DefaultDateTimeFormat,
		},
		Messages: validate.DefaultMessages(),
		Logging: logger.Config{
			Enabled:         false,
			Directory:       "logs",
			FilenamePattern: constants.DefaultLogFilenamePattern,
			Level:           "info",
			MaxFiles:        constants.DefaultMaxLogFiles,
			MaxSizeMB:       constants.DefaultMaxLogSizeMB,
			ConsoleOutput:   true,
		},
	}
}

// mergeWithDefaults overlays the non-empty values of loaded on defaults.
// Booleans are taken whenever the file sets them.
func mergeWithDefaults(loaded *Config, md toml.MetaData, defaults *Config) *Config {
	result := *defaults

	overlay := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	overlay(&result.Formats.Date, loaded.Formats.Date)
	overlay(&result.Formats.Time, loaded.Formats.Time)
	overlay(&result.Formats.DateTime, loaded.Formats.DateTime)

	overlay(&result.Clock.Now, loaded.Clock.Now)
	overlay(&result.Clock.Location, loaded.Clock.Location)

	overlay(&result.Messages.Required, loaded.Messages.Required)
	overlay(&result.Messages.Date, loaded.Messages.Date)
	overlay(&result.Messages.DatePast, loaded.Messages.DatePast)
	overlay(&result.Messages.DateFuture, loaded.Messages.DateFuture)
	overlay(&result.Messages.DateRange, loaded.Messages.DateRange)
	overlay(&result.Messages.Time, loaded.Messages.Time)

	overlay(&result.Logging.Directory, loaded.Logging.Directory)
	overlay(&result.Logging.FilenamePattern, loaded.Logging.FilenamePattern)
	overlay(&result.Logging.Level, loaded.Logging.Level)
	if loaded.Logging.MaxFiles > 0 {
		result.Logging.MaxFiles = loaded.Logging.MaxFiles
	}
	if loaded.Logging.MaxSizeMB > 0 {
		result.Logging.MaxSizeMB = loaded.Logging.MaxSizeMB
	}
	if md.IsDefined("logging", "enabled") {
		result.Logging.Enabled = loaded.Logging.Enabled
	}
	if md.IsDefined("logging", "console_output") {
		result.Logging.ConsoleOutput = loaded.Logging.ConsoleOutput
	}

	return &result
}

// ApplyEnvironmentOverrides overrides config values from VALIDATOR_* variables
func (c *Config) ApplyEnvironmentOverrides() {
	overrides := []struct {
		env string
		dst *string
	}{
		{"VALIDATOR_DATE_FORMAT", &c.Formats.Date},
		{"VALIDATOR_TIME_FORMAT", &c.Formats.Time},
		{"VALIDATOR_DATETIME_FORMAT", &c.Formats.DateTime},
		{"VALIDATOR_NOW", &c.Clock.Now},
		{"VALIDATOR_LOCATION", &c.Clock.Location},
		{"VALIDATOR_LOG_LEVEL", &c.Logging.Level},
		{"VALIDATOR_LOG_DIRECTORY", &c.Logging.Directory},
	}
	for _, o := range overrides {
		if envVal := os.Getenv(o.env); envVal != "" {
			*o.dst = envVal
		}
	}

	if envVal := os.Getenv("VALIDATOR_LOG_ENABLED"); envVal == "true" {
		c.Logging.Enabled = true
	}
}

// Validate checks templates, the clock, and the logging settings
func (c *Config) Validate() error {
	err := errorutil.ValidateConfig("validator", func(vb *errorutil.ValidationBuilder) *errorutil.ValidationBuilder {
		vb.RequiredString("formats.date", c.Formats.Date).
			RequiredString("formats.time", c.Formats.Time).
			RequiredString("formats.datetime", c.Formats.DateTime).
			OneOf("logging.level", strings.ToLower(c.Logging.Level), logLevels)

		_, locErr := c.Location()
		vb.Check("clock.location", c.Clock.Location, locErr)
		if locErr == nil && c.Clock.Now != "" {
			_, nowErr := c.Now(time.Now())
			vb.Check("clock.now", c.Clock.Now, nowErr)
		}

		if c.Logging.Enabled {
			vb.Check("logging.filename_pattern", c.Logging.FilenamePattern,
				logger.ValidateFilenamePattern(c.Logging.FilenamePattern))
			vb.RequiredInt("logging.max_size_mb", c.Logging.MaxSizeMB)
			vb.Custom("logging.max_files", c.Logging.MaxFiles, func(v any) bool {
				return v.(int) >= 0
			}, "must not be negative")
		}
		return vb
	})
	if err != nil {
		return ConfigError{Message: err.Error(), Err: err}
	}
	return nil
}

// Location resolves clock.location, defaulting to the local zone
func (c *Config) Location() (*time.Location, error) {
	if c.Clock.Location == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Clock.Location)
	if err != nil {
		return nil, fmt.Errorf("unknown location %q: %w", c.Clock.Location, err)
	}
	return loc, nil
}

// Now returns the reference time: wall in the configured location, or the
// parsed clock.now when set
func (c *Config) Now(wall time.Time) (time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return time.Time{}, ConfigError{Field: "clock.location", Message: err.Error(), Err: err}
	}
	wall = wall.In(loc)
	if c.Clock.Now == "" {
		return wall, nil
	}

	now, err := dateparse.ParseDate(c.Clock.Now, wall)
	if err != nil {
		return time.Time{}, ConfigError{Field: "clock.now", Message: err.Error(), Err: err}
	}
	return now, nil
}

// SaveConfig writes config as TOML, creating the parent directory
func SaveConfig(config *Config, filepath string) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return fmt.Errorf("failed to marshal config to TOML: %w", err)
	}
	return errorutil.SafeWriteFile(filepath, buf.Bytes(), "save config", true)
}
