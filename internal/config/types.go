package config

import (
	"github.com/nibzard/schedule-go/internal/scheddir"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
}

// Default values.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultValidate  = true
)

// DefaultScheduleFile is the task list path used when nothing overrides it,
// relative to the project root.
var DefaultScheduleFile = scheddir.SchedulePath("")

// Config holds the full configuration for the schedule CLI.
type Config struct {
	// Paths
	ScheduleFile string `toml:"schedule_file"`

	// Validate schedule files against the embedded JSON Schema on load
	Validate bool `toml:"validate_schema"`

	// Hook command run after each successful change
	HookCommand string `toml:"hook_command"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"schedule_file",
		"validate_schema",
		"hook_command",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

func setDefaults(cfg *Config) {
	cfg.ScheduleFile = DefaultScheduleFile
	cfg.Validate = DefaultValidate
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}
