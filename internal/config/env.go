package config

import (
	"fmt"
	"os"
	"strconv"
)

// loadFromEnv overrides config from environment variables.
// If sources is non-nil, it tracks the source of each value.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) error {
	mark := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv("SCHEDULE_FILE"); v != "" {
		cfg.ScheduleFile = v
		mark("schedule_file")
	}
	if v := os.Getenv("SCHEDULE_HOOK"); v != "" {
		cfg.HookCommand = v
		mark("hook_command")
	}
	if v := os.Getenv("SCHEDULE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		mark("log_level")
	}
	if v := os.Getenv("SCHEDULE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		mark("log_format")
	}

	bools := []struct {
		env   string
		field string
		dst   *bool
	}{
		{"SCHEDULE_VALIDATE", "validate_schema", &cfg.Validate},
		{"SCHEDULE_LOG_TIMESTAMPS", "log_timestamps", &cfg.LogTimestamps},
		{"SCHEDULE_LOG_CALLER", "log_caller", &cfg.LogCaller},
	}
	for _, b := range bools {
		v := os.Getenv(b.env)
		if v == "" {
			continue
		}
		parsed, err := boolFromString(v)
		if err != nil {
			return fmt.Errorf("%s: %w", b.env, err)
		}
		*b.dst = parsed
		mark(b.field)
	}
	return nil
}

// boolFromString accepts the forms strconv.ParseBool does plus yes/no and on/off.
func boolFromString(s string) (bool, error) {
	switch s {
	case "yes", "on", "YES", "ON", "Yes", "On":
		return true, nil
	case "no", "off", "NO", "OFF", "No", "Off":
		return false, nil
	}
	return strconv.ParseBool(s)
}
