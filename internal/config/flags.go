package config

import (
	"flag"
)

// flagFields maps flag names to the config field they set, for source tracking.
var flagFields = map[string]string{
	"file":           "schedule_file",
	"validate":       "validate_schema",
	"hook":           "hook_command",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
}

// parseFlags defines the global flags on fs, bound to cfg, and parses args.
// Flags not given on the command line keep the value from earlier layers.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("schedule", flag.ContinueOnError)
	}

	// Paths
	fs.StringVar(&cfg.ScheduleFile, "file", cfg.ScheduleFile, "Path to the schedule file")
	fs.BoolVar(&cfg.Validate, "validate", cfg.Validate, "Validate schedule files against the JSON Schema on load")

	// Hooks
	fs.StringVar(&cfg.HookCommand, "hook", cfg.HookCommand, "Hook command to run after each change")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller location in log output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if sources != nil {
		fs.Visit(func(f *flag.Flag) {
			if field, ok := flagFields[f.Name]; ok {
				sources[field] = SourceFlag
			}
		})
	}
	return nil
}
