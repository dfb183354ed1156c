package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nibzard/schedule-go/internal/config"
	"github.com/nibzard/schedule-go/internal/scheddir"
)

// configFieldValues lists effective values in display order.
func configFieldValues(cfg *config.Config) [][2]string {
	return [][2]string{
		{"schedule_file", cfg.ScheduleFile},
		{"validate_schema", fmt.Sprint(cfg.Validate)},
		{"hook_command", cfg.HookCommand},
		{"log_level", cfg.LogLevel},
		{"log_format", cfg.LogFormat},
		{"log_timestamps", fmt.Sprint(cfg.LogTimestamps)},
		{"log_caller", fmt.Sprint(cfg.LogCaller)},
	}
}

func (a *app) configCommand(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("config: unexpected arguments: %v", args[1:])
	}
	sub := ""
	if len(args) == 1 {
		sub = args[0]
	}

	switch sub {
	case "":
		if file := a.sources.GetConfigFile(); file != "" {
			fmt.Fprintf(a.stdout, "Config file: %s\n", file)
		} else {
			fmt.Fprintln(a.stdout, "Config file: (none)")
		}
		fmt.Fprintf(a.stdout, "Project root: %s\n\n", a.cfg.ProjectRoot)
		for _, kv := range configFieldValues(a.cfg) {
			value := kv[1]
			if value == "" {
				value = "(unset)"
			}
			fmt.Fprintf(a.stdout, "  %-16s %-40s %s\n", kv[0], value, a.sources.Sources[kv[0]])
		}
		return nil
	case "example":
		fmt.Fprint(a.stdout, config.ExampleConfig())
		return nil
	case "init":
		path := scheddir.DefaultConfigFile
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config init: %s already exists", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config init: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.ExampleConfig()), 0644); err != nil {
			return fmt.Errorf("config init: %w", err)
		}
		fmt.Fprintf(a.stdout, "Wrote %s\n", path)
		return nil
	default:
		return fmt.Errorf("config: unknown subcommand %q (want init or example)", sub)
	}
}
