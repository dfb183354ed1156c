package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# Schedule configuration file
# Values can be overridden by environment variables (SCHEDULE_*) or CLI flags

# Task list file (relative to project root)
schedule_file = ".schedule/tasks.json"

# Check task files against the built-in JSON Schema when loading
validate_schema = true

# Command to run after each change: <hook> <action> <title> <schedule-file>
# hook_command = "/path/to/hook.sh"

# Logging: debug, info, warn, error
log_level = "warn"
# text, json, or logfmt
log_format = "text"
log_timestamps = false
log_caller = false
`
}
