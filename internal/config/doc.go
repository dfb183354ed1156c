// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.schedule/schedule.toml or OS-specific config directory)
// 3. Project config file (schedule.toml or .schedule.toml in the current directory)
// 4. Environment variables (SCHEDULE_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.schedule/schedule.toml (preferred)
// - Windows: %APPDATA%\schedule\schedule.toml
// - macOS: ~/Library/Application Support/schedule/schedule.toml
// - Linux/BSD: $XDG_CONFIG_HOME/schedule/schedule.toml or ~/.config/schedule/schedule.toml
//
// Project-level config locations (overrides user config):
// - ./schedule.toml (preferred)
// - ./.schedule.toml
package config
