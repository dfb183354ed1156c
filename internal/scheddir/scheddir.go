// Package scheddir provides constants and utilities for the .schedule directory structure.
package scheddir

import (
	"os"
	"path/filepath"
)

const (
	// Dir is the name of the schedule state directory.
	Dir = ".schedule"

	// DefaultScheduleFile is the default task list file name (inside .schedule).
	DefaultScheduleFile = "tasks.json"

	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "schedule.toml"
)

// SchedulePath returns the full path to the task list file within a work directory.
func SchedulePath(workDir string) string {
	return joinPath(workDir, DefaultScheduleFile)
}

// ConfigPath returns the full path to the config file within a work directory's
// .schedule directory.
func ConfigPath(workDir string) string {
	return joinPath(workDir, DefaultConfigFile)
}

// DirPath returns the full path to the .schedule directory within a work directory.
func DirPath(workDir string) string {
	if workDir == "." || workDir == "" {
		return Dir
	}
	return filepath.Join(workDir, Dir)
}

func joinPath(workDir, file string) string {
	return filepath.Join(DirPath(workDir), file)
}

// EnsureParent creates the directory that will hold path.
func EnsureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
