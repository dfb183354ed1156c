// Package hooks invokes an external command after schedule changes.
package hooks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Options configures a hook invocation.
type Options struct {
	Command string
	Action  string
	Title   string
	Path    string
	WorkDir string

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Result captures the outcome of a hook invocation.
type Result struct {
	Ran      bool
	Command  []string
	ExitCode int
}

// Invoke runs the hook as: <command> <action> <title> <schedule-file>.
// An empty command or action is a no-op.
func Invoke(ctx context.Context, opts Options) (Result, error) {
	if opts.Command == "" || opts.Action == "" {
		return Result{}, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, opts.Command, opts.Action, opts.Title, opts.Path)
	if opts.WorkDir != "" {
		cmd.Dir = opts.WorkDir
	}
	cmd.Env = append(os.Environ(),
		"SCHEDULE_HOOK_ACTION="+opts.Action,
		"SCHEDULE_HOOK_TITLE="+opts.Title,
		"SCHEDULE_HOOK_FILE="+opts.Path,
	)
	cmd.Stdout = opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	result := Result{
		Ran:      true,
		Command:  cmd.Args,
		ExitCode: exitCodeFromError(err),
	}
	if err != nil {
		return result, fmt.Errorf("hook command failed: %w", err)
	}
	return result, nil
}

func exitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
