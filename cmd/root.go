// Package cmd implements the CLI command structure for schedule.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/schedule-go/internal/config"
	"github.com/nibzard/schedule-go/internal/hooks"
	"github.com/nibzard/schedule-go/internal/logging"
	"github.com/nibzard/schedule-go/internal/scheddir"
	"github.com/nibzard/schedule-go/internal/schedule"
	"github.com/nibzard/schedule-go/internal/task"
	"github.com/nibzard/schedule-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// ErrTaskNotFound is returned when a command names a task that does not exist.
var ErrTaskNotFound = errors.New("task not found")

// timeNow is the clock used for "today"; tests replace it.
var timeNow = time.Now

// Hook actions without a matching history entry.
const (
	actionReminded = "reminded"
	actionCleared  = "cleared"
)

// Run executes the schedule CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

// app carries what every subcommand needs.
type app struct {
	cfg     *config.Config
	sources *config.ConfigWithSources
	logger  *log.Logger
	stdout  io.Writer
	stderr  io.Writer
	now     func() time.Time
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("schedule", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(stdout)
	}

	logOpts, err := logging.OptionsFromConfig(cws.Config)
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	a := &app{
		cfg:     cws.Config,
		sources: cws,
		logger:  logging.New(stderr, logOpts),
		stdout:  stdout,
		stderr:  stderr,
		now:     timeNow,
	}

	// Determine the subcommand; listing is the default
	subcommand := "ls"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "add":
		return a.addCommand(ctx, remainingArgs)
	case "show":
		return a.showCommand(remainingArgs)
	case "rm", "remove":
		return a.removeCommand(ctx, remainingArgs)
	case "done", "complete":
		return a.doneCommand(ctx, remainingArgs)
	case "set", "update":
		return a.setCommand(ctx, remainingArgs)
	case "remind":
		return a.remindCommand(ctx, remainingArgs)
	case "ls", "list":
		return a.lsCommand(remainingArgs)
	case "find":
		return a.findCommand(remainingArgs)
	case "clear":
		return a.clearCommand(ctx, remainingArgs)
	case "stats":
		return a.statsCommand(remainingArgs)
	case "tui":
		return a.tuiCommand(ctx, remainingArgs)
	case "config":
		return a.configCommand(remainingArgs)
	case "version":
		return versionCommand(stdout)
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// open loads the configured schedule file. A missing file is an empty schedule.
func (a *app) open() (*schedule.Schedule, error) {
	return schedule.Open(a.cfg.ScheduleFile,
		schedule.WithClock(a.now),
		schedule.WithLogger(a.logger),
		schedule.WithValidation(a.cfg.Validate),
	)
}

// commit saves s and runs the hook for the change.
func (a *app) commit(ctx context.Context, s *schedule.Schedule, action, title string) error {
	path := a.cfg.ScheduleFile
	if err := scheddir.EnsureParent(path); err != nil {
		return fmt.Errorf("creating schedule directory: %w", err)
	}
	if err := s.SaveToFile(path); err != nil {
		return err
	}

	result, err := hooks.Invoke(ctx, hooks.Options{
		Command: a.cfg.HookCommand,
		Action:  action,
		Title:   title,
		Path:    path,
		WorkDir: a.cfg.ProjectRoot,
		Stdout:  a.stdout,
		Stderr:  a.stderr,
	})
	if err != nil {
		return fmt.Errorf("running hook: %w", err)
	}
	if result.Ran {
		a.logger.Debug("hook finished", "command", strings.Join(result.Command, " "), "exit", result.ExitCode)
	}
	return nil
}

// lookup finds a task by title, falling back to its ID.
func lookup(s *schedule.Schedule, key string) (*task.Task, error) {
	if t := s.GetTask(key); t != nil {
		return t, nil
	}
	if task.ValidID(key) {
		if t := s.GetTaskByID(key); t != nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrTaskNotFound, key)
}

func (a *app) today() task.Date {
	return task.DateOf(a.now())
}

func (a *app) tuiCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("schedule tui", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	interval := fs.Duration("refresh", 2*time.Second, "How often to re-read the schedule file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return ui.RunTUI(ctx, a.cfg, a.cfg.ScheduleFile,
		ui.WithClock(a.now),
		ui.WithLogger(a.logger),
		ui.WithRefreshInterval(*interval),
	)
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "schedule version %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Schedule - a personal task scheduler")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  schedule [global options] [command] [options] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  add [options] <title>         Add a task")
	fmt.Fprintln(w, "  show <title|id>               Show one task in full")
	fmt.Fprintln(w, "  rm <title|id>                 Remove a task")
	fmt.Fprintln(w, "  done <title|id>               Mark a task completed")
	fmt.Fprintln(w, "  set <title|id> field=value... Update fields")
	fmt.Fprintln(w, "  remind <title|id> <date>      Set a reminder date")
	fmt.Fprintln(w, "  ls [options]                  List tasks (default command)")
	fmt.Fprintln(w, "  find <keyword>                Search titles and descriptions")
	fmt.Fprintln(w, "  clear                         Remove completed tasks")
	fmt.Fprintln(w, "  stats                         Show counts and completion")
	fmt.Fprintln(w, "  tui [-refresh dur]            Launch terminal UI")
	fmt.Fprintln(w, "  config [init|example]         Show effective configuration")
	fmt.Fprintln(w, "  version                       Show version information")
	fmt.Fprintln(w, "  help                          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add Options:")
	fmt.Fprintln(w, "  -d, -desc string      Description")
	fmt.Fprintln(w, "  -due string           Due date: YYYY-MM-DD, today, tomorrow, yesterday, +N, -N (default today)")
	fmt.Fprintln(w, "  -p, -priority string  Low, Medium, or High (default Medium)")
	fmt.Fprintln(w, "  -status string        Initial status (default Pending)")
	fmt.Fprintln(w, "  -notes string         Free-form notes")
	fmt.Fprintln(w, "  -duration int         Estimated duration")
	fmt.Fprintln(w, "  -every string         Recurrence: daily, weekly, monthly, yearly")
	fmt.Fprintln(w, "  -remind string        Reminder date")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ls Options:")
	fmt.Fprintln(w, "  -overdue | -today | -tomorrow | -completed | -pending | -recurring")
	fmt.Fprintln(w, "  -sorted               Order by due date")
	fmt.Fprintln(w, "  -min int, -max int    Duration range (inclusive)")
	fmt.Fprintln(w, "  -json                 Print records as JSON")
	fmt.Fprintln(w, "  -v                    Show more details")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Updatable fields for set: %s\n", strings.Join(task.Fields(), ", "))
}
