package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/nibzard/schedule-go/internal/schedule"
	"github.com/nibzard/schedule-go/internal/task"
)

func (a *app) lsCommand(args []string) error {
	fs := flag.NewFlagSet("schedule ls", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	overdue := fs.Bool("overdue", false, "Only overdue tasks")
	today := fs.Bool("today", false, "Only tasks due today")
	tomorrow := fs.Bool("tomorrow", false, "Only tasks due tomorrow")
	completed := fs.Bool("completed", false, "Only completed tasks")
	pending := fs.Bool("pending", false, "Only tasks not yet completed")
	recurring := fs.Bool("recurring", false, "Only recurring tasks")
	sorted := fs.Bool("sorted", false, "Order by due date")
	minDuration := fs.Int("min", 0, "Minimum duration (inclusive)")
	maxDuration := fs.Int("max", 0, "Maximum duration (inclusive)")
	asJSON := fs.Bool("json", false, "Print records as JSON")
	verbose := fs.Bool("v", false, "Show more details")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("ls: unexpected arguments: %v", fs.Args())
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	selectors := 0
	for _, on := range []bool{*overdue, *today, *tomorrow, *completed, *pending, *recurring} {
		if on {
			selectors++
		}
	}
	if selectors > 1 {
		return fmt.Errorf("ls: choose at most one of -overdue, -today, -tomorrow, -completed, -pending, -recurring")
	}

	s, err := a.open()
	if err != nil {
		return err
	}

	var tasks []*task.Task
	switch {
	case *overdue:
		tasks = s.ListOverdueTasks()
	case *today:
		tasks = s.ListTasksDueToday()
	case *tomorrow:
		tasks = s.CheckDeadlines()
	case *completed:
		tasks = s.ListCompletedTasks()
	case *pending:
		tasks = slices.DeleteFunc(s.ListAllTasks(), (*task.Task).IsCompleted)
	case *recurring:
		tasks = s.ListRecurringTasks()
	default:
		tasks = s.ListAllTasks()
	}

	if set["min"] || set["max"] {
		lo, hi := math.MinInt, math.MaxInt
		if set["min"] {
			lo = *minDuration
		}
		if set["max"] {
			hi = *maxDuration
		}
		if lo > hi {
			return fmt.Errorf("ls: -min %d is greater than -max %d", lo, hi)
		}
		inRange := s.ListTasksByDuration(lo, hi)
		tasks = slices.DeleteFunc(tasks, func(t *task.Task) bool {
			return !slices.Contains(inRange, t)
		})
	}

	if *sorted {
		slices.SortStableFunc(tasks, func(x, y *task.Task) int {
			return x.DueDate.Compare(y.DueDate)
		})
	}

	if *asJSON {
		return writeJSON(a.stdout, task.SerializeAll(tasks))
	}
	printTaskList(a.stdout, tasks, a.today(), *verbose)
	return nil
}

func (a *app) findCommand(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("find: keyword is required")
	}
	s, err := a.open()
	if err != nil {
		return err
	}
	printTaskList(a.stdout, s.FindTaskByKeyword(strings.Join(args, " ")), a.today(), false)
	return nil
}

func (a *app) statsCommand(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("stats: unexpected arguments: %v", args)
	}
	s, err := a.open()
	if err != nil {
		return err
	}
	printStats(a.stdout, s)
	return nil
}

func printStats(w io.Writer, s *schedule.Schedule) {
	total := s.Len()
	completed := len(s.ListCompletedTasks())
	fmt.Fprintf(w, "Tasks:        %d\n", total)
	fmt.Fprintf(w, "Pending:      %d\n", total-completed)
	fmt.Fprintf(w, "Completed:    %d\n", completed)
	fmt.Fprintf(w, "Overdue:      %d\n", len(s.ListOverdueTasks()))
	fmt.Fprintf(w, "Due today:    %d\n", len(s.ListTasksDueToday()))
	fmt.Fprintf(w, "Due tomorrow: %d\n", len(s.CheckDeadlines()))
	fmt.Fprintf(w, "Recurring:    %d\n", len(s.ListRecurringTasks()))
	fmt.Fprintf(w, "Completion:   %.1f%%\n", s.CompletionPercentage())
}

func printTaskList(w io.Writer, tasks []*task.Task, today task.Date, verbose bool) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return
	}
	for _, t := range tasks {
		fmt.Fprintf(w, "%s %s\n", marker(t, today), t)
		if verbose {
			if t.Description != "" {
				fmt.Fprintf(w, "      Description: %s\n", t.Description)
			}
			if t.Notes != "" {
				fmt.Fprintf(w, "      Notes: %s\n", t.Notes)
			}
		}
	}
}

func printTaskDetails(w io.Writer, t *task.Task, today task.Date) {
	fmt.Fprintf(w, "%s %s\n", marker(t, today), t.Title)
	fmt.Fprintf(w, "  ID:          %s\n", t.ID)
	fmt.Fprintf(w, "  Description: %s\n", t.Description)
	fmt.Fprintf(w, "  Due:         %s\n", t.DueDate)
	fmt.Fprintf(w, "  Status:      %s\n", t.Status)
	fmt.Fprintf(w, "  Priority:    %s\n", t.Priority)
	if t.Notes != "" {
		fmt.Fprintf(w, "  Notes:       %s\n", t.Notes)
	}
	if t.Duration != 0 {
		fmt.Fprintf(w, "  Duration:    %d\n", t.Duration)
	}
	if t.IsRecurring() {
		fmt.Fprintf(w, "  Recurrence:  %s\n", t.Recurrence)
	}
	if t.ReminderDate != nil {
		fmt.Fprintf(w, "  Reminder:    %s\n", t.ReminderDate)
	}
}

// marker flags completed, overdue, and due-today tasks.
func marker(t *task.Task, today task.Date) string {
	switch {
	case t.IsCompleted():
		return "[x]"
	case t.IsOverdueOn(today):
		return "[!]"
	case t.IsDueOn(today):
		return "[*]"
	default:
		return "[ ]"
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
