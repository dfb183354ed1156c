package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/nibzard/schedule-go/internal/schedule"
	"github.com/nibzard/schedule-go/internal/task"
	"github.com/nibzard/schedule-go/internal/utils"
)

func (a *app) addCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("schedule add", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	var desc, priority string
	fs.StringVar(&desc, "desc", "", "Description")
	fs.StringVar(&desc, "d", "", "Description (shorthand)")
	due := fs.String("due", "today", "Due date")
	fs.StringVar(&priority, "priority", "", "Priority")
	fs.StringVar(&priority, "p", "", "Priority (shorthand)")
	status := fs.String("status", "", "Initial status")
	notes := fs.String("notes", "", "Notes")
	duration := fs.Int("duration", 0, "Estimated duration")
	every := fs.String("every", "", "Recurrence rule")
	remind := fs.String("remind", "", "Reminder date")
	if err := fs.Parse(args); err != nil {
		return err
	}

	title := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if title == "" {
		return fmt.Errorf("add: title is required")
	}
	if *duration < 0 {
		return fmt.Errorf("add: duration must not be negative")
	}

	today := a.today()
	dueDate, err := parseDay(*due, today)
	if err != nil {
		return fmt.Errorf("add: due date: %w", err)
	}

	opts := []task.Option{task.WithNotes(*notes), task.WithDuration(*duration)}
	if p, ok := utils.NormalizePriority(priority); ok {
		opts = append(opts, task.WithPriority(p))
	}
	if st, ok := utils.NormalizeStatus(*status); ok {
		opts = append(opts, task.WithStatus(st))
	}
	if rule := utils.NormalizeRecurrence(*every); rule != "" {
		opts = append(opts, task.WithRecurrence(rule))
	}
	if *remind != "" {
		d, err := parseDay(*remind, today)
		if err != nil {
			return fmt.Errorf("add: reminder: %w", err)
		}
		opts = append(opts, task.WithReminder(d))
	}

	s, err := a.open()
	if err != nil {
		return err
	}
	if s.GetTask(title) != nil {
		a.logger.Warn("a task with this title already exists; title lookups return the first one", "title", title)
	}
	t := task.New(title, desc, dueDate, opts...)
	s.AddTask(t)
	if err := a.commit(ctx, s, schedule.ActionAdded, title); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Added: %s\n", t)
	return nil
}

func (a *app) showCommand(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("show: title or id is required")
	}
	s, err := a.open()
	if err != nil {
		return err
	}
	t, err := lookup(s, strings.Join(args, " "))
	if err != nil {
		return err
	}
	printTaskDetails(a.stdout, t, a.today())
	return nil
}

func (a *app) removeCommand(ctx context.Context, args []string) error {
	return a.mutate(ctx, "rm", args, schedule.ActionRemoved, func(s *schedule.Schedule, t *task.Task) (bool, string) {
		return s.RemoveTaskByID(t.ID), "Removed"
	})
}

func (a *app) doneCommand(ctx context.Context, args []string) error {
	return a.mutate(ctx, "done", args, schedule.ActionCompleted, func(s *schedule.Schedule, t *task.Task) (bool, string) {
		return s.MarkAsCompletedByID(t.ID), "Completed"
	})
}

// mutate resolves the task named by args, applies fn, and commits on success.
func (a *app) mutate(ctx context.Context, name string, args []string, action string, fn func(*schedule.Schedule, *task.Task) (bool, string)) error {
	if len(args) == 0 {
		return fmt.Errorf("%s: title or id is required", name)
	}
	s, err := a.open()
	if err != nil {
		return err
	}
	t, err := lookup(s, strings.Join(args, " "))
	if err != nil {
		return err
	}
	ok, verb := fn(s, t)
	if !ok {
		return fmt.Errorf("%w: %q", ErrTaskNotFound, t.Title)
	}
	if err := a.commit(ctx, s, action, t.Title); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%s: %s\n", verb, t.Title)
	return nil
}

func (a *app) setCommand(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("set: usage: set <title|id> field=value...")
	}

	values := make(map[string]string, len(args)-1)
	for _, arg := range args[1:] {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return fmt.Errorf("set: expected field=value, got %q", arg)
		}
		values[key] = value
	}
	values, err := normalizeAssignments(values, a.today())
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}
	patch, err := task.ParsePatch(values)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}
	if patch.IsEmpty() {
		return fmt.Errorf("set: nothing to update")
	}

	return a.mutate(ctx, "set", args[:1], schedule.ActionUpdated, func(s *schedule.Schedule, t *task.Task) (bool, string) {
		return s.UpdateTaskByID(t.ID, patch), "Updated"
	})
}

func (a *app) remindCommand(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("remind: usage: remind <title|id> <date>")
	}
	d, err := parseDay(args[1], a.today())
	if err != nil {
		return fmt.Errorf("remind: %w", err)
	}
	return a.mutate(ctx, "remind", args[:1], actionReminded, func(s *schedule.Schedule, t *task.Task) (bool, string) {
		return s.SetReminderByID(t.ID, d), "Reminder set for " + d.String()
	})
}

func (a *app) clearCommand(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("clear: unexpected arguments: %v", args)
	}
	s, err := a.open()
	if err != nil {
		return err
	}
	n := s.ClearCompletedTasks()
	if n == 0 {
		fmt.Fprintln(a.stdout, "No completed tasks to clear.")
		return nil
	}
	if err := a.commit(ctx, s, actionCleared, ""); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Cleared %d completed %s.\n", n, plural(n, "task", "tasks"))
	return nil
}

// normalizeAssignments folds CLI aliases in set values: relative dates,
// status, priority, and recurrence spellings.
func normalizeAssignments(values map[string]string, today task.Date) (map[string]string, error) {
	out := make(map[string]string, len(values))
	for key, value := range values {
		field := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
		switch field {
		case task.FieldDueDate, "due", "date", task.FieldReminderDate, "reminder":
			d, err := parseDay(value, today)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			value = d.String()
		case task.FieldStatus:
			if st, ok := utils.NormalizeStatus(value); ok {
				value = st
			}
		case task.FieldPriority:
			if p, ok := utils.NormalizePriority(value); ok {
				value = p
			}
		case task.FieldRecurrence:
			value = utils.NormalizeRecurrence(value)
		}
		out[key] = value
	}
	return out, nil
}

// parseDay accepts YYYY-MM-DD, today, tomorrow, yesterday, or a signed day
// offset such as +3 or -1.
func parseDay(input string, today task.Date) (task.Date, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		n, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return task.Date{}, &task.ParseError{Path: "date", Value: input, Err: fmt.Errorf("invalid day offset")}
		}
		return today.AddDays(n), nil
	}
	return task.ParseDate(strings.TrimSpace(input))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
