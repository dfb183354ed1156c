// Package task defines the schedule entry type and its on-disk record form.
package task

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Well-known status and priority values. Both fields are open strings;
// these are the values the rest of the module gives meaning to.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Task is a single schedule entry.
type Task struct {
	// ID is a surrogate unique identifier. Title remains the lookup key
	// for most operations but is not guaranteed unique.
	ID           string
	Title        string
	Description  string
	DueDate      Date
	Status       string
	Priority     string
	Notes        string
	Duration     int
	Recurrence   string // empty means the task does not recur
	ReminderDate *Date
}

// Option configures optional Task fields at construction.
type Option func(*Task)

// WithStatus sets the initial status.
func WithStatus(status string) Option {
	return func(t *Task) { t.Status = status }
}

// WithPriority sets the priority.
func WithPriority(priority string) Option {
	return func(t *Task) { t.Priority = priority }
}

// WithNotes sets free-form notes.
func WithNotes(notes string) Option {
	return func(t *Task) { t.Notes = notes }
}

// WithDuration sets the duration in whole units.
func WithDuration(duration int) Option {
	return func(t *Task) { t.Duration = duration }
}

// WithRecurrence sets the recurrence rule, e.g. "weekly".
func WithRecurrence(recurrence string) Option {
	return func(t *Task) { t.Recurrence = recurrence }
}

// WithReminder sets the reminder date.
func WithReminder(d Date) Option {
	return func(t *Task) { t.ReminderDate = &d }
}

// WithID overrides the generated surrogate ID.
func WithID(id string) Option {
	return func(t *Task) { t.ID = id }
}

// New creates a task with status Pending, priority Medium, and a fresh ID
// unless overridden by opts. No field is validated.
func New(title, description string, due Date, opts ...Option) *Task {
	t := &Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		DueDate:     due,
		Status:      StatusPending,
		Priority:    PriorityMedium,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// IsDueToday reports whether the task is due on the current local date.
func (t *Task) IsDueToday() bool {
	return t.IsDueOn(Today())
}

// IsDueOn reports whether the task is due on d.
func (t *Task) IsDueOn(d Date) bool {
	return t.DueDate.Equal(d)
}

// IsOverdueOn reports whether the task is past due as of d and not completed.
func (t *Task) IsOverdueOn(d Date) bool {
	return t.DueDate.Before(d) && !t.IsCompleted()
}

// IsCompleted reports whether the status is Completed.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// IsRecurring reports whether a recurrence rule is set.
func (t *Task) IsRecurring() bool {
	return strings.TrimSpace(t.Recurrence) != ""
}

// Clone returns a deep copy of t.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	cp := *t
	if t.ReminderDate != nil {
		d := *t.ReminderDate
		cp.ReminderDate = &d
	}
	return &cp
}

func (t *Task) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %-9s  %-6s  %s", t.DueDate, t.Status, t.Priority, t.Title)
	if t.Duration != 0 {
		fmt.Fprintf(&b, "  (%d)", t.Duration)
	}
	if t.IsRecurring() {
		fmt.Fprintf(&b, "  [%s]", t.Recurrence)
	}
	if t.ReminderDate != nil {
		fmt.Fprintf(&b, "  reminder %s", t.ReminderDate)
	}
	return b.String()
}
