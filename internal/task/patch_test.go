package task

import (
	"errors"
	"testing"
	"time"
)

func TestParsePatch(t *testing.T) {
	p, err := ParsePatch(map[string]string{
		"description":   "Milk, Bread, Eggs, Cheese",
		"due-date":      "2024-05-26",
		"Status":        "Completed",
		"priority":      "High",
		"notes":         "corner shop",
		"duration":      " 2 ",
		"recurrence":    "weekly",
		"reminder_date": "2024-05-25",
	})
	if err != nil {
		t.Fatalf("ParsePatch failed: %v", err)
	}

	task := New("Buy groceries", "Milk, Bread, Eggs", NewDate(2024, time.May, 23))
	p.Apply(task)

	if task.Description != "Milk, Bread, Eggs, Cheese" {
		t.Errorf("Description: got %q", task.Description)
	}
	if task.DueDate != NewDate(2024, time.May, 26) {
		t.Errorf("DueDate: got %v", task.DueDate)
	}
	if task.Status != StatusCompleted {
		t.Errorf("Status: got %q", task.Status)
	}
	if task.Priority != PriorityHigh {
		t.Errorf("Priority: got %q", task.Priority)
	}
	if task.Notes != "corner shop" {
		t.Errorf("Notes: got %q", task.Notes)
	}
	if task.Duration != 2 {
		t.Errorf("Duration: got %d", task.Duration)
	}
	if task.Recurrence != "weekly" {
		t.Errorf("Recurrence: got %q", task.Recurrence)
	}
	if task.ReminderDate == nil || *task.ReminderDate != NewDate(2024, time.May, 25) {
		t.Errorf("ReminderDate: got %v", task.ReminderDate)
	}
	if task.Title != "Buy groceries" {
		t.Errorf("Title must not change, got %q", task.Title)
	}
}

func TestParsePatchAliases(t *testing.T) {
	p, err := ParsePatch(map[string]string{"due": "2024-01-02", "reminder": "2024-01-01"})
	if err != nil {
		t.Fatalf("ParsePatch failed: %v", err)
	}
	if p.DueDate == nil || *p.DueDate != NewDate(2024, time.January, 2) {
		t.Errorf("DueDate: got %v", p.DueDate)
	}
	if p.ReminderDate == nil || *p.ReminderDate != NewDate(2024, time.January, 1) {
		t.Errorf("ReminderDate: got %v", p.ReminderDate)
	}
}

func TestParsePatchErrors(t *testing.T) {
	tests := []struct {
		name      string
		values    map[string]string
		unknown   bool
		parsePath string
	}{
		{"title is not updatable", map[string]string{"title": "x"}, true, ""},
		{"id is not updatable", map[string]string{"id": "x"}, true, ""},
		{"arbitrary field", map[string]string{"colour": "red"}, true, ""},
		{"bad due date", map[string]string{"due_date": "tomorrow"}, false, "due_date"},
		{"bad reminder", map[string]string{"reminder_date": "2024-13-01"}, false, "reminder_date"},
		{"bad duration", map[string]string{"duration": "two"}, false, "duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePatch(tt.values)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := errors.Is(err, ErrUnknownField); got != tt.unknown {
				t.Errorf("errors.Is(ErrUnknownField): got %v, want %v (%v)", got, tt.unknown, err)
			}
			if tt.parsePath != "" {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("expected *ParseError, got %T", err)
				}
				if pe.Path != tt.parsePath {
					t.Errorf("Path: got %q, want %q", pe.Path, tt.parsePath)
				}
			}
		})
	}
}

func TestPatchIsEmpty(t *testing.T) {
	if !(Patch{}).IsEmpty() {
		t.Error("zero Patch should be empty")
	}
	notes := ""
	if (Patch{Notes: &notes}).IsEmpty() {
		t.Error("Patch setting notes to empty string is not empty")
	}
}

func TestApplyCopiesReminder(t *testing.T) {
	d := NewDate(2024, time.May, 1)
	p := Patch{ReminderDate: &d}
	task := New("a", "b", NewDate(2024, time.May, 2))
	p.Apply(task)
	d.Day = 9
	if task.ReminderDate.Day != 1 {
		t.Errorf("task reminder aliases patch value: %v", task.ReminderDate)
	}
}
