package task

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	due := NewDate(2024, time.May, 25)
	task := New("Water plants", "Garden", due)

	if task.Status != StatusPending {
		t.Errorf("Status: got %q, want %q", task.Status, StatusPending)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("Priority: got %q, want %q", task.Priority, PriorityMedium)
	}
	if task.Notes != "" {
		t.Errorf("Notes: got %q, want empty", task.Notes)
	}
	if task.Duration != 0 {
		t.Errorf("Duration: got %d, want 0", task.Duration)
	}
	if task.IsRecurring() {
		t.Error("expected new task to not recur")
	}
	if task.ReminderDate != nil {
		t.Errorf("ReminderDate: got %v, want nil", task.ReminderDate)
	}
	if !ValidID(task.ID) {
		t.Errorf("ID %q is not a valid UUID", task.ID)
	}
	if other := New("Water plants", "Garden", due); other.ID == task.ID {
		t.Error("expected distinct IDs for distinct tasks")
	}
}

func TestNewOptions(t *testing.T) {
	reminder := NewDate(2024, time.May, 20)
	task := New("Report", "Quarterly", NewDate(2024, time.May, 31),
		WithStatus(StatusCompleted),
		WithPriority(PriorityHigh),
		WithNotes("send to finance"),
		WithDuration(3),
		WithRecurrence("monthly"),
		WithReminder(reminder),
		WithID("fixed-id"),
	)

	if task.Status != StatusCompleted || !task.IsCompleted() {
		t.Errorf("Status: got %q", task.Status)
	}
	if task.Priority != PriorityHigh {
		t.Errorf("Priority: got %q", task.Priority)
	}
	if task.Notes != "send to finance" {
		t.Errorf("Notes: got %q", task.Notes)
	}
	if task.Duration != 3 {
		t.Errorf("Duration: got %d", task.Duration)
	}
	if task.Recurrence != "monthly" || !task.IsRecurring() {
		t.Errorf("Recurrence: got %q", task.Recurrence)
	}
	if task.ReminderDate == nil || !task.ReminderDate.Equal(reminder) {
		t.Errorf("ReminderDate: got %v, want %v", task.ReminderDate, reminder)
	}
	if task.ID != "fixed-id" {
		t.Errorf("ID: got %q", task.ID)
	}
}

func TestIsDueToday(t *testing.T) {
	today := Today()
	if !New("a", "", today).IsDueToday() {
		t.Error("task due today should report IsDueToday")
	}
	if New("b", "", today.AddDays(1)).IsDueToday() {
		t.Error("task due tomorrow should not report IsDueToday")
	}
	if New("c", "", today.AddDays(-1)).IsDueToday() {
		t.Error("task due yesterday should not report IsDueToday")
	}
}

func TestIsOverdueOn(t *testing.T) {
	today := NewDate(2024, time.June, 10)
	task := New("a", "", today.AddDays(-1))
	if !task.IsOverdueOn(today) {
		t.Error("expected pending task due yesterday to be overdue")
	}
	task.Status = StatusCompleted
	if task.IsOverdueOn(today) {
		t.Error("completed task must not be overdue")
	}
	if New("b", "", today).IsOverdueOn(today) {
		t.Error("task due today is not overdue")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	task := New("a", "desc", NewDate(2024, time.January, 1), WithReminder(NewDate(2023, time.December, 31)))
	cp := task.Clone()

	cp.Title = "b"
	cp.ReminderDate.Day = 1
	if task.Title != "a" {
		t.Errorf("original title changed to %q", task.Title)
	}
	if task.ReminderDate.Day != 31 {
		t.Errorf("original reminder changed to %v", task.ReminderDate)
	}
	if (*Task)(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	original := New("Submit assignment", "Math assignment", NewDate(2024, time.May, 27),
		WithStatus("In Progress"),
		WithPriority(PriorityLow),
		WithNotes("chapter 4"),
		WithDuration(2),
		WithRecurrence("weekly"),
	)

	got, err := Deserialize(original.Serialize())
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if *got != *original {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, original)
	}
}

func TestSerializeRoundTripReminder(t *testing.T) {
	original := New("a", "b", NewDate(2024, time.May, 27), WithReminder(NewDate(2024, time.May, 24)))

	got, err := Deserialize(original.Serialize())
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if got.ReminderDate == nil || !got.ReminderDate.Equal(*original.ReminderDate) {
		t.Errorf("ReminderDate: got %v, want %v", got.ReminderDate, original.ReminderDate)
	}
}

func TestSerializeJSONShape(t *testing.T) {
	task := New("Buy groceries", "Milk, Bread, Eggs", NewDate(2024, time.May, 24), WithID("id-1"))
	data, err := json.Marshal(task.Serialize())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	want := map[string]any{
		"id":          "id-1",
		"title":       "Buy groceries",
		"description": "Milk, Bread, Eggs",
		"due_date":    "2024-05-24",
		"status":      "Pending",
		"priority":    "Medium",
		"notes":       "",
		"duration":    float64(0),
		"recurrence":  nil,
	}
	for key, wantVal := range want {
		gotVal, ok := obj[key]
		if !ok {
			t.Errorf("missing key %q", key)
			continue
		}
		if gotVal != wantVal {
			t.Errorf("%s: got %v, want %v", key, gotVal, wantVal)
		}
	}
	if _, ok := obj["reminder_date"]; ok {
		t.Error("reminder_date should be omitted when unset")
	}
}

func TestDeserializeDefaults(t *testing.T) {
	var r Record
	input := `{"title": "Water plants", "description": "Garden", "due_date": "2024-05-25"}`
	if err := json.Unmarshal([]byte(input), &r); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	task, err := Deserialize(r)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if task.Status != StatusPending {
		t.Errorf("Status: got %q", task.Status)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("Priority: got %q", task.Priority)
	}
	if task.Duration != 0 || task.Notes != "" || task.Recurrence != "" {
		t.Errorf("unexpected non-default fields: %+v", task)
	}
	if !ValidID(task.ID) {
		t.Errorf("expected generated ID, got %q", task.ID)
	}
	if !task.DueDate.Equal(NewDate(2024, time.May, 25)) {
		t.Errorf("DueDate: got %v", task.DueDate)
	}
}

func TestDeserializeErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPath string
		missing  bool
	}{
		{"missing title", `{"description": "d", "due_date": "2024-05-25"}`, "title", true},
		{"missing description", `{"title": "t", "due_date": "2024-05-25"}`, "description", true},
		{"missing due date", `{"title": "t", "description": "d"}`, "due_date", true},
		{"malformed due date", `{"title": "t", "description": "d", "due_date": "25/05/2024"}`, "due_date", false},
		{"impossible due date", `{"title": "t", "description": "d", "due_date": "2024-02-30"}`, "due_date", false},
		{"malformed reminder", `{"title": "t", "description": "d", "due_date": "2024-05-25", "reminder_date": "soon"}`, "reminder_date", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Record
			if err := json.Unmarshal([]byte(tt.input), &r); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			_, err := Deserialize(r)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
			if pe.Path != tt.wantPath {
				t.Errorf("Path: got %q, want %q", pe.Path, tt.wantPath)
			}
			if got := errors.Is(err, ErrMissingField); got != tt.missing {
				t.Errorf("errors.Is(ErrMissingField): got %v, want %v", got, tt.missing)
			}
		})
	}
}

func TestDeserializeAllReportsIndex(t *testing.T) {
	good := New("a", "b", NewDate(2024, time.May, 25)).Serialize()
	bad := good
	bad.DueDate = strPtr("nope")

	_, err := DeserializeAll([]Record{good, good, bad})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Path != "[2].due_date" {
		t.Errorf("Path: got %q, want [2].due_date", pe.Path)
	}
}

func TestSerializeAllEmptyIsNonNil(t *testing.T) {
	records := SerializeAll(nil)
	if records == nil {
		t.Fatal("expected non-nil slice")
	}
	data, _ := json.Marshal(records)
	if string(data) != "[]" {
		t.Errorf("got %s, want []", data)
	}
}
