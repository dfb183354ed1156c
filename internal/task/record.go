package task

import (
	"fmt"

	"github.com/google/uuid"
)

// Record is the persisted form of a Task. Pointer fields distinguish an
// absent key from an explicit zero value so that defaults apply only to
// absent keys.
type Record struct {
	ID           string  `json:"id,omitempty"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	DueDate      *string `json:"due_date"`
	Status       *string `json:"status,omitempty"`
	Priority     *string `json:"priority,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	Duration     *int    `json:"duration,omitempty"`
	Recurrence   *string `json:"recurrence"`
	ReminderDate *string `json:"reminder_date,omitempty"`
}

// Serialize returns the record form of t. Every schema field is populated;
// an empty recurrence is written as null and an unset reminder is omitted.
func (t *Task) Serialize() Record {
	due := t.DueDate.String()
	r := Record{
		ID:          t.ID,
		Title:       strPtr(t.Title),
		Description: strPtr(t.Description),
		DueDate:     &due,
		Status:      strPtr(t.Status),
		Priority:    strPtr(t.Priority),
		Notes:       strPtr(t.Notes),
		Duration:    intPtr(t.Duration),
	}
	if t.Recurrence != "" {
		r.Recurrence = strPtr(t.Recurrence)
	}
	if t.ReminderDate != nil {
		r.ReminderDate = strPtr(t.ReminderDate.String())
	}
	return r
}

// Deserialize builds a Task from r. Title, description, and due_date are
// required; the remaining fields take constructor defaults when absent.
// A record without an id is given a fresh one.
func Deserialize(r Record) (*Task, error) {
	if r.Title == nil {
		return nil, &ParseError{Path: "title", Err: ErrMissingField}
	}
	if r.Description == nil {
		return nil, &ParseError{Path: "description", Err: ErrMissingField}
	}
	if r.DueDate == nil {
		return nil, &ParseError{Path: "due_date", Err: ErrMissingField}
	}
	due, err := ParseDate(*r.DueDate)
	if err != nil {
		return nil, withPath(err, "due_date")
	}

	t := New(*r.Title, *r.Description, due)
	if r.ID != "" {
		t.ID = r.ID
	}
	if r.Status != nil {
		t.Status = *r.Status
	}
	if r.Priority != nil {
		t.Priority = *r.Priority
	}
	if r.Notes != nil {
		t.Notes = *r.Notes
	}
	if r.Duration != nil {
		t.Duration = *r.Duration
	}
	if r.Recurrence != nil {
		t.Recurrence = *r.Recurrence
	}
	if r.ReminderDate != nil {
		reminder, err := ParseDate(*r.ReminderDate)
		if err != nil {
			return nil, withPath(err, "reminder_date")
		}
		t.ReminderDate = &reminder
	}
	return t, nil
}

// SerializeAll returns the records for tasks, in order. The result is never nil.
func SerializeAll(tasks []*Task) []Record {
	records := make([]Record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, t.Serialize())
	}
	return records
}

// DeserializeAll converts every record, failing on the first bad one.
// Errors carry the record index in their path, e.g. "[3].due_date".
func DeserializeAll(records []Record) ([]*Task, error) {
	tasks := make([]*Task, 0, len(records))
	for i, r := range records {
		t, err := Deserialize(r)
		if err != nil {
			return nil, withPath(err, fmt.Sprintf("[%d]", i))
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// CheckDates reports the first date on t that cannot be written to a record.
func (t *Task) CheckDates() error {
	if !t.DueDate.Valid() {
		return &ParseError{Path: "due_date", Value: t.DueDate.String(), Err: ErrInvalidDate}
	}
	if t.ReminderDate != nil && !t.ReminderDate.Valid() {
		return &ParseError{Path: "reminder_date", Value: t.ReminderDate.String(), Err: ErrInvalidDate}
	}
	return nil
}

// CheckAllDates runs CheckDates over tasks. Errors carry the task index in
// their path, as DeserializeAll does.
func CheckAllDates(tasks []*Task) error {
	for i, t := range tasks {
		if err := t.CheckDates(); err != nil {
			return withPath(err, fmt.Sprintf("[%d]", i))
		}
	}
	return nil
}

// ValidID reports whether id is a well-formed UUID.
func ValidID(id string) bool {
	return uuid.Validate(id) == nil
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
