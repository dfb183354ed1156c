package task

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Updatable field names, as accepted by ParsePatch.
const (
	FieldDescription  = "description"
	FieldDueDate      = "due_date"
	FieldStatus       = "status"
	FieldPriority     = "priority"
	FieldNotes        = "notes"
	FieldDuration     = "duration"
	FieldRecurrence   = "recurrence"
	FieldReminderDate = "reminder_date"
)

// Fields returns the updatable field names in a stable order.
// Title and ID are not updatable.
func Fields() []string {
	return []string{
		FieldDescription,
		FieldDueDate,
		FieldStatus,
		FieldPriority,
		FieldNotes,
		FieldDuration,
		FieldRecurrence,
		FieldReminderDate,
	}
}

// Patch is a set of field updates. Nil fields are left unchanged.
type Patch struct {
	Description  *string
	DueDate      *Date
	Status       *string
	Priority     *string
	Notes        *string
	Duration     *int
	Recurrence   *string
	ReminderDate *Date
}

// IsEmpty reports whether p changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Description == nil && p.DueDate == nil && p.Status == nil &&
		p.Priority == nil && p.Notes == nil && p.Duration == nil &&
		p.Recurrence == nil && p.ReminderDate == nil
}

// Apply sets every non-nil field of p on t.
func (p Patch) Apply(t *Task) {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Duration != nil {
		t.Duration = *p.Duration
	}
	if p.Recurrence != nil {
		t.Recurrence = *p.Recurrence
	}
	if p.ReminderDate != nil {
		d := *p.ReminderDate
		t.ReminderDate = &d
	}
}

// ParsePatch builds a Patch from field-name to text pairs. Keys are matched
// case-insensitively and may use "-" in place of "_". Dates use YYYY-MM-DD.
func ParsePatch(values map[string]string) (Patch, error) {
	var p Patch
	// Sorted so that the first reported error is deterministic.
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := values[key]
		switch normalizeField(key) {
		case FieldDescription:
			p.Description = strPtr(raw)
		case FieldDueDate:
			d, err := ParseDate(raw)
			if err != nil {
				return Patch{}, withPath(err, FieldDueDate)
			}
			p.DueDate = &d
		case FieldStatus:
			p.Status = strPtr(raw)
		case FieldPriority:
			p.Priority = strPtr(raw)
		case FieldNotes:
			p.Notes = strPtr(raw)
		case FieldDuration:
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return Patch{}, &ParseError{Path: FieldDuration, Value: raw, Err: fmt.Errorf("duration must be an integer")}
			}
			p.Duration = &n
		case FieldRecurrence:
			p.Recurrence = strPtr(raw)
		case FieldReminderDate:
			d, err := ParseDate(raw)
			if err != nil {
				return Patch{}, withPath(err, FieldReminderDate)
			}
			p.ReminderDate = &d
		default:
			return Patch{}, fmt.Errorf("%w: %q (updatable: %s)", ErrUnknownField, key, strings.Join(Fields(), ", "))
		}
	}
	return p, nil
}

func normalizeField(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.ReplaceAll(k, "-", "_")
	switch k {
	case "due", "date":
		return FieldDueDate
	case "reminder":
		return FieldReminderDate
	}
	return k
}
