package schedule

import (
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/schedule-go/internal/task"
)

// History actions.
const (
	ActionAdded     = "added"
	ActionRemoved   = "removed"
	ActionUpdated   = "updated"
	ActionCompleted = "completed"
	ActionLoaded    = "loaded"
)

// HistoryEntry records one operation. Task is a snapshot taken when the
// operation ran; it is nil for ActionLoaded, which sets Path instead.
type HistoryEntry struct {
	Action string
	Task   *task.Task
	Path   string
	At     time.Time
}

// Schedule owns an ordered task list and its history. It is safe for
// concurrent use; a single lock guards both.
type Schedule struct {
	mu       sync.RWMutex
	tasks    []*task.Task
	history  []HistoryEntry
	now      func() time.Time
	logger   *log.Logger
	validate bool
}

// Option configures a Schedule.
type Option func(*Schedule)

// WithClock overrides the time source used for "today" and history timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Schedule) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(logger *log.Logger) Option {
	return func(s *Schedule) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithValidation toggles JSON Schema validation in LoadFromFile.
func WithValidation(enabled bool) Option {
	return func(s *Schedule) {
		s.validate = enabled
	}
}

// New returns an empty schedule.
func New(opts ...Option) *Schedule {
	s := &Schedule{
		now:      time.Now,
		logger:   log.New(io.Discard),
		validate: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// today returns the current calendar date in the clock's location.
func (s *Schedule) today() task.Date {
	return task.DateOf(s.now())
}

// record appends a history entry. Callers must hold s.mu.
func (s *Schedule) record(action string, t *task.Task) {
	s.history = append(s.history, HistoryEntry{
		Action: action,
		Task:   t.Clone(),
		At:     s.now(),
	})
	s.logger.Debug("task "+action, "title", t.Title, "id", t.ID)
}

// find returns the index of the first task titled title, or -1.
// Callers must hold s.mu.
func (s *Schedule) find(title string) int {
	return slices.IndexFunc(s.tasks, func(t *task.Task) bool {
		return t.Title == title
	})
}

// findByID returns the index of the task with the given ID, or -1.
// Callers must hold s.mu.
func (s *Schedule) findByID(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.tasks, func(t *task.Task) bool {
		return t.ID == id
	})
}

// AddTask appends t. Duplicate titles are accepted.
func (s *Schedule) AddTask(t *task.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, t)
	s.record(ActionAdded, t)
}

// RemoveTask removes the first task titled title.
// It reports whether a task was removed.
func (s *Schedule) RemoveTask(title string) bool {
	return s.removeAt(s.find, title)
}

// RemoveTaskByID removes the task with the given ID.
func (s *Schedule) RemoveTaskByID(id string) bool {
	return s.removeAt(s.findByID, id)
}

func (s *Schedule) removeAt(find func(string) int, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := find(key)
	if i < 0 {
		return false
	}
	t := s.tasks[i]
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.record(ActionRemoved, t)
	return true
}

// UpdateTask applies p to the first task titled title and records a single
// update entry, however many fields p sets. It reports whether a task was found.
func (s *Schedule) UpdateTask(title string, p task.Patch) bool {
	return s.updateAt(s.find, title, p)
}

// UpdateTaskByID applies p to the task with the given ID.
func (s *Schedule) UpdateTaskByID(id string, p task.Patch) bool {
	return s.updateAt(s.findByID, id, p)
}

func (s *Schedule) updateAt(find func(string) int, key string, p task.Patch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := find(key)
	if i < 0 {
		return false
	}
	p.Apply(s.tasks[i])
	s.record(ActionUpdated, s.tasks[i])
	return true
}

// MarkAsCompleted sets the first task titled title to Completed.
// It reports whether a task was found.
func (s *Schedule) MarkAsCompleted(title string) bool {
	return s.completeAt(s.find, title)
}

// MarkAsCompletedByID sets the task with the given ID to Completed.
func (s *Schedule) MarkAsCompletedByID(id string) bool {
	return s.completeAt(s.findByID, id)
}

func (s *Schedule) completeAt(find func(string) int, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := find(key)
	if i < 0 {
		return false
	}
	s.tasks[i].Status = task.StatusCompleted
	s.record(ActionCompleted, s.tasks[i])
	return true
}

// SetReminder sets the reminder date on the first task titled title.
// No history entry is recorded. It reports whether a task was found.
func (s *Schedule) SetReminder(title string, d task.Date) bool {
	return s.remindAt(s.find, title, d)
}

// SetReminderByID sets the reminder date on the task with the given ID.
func (s *Schedule) SetReminderByID(id string, d task.Date) bool {
	return s.remindAt(s.findByID, id, d)
}

func (s *Schedule) remindAt(find func(string) int, key string, d task.Date) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := find(key)
	if i < 0 {
		return false
	}
	s.tasks[i].ReminderDate = &d
	s.logger.Debug("reminder set", "title", s.tasks[i].Title, "date", d)
	return true
}

// ClearCompletedTasks drops every completed task from the list and returns
// how many were dropped. History is left untouched.
func (s *Schedule) ClearCompletedTasks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, (*task.Task).IsCompleted)
	cleared := before - len(s.tasks)
	if cleared > 0 {
		s.logger.Debug("cleared completed tasks", "count", cleared)
	}
	return cleared
}

// TaskHistory returns a copy of the history log, oldest first.
func (s *Schedule) TaskHistory() []HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.history)
}
