package schedule

import (
	"slices"
	"strings"

	"github.com/nibzard/schedule-go/internal/task"
)

// filter returns the tasks matching keep, in collection order.
// The result is never nil.
func (s *Schedule) filter(keep func(*task.Task) bool) []*task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*task.Task, 0)
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of tasks.
func (s *Schedule) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// GetTask returns the first task titled title, or nil.
func (s *Schedule) GetTask(title string) *task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.find(title); i >= 0 {
		return s.tasks[i]
	}
	return nil
}

// GetTaskByID returns the task with the given surrogate ID, or nil.
func (s *Schedule) GetTaskByID(id string) *task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.findByID(id); i >= 0 {
		return s.tasks[i]
	}
	return nil
}

// ListAllTasks returns every task in collection order. The slice is a copy,
// but its elements are the live tasks: editing a returned task edits the
// scheduled one.
func (s *Schedule) ListAllTasks() []*task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// ListOverdueTasks returns incomplete tasks due before today.
func (s *Schedule) ListOverdueTasks() []*task.Task {
	today := s.today()
	return s.filter(func(t *task.Task) bool {
		return t.IsOverdueOn(today)
	})
}

// ListTasksDueToday returns incomplete tasks due today.
func (s *Schedule) ListTasksDueToday() []*task.Task {
	today := s.today()
	return s.filter(func(t *task.Task) bool {
		return t.IsDueOn(today) && !t.IsCompleted()
	})
}

// CheckDeadlines returns tasks due tomorrow, whatever their status.
func (s *Schedule) CheckDeadlines() []*task.Task {
	tomorrow := s.today().AddDays(1)
	return s.filter(func(t *task.Task) bool {
		return t.IsDueOn(tomorrow)
	})
}

// SortTasksByDueDate returns the tasks ordered by ascending due date.
// Tasks sharing a due date keep their collection order. The schedule
// itself is not reordered.
func (s *Schedule) SortTasksByDueDate() []*task.Task {
	sorted := s.ListAllTasks()
	slices.SortStableFunc(sorted, func(a, b *task.Task) int {
		return a.DueDate.Compare(b.DueDate)
	})
	return sorted
}

// ListCompletedTasks returns tasks whose status is Completed.
func (s *Schedule) ListCompletedTasks() []*task.Task {
	return s.filter((*task.Task).IsCompleted)
}

// ListRecurringTasks returns tasks with a recurrence rule.
func (s *Schedule) ListRecurringTasks() []*task.Task {
	return s.filter((*task.Task).IsRecurring)
}

// FindTaskByKeyword returns tasks whose title or description contains
// keyword. Matching is case-sensitive.
func (s *Schedule) FindTaskByKeyword(keyword string) []*task.Task {
	return s.filter(func(t *task.Task) bool {
		return strings.Contains(t.Title, keyword) || strings.Contains(t.Description, keyword)
	})
}

// ListTasksByDuration returns tasks with minDuration <= duration <= maxDuration.
func (s *Schedule) ListTasksByDuration(minDuration, maxDuration int) []*task.Task {
	return s.filter(func(t *task.Task) bool {
		return minDuration <= t.Duration && t.Duration <= maxDuration
	})
}

// CompletionPercentage returns the share of completed tasks in [0, 100].
// An empty schedule reports 0.
func (s *Schedule) CompletionPercentage() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := len(s.tasks)
	if total == 0 {
		return 0.0
	}
	completed := 0
	for _, t := range s.tasks {
		if t.IsCompleted() {
			completed++
		}
	}
	return float64(completed) / float64(total) * 100
}
