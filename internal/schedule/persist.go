package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nibzard/schedule-go/internal/task"
)

// IOError reports a failure to read or write a schedule file.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s schedule file %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Marshal encodes the task list with 2-space indentation and a trailing
// newline. History is not included. A task whose dates cannot be written
// yields a *task.ParseError and no output.
func (s *Schedule) Marshal() ([]byte, error) {
	s.mu.RLock()
	err := task.CheckAllDates(s.tasks)
	records := task.SerializeAll(s.tasks)
	s.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("marshal schedule: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schedule: %w", err)
	}
	return append(data, '\n'), nil
}

// SaveToFile writes the task list to path, replacing any existing content.
func (s *Schedule) SaveToFile(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	s.logger.Info("schedule saved", "path", path, "tasks", s.Len())
	return nil
}

// LoadFromFile replaces the task list with the contents of path and records
// a load entry in the history. History itself is not restored. Nothing
// changes unless the whole file reads and parses cleanly.
func (s *Schedule) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &IOError{Op: "read", Path: path, Err: err}
	}

	tasks, err := s.decode(data)
	if err != nil {
		return fmt.Errorf("parse schedule file %s: %w", path, err)
	}

	s.mu.Lock()
	s.tasks = tasks
	s.history = append(s.history, HistoryEntry{
		Action: ActionLoaded,
		Path:   path,
		At:     s.now(),
	})
	s.mu.Unlock()

	s.logger.Info("schedule loaded", "path", path, "tasks", len(tasks))
	return nil
}

// Open returns a schedule loaded from path. A missing file yields an empty
// schedule with no history.
func Open(path string, opts ...Option) (*Schedule, error) {
	s := New(opts...)
	if err := s.LoadFromFile(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("schedule file missing, starting empty", "path", path)
			return s, nil
		}
		return nil, err
	}
	return s, nil
}

// decode turns schedule file content into tasks without touching s.
func (s *Schedule) decode(data []byte) ([]*task.Task, error) {
	if s.validate {
		if err := validateData(data); err != nil {
			return nil, err
		}
	}

	var records []task.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, syntaxError(err)
	}
	return task.DeserializeAll(records)
}
