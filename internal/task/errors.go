package task

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when an update names a field outside the
// updatable set.
var ErrUnknownField = errors.New("unknown task field")

// ErrMissingField is wrapped by ParseError when a required record key is absent.
var ErrMissingField = errors.New("missing required field")

// ErrInvalidDate is wrapped by ParseError when a date cannot be written in
// YYYY-MM-DD form.
var ErrInvalidDate = errors.New("date out of range")

// ParseError reports malformed task input: a bad date, a missing required
// record field, or undecodable schedule file content.
type ParseError struct {
	Path  string // location of the offending value, e.g. "[2].due_date"
	Value string // offending raw value, if any
	Err   error
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Value != "" {
		msg = fmt.Sprintf("%s (%q)", msg, e.Value)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, msg)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// withPath returns a copy of err with prefix prepended to its path when err
// is a *ParseError. Other errors are returned unchanged.
func withPath(err error, prefix string) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err
	}
	cp := *pe
	switch {
	case cp.Path == "":
		cp.Path = prefix
	case cp.Path[0] == '[':
		cp.Path = prefix + cp.Path
	default:
		cp.Path = prefix + "." + cp.Path
	}
	return &cp
}
