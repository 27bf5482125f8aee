package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoSolution   = errors.New("no solution")
	ErrUnknownDay   = errors.New("unknown day")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidInput ErrorKind = "invalid_input"
	KindNotFound     ErrorKind = "not_found"
	KindNoSolution   ErrorKind = "no_solution"
	KindUnknownDay   ErrorKind = "unknown_day"
	KindStorage      ErrorKind = "storage"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // optional: input or store file
	Line int    // optional: 1-based input line
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Line > 0 {
		base += fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on the packages that raised them.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// InvalidInput builds an invalid_input error for line (0 when no single line is at fault).
func InvalidInput(op string, line int, format string, args ...any) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidInput,
		Line: line,
		Err:  fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...)),
	}
}

// NoSolution builds a no_solution error.
func NoSolution(op string, format string, args ...any) error {
	return &OpError{
		Op:   op,
		Kind: KindNoSolution,
		Err:  fmt.Errorf("%w: %s", ErrNoSolution, fmt.Sprintf(format, args...)),
	}
}
