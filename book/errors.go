package book

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBudget means the session budget was never set; budget-dependent
	// operations refuse to run without one.
	ErrNoBudget = errors.New("no budget set (run: swingtrade budget set <amount>)")

	// ErrInvalidOutcome means a close was requested with an outcome other
	// than "goal" or "stop".
	ErrInvalidOutcome = errors.New("invalid outcome")
)

// ValidationError names the form field that failed to parse. Nothing is
// persisted when one is returned.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
