package list

import "fmt"

var (
	// ErrNegativePosition is wrapped by the MisuseError returned when
	// InsertAt or RemoveAt receive a position below zero.
	ErrNegativePosition = errorsNew("list: negative position")

	// ErrNotFound is wrapped by the MisuseError returned when RemoveValue is
	// asked to delete a value that is not in the list.
	ErrNotFound = errorsNew("list: value not found")

	// ErrClosed is returned by mutating calls on a list after Close.
	ErrClosed = errorsNew("list: closed")
)

// lightweight local errors.New; sentinels are compared by identity.
func errorsNew(s string) error { return &strErr{s} }

type strErr struct{ s string }

func (e *strErr) Error() string { return e.s }

// MisuseError reports a caller programming error. The operation that
// produced it did not modify the list.
//
// Use errors.Is(err, ErrNegativePosition) or errors.Is(err, ErrNotFound) to
// tell the two kinds apart.
type MisuseError struct {
	Op       Op
	Position int // offending position (OpInsertAt, OpRemoveAt)
	Value    any // offending value (OpRemoveValue)
	Err      error
}

func (e *MisuseError) Error() string {
	if e.Op == OpRemoveValue {
		return fmt.Sprintf("%v: %s(%v)", e.Err, e.Op, e.Value)
	}
	return fmt.Sprintf("%v: %s(%d)", e.Err, e.Op, e.Position)
}

func (e *MisuseError) Unwrap() error { return e.Err }

// Must panics if err is non-nil. It restores the abort-on-misuse behaviour
// for hosts that treat misuse as unrecoverable:
//
//	list.Must(l.RemoveValue(v))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
