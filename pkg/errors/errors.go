// Package errors provides structured error handling for the tablediff library.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindNotAMember indicates a change request targeting a row or section
	// that does not belong to the table. Precondition violation; the batch
	// is aborted before any state mutation.
	KindNotAMember
	// KindHiddenSection indicates a row position query while the owning
	// section is hidden. The position is meaningless until the section is
	// rendered again.
	KindHiddenSection
	// KindInternal indicates an invariant violation inside the reconciler,
	// such as a position capture that the exclusion set should have skipped.
	KindInternal
	// KindParse indicates a scenario or configuration parsing failure.
	KindParse
	// KindSurface indicates that the rendering surface rejected a batch
	// transaction.
	KindSurface
)

func (k Kind) String() string {
	switch k {
	case KindNotAMember:
		return "notAMember"
	case KindHiddenSection:
		return "hiddenSection"
	case KindInternal:
		return "internal"
	case KindParse:
		return "parse"
	case KindSurface:
		return "surface"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the tablediff library.
type Error struct {
	// Op is the operation that failed (e.g., "reconcile.Reconcile").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	// Populated for KindInternal, where the stack is the useful part.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error for the given operation and kind, with a formatted
// underlying message.
func New(op string, kind Kind, format string, args ...any) *Error {
	return &Error{
		Op:        op,
		Kind:      kind,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

// Internal builds a KindInternal error wrapping err, capturing the current
// call stack.
func Internal(op string, err error) *Error {
	return &Error{
		Op:         op,
		Kind:       KindInternal,
		Err:        err,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// HasKind reports whether err is (or wraps) an *Error of the given kind.
func HasKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
