package errors

import (
	"fmt"
	"runtime/debug"

	"github.com/cockroachdb/errors"
)

// PanicError is a panic recovered inside a pipeline stage.
type PanicError struct {
	// PanicValue is the value passed to panic().
	PanicValue interface{}
	// StackTrace is the goroutine stack captured at recovery.
	StackTrace string
	// Operation names the stage, e.g. "pipeline.mine".
	Operation string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap returns the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.PanicValue.(error); ok {
		return err
	}
	return nil
}

// String includes the captured stack.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s", e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError captures the current stack for panicValue.
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// IsPanic reports whether err carries a recovered panic.
func IsPanic(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}

// Recover converts a panic into an error stored in *err. It must be called
// directly by defer.
//
//	func stage() (err error) {
//	    defer Recover(&err, "rules.Generate")
//	    ...
//	}
//
// An error already stored in *err stays the primary cause; the PanicError is
// attached to it as a secondary error.
func Recover(err *error, operation string) {
	r := recover()
	if r == nil {
		return
	}
	panicErr := NewPanicError(operation, r)
	if *err == nil {
		*err = panicErr
		return
	}
	*err = errors.WithSecondaryError(errors.Wrapf(*err, "panic in %s: %v", operation, r), panicErr)
}

// SafeExecute runs fn and turns a panic into a *PanicError.
//
//	err := SafeExecute("pipeline.mine", func() error {
//	    var err error
//	    res, err = apriori.Mine(ctx, tx, opts)
//	    return err
//	})
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
