package listkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for rejected operations.
var (
	// ErrInvalidArgument indicates an index outside the item range or an
	// otherwise malformed argument. State is left unchanged.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidOperation indicates a call that is illegal in the current
	// state, such as selecting while the selection mode is None.
	ErrInvalidOperation = errors.New("invalid operation")
)

// ListError describes a rejected list operation. Index is the offending
// index, or -1 when the failure is not about an index.
//
// These are programming errors in the caller: the operation is refused at
// the public boundary and nothing downstream observes a partial update.
type ListError struct {
	Op    string // Operation that was rejected (e.g., "select", "remove_at")
	Index int    // Offending index, -1 if not applicable
	Err   error  // ErrInvalidArgument or ErrInvalidOperation
}

func (e *ListError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("listkit: %s: index %d: %v", e.Op, e.Index, e.Err)
	}
	return fmt.Sprintf("listkit: %s: %v", e.Op, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}

func argumentError(op string, index int) *ListError {
	return &ListError{Op: op, Index: index, Err: ErrInvalidArgument}
}

func operationError(op string) *ListError {
	return &ListError{Op: op, Index: -1, Err: ErrInvalidOperation}
}

// IsInvalidArgument checks if an error was caused by a bad argument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsInvalidOperation checks if an error was caused by an illegal call for
// the current state.
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

// rejected logs a refused operation and returns it as an error.
func rejected(err *ListError) error {
	GetLogger().Debug("operation rejected", "op", err.Op, "index", err.Index, "error", err.Err)
	return err
}
