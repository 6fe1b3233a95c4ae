package pos

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a missing backing file. It is non-fatal: loads
// return an empty collection alongside it.
var ErrNotFound = errors.New("ledger file not found")

// ErrInvalidStatus reports a status value outside its enum. The prior
// value is kept.
var ErrInvalidStatus = errors.New("invalid status")

// ErrInvalidState reports an operation rejected by an entity's current
// state, such as deriving a sale from a non-completed order.
var ErrInvalidState = errors.New("invalid state")

// DecodeError reports a single malformed ledger line. Batch loads skip
// the line and continue.
type DecodeError struct {
	File string
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error %s:%d: %v", e.File, e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// PersistenceError reports a write that could not complete. Callers must
// revert their optimistic in-memory change so memory and disk stay
// consistent.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
