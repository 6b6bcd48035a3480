package searcher

import (
	"fmt"

	"github.com/pkg/errors"
)

// Precondition violations. Every error returned for one of them matches both
// its own sentinel and ErrPrecondition under errors.Is.
var (
	ErrPrecondition     = errors.New("search precondition violated")
	ErrNoLegalMoves     = errors.New("non-terminal state has no legal moves")
	ErrNegativePlies    = errors.New("plies must be non-negative")
	ErrTerminalRoot     = errors.New("search called on a terminal state")
	ErrNoResult         = errors.New("search produced no move for a non-terminal root")
	ErrUnevaluatedChild = errors.New("child node has no evaluation")
	ErrNoChildren       = errors.New("node has no children")
)

type PreconditionError struct {
	Err error
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Err.Error()
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// Fail aborts the running search or tree pass. It must only be called below a
// deferred Recover.
func Fail(sentinel error, format string, args ...any) {
	panic(&PreconditionError{Err: errors.WithMessage(sentinel, fmt.Sprintf(format, args...))})
}

// Recover turns a panic raised by Fail into an error. Any other panic is
// re-raised untouched.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if pe, ok := r.(*PreconditionError); ok {
		*err = pe
		return
	}
	panic(r)
}
