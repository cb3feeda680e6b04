package depnodes

import (
	"github.com/delaneyj/depnodes/hotlist"
	"github.com/pkg/errors"
)

var (
	ErrOutOfSpace        = errors.New("no free range large enough and store cannot grow")
	ErrIndexOutOfRange   = hotlist.ErrIndexOutOfRange
	ErrCycleDetected     = errors.New("dependency cycle detected")
	ErrSignatureMismatch = errors.New("arguments do not match any registered signature")
	ErrTooManyInputs     = errors.New("too many inputs for one node")
	ErrDuplicateName     = errors.New("name already in use")
	ErrNotFound          = errors.New("name not found")
	ErrNotLiteral        = errors.New("node is not a literal")
	ErrNilExpression     = errors.New("nil expression")
	ErrClosed            = errors.New("update queue closed")
)

// failureKind labels err for the failures metric.
func failureKind(err error) string {
	switch {
	case errors.Is(err, ErrOutOfSpace):
		return "out_of_space"
	case errors.Is(err, ErrCycleDetected):
		return "cycle"
	case errors.Is(err, ErrSignatureMismatch):
		return "signature"
	case errors.Is(err, ErrTooManyInputs):
		return "too_many_inputs"
	case errors.Is(err, ErrIndexOutOfRange):
		return "index_out_of_range"
	case errors.Is(err, ErrNilExpression):
		return "nil_expression"
	default:
		return "other"
	}
}
