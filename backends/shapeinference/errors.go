package shapeinference

import (
	"github.com/pkg/errors"
)

// Error kinds reported by shape inference. They are always wrapped with a
// message describing the offending operation and shapes; test with errors.Is.
//
// All of them are recoverable from the caller's perspective: the operation is
// simply not created, and the graph being built remains valid.
var (
	// ErrUnsupported is reported when an operation type is not in the set a
	// shape-inference function handles, or when the operand count doesn't match
	// the operation's arity.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrRank is reported when an operand's rank is invalid for the operation.
	ErrRank = errors.New("invalid rank")

	// ErrShapeMismatch is reported when operand dimensions cannot be reconciled,
	// including failed broadcasts.
	ErrShapeMismatch = errors.New("shapes mismatch")

	// ErrTypePromotion is reported when operand DTypes cannot be reconciled to a
	// common DType under the promotion rules. See PromoteDTypes.
	ErrTypePromotion = errors.New("dtypes cannot be promoted")

	// ErrDType is reported when an operand DType is not valid for the operation,
	// e.g. LogicalNot of a float.
	ErrDType = errors.New("invalid dtype")
)
