// Package ir implements a deferred-execution computation graph: operations on
// tensors are recorded as immutable Node values, and only lowered to a
// backends.Builder program when the user asks for it.
//
// Each Node knows its output shapes at construction time. Shapes are resolved
// by the op's registered shape function, which may be a simple rule or a trial
// lowering (see InferOutputShape): the op is lowered into a throwaway builder
// fed with placeholder parameters, and the resulting shape is read back.
//
// Nodes are content-hashed: two nodes with the same kind, attributes and
// operands have the same Hash, which makes graphs cheap to deduplicate and
// compare.
//
// The actual catalogue of operations lives in the ops package; ir only knows
// about the registry seam (see Register and OpDef).
package ir

import (
	"github.com/pkg/errors"
)

var (
	// ErrMalformedGraph indicates a structural defect found while lowering,
	// like a cycle among node operands. Graphs built through Graph.NewNode are
	// append-only and cannot trigger it.
	ErrMalformedGraph = errors.New("malformed graph")

	// ErrLoweringArity indicates an op's lowering function returned a number
	// of outputs different from the node's NumOutputs. It flags a defect in
	// the op's registration, not in the user's graph.
	ErrLoweringArity = errors.New("lowering returned wrong number of outputs")

	// ErrUnknownOp indicates an OpKind with no registered OpDef.
	ErrUnknownOp = errors.New("unknown op kind")
)
