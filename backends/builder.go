package backends

import (
	"github.com/gomlx/lazygraph/types/shapes"
)

// Builder defines the set of ops to support building a computation.
// It is the sub-interface of Backend.
//
// All shape and dtype validation happens at op creation time: a Builder never
// creates an op whose shape it cannot resolve. This is what makes a Builder
// usable for trial-lowering shape inference (see ir.InferOutputShape).
type Builder interface {
	// Name of the computation being built.
	Name() string

	// OpShape returns the shape of a computation Op.
	// Notice this is not an operation and doesn't change the graph being built.
	OpShape(op Op) (shapes.Shape, error)

	// Parameter creates an input parameter for the computation.
	Parameter(name string, shape shapes.Shape) (Op, error)

	// Constant creates a constant in the graph with the given flat values, and the shape defined by dims.
	//
	// The flat value must be a slice of a basic type supported -- that can be converted to a DType.
	//
	// The value is copied into the graph.
	Constant(flat any, dims ...int) (Op, error)

	// StandardOps include all other standard math operations.
	StandardOps
}

// ReduceOpType selects among the basic types of reduction supported by
// Builder.ReduceWindow.
type ReduceOpType int

const (
	// ReduceOpUndefined is an undefined value.
	ReduceOpUndefined ReduceOpType = iota

	// ReduceOpSum reduces by summing all elements being reduced.
	ReduceOpSum

	// ReduceOpProduct reduces by multiplying all elements being reduced.
	ReduceOpProduct

	// ReduceOpMax reduces by taking the maximum value.
	ReduceOpMax

	// ReduceOpMin reduces by taking the minimum value.
	ReduceOpMin
)

//go:generate go tool enumer -type ReduceOpType -trimprefix=ReduceOp -output=gen_reduceoptype_enumer.go builder.go
