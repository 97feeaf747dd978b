package ir

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/gomlx/lazygraph/backends"
	"github.com/gomlx/lazygraph/types/shapes"
)

// CoreLowerFn emits the backend ops of one operation, given its already
// lowered operands and its attributes. The same function serves both real
// lowering (LowerWith) and trial shape inference (ShapeFromLowering), which
// keeps the two from ever disagreeing on shapes.
type CoreLowerFn func(b backends.Builder, operands []backends.Op, attrs Attributes) ([]backends.Op, error)

// InferOutputShape resolves output shapes by trial lowering: it creates a
// throwaway builder on the backend, feeds it one placeholder parameter per
// operand shape, runs lower, and reads the resulting shapes back. The
// throwaway builder is never compiled or executed.
//
// Use it for ops whose output shape is easier to let the backend compute than
// to spell out, e.g. when it depends on dtype promotion or windowing rules.
func InferOutputShape(backend backends.Backend, operandShapes []shapes.Shape,
	lower func(b backends.Builder, operands []backends.Op) ([]backends.Op, error)) ([]shapes.Shape, error) {
	b := backend.Builder("shape-inference-" + uuid.NewString())
	operands := make([]backends.Op, len(operandShapes))
	for ii, s := range operandShapes {
		var err error
		operands[ii], err = b.Parameter(fmt.Sprintf("operand_%d", ii), s)
		if err != nil {
			return nil, errors.WithMessagef(err, "InferOutputShape: creating placeholder #%d", ii)
		}
	}
	outputs, err := lower(b, operands)
	if err != nil {
		return nil, err
	}
	if len(outputs) == 0 {
		return nil, errors.Wrap(ErrLoweringArity, "InferOutputShape: trial lowering returned no outputs")
	}
	outputShapes := make([]shapes.Shape, len(outputs))
	for ii, op := range outputs {
		outputShapes[ii], err = b.OpShape(op)
		if err != nil {
			return nil, errors.WithMessagef(err, "InferOutputShape: reading shape of output #%d", ii)
		}
	}
	return outputShapes, nil
}

// ShapeFromLowering builds a ShapeFn that resolves output shapes by
// trial-lowering core with InferOutputShape.
func ShapeFromLowering(core CoreLowerFn) ShapeFn {
	return func(backend backends.Backend, operands []shapes.Shape, attrs Attributes) ([]shapes.Shape, error) {
		return InferOutputShape(backend, operands, func(b backends.Builder, ops []backends.Op) ([]backends.Op, error) {
			return core(b, ops, attrs)
		})
	}
}

// LowerWith adapts core to the LowerFn signature. Register an op with
// LowerWith(core) and ShapeFromLowering(core) to guarantee inferred and
// lowered shapes match.
func LowerWith(core CoreLowerFn) LowerFn {
	return func(ctx *LoweringContext, node *Node, operands []backends.Op) ([]backends.Op, error) {
		return core(ctx.Builder(), operands, node.attrs)
	}
}
