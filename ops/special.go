package ops

import (
	"github.com/pkg/errors"

	"github.com/gomlx/lazygraph/backends"
	"github.com/gomlx/lazygraph/backends/shapeinference"
	"github.com/gomlx/lazygraph/ir"
	"github.com/gomlx/lazygraph/types/shapes"
	"github.com/gomlx/lazygraph/types/xslices"
)

// Kinds of the special (non-elementwise) operations.
var (
	KindLogDet     = ir.LazyOp("logdet")
	KindLogSigmoid = ir.LazyOp("log_sigmoid")
)

func init() {
	// LogDet takes a batch of square matrices [..., N, N] and returns one
	// value per matrix, shape [...]. The shape rule is structural: drop the
	// last two axes.
	ir.Register(KindLogDet, ir.OpDef{
		NumOperands: 1,
		Shape: func(_ backends.Backend, operands []shapes.Shape, _ ir.Attributes) ([]shapes.Shape, error) {
			operand := operands[0]
			if operand.Rank() < 2 {
				return nil, errors.Wrapf(shapeinference.ErrRank,
					"LogDet requires rank >= 2 ([..., N, N]), got %s", operand)
			}
			rank := operand.Rank()
			if xslices.Last(operand.Dimensions) != xslices.At(operand.Dimensions, -2) {
				return nil, errors.Wrapf(shapeinference.ErrShapeMismatch,
					"LogDet requires square matrices in the last two axes, got %s", operand)
			}
			if !operand.DType.IsFloat() && !operand.DType.IsComplex() {
				return nil, errors.Wrapf(shapeinference.ErrDType,
					"LogDet requires a float or complex operand, got %s", operand)
			}
			output := shapes.Make(operand.DType, operand.Dimensions[:rank-2]...)
			return []shapes.Shape{output}, nil
		},
		// TODO: lower via an LU decomposition once the backend has a
		// triangular solve. Until then this emits sum(log(abs(x))) over the
		// matrix axes, exact only for triangular matrices.
		Lower: ir.LowerWith(func(b backends.Builder, operands []backends.Op, _ ir.Attributes) ([]backends.Op, error) {
			x := operands[0]
			xShape, err := b.OpShape(x)
			if err != nil {
				return nil, err
			}
			absX, err := b.Abs(x)
			if err != nil {
				return nil, err
			}
			logAbs, err := b.Log(absX)
			if err != nil {
				return nil, err
			}
			rank := xShape.Rank()
			return one(b.ReduceSum(logAbs, rank-2, rank-1))
		}),
	})

	// LogSigmoid has two outputs: log(sigmoid(x)), and the buffer exp(-x)
	// kept for the backward pass. Lowered as -log1p(exp(-x)); the shapes come
	// from trial-lowering the same composition.
	core := func(b backends.Builder, operands []backends.Op, _ ir.Attributes) ([]backends.Op, error) {
		negX, err := b.Neg(operands[0])
		if err != nil {
			return nil, err
		}
		buffer, err := b.Exp(negX)
		if err != nil {
			return nil, err
		}
		log1pBuf, err := b.Log1p(buffer)
		if err != nil {
			return nil, err
		}
		output, err := b.Neg(log1pBuf)
		if err != nil {
			return nil, err
		}
		return []backends.Op{output, buffer}, nil
	}
	ir.Register(KindLogSigmoid, ir.OpDef{
		NumOperands: 1,
		Shape:       ir.ShapeFromLowering(core),
		Lower:       ir.LowerWith(core),
	})
}

// LogDet returns log(abs(det(x))) for a batch of square matrices
// [..., N, N], with output shape [...].
func LogDet(x ir.Value) (ir.Value, error) { return newOp(KindLogDet, nil, x) }

// LogSigmoid returns log(sigmoid(x)) and, as second value, the buffer
// exp(-x) reused by the backward computation. Both have x's shape.
func LogSigmoid(x ir.Value) (ir.Value, ir.Value, error) {
	node, err := graphOf([]ir.Value{x}).NewNode(KindLogSigmoid, []ir.Value{x}, nil)
	if err != nil {
		return ir.Value{}, ir.Value{}, err
	}
	return node.Output(0), node.Output(1), nil
}
