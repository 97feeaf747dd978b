// Package ops registers the standard operation catalogue on top of the ir
// package and exposes one constructor function per operation, e.g. Add, Exp
// or LogDet. Constructors take ir.Value operands and return the new node's
// output as an ir.Value.
//
// Each operation resolves its output shapes in one of three ways:
//
//   - Pass-through: elementwise unary ops keep the operand's shape, checked
//     against the op's supported dtypes (see shapeinference.UnaryOp).
//   - Structural rule: ops like IsNaN, LogDet or All compute the output shape
//     directly from the operand's shape and the attributes.
//   - Trial lowering: ops whose shape depends on backend rules, like the
//     binary ops with dtype promotion or MaxPool2D, run their own lowering on
//     a throwaway builder and read the shape back (see ir.InferOutputShape).
package ops

import (
	"github.com/pkg/errors"

	"github.com/gomlx/lazygraph/backends"
	"github.com/gomlx/lazygraph/backends/shapeinference"
	"github.com/gomlx/lazygraph/ir"
	"github.com/gomlx/lazygraph/types/shapes"
)

// newOp creates a single-output node on the operands' graph.
func newOp(kind ir.OpKind, attrs ir.Attributes, operands ...ir.Value) (ir.Value, error) {
	node, err := graphOf(operands).NewNode(kind, operands, attrs)
	if err != nil {
		return ir.Value{}, err
	}
	return node.Output(0), nil
}

func graphOf(operands []ir.Value) *ir.Graph {
	return operands[0].Node.Graph()
}

// one wraps a backend op as a single-output lowering result.
func one(op backends.Op, err error) ([]backends.Op, error) {
	if err != nil {
		return nil, err
	}
	return []backends.Op{op}, nil
}

// promotePair converts lhs and rhs to their common promoted dtype, inserting
// ConvertDType ops as needed. See shapeinference.PromoteDTypes for the rules.
func promotePair(b backends.Builder, lhs, rhs backends.Op) (backends.Op, backends.Op, error) {
	lhsShape, err := b.OpShape(lhs)
	if err != nil {
		return nil, nil, err
	}
	rhsShape, err := b.OpShape(rhs)
	if err != nil {
		return nil, nil, err
	}
	if lhsShape.DType == rhsShape.DType {
		return lhs, rhs, nil
	}
	promoted, err := shapeinference.PromoteDTypes(lhsShape.DType, rhsShape.DType)
	if err != nil {
		return nil, nil, err
	}
	if lhsShape.DType != promoted {
		if lhs, err = b.ConvertDType(lhs, promoted); err != nil {
			return nil, nil, err
		}
	}
	if rhsShape.DType != promoted {
		if rhs, err = b.ConvertDType(rhs, promoted); err != nil {
			return nil, nil, err
		}
	}
	return lhs, rhs, nil
}

// passThroughShape builds a ShapeFn for elementwise unary ops: same shape as
// the operand, with the dtype checked against opType's supported set.
func passThroughShape(opType backends.OpType) ir.ShapeFn {
	return func(_ backends.Backend, operands []shapes.Shape, _ ir.Attributes) ([]shapes.Shape, error) {
		output, err := shapeinference.UnaryOp(opType, operands[0])
		if err != nil {
			return nil, err
		}
		return []shapes.Shape{output}, nil
	}
}

// axesAttr reads an []int attribute, defaulting to nil.
func axesAttr(attrs ir.Attributes, key string) []int {
	axes, _ := attrs[key].([]int)
	return axes
}

// adjustAxes normalizes negative axes (counting from the end) and validates
// the range for the given rank.
func adjustAxes(axes []int, rank int) ([]int, error) {
	adjusted := make([]int, len(axes))
	for ii, axis := range axes {
		adjusted[ii] = axis
		if axis < 0 {
			adjusted[ii] = axis + rank
		}
		if adjusted[ii] < 0 || adjusted[ii] >= rank {
			return nil, errors.Wrapf(shapeinference.ErrRank, "axis %d out of range for rank %d", axis, rank)
		}
	}
	return adjusted, nil
}
