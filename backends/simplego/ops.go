package simplego

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"

	"github.com/gomlx/lazygraph/backends"
	"github.com/gomlx/lazygraph/backends/shapeinference"
)

// This file implements backends.StandardOps for the Builder. The shape and
// dtype rules are all in the package shapeinference, shared with any other
// backend.

// addUnaryOp adds a generic unary op.
func (b *Builder) addUnaryOp(opType backends.OpType, operandOp backends.Op) (backends.Op, error) {
	inputs := b.checkOps(opType.String(), operandOp)
	operand := inputs[0]
	shape, err := shapeinference.UnaryOp(opType, operand.shape)
	if err != nil {
		return nil, err
	}
	return b.newNode(opType, shape, operand), nil
}

// addBinaryOp adds a generic binary op.
func (b *Builder) addBinaryOp(opType backends.OpType, lhsOp, rhsOp backends.Op) (backends.Op, error) {
	inputs := b.checkOps(opType.String(), lhsOp, rhsOp)
	lhs, rhs := inputs[0], inputs[1]
	shape, err := shapeinference.BinaryOp(opType, lhs.shape, rhs.shape)
	if err != nil {
		return nil, err
	}
	return b.newNode(opType, shape, lhs, rhs), nil
}

// addComparisonOp adds a generic comparison binary op.
func (b *Builder) addComparisonOp(opType backends.OpType, lhsOp, rhsOp backends.Op) (backends.Op, error) {
	inputs := b.checkOps(opType.String(), lhsOp, rhsOp)
	lhs, rhs := inputs[0], inputs[1]
	shape, err := shapeinference.ComparisonOp(opType, lhs.shape, rhs.shape)
	if err != nil {
		return nil, err
	}
	return b.newNode(opType, shape, lhs, rhs), nil
}

// addReduceOp adds a generic reduction op over the given axes.
func (b *Builder) addReduceOp(opType backends.OpType, xOp backends.Op, axes ...int) (backends.Op, error) {
	inputs := b.checkOps(opType.String(), xOp)
	operand := inputs[0]
	shape, err := shapeinference.ReduceOp(opType, operand.shape, axes)
	if err != nil {
		return nil, err
	}
	node := b.newNode(opType, shape, operand)
	node.data = axes
	return node, nil
}

func (b *Builder) Abs(x backends.Op) (backends.Op, error) { return b.addUnaryOp(backends.OpTypeAbs, x) }

func (b *Builder) Acos(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeAcos, x)
}

func (b *Builder) Add(lhs, rhs backends.Op) (backends.Op, error) {
	return b.addBinaryOp(backends.OpTypeAdd, lhs, rhs)
}

func (b *Builder) Asin(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeAsin, x)
}

func (b *Builder) Atan(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeAtan, x)
}

func (b *Builder) Ceil(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeCeil, x)
}

// ConvertDType converts x to the given dtype, keeping its dimensions.
func (b *Builder) ConvertDType(x backends.Op, dtype dtypes.DType) (backends.Op, error) {
	inputs := b.checkOps(backends.OpTypeConvertDType.String(), x)
	operand := inputs[0]
	shape, err := shapeinference.ConvertOp(operand.shape, dtype)
	if err != nil {
		return nil, err
	}
	node := b.newNode(backends.OpTypeConvertDType, shape, operand)
	node.data = dtype
	return node, nil
}

func (b *Builder) Cos(x backends.Op) (backends.Op, error) { return b.addUnaryOp(backends.OpTypeCos, x) }

func (b *Builder) Cosh(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeCosh, x)
}

func (b *Builder) Div(lhs, rhs backends.Op) (backends.Op, error) {
	return b.addBinaryOp(backends.OpTypeDiv, lhs, rhs)
}

func (b *Builder) Equal(lhs, rhs backends.Op) (backends.Op, error) {
	return b.addComparisonOp(backends.OpTypeEqual, lhs, rhs)
}

func (b *Builder) Erf(x backends.Op) (backends.Op, error) { return b.addUnaryOp(backends.OpTypeErf, x) }

func (b *Builder) Exp(x backends.Op) (backends.Op, error) { return b.addUnaryOp(backends.OpTypeExp, x) }

func (b *Builder) Expm1(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeExpm1, x)
}

func (b *Builder) Floor(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeFloor, x)
}

func (b *Builder) GreaterOrEqual(lhs, rhs backends.Op) (backends.Op, error) {
	return b.addComparisonOp(backends.OpTypeGreaterOrEqual, lhs, rhs)
}

func (b *Builder) GreaterThan(lhs, rhs backends.Op) (backends.Op, error) {
	return b.addComparisonOp(backends.OpTypeGreaterThan, lhs, rhs)
}

// IsNaN tests element-wise for NaN: the output has the same dimensions as x, with dtype Bool.
func (b *Builder) IsNaN(x backends.Op) (backends.Op, error) {
	inputs := b.checkOps(backends.OpTypeIsNaN.String(), x)
	operand := inputs[0]
	if !operand.shape.DType.IsFloat() {
		return nil, errors.Wrapf(shapeinference.ErrDType, "IsNaN requires a float operand, got %s", operand.shape)
	}
	shape := operand.shape.Clone()
	shape.DType = dtypes.Bool
	return b.newNode(backends.OpTypeIsNaN, shape, operand), nil
}

func (b *Builder) LessOrEqual(lhs, rhs backends.Op) (backends.Op, error) {
	return b.addComparisonOp(backends.OpTypeLessOrEqual, lhs, rhs)
}

func (b *Builder) LessThan(lhs, rhs backends.Op) (backends.Op, error) {
	return b.addComparisonOp(backends.OpTypeLessThan, lhs, rhs)
}

func (b *Builder) Log(x backends.Op) (backends.Op, error) { return b.addUnaryOp(backends.OpTypeLog, x) }

func (b *Builder) Log1p(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeLog1p, x)
}

func (b *Builder) LogicalNot(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeLogicalNot, x)
}

func (b *Builder) Logistic(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeLogistic, x)
}

func (b *Builder) Max(lhs, rhs backends.Op) (backends.Op, error) {
	return b.addBinaryOp(backends.OpTypeMax, lhs, rhs)
}

func (b *Builder) Min(lhs, rhs backends.Op) (backends.Op, error) {
	return b.addBinaryOp(backends.OpTypeMin, lhs, rhs)
}

func (b *Builder) Mul(lhs, rhs backends.Op) (backends.Op, error) {
	return b.addBinaryOp(backends.OpTypeMul, lhs, rhs)
}

func (b *Builder) Neg(x backends.Op) (backends.Op, error) { return b.addUnaryOp(backends.OpTypeNeg, x) }

func (b *Builder) NotEqual(lhs, rhs backends.Op) (backends.Op, error) {
	return b.addComparisonOp(backends.OpTypeNotEqual, lhs, rhs)
}

func (b *Builder) Pow(lhs, rhs backends.Op) (backends.Op, error) {
	return b.addBinaryOp(backends.OpTypePow, lhs, rhs)
}

func (b *Builder) ReduceLogicalAnd(x backends.Op, axes ...int) (backends.Op, error) {
	return b.addReduceOp(backends.OpTypeReduceLogicalAnd, x, axes...)
}

func (b *Builder) ReduceMax(x backends.Op, axes ...int) (backends.Op, error) {
	return b.addReduceOp(backends.OpTypeReduceMax, x, axes...)
}

func (b *Builder) ReduceProduct(x backends.Op, axes ...int) (backends.Op, error) {
	return b.addReduceOp(backends.OpTypeReduceProduct, x, axes...)
}

func (b *Builder) ReduceSum(x backends.Op, axes ...int) (backends.Op, error) {
	return b.addReduceOp(backends.OpTypeReduceSum, x, axes...)
}

// reduceWindowData holds the static parameters of a ReduceWindow node.
type reduceWindowData struct {
	reductionType                                             backends.ReduceOpType
	windowDimensions, strides, baseDilations, windowDilations []int
	paddings                                                  [][2]int
}

func (b *Builder) ReduceWindow(x backends.Op, reductionType backends.ReduceOpType,
	windowDimensions, strides, baseDilations, windowDilations []int, paddings [][2]int) (backends.Op, error) {
	inputs := b.checkOps(backends.OpTypeReduceWindow.String(), x)
	operand := inputs[0]
	if reductionType == backends.ReduceOpUndefined || !reductionType.IsAReduceOpType() {
		return nil, errors.Wrapf(shapeinference.ErrUnsupported, "ReduceWindow got invalid reduction type %d", reductionType)
	}
	shape, err := shapeinference.ReduceWindowOp(operand.shape, windowDimensions, strides, baseDilations, windowDilations, paddings)
	if err != nil {
		return nil, err
	}
	node := b.newNode(backends.OpTypeReduceWindow, shape, operand)
	node.data = &reduceWindowData{
		reductionType:    reductionType,
		windowDimensions: windowDimensions,
		strides:          strides,
		baseDilations:    baseDilations,
		windowDilations:  windowDilations,
		paddings:         paddings,
	}
	return node, nil
}

func (b *Builder) Reshape(x backends.Op, dimensions ...int) (backends.Op, error) {
	inputs := b.checkOps(backends.OpTypeReshape.String(), x)
	operand := inputs[0]
	shape, err := shapeinference.ReshapeOp(operand.shape, dimensions)
	if err != nil {
		return nil, err
	}
	return b.newNode(backends.OpTypeReshape, shape, operand), nil
}

func (b *Builder) Round(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeRound, x)
}

func (b *Builder) Rsqrt(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeRsqrt, x)
}

func (b *Builder) Sign(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeSign, x)
}

func (b *Builder) Sin(x backends.Op) (backends.Op, error) { return b.addUnaryOp(backends.OpTypeSin, x) }

func (b *Builder) Sinh(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeSinh, x)
}

func (b *Builder) Sqrt(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeSqrt, x)
}

func (b *Builder) Sub(lhs, rhs backends.Op) (backends.Op, error) {
	return b.addBinaryOp(backends.OpTypeSub, lhs, rhs)
}

func (b *Builder) Tan(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeTan, x)
}

func (b *Builder) Tanh(x backends.Op) (backends.Op, error) {
	return b.addUnaryOp(backends.OpTypeTanh, x)
}
