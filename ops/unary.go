package ops

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"

	"github.com/gomlx/lazygraph/backends"
	"github.com/gomlx/lazygraph/backends/shapeinference"
	"github.com/gomlx/lazygraph/ir"
	"github.com/gomlx/lazygraph/types/shapes"
)

// Kinds of the unary operations.
var (
	KindAbs        = ir.LazyOp("abs")
	KindAcos       = ir.LazyOp("acos")
	KindAsin       = ir.LazyOp("asin")
	KindAtan       = ir.LazyOp("atan")
	KindCeil       = ir.LazyOp("ceil")
	KindCos        = ir.LazyOp("cos")
	KindCosh       = ir.LazyOp("cosh")
	KindErf        = ir.LazyOp("erf")
	KindExp        = ir.LazyOp("exp")
	KindExpm1      = ir.LazyOp("expm1")
	KindFloor      = ir.LazyOp("floor")
	KindIsNaN      = ir.LazyOp("isnan")
	KindLog        = ir.LazyOp("log")
	KindLog1p      = ir.LazyOp("log1p")
	KindLogicalNot = ir.LazyOp("logical_not")
	KindLogistic   = ir.LazyOp("logistic")
	KindNeg        = ir.LazyOp("neg")
	KindReciprocal = ir.LazyOp("reciprocal")
	KindRound      = ir.LazyOp("round")
	KindRsqrt      = ir.LazyOp("rsqrt")
	KindSign       = ir.LazyOp("sign")
	KindSilu       = ir.LazyOp("silu")
	KindSin        = ir.LazyOp("sin")
	KindSinh       = ir.LazyOp("sinh")
	KindSqrt       = ir.LazyOp("sqrt")
	KindTan        = ir.LazyOp("tan")
	KindTanh       = ir.LazyOp("tanh")
)

// registerElementwise registers a pass-through unary op: the output shape is
// the operand's shape, with the dtype checked against opType's supported set.
func registerElementwise(kind ir.OpKind, opType backends.OpType,
	fn func(b backends.Builder, x backends.Op) (backends.Op, error)) {
	ir.Register(kind, ir.OpDef{
		NumOperands: 1,
		Shape:       passThroughShape(opType),
		Lower: ir.LowerWith(func(b backends.Builder, operands []backends.Op, _ ir.Attributes) ([]backends.Op, error) {
			return one(fn(b, operands[0]))
		}),
	})
}

// registerComposite registers a single-output op lowered as a composition of
// backend ops, with the shape resolved by trial-lowering the same
// composition.
func registerComposite(kind ir.OpKind, numOperands int, core ir.CoreLowerFn) {
	ir.Register(kind, ir.OpDef{
		NumOperands: numOperands,
		Shape:       ir.ShapeFromLowering(core),
		Lower:       ir.LowerWith(core),
	})
}

func init() {
	registerElementwise(KindAbs, backends.OpTypeAbs, backends.Builder.Abs)
	registerElementwise(KindAcos, backends.OpTypeAcos, backends.Builder.Acos)
	registerElementwise(KindAsin, backends.OpTypeAsin, backends.Builder.Asin)
	registerElementwise(KindAtan, backends.OpTypeAtan, backends.Builder.Atan)
	registerElementwise(KindCeil, backends.OpTypeCeil, backends.Builder.Ceil)
	registerElementwise(KindCos, backends.OpTypeCos, backends.Builder.Cos)
	registerElementwise(KindCosh, backends.OpTypeCosh, backends.Builder.Cosh)
	registerElementwise(KindErf, backends.OpTypeErf, backends.Builder.Erf)
	registerElementwise(KindExp, backends.OpTypeExp, backends.Builder.Exp)
	registerElementwise(KindExpm1, backends.OpTypeExpm1, backends.Builder.Expm1)
	registerElementwise(KindFloor, backends.OpTypeFloor, backends.Builder.Floor)
	registerElementwise(KindLog, backends.OpTypeLog, backends.Builder.Log)
	registerElementwise(KindLog1p, backends.OpTypeLog1p, backends.Builder.Log1p)
	registerElementwise(KindLogicalNot, backends.OpTypeLogicalNot, backends.Builder.LogicalNot)
	registerElementwise(KindLogistic, backends.OpTypeLogistic, backends.Builder.Logistic)
	registerElementwise(KindNeg, backends.OpTypeNeg, backends.Builder.Neg)
	registerElementwise(KindRound, backends.OpTypeRound, backends.Builder.Round)
	registerElementwise(KindRsqrt, backends.OpTypeRsqrt, backends.Builder.Rsqrt)
	registerElementwise(KindSign, backends.OpTypeSign, backends.Builder.Sign)
	registerElementwise(KindSin, backends.OpTypeSin, backends.Builder.Sin)
	registerElementwise(KindSinh, backends.OpTypeSinh, backends.Builder.Sinh)
	registerElementwise(KindSqrt, backends.OpTypeSqrt, backends.Builder.Sqrt)
	registerElementwise(KindTan, backends.OpTypeTan, backends.Builder.Tan)
	registerElementwise(KindTanh, backends.OpTypeTanh, backends.Builder.Tanh)

	// IsNaN: same dimensions, dtype Bool. Restricted to float operands.
	ir.Register(KindIsNaN, ir.OpDef{
		NumOperands: 1,
		Shape: func(_ backends.Backend, operands []shapes.Shape, _ ir.Attributes) ([]shapes.Shape, error) {
			operand := operands[0]
			if !operand.DType.IsFloat() {
				return nil, errors.Wrapf(shapeinference.ErrDType, "IsNaN requires a float operand, got %s", operand)
			}
			output := operand.Clone()
			output.DType = dtypes.Bool
			return []shapes.Shape{output}, nil
		},
		Lower: ir.LowerWith(func(b backends.Builder, operands []backends.Op, _ ir.Attributes) ([]backends.Op, error) {
			return one(b.IsNaN(operands[0]))
		}),
	})

	// Reciprocal(x) = 1/x.
	registerComposite(KindReciprocal, 1, func(b backends.Builder, operands []backends.Op, _ ir.Attributes) ([]backends.Op, error) {
		x := operands[0]
		xShape, err := b.OpShape(x)
		if err != nil {
			return nil, err
		}
		oneConst, err := b.Constant(shapes.ScalarFlat(xShape.DType, 1))
		if err != nil {
			return nil, err
		}
		return one(b.Div(oneConst, x))
	})

	// Silu(x) = x * logistic(x), also known as swish.
	registerComposite(KindSilu, 1, func(b backends.Builder, operands []backends.Op, _ ir.Attributes) ([]backends.Op, error) {
		x := operands[0]
		sigmoid, err := b.Logistic(x)
		if err != nil {
			return nil, err
		}
		return one(b.Mul(x, sigmoid))
	})
}

// Abs returns the element-wise absolute value of x.
func Abs(x ir.Value) (ir.Value, error) { return newOp(KindAbs, nil, x) }

// Acos returns the element-wise arc-cosine of x.
func Acos(x ir.Value) (ir.Value, error) { return newOp(KindAcos, nil, x) }

// Asin returns the element-wise arc-sine of x.
func Asin(x ir.Value) (ir.Value, error) { return newOp(KindAsin, nil, x) }

// Atan returns the element-wise arc-tangent of x.
func Atan(x ir.Value) (ir.Value, error) { return newOp(KindAtan, nil, x) }

// Ceil returns x rounded up to the nearest integral value, element-wise.
func Ceil(x ir.Value) (ir.Value, error) { return newOp(KindCeil, nil, x) }

// Cos returns the element-wise cosine of x.
func Cos(x ir.Value) (ir.Value, error) { return newOp(KindCos, nil, x) }

// Cosh returns the element-wise hyperbolic cosine of x.
func Cosh(x ir.Value) (ir.Value, error) { return newOp(KindCosh, nil, x) }

// Erf returns the element-wise Gauss error function of x.
func Erf(x ir.Value) (ir.Value, error) { return newOp(KindErf, nil, x) }

// Exp returns e^x element-wise.
func Exp(x ir.Value) (ir.Value, error) { return newOp(KindExp, nil, x) }

// Expm1 returns e^x-1 element-wise, accurate for small x.
func Expm1(x ir.Value) (ir.Value, error) { return newOp(KindExpm1, nil, x) }

// Floor returns x rounded down to the nearest integral value, element-wise.
func Floor(x ir.Value) (ir.Value, error) { return newOp(KindFloor, nil, x) }

// IsNaN tests element-wise whether x is NaN. The output dtype is Bool.
func IsNaN(x ir.Value) (ir.Value, error) { return newOp(KindIsNaN, nil, x) }

// Log returns the element-wise natural logarithm of x.
func Log(x ir.Value) (ir.Value, error) { return newOp(KindLog, nil, x) }

// Log1p returns log(1+x) element-wise, accurate for small x.
func Log1p(x ir.Value) (ir.Value, error) { return newOp(KindLog1p, nil, x) }

// LogicalNot negates a boolean x element-wise.
func LogicalNot(x ir.Value) (ir.Value, error) { return newOp(KindLogicalNot, nil, x) }

// Logistic returns the sigmoid 1/(1+e^-x) element-wise.
func Logistic(x ir.Value) (ir.Value, error) { return newOp(KindLogistic, nil, x) }

// Neg returns -x element-wise.
func Neg(x ir.Value) (ir.Value, error) { return newOp(KindNeg, nil, x) }

// Reciprocal returns 1/x element-wise.
func Reciprocal(x ir.Value) (ir.Value, error) { return newOp(KindReciprocal, nil, x) }

// Round returns x rounded to the nearest integral value, element-wise.
func Round(x ir.Value) (ir.Value, error) { return newOp(KindRound, nil, x) }

// Rsqrt returns 1/sqrt(x) element-wise.
func Rsqrt(x ir.Value) (ir.Value, error) { return newOp(KindRsqrt, nil, x) }

// Sign returns the element-wise sign of x: -1, 0 or 1.
func Sign(x ir.Value) (ir.Value, error) { return newOp(KindSign, nil, x) }

// Silu returns x*logistic(x) element-wise, also known as the swish
// activation.
func Silu(x ir.Value) (ir.Value, error) { return newOp(KindSilu, nil, x) }

// Sin returns the element-wise sine of x.
func Sin(x ir.Value) (ir.Value, error) { return newOp(KindSin, nil, x) }

// Sinh returns the element-wise hyperbolic sine of x.
func Sinh(x ir.Value) (ir.Value, error) { return newOp(KindSinh, nil, x) }

// Sqrt returns the element-wise square root of x.
func Sqrt(x ir.Value) (ir.Value, error) { return newOp(KindSqrt, nil, x) }

// Tan returns the element-wise tangent of x.
func Tan(x ir.Value) (ir.Value, error) { return newOp(KindTan, nil, x) }

// Tanh returns the element-wise hyperbolic tangent of x.
func Tanh(x ir.Value) (ir.Value, error) { return newOp(KindTanh, nil, x) }
