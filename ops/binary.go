package ops

import (
	"github.com/gomlx/lazygraph/backends"
	"github.com/gomlx/lazygraph/ir"
)

// Kinds of the binary operations.
var (
	KindAdd = ir.LazyOp("add")
	KindDiv = ir.LazyOp("div")
	KindMax = ir.LazyOp("max")
	KindMin = ir.LazyOp("min")
	KindMul = ir.LazyOp("mul")
	KindPow = ir.LazyOp("pow")
	KindSub = ir.LazyOp("sub")

	KindEqual          = ir.LazyOp("eq")
	KindGreaterOrEqual = ir.LazyOp("ge")
	KindGreaterThan    = ir.LazyOp("gt")
	KindLessOrEqual    = ir.LazyOp("le")
	KindLessThan       = ir.LazyOp("lt")
	KindNotEqual       = ir.LazyOp("ne")
)

// registerBinary registers a two-operand op with implicit dtype promotion:
// operands of different dtypes are converted to their common promoted dtype
// before fn. The output shape, including the promoted dtype and the
// broadcast dimensions, is resolved by trial lowering.
func registerBinary(kind ir.OpKind, fn func(b backends.Builder, lhs, rhs backends.Op) (backends.Op, error)) {
	registerComposite(kind, 2, func(b backends.Builder, operands []backends.Op, _ ir.Attributes) ([]backends.Op, error) {
		lhs, rhs, err := promotePair(b, operands[0], operands[1])
		if err != nil {
			return nil, err
		}
		return one(fn(b, lhs, rhs))
	})
}

func init() {
	registerBinary(KindAdd, backends.Builder.Add)
	registerBinary(KindDiv, backends.Builder.Div)
	registerBinary(KindMax, backends.Builder.Max)
	registerBinary(KindMin, backends.Builder.Min)
	registerBinary(KindMul, backends.Builder.Mul)
	registerBinary(KindPow, backends.Builder.Pow)
	registerBinary(KindSub, backends.Builder.Sub)

	registerBinary(KindEqual, backends.Builder.Equal)
	registerBinary(KindGreaterOrEqual, backends.Builder.GreaterOrEqual)
	registerBinary(KindGreaterThan, backends.Builder.GreaterThan)
	registerBinary(KindLessOrEqual, backends.Builder.LessOrEqual)
	registerBinary(KindLessThan, backends.Builder.LessThan)
	registerBinary(KindNotEqual, backends.Builder.NotEqual)
}

// Add returns lhs+rhs element-wise, with broadcasting and dtype promotion.
func Add(lhs, rhs ir.Value) (ir.Value, error) { return newOp(KindAdd, nil, lhs, rhs) }

// Div returns lhs/rhs element-wise, with broadcasting and dtype promotion.
func Div(lhs, rhs ir.Value) (ir.Value, error) { return newOp(KindDiv, nil, lhs, rhs) }

// Max returns the element-wise maximum of lhs and rhs, with broadcasting and
// dtype promotion.
func Max(lhs, rhs ir.Value) (ir.Value, error) { return newOp(KindMax, nil, lhs, rhs) }

// Min returns the element-wise minimum of lhs and rhs, with broadcasting and
// dtype promotion.
func Min(lhs, rhs ir.Value) (ir.Value, error) { return newOp(KindMin, nil, lhs, rhs) }

// Mul returns lhs*rhs element-wise, with broadcasting and dtype promotion.
func Mul(lhs, rhs ir.Value) (ir.Value, error) { return newOp(KindMul, nil, lhs, rhs) }

// Pow returns lhs^rhs element-wise, with broadcasting and dtype promotion.
func Pow(lhs, rhs ir.Value) (ir.Value, error) { return newOp(KindPow, nil, lhs, rhs) }

// Sub returns lhs-rhs element-wise, with broadcasting and dtype promotion.
func Sub(lhs, rhs ir.Value) (ir.Value, error) { return newOp(KindSub, nil, lhs, rhs) }

// Equal compares lhs==rhs element-wise. The output dtype is Bool.
func Equal(lhs, rhs ir.Value) (ir.Value, error) { return newOp(KindEqual, nil, lhs, rhs) }

// GreaterOrEqual compares lhs>=rhs element-wise. The output dtype is Bool.
func GreaterOrEqual(lhs, rhs ir.Value) (ir.Value, error) {
	return newOp(KindGreaterOrEqual, nil, lhs, rhs)
}

// GreaterThan compares lhs>rhs element-wise. The output dtype is Bool.
func GreaterThan(lhs, rhs ir.Value) (ir.Value, error) { return newOp(KindGreaterThan, nil, lhs, rhs) }

// LessOrEqual compares lhs<=rhs element-wise. The output dtype is Bool.
func LessOrEqual(lhs, rhs ir.Value) (ir.Value, error) { return newOp(KindLessOrEqual, nil, lhs, rhs) }

// LessThan compares lhs<rhs element-wise. The output dtype is Bool.
func LessThan(lhs, rhs ir.Value) (ir.Value, error) { return newOp(KindLessThan, nil, lhs, rhs) }

// NotEqual compares lhs!=rhs element-wise. The output dtype is Bool.
func NotEqual(lhs, rhs ir.Value) (ir.Value, error) { return newOp(KindNotEqual, nil, lhs, rhs) }
