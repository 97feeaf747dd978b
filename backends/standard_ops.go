package backends

import (
	"github.com/gomlx/gopjrt/dtypes"
)

// StandardOps lists the bulk of the operations that a backends.Builder must support.
type StandardOps interface {

	// Abs returns the Op that represents the output of the corresponding operation.
	Abs(x Op) (Op, error)

	// Acos returns the element-wise arc-cosine of x.
	Acos(x Op) (Op, error)

	// Add returns the element-wise sum of the two values.
	// Standard broadcasting rules apply (see package shapeinference).
	Add(lhs, rhs Op) (Op, error)

	// Asin returns the element-wise arc-sine of x.
	Asin(x Op) (Op, error)

	// Atan returns the element-wise arc-tangent of x.
	Atan(x Op) (Op, error)

	// Ceil returns the Op that represents the output of the corresponding operation.
	Ceil(x Op) (Op, error)

	// ConvertDType of x to dtype.
	ConvertDType(x Op, dtype dtypes.DType) (Op, error)

	// Cos returns the Op that represents the output of the corresponding operation.
	Cos(x Op) (Op, error)

	// Cosh returns the element-wise hyperbolic cosine of x.
	Cosh(x Op) (Op, error)

	// Div returns the element-wise division of the two values.
	// Standard broadcasting rules apply (see package shapeinference).
	Div(lhs, rhs Op) (Op, error)

	// Equal performs element-wise equality check, returns boolean results with the same dimensions as input.
	Equal(lhs, rhs Op) (Op, error)

	// Erf returns the "error function", defined as erf(x) = 2/Pi * \int_{0}^{x}{e^{-t^2}dt}.
	Erf(x Op) (Op, error)

	// Exp returns the Op that represents the output of the corresponding operation.
	Exp(x Op) (Op, error)

	// Expm1 returns the expression exp(x)-1.
	Expm1(x Op) (Op, error)

	// Floor returns the Op that represents the output of the corresponding operation.
	Floor(x Op) (Op, error)

	// GreaterOrEqual performs element-wise comparison, returns boolean results with the same dimensions as input.
	GreaterOrEqual(lhs, rhs Op) (Op, error)

	// GreaterThan performs element-wise comparison, returns boolean results with the same dimensions as input.
	GreaterThan(lhs, rhs Op) (Op, error)

	// IsNaN tests whether each element of operand is NaN.
	// It returns the same shape as the input, but with boolean values.
	IsNaN(x Op) (Op, error)

	// LessOrEqual performs element-wise comparison, returns boolean results with the same dimensions as input.
	LessOrEqual(lhs, rhs Op) (Op, error)

	// LessThan performs element-wise comparison, returns boolean results with the same dimensions as input.
	LessThan(lhs, rhs Op) (Op, error)

	// Log returns the Op that represents the output of the corresponding operation.
	Log(x Op) (Op, error)

	// Log1p returns the expression log(x+1).
	Log1p(x Op) (Op, error)

	// LogicalNot returns the element-wise logical NOT operation. It requires boolean inputs.
	LogicalNot(x Op) (Op, error)

	// Logistic returns the element-wise expression 1/(1+exp(-x)). Also known as the Sigmoid function.
	Logistic(x Op) (Op, error)

	// Max returns the element-wise highest value among the two.
	// Standard broadcasting rules apply (see package shapeinference).
	Max(lhs, rhs Op) (Op, error)

	// Min returns the element-wise smallest value among the two.
	// Standard broadcasting rules apply (see package shapeinference).
	Min(lhs, rhs Op) (Op, error)

	// Mul returns the element-wise multiplication of the two values.
	// Standard broadcasting rules apply (see package shapeinference).
	Mul(lhs, rhs Op) (Op, error)

	// Neg returns the Op that represents the output of the corresponding operation.
	Neg(x Op) (Op, error)

	// NotEqual performs element-wise inequality check, returns boolean results with the same dimensions as input.
	NotEqual(lhs, rhs Op) (Op, error)

	// Pow returns the Op that represents the output of the corresponding operation.
	// Standard broadcasting rules apply (see package shapeinference).
	Pow(lhs, rhs Op) (Op, error)

	// ReduceLogicalAnd reduces x over the axes selected, performing a LogicalAnd on the slices reduced.
	//
	// The returned result rank is decreased by len(axes).
	//
	// If no axes are given, it reduces the full array.
	ReduceLogicalAnd(x Op, axes ...int) (Op, error)

	// ReduceMax reduces x over the axes selected, taking the Max value of the slices reduced.
	//
	// The returned result rank is decreased by len(axes).
	//
	// If no axes are given, it reduces the full array.
	ReduceMax(x Op, axes ...int) (Op, error)

	// ReduceProduct reduces x over the axes selected, taking the product of the slices reduced.
	//
	// The returned result rank is decreased by len(axes).
	//
	// If no axes are given, it reduces the full array.
	ReduceProduct(x Op, axes ...int) (Op, error)

	// ReduceSum reduces x over the axes selected, taking the sum of the slices reduced.
	//
	// The returned result rank is decreased by len(axes).
	//
	// If no axes are given, it reduces the full array.
	ReduceSum(x Op, axes ...int) (Op, error)

	// ReduceWindow runs a reduction function of the type given by reductionType over windows of the input.
	//
	// The parameter windowDimensions must be set and have a value for each axis.
	// If strides is nil, it's assumed to be the same as windowDimensions -- that is, the strides jump a window at a time.
	// If baseDilations, windowDilations are nil, they are assumed to be 1 (no dilation).
	// If paddings is nil, they are assumed to be 0.
	ReduceWindow(
		x Op,
		reductionType ReduceOpType,
		windowDimensions, strides, baseDilations, windowDilations []int,
		paddings [][2]int,
	) (Op, error)

	// Reshape reshapes x to the new dimensions.
	// Total size cannot change, it's just a "reinterpretation" of the same flat data.
	// The dtype remains the same, see ConvertDType to actually convert the values.
	Reshape(x Op, dimensions ...int) (Op, error)

	// Round returns the Op that represents the output of the corresponding operation.
	Round(x Op) (Op, error)

	// Rsqrt returns the element-wise reciprocal of square root operation 1/sqrt(x).
	Rsqrt(x Op) (Op, error)

	// Sign returns element-wise +1, +/-0 or -1 depending on the sign of x.
	Sign(x Op) (Op, error)

	// Sin returns the Op that represents the output of the corresponding operation.
	Sin(x Op) (Op, error)

	// Sinh returns the element-wise hyperbolic sine of x.
	Sinh(x Op) (Op, error)

	// Sqrt returns the Op that represents the output of the corresponding operation.
	Sqrt(x Op) (Op, error)

	// Sub returns the element-wise subtraction of the two values.
	// Standard broadcasting rules apply (see package shapeinference).
	Sub(lhs, rhs Op) (Op, error)

	// Tan returns the element-wise tangent of x.
	Tan(x Op) (Op, error)

	// Tanh returns the Op that represents the output of the corresponding operation.
	Tanh(x Op) (Op, error)
}
