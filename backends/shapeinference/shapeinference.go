// Package shapeinference calculates the shape resulting from operations and validates their inputs.
//
// It holds the closed-form shape and dtype rules shared by backend builders: the
// same rules a builder applies when an operation is created are the ones the IR
// observes through trial-lowering inference, so the two can never drift apart.
//
// It defines a BinaryOp function for shape inference for the majority of binary
// functions, using the broadcasting rule documented in BroadcastShapes.
//
// The majority of the unary functions don't change the shape.
//
// For the remainder ops, it defines one function per OpType.
package shapeinference

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/lazygraph/backends"
	"github.com/gomlx/lazygraph/types"
	"github.com/gomlx/lazygraph/types/shapes"
	"github.com/gomlx/lazygraph/types/xslices"
	"github.com/pkg/errors"
)

var (
	// BooleanOperations take booleans as input, aka. logical operations.
	BooleanOperations = types.SetWith(
		backends.OpTypeLogicalNot,
		backends.OpTypeReduceLogicalAnd,
	)

	// NumberOperations can take any type of number as input: integers, floats, or complex numbers.
	NumberOperations = types.SetWith(
		backends.OpTypeAbs,
		backends.OpTypeAdd,
		backends.OpTypeSub,
		backends.OpTypeMul,
		backends.OpTypeDiv,
		backends.OpTypePow,
		backends.OpTypeSign,
		backends.OpTypeNeg,
		backends.OpTypeMax,
		backends.OpTypeMin,

		backends.OpTypeEqual,
		backends.OpTypeNotEqual,
		backends.OpTypeGreaterOrEqual,
		backends.OpTypeGreaterThan,
		backends.OpTypeLessOrEqual,
		backends.OpTypeLessThan,
	)

	// FloatOperations operate only on floats (and not on complex numbers).
	FloatOperations = types.SetWith(
		backends.OpTypeErf,
		backends.OpTypeLogistic,
		backends.OpTypeAcos,
		backends.OpTypeAsin,
		backends.OpTypeAtan,
		backends.OpTypeCos,
		backends.OpTypeCosh,
		backends.OpTypeSin,
		backends.OpTypeSinh,
		backends.OpTypeTan,
		backends.OpTypeTanh,
		backends.OpTypeIsNaN,
	)

	// FloatOrComplexOperations operate only on float or complex numbers and won't work on integer or boolean values.
	FloatOrComplexOperations = types.SetWith(
		backends.OpTypeExp,
		backends.OpTypeExpm1,
		backends.OpTypeLog,
		backends.OpTypeLog1p,
		backends.OpTypeCeil,
		backends.OpTypeFloor,
		backends.OpTypeRound,
		backends.OpTypeRsqrt,
		backends.OpTypeSqrt,
	)

	// StandardBinaryOperations include all operations that have two operands usually named lhs (left-hand-side) and
	// rhs (right-hand-side). Both must have the same DType; the output shape follows BroadcastShapes.
	StandardBinaryOperations = types.SetWith(
		backends.OpTypeAdd,
		backends.OpTypeSub,
		backends.OpTypeMul,
		backends.OpTypeDiv,
		backends.OpTypePow,
		backends.OpTypeMax,
		backends.OpTypeMin,
	)

	// ComparisonOperations include all operations that take two inputs and return booleans with the results of
	// a comparison.
	ComparisonOperations = types.SetWith(
		backends.OpTypeEqual,
		backends.OpTypeNotEqual,
		backends.OpTypeGreaterOrEqual,
		backends.OpTypeGreaterThan,
		backends.OpTypeLessOrEqual,
		backends.OpTypeLessThan,
	)

	// StandardUnaryOperations include all operations that have a single operand as input, and the return shape is the
	// same as the input (so no reductions).
	StandardUnaryOperations = types.SetWith(
		backends.OpTypeLogicalNot,
		backends.OpTypeErf,
		backends.OpTypeExp,
		backends.OpTypeExpm1,
		backends.OpTypeLog,
		backends.OpTypeLog1p,
		backends.OpTypeLogistic,
		backends.OpTypeCeil,
		backends.OpTypeFloor,
		backends.OpTypeRound,
		backends.OpTypeRsqrt,
		backends.OpTypeSqrt,
		backends.OpTypeAcos,
		backends.OpTypeAsin,
		backends.OpTypeAtan,
		backends.OpTypeCos,
		backends.OpTypeCosh,
		backends.OpTypeSin,
		backends.OpTypeSinh,
		backends.OpTypeTan,
		backends.OpTypeTanh,
		backends.OpTypeAbs,
		backends.OpTypeNeg,
		backends.OpTypeSign,
	)

	// ReduceOperations reduce the axes selected, and the output rank is decreased by the number of reduced axes.
	ReduceOperations = types.SetWith(
		backends.OpTypeReduceLogicalAnd,
		backends.OpTypeReduceMax,
		backends.OpTypeReduceProduct,
		backends.OpTypeReduceSum,
	)
)

// checkOpDType validates the operand dtype against the families opType belongs to.
func checkOpDType(opType backends.OpType, dtype dtypes.DType) error {
	if dtype == dtypes.InvalidDType {
		return errors.WithMessagef(shapes.ErrInvalidShape, "invalid dtype for op %s", opType)
	}
	if BooleanOperations.Has(opType) && dtype != dtypes.Bool {
		return errors.WithMessagef(ErrDType, "logical op %s must have boolean (dtypes.Bool) input, got %s", opType, dtype)
	}
	if NumberOperations.Has(opType) && !(dtype.IsInt() || dtype.IsFloat() || dtype.IsComplex()) {
		return errors.WithMessagef(ErrDType, "numeric op %s must have a number (Int32, Float32, Complex64, ...) input, got %s", opType, dtype)
	}
	if FloatOperations.Has(opType) && !dtype.IsFloat() {
		return errors.WithMessagef(ErrDType, "float op %s must have a float (Float32, Float64, ...) input, got %s", opType, dtype)
	}
	if FloatOrComplexOperations.Has(opType) && !(dtype.IsFloat() || dtype.IsComplex()) {
		return errors.WithMessagef(ErrDType, "float/complex op %s must have a float or complex (Float32, Complex64, ...) input, got %s", opType, dtype)
	}
	return nil
}

// BroadcastShapes applies the broadcasting rule to the dimensions of lhs and rhs
// and returns the broadcast dimensions:
//
//   - The shape of smaller rank is left-padded with dimensions of size 1 until
//     ranks match.
//   - Each aligned dimension pair must then be equal, or one of them must be 1,
//     in which case the output takes the larger one.
//
// The output DType is taken from lhs; callers are responsible for dtype checks.
// It fails with ErrShapeMismatch if some dimension pair cannot be reconciled.
func BroadcastShapes(lhs, rhs shapes.Shape) (output shapes.Shape, err error) {
	rank := max(lhs.Rank(), rhs.Rank())
	output = shapes.Shape{DType: lhs.DType, Dimensions: make([]int, rank)}
	for axis := range rank {
		lhsDim, rhsDim := 1, 1
		if fromLhs := axis - (rank - lhs.Rank()); fromLhs >= 0 {
			lhsDim = lhs.Dimensions[fromLhs]
		}
		if fromRhs := axis - (rank - rhs.Rank()); fromRhs >= 0 {
			rhsDim = rhs.Dimensions[fromRhs]
		}
		if lhsDim != 1 && rhsDim != 1 && lhsDim != rhsDim {
			return shapes.Invalid(), errors.WithMessagef(ErrShapeMismatch,
				"dimensions of axis #%d cannot be broadcast together, got shapes %s and %s", axis, lhs, rhs)
		}
		output.Dimensions[axis] = max(lhsDim, rhsDim)
	}
	return
}

// PromoteDTypes returns the common DType two operands are implicitly converted
// to before a binary operation, or an error matching ErrTypePromotion if no such
// DType exists.
//
// The rules, in order: equal dtypes are kept; booleans promote to the other
// operand's dtype; integers promote to floats and both promote to complex;
// within a class the wider dtype wins; mixed-signedness integers promote to the
// signed dtype if it is strictly wider than the unsigned one.
func PromoteDTypes(lhs, rhs dtypes.DType) (dtypes.DType, error) {
	if lhs == dtypes.InvalidDType || rhs == dtypes.InvalidDType {
		return dtypes.InvalidDType, errors.WithMessagef(ErrTypePromotion, "invalid dtype (%s, %s)", lhs, rhs)
	}
	if lhs == rhs {
		return lhs, nil
	}
	if lhs == dtypes.Bool {
		return rhs, nil
	}
	if rhs == dtypes.Bool {
		return lhs, nil
	}

	// Cross-class promotions: int -> float -> complex.
	classRank := func(dtype dtypes.DType) int {
		switch {
		case dtype.IsComplex():
			return 2
		case dtype.IsFloat():
			return 1
		default:
			return 0
		}
	}
	lhsClass, rhsClass := classRank(lhs), classRank(rhs)
	if lhsClass != rhsClass {
		wide, narrow := lhs, rhs
		if rhsClass > lhsClass {
			wide, narrow = rhs, lhs
		}
		// The wider class wins, but it must be able to hold the narrower operand:
		// e.g., Complex64 with Float64 promotes to Complex128.
		if wide.IsComplex() && narrow == dtypes.Float64 {
			return dtypes.Complex128, nil
		}
		return wide, nil
	}

	// Same class, different dtypes: the wider one wins.
	lhsSize, rhsSize := lhs.Memory(), rhs.Memory()
	if lhsSize == rhsSize {
		// Same width, different representation: Float16 vs BFloat16 or mixed-signedness
		// integers of the same width have no common promotion.
		return dtypes.InvalidDType, errors.WithMessagef(ErrTypePromotion,
			"dtypes %s and %s have the same width but different representations", lhs, rhs)
	}
	wide, narrow := lhs, rhs
	if rhsSize > lhsSize {
		wide, narrow = rhs, lhs
	}
	if wide.IsInt() && wide.IsUnsigned() && !narrow.IsUnsigned() {
		// The unsigned wider type cannot hold the signed narrower one.
		return dtypes.InvalidDType, errors.WithMessagef(ErrTypePromotion,
			"cannot promote signed %s with wider unsigned %s", narrow, wide)
	}
	return wide, nil
}

// UnaryOp checks the validity of the data type for StandardUnaryOperations and returns either an error or
// the output shape, which is the same as the operand.
func UnaryOp(opType backends.OpType, operand shapes.Shape) (output shapes.Shape, err error) {
	if !StandardUnaryOperations.Has(opType) {
		err = errors.WithMessagef(ErrUnsupported,
			"operation %s is not in the StandardUnaryOperations set, cannot process it with UnaryOp", opType)
		return
	}
	if err = checkOpDType(opType, operand.DType); err != nil {
		return
	}
	output = operand.Clone()
	return
}

// BinaryOp returns the expected output shape for ops in the StandardBinaryOperations set -- those include all
// operations that have two operands usually named lhs (left-hand-side) and rhs (right-hand-side).
//
// Both operands must have the same DType -- callers wanting implicit type
// promotion must convert the operands first, see PromoteDTypes. The output
// dimensions follow the broadcasting rule documented in BroadcastShapes.
func BinaryOp(opType backends.OpType, lhs, rhs shapes.Shape) (output shapes.Shape, err error) {
	if !StandardBinaryOperations.Has(opType) {
		err = errors.WithMessagef(ErrUnsupported,
			"operation %s is not in the StandardBinaryOperations set, cannot process it with BinaryOp", opType)
		return
	}
	if lhs.DType != rhs.DType {
		err = errors.WithMessagef(ErrTypePromotion,
			"data types (DType) for BinaryOp %s must match, got %s and %s", opType, lhs, rhs)
		return
	}
	if err = checkOpDType(opType, lhs.DType); err != nil {
		return
	}
	return BroadcastShapes(lhs, rhs)
}

// ComparisonOp returns the broadcast shape with dtype set to Bool, for comparison operations
// (Equal, LessThan, GreaterOrEqual, etc.)
func ComparisonOp(opType backends.OpType, lhs, rhs shapes.Shape) (output shapes.Shape, err error) {
	if !ComparisonOperations.Has(opType) {
		err = errors.WithMessagef(ErrUnsupported,
			"operation %s is not in the ComparisonOperations set, cannot process it with ComparisonOp", opType)
		return
	}
	if lhs.DType != rhs.DType {
		err = errors.WithMessagef(ErrTypePromotion,
			"data types (DType) for ComparisonOp %s must match, got %s and %s", opType, lhs, rhs)
		return
	}
	if err = checkOpDType(opType, lhs.DType); err != nil {
		return
	}
	output, err = BroadcastShapes(lhs, rhs)
	if err != nil {
		return
	}
	output.DType = dtypes.Bool
	return
}

// ConvertOp returns the shape of the operand with the dtype replaced. Complex
// numbers cannot be converted to other types (and vice versa).
func ConvertOp(operand shapes.Shape, dtype dtypes.DType) (output shapes.Shape, err error) {
	if dtype == dtypes.InvalidDType {
		err = errors.WithMessagef(ErrDType, "cannot convert %s to an invalid dtype", operand)
		return
	}
	if operand.DType.IsComplex() != dtype.IsComplex() {
		err = errors.WithMessagef(ErrDType, "cannot convert between complex and non-complex dtypes, got %s to %s", operand, dtype)
		return
	}
	output = operand.Clone()
	output.DType = dtype
	return
}

// ReduceOp works for the ReduceMax, ReduceSum, ReduceProduct and ReduceLogicalAnd ops.
// The reduced axes are removed from the shape; no axes means a full reduction to
// a scalar.
func ReduceOp(opType backends.OpType, operand shapes.Shape, axes []int) (output shapes.Shape, err error) {
	if !ReduceOperations.Has(opType) {
		err = errors.WithMessagef(ErrUnsupported,
			"operation %s is not in the ReduceOperations set, cannot process it with ReduceOp", opType)
		return
	}
	if err = checkOpDType(opType, operand.DType); err != nil {
		return
	}
	if len(axes) == 0 {
		// Full reduction.
		return shapes.Make(operand.DType), nil
	}
	for _, axis := range axes {
		if axis < 0 || axis >= operand.Rank() {
			return shapes.Invalid(), errors.WithMessagef(ErrRank,
				"reduce operation %s requires each axis to be 0 <= axis < rank, got invalid axis %d for shape %s",
				opType, axis, operand)
		}
	}
	axesSet := types.SetWith(axes...)
	output = shapes.Make(operand.DType)
	output.Dimensions = make([]int, 0, operand.Rank()-len(axesSet))
	for axis, dim := range operand.Dimensions {
		if !axesSet.Has(axis) {
			output.Dimensions = append(output.Dimensions, dim)
		}
	}
	return
}

// ReshapeOp to the given dimensions: trivial output shape, but this function also checks
// that the sizes are the same.
func ReshapeOp(operand shapes.Shape, dims []int) (output shapes.Shape, err error) {
	for _, dim := range dims {
		if dim < 0 {
			return shapes.Invalid(), errors.WithMessagef(shapes.ErrInvalidShape,
				"Reshape() cannot reshape %s to negative dimensions %v", operand, dims)
		}
	}
	output = shapes.Make(operand.DType, dims...)
	if operand.Size() != output.Size() {
		return shapes.Invalid(), errors.WithMessagef(ErrShapeMismatch,
			"Reshape() cannot reshape %s to dimensions %v, their sizes don't match", operand, dims)
	}
	return
}

// ReduceWindowOp returns the expected output shape for the operation.
//
// Notice it doesn't take as input the reductionType parameter, since it doesn't affect the output shape.
func ReduceWindowOp(operand shapes.Shape, windowDimensions, strides, baseDilations, windowDilations []int, paddings [][2]int) (shapes.Shape, error) {
	if !operand.Ok() {
		return shapes.Invalid(), errors.WithMessagef(shapes.ErrInvalidShape, "ReduceWindowOp: invalid operand shape %s", operand)
	}
	rank := operand.Rank()

	// Validate lengths of slice parameters against rank.
	if len(windowDimensions) != rank {
		return shapes.Invalid(), errors.WithMessagef(ErrRank,
			"ReduceWindowOp: len(windowDimensions)=%d, but operand rank is %d", len(windowDimensions), rank)
	}
	if len(strides) != 0 && len(strides) != rank {
		return shapes.Invalid(), errors.WithMessagef(ErrRank,
			"ReduceWindowOp: len(strides)=%d, but operand rank is %d", len(strides), rank)
	}
	if len(paddings) != 0 && len(paddings) != rank {
		return shapes.Invalid(), errors.WithMessagef(ErrRank,
			"ReduceWindowOp: len(paddings)=%d, but operand rank is %d", len(paddings), rank)
	}
	if baseDilations != nil && len(baseDilations) != rank {
		return shapes.Invalid(), errors.WithMessagef(ErrRank,
			"ReduceWindowOp: len(baseDilations)=%d, but operand rank is %d", len(baseDilations), rank)
	}
	if windowDilations != nil && len(windowDilations) != rank {
		return shapes.Invalid(), errors.WithMessagef(ErrRank,
			"ReduceWindowOp: len(windowDilations)=%d, but operand rank is %d", len(windowDilations), rank)
	}

	// If operand is a scalar (rank 0), the output is also a scalar of the same type.
	if rank == 0 {
		return operand, nil
	}

	// Missing parameters default to the identity: strides follow the window,
	// dilations are 1, paddings are 0.
	if len(strides) == 0 {
		strides = windowDimensions
	}
	if baseDilations == nil {
		baseDilations = xslices.SliceWithValue(rank, 1)
	}
	if windowDilations == nil {
		windowDilations = xslices.SliceWithValue(rank, 1)
	}
	if len(paddings) == 0 {
		paddings = make([][2]int, rank)
	}

	// Each output dimension is calculated orthogonally to the others.
	outputDims := make([]int, rank)
	for i := range rank {
		inputDim := operand.Dimensions[i]
		windowDim := windowDimensions[i]
		if windowDim < 1 {
			return shapes.Invalid(), errors.WithMessagef(ErrShapeMismatch,
				"ReduceWindowOp: windowDimensions[%d]=%d must be >= 1 for operand shape %s", i, windowDim, operand)
		}
		stride := strides[i]
		if stride < 1 {
			return shapes.Invalid(), errors.WithMessagef(ErrShapeMismatch,
				"ReduceWindowOp: strides[%d]=%d must be >= 1 for operand shape %s", i, stride, operand)
		}
		paddingLow, paddingHigh := paddings[i][0], paddings[i][1]
		if paddingLow < 0 || paddingHigh < 0 {
			return shapes.Invalid(), errors.WithMessagef(ErrShapeMismatch,
				"ReduceWindowOp: paddings[%d]=[%d, %d] must be non-negative for operand shape %s", i, paddingLow, paddingHigh, operand)
		}
		baseDilation := baseDilations[i]
		if baseDilation < 1 {
			return shapes.Invalid(), errors.WithMessagef(ErrShapeMismatch,
				"ReduceWindowOp: baseDilations[%d]=%d must be >= 1 for operand shape %s", i, baseDilation, operand)
		}
		windowDilation := windowDilations[i]
		if windowDilation < 1 {
			return shapes.Invalid(), errors.WithMessagef(ErrShapeMismatch,
				"ReduceWindowOp: windowDilations[%d]=%d must be >= 1 for operand shape %s", i, windowDilation, operand)
		}

		// Effective sizes after dilation: (size - 1) * dilation + 1.
		effectiveInputDim := (inputDim-1)*baseDilation + 1
		effectiveWindowDim := (windowDim-1)*windowDilation + 1
		paddedEffectiveInputDim := effectiveInputDim + paddingLow + paddingHigh

		// output_dim = floor((padded_input_size - effective_window_size) / stride) + 1
		if effectiveWindowDim > paddedEffectiveInputDim {
			return shapes.Invalid(), errors.WithMessagef(ErrShapeMismatch,
				"ReduceWindowOp: effective window dimension %d for axis %d is larger than padded effective input dimension %d for operand shape %s",
				effectiveWindowDim, i, paddedEffectiveInputDim, operand)
		}
		outputDims[i] = (paddedEffectiveInputDim-effectiveWindowDim)/stride + 1
	}

	return shapes.Make(operand.DType, outputDims...), nil
}
