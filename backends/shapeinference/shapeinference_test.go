package shapeinference

import (
	"errors"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"

	. "github.com/gomlx/lazygraph/backends"
	"github.com/gomlx/lazygraph/types/shapes"
)

// Aliases
var (
	Bool = dtypes.Bool
	I8   = dtypes.Int8
	I16  = dtypes.Int16
	I32  = dtypes.Int32
	U8   = dtypes.Uint8
	U32  = dtypes.Uint32
	F16  = dtypes.Float16
	BF16 = dtypes.BFloat16
	F32  = dtypes.Float32
	F64  = dtypes.Float64
	C64  = dtypes.Complex64

	MS = shapes.Make
)

func TestBroadcastShapes(t *testing.T) {
	// Equal shapes are kept.
	output, err := BroadcastShapes(MS(F32, 2, 3), MS(F32, 2, 3))
	require.NoError(t, err)
	require.True(t, MS(F32, 2, 3).Equal(output))

	// Scalar broadcasts against anything.
	output, err = BroadcastShapes(MS(F32), MS(F32, 2, 3))
	require.NoError(t, err)
	require.True(t, MS(F32, 2, 3).Equal(output))

	// The smaller rank is left-padded with 1s: [5] x [3, 5] aligns the 5s.
	output, err = BroadcastShapes(MS(F32, 5), MS(F32, 3, 5))
	require.NoError(t, err)
	require.True(t, MS(F32, 3, 5).Equal(output))

	// Dimensions of size 1 broadcast to the other side's size.
	output, err = BroadcastShapes(MS(F32, 2, 1, 4), MS(F32, 1, 3, 1))
	require.NoError(t, err)
	require.True(t, MS(F32, 2, 3, 4).Equal(output))

	// [5] x [3, 4]: 5 aligns with 4, neither is 1.
	_, err = BroadcastShapes(MS(F32, 5), MS(F32, 3, 4))
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestPromoteDTypes(t *testing.T) {
	promoted := func(lhs, rhs dtypes.DType) dtypes.DType {
		result, err := PromoteDTypes(lhs, rhs)
		require.NoError(t, err)
		// Promotion is symmetric.
		swapped, err := PromoteDTypes(rhs, lhs)
		require.NoError(t, err)
		require.Equal(t, result, swapped)
		return result
	}

	require.Equal(t, F32, promoted(F32, F32))
	require.Equal(t, F32, promoted(Bool, F32))
	require.Equal(t, I32, promoted(Bool, I32))

	// Across classes the "larger" class wins: int -> float -> complex.
	require.Equal(t, F32, promoted(F32, I32))
	require.Equal(t, F16, promoted(F16, I32))
	require.Equal(t, C64, promoted(C64, F32))
	require.Equal(t, C64, promoted(C64, I32))
	require.Equal(t, dtypes.Complex128, promoted(C64, F64))

	// Within a class the wider dtype wins.
	require.Equal(t, F64, promoted(F32, F64))
	require.Equal(t, I32, promoted(I8, I32))
	require.Equal(t, I16, promoted(I16, U8))

	// Same width, different representations.
	_, err := PromoteDTypes(F16, BF16)
	require.ErrorIs(t, err, ErrTypePromotion)
	_, err = PromoteDTypes(I32, U32)
	require.ErrorIs(t, err, ErrTypePromotion)

	// A wider unsigned cannot hold a narrower signed value.
	_, err = PromoteDTypes(I8, U32)
	require.ErrorIs(t, err, ErrTypePromotion)
}

func TestUnaryOp(t *testing.T) {
	// Pass-through: same shape out.
	output, err := UnaryOp(OpTypeExp, MS(F32, 7, 2))
	require.NoError(t, err)
	require.True(t, MS(F32, 7, 2).Equal(output))

	// Not a unary op.
	_, err = UnaryOp(OpTypeAdd, MS(F32, 2))
	require.ErrorIs(t, err, ErrUnsupported)

	// Dtype restrictions per family: LogicalNot is boolean only, Sqrt needs
	// float or complex, Cos does not take complex.
	_, err = UnaryOp(OpTypeLogicalNot, MS(F32, 2))
	require.ErrorIs(t, err, ErrDType)
	output, err = UnaryOp(OpTypeLogicalNot, MS(Bool, 2))
	require.NoError(t, err)
	require.True(t, MS(Bool, 2).Equal(output))
	_, err = UnaryOp(OpTypeSqrt, MS(I32, 2))
	require.ErrorIs(t, err, ErrDType)
	_, err = UnaryOp(OpTypeCos, MS(C64, 2))
	require.ErrorIs(t, err, ErrDType)

	// Neg works on any number.
	output, err = UnaryOp(OpTypeNeg, MS(I8, 3))
	require.NoError(t, err)
	require.True(t, MS(I8, 3).Equal(output))
}

func TestBinaryOp(t *testing.T) {
	// Same dtype required: promotion happens at a higher layer.
	_, err := BinaryOp(OpTypeAdd, MS(F32, 2), MS(I32, 2))
	require.ErrorIs(t, err, ErrTypePromotion)

	// Not a binary op.
	_, err = BinaryOp(OpTypeExp, MS(F32), MS(F32))
	require.ErrorIs(t, err, ErrUnsupported)

	// Booleans are not numbers.
	_, err = BinaryOp(OpTypeMul, MS(Bool, 1), MS(Bool, 1))
	require.ErrorIs(t, err, ErrDType)

	// Broadcasting applies.
	output, err := BinaryOp(OpTypeMax, MS(F32, 5), MS(F32, 3, 5))
	require.NoError(t, err)
	require.True(t, MS(F32, 3, 5).Equal(output))
	_, err = BinaryOp(OpTypeMax, MS(F32, 5), MS(F32, 3, 4))
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestComparisonOp(t *testing.T) {
	output, err := ComparisonOp(OpTypeLessThan, MS(F32, 2, 3), MS(F32, 1, 3))
	require.NoError(t, err)
	require.True(t, MS(Bool, 2, 3).Equal(output))

	_, err = ComparisonOp(OpTypeLessThan, MS(F32, 2), MS(I32, 2))
	require.ErrorIs(t, err, ErrTypePromotion)
	_, err = ComparisonOp(OpTypeAdd, MS(F32, 2), MS(F32, 2))
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestConvertOp(t *testing.T) {
	output, err := ConvertOp(MS(I32, 2, 3), F32)
	require.NoError(t, err)
	require.True(t, MS(F32, 2, 3).Equal(output))

	_, err = ConvertOp(MS(C64, 2), F32)
	require.ErrorIs(t, err, ErrDType)
	_, err = ConvertOp(MS(F32, 2), C64)
	require.ErrorIs(t, err, ErrDType)
	_, err = ConvertOp(MS(F32, 2), dtypes.InvalidDType)
	require.ErrorIs(t, err, ErrDType)
}

func TestReduceOp(t *testing.T) {
	// Selected axes are removed.
	output, err := ReduceOp(OpTypeReduceSum, MS(F32, 2, 3, 4), []int{1})
	require.NoError(t, err)
	require.True(t, MS(F32, 2, 4).Equal(output))

	// No axes: full reduction to scalar.
	output, err = ReduceOp(OpTypeReduceMax, MS(F32, 2, 3), nil)
	require.NoError(t, err)
	require.True(t, MS(F32).Equal(output))

	// Repeated axes are reduced once.
	output, err = ReduceOp(OpTypeReduceProduct, MS(F32, 2, 3, 4), []int{0, 0, 2})
	require.NoError(t, err)
	require.True(t, MS(F32, 3).Equal(output))

	_, err = ReduceOp(OpTypeReduceSum, MS(F32, 2), []int{2})
	require.ErrorIs(t, err, ErrRank)
	_, err = ReduceOp(OpTypeReduceLogicalAnd, MS(F32, 2), []int{0})
	require.ErrorIs(t, err, ErrDType)
	_, err = ReduceOp(OpTypeExp, MS(F32, 2), []int{0})
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestReshapeOp(t *testing.T) {
	output, err := ReshapeOp(MS(F32, 2, 3), []int{3, 2})
	require.NoError(t, err)
	require.True(t, MS(F32, 3, 2).Equal(output))

	output, err = ReshapeOp(MS(F32, 1), nil)
	require.NoError(t, err)
	require.True(t, MS(F32).Equal(output))

	_, err = ReshapeOp(MS(F32, 2, 3), []int{7})
	require.ErrorIs(t, err, ErrShapeMismatch)
	_, err = ReshapeOp(MS(F32, 2, 3), []int{-1, 6})
	require.ErrorIs(t, err, shapes.ErrInvalidShape)
}

func TestReduceWindowOp(t *testing.T) {
	// 2x2 window over 4x4, strides default to the window.
	output, err := ReduceWindowOp(MS(F32, 4, 4), []int{2, 2}, nil, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, MS(F32, 2, 2).Equal(output))

	// Explicit strides of 1.
	output, err = ReduceWindowOp(MS(F32, 4, 4), []int{2, 2}, []int{1, 1}, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, MS(F32, 3, 3).Equal(output))

	// Padding extends the input before windowing.
	output, err = ReduceWindowOp(MS(F32, 1, 1, 4, 4), []int{1, 1, 3, 3}, []int{1, 1, 1, 1}, nil, nil,
		[][2]int{{0, 0}, {0, 0}, {1, 1}, {1, 1}})
	require.NoError(t, err)
	require.True(t, MS(F32, 1, 1, 4, 4).Equal(output))

	// Window dilation grows the effective window: (3-1)*2+1 = 5.
	output, err = ReduceWindowOp(MS(F32, 10), []int{3}, []int{1}, nil, []int{2}, nil)
	require.NoError(t, err)
	require.True(t, MS(F32, 6).Equal(output))

	// One window dimension per axis, not fewer.
	_, err = ReduceWindowOp(MS(F32, 4, 4), []int{2}, nil, nil, nil, nil)
	require.ErrorIs(t, err, ErrRank)
}

func TestErrorsAreDistinct(t *testing.T) {
	for ii, err1 := range []error{ErrRank, ErrShapeMismatch, ErrTypePromotion, ErrUnsupported, ErrDType} {
		for jj, err2 := range []error{ErrRank, ErrShapeMismatch, ErrTypePromotion, ErrUnsupported, ErrDType} {
			require.Equal(t, ii == jj, errors.Is(err1, err2))
		}
	}
}
