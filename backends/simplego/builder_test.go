package simplego

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/lazygraph/backends"
	"github.com/gomlx/lazygraph/backends/shapeinference"
	"github.com/gomlx/lazygraph/types/shapes"
)

// Aliases
var (
	Bool = dtypes.Bool
	I32  = dtypes.Int32
	F32  = dtypes.Float32

	MS = shapes.Make
)

// must1 panics if there is an error.
func must1[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

func opShape(t *testing.T, b backends.Builder, op backends.Op) shapes.Shape {
	shape, err := b.OpShape(op)
	require.NoError(t, err)
	return shape
}

func TestBuilderParameterAndConstant(t *testing.T) {
	backend := New()
	require.Equal(t, BackendName, backend.Name())
	b := backend.Builder("test")
	require.Equal(t, "test", b.Name())

	x := must1(b.Parameter("x", MS(F32, 2, 3)))
	require.True(t, MS(F32, 2, 3).Equal(opShape(t, b, x)))

	// Parameters reject invalid and tuple shapes.
	_, err := b.Parameter("bad", shapes.Invalid())
	require.ErrorIs(t, err, shapes.ErrInvalidShape)
	_, err = b.Parameter("tuple", shapes.MakeTuple([]shapes.Shape{MS(F32), MS(I32)}))
	require.ErrorIs(t, err, shapes.ErrInvalidShape)

	// Constants take their dtype from the flat slice.
	c := must1(b.Constant([]float32{1, 2, 3, 4, 5, 6}, 2, 3))
	require.True(t, MS(F32, 2, 3).Equal(opShape(t, b, c)))
	scalar := must1(b.Constant([]int32{7}))
	require.True(t, MS(I32).Equal(opShape(t, b, scalar)))

	// Size must match the dimensions.
	_, err = b.Constant([]float32{1, 2, 3}, 2, 3)
	require.ErrorIs(t, err, shapes.ErrInvalidShape)
	// Not a flat slice.
	_, err = b.Constant(float32(1))
	require.Error(t, err)
}

func TestBuilderAnonymousName(t *testing.T) {
	backend := New()
	b1, b2 := backend.Builder(""), backend.Builder("")
	require.NotEmpty(t, b1.Name())
	require.NotEqual(t, b1.Name(), b2.Name())
}

func TestBuilderOps(t *testing.T) {
	b := New().Builder("ops")
	x := must1(b.Parameter("x", MS(F32, 3, 5)))
	y := must1(b.Parameter("y", MS(F32, 5)))

	// Unary keeps the shape.
	require.True(t, MS(F32, 3, 5).Equal(opShape(t, b, must1(b.Exp(x)))))

	// Binary broadcasts.
	require.True(t, MS(F32, 3, 5).Equal(opShape(t, b, must1(b.Add(x, y)))))
	_, err := b.Add(x, must1(b.Parameter("z", MS(F32, 3, 4))))
	require.ErrorIs(t, err, shapeinference.ErrShapeMismatch)

	// Binary ops do not promote dtypes by themselves.
	_, err = b.Mul(x, must1(b.Parameter("i", MS(I32, 3, 5))))
	require.ErrorIs(t, err, shapeinference.ErrTypePromotion)

	// Comparison returns booleans.
	require.True(t, MS(Bool, 3, 5).Equal(opShape(t, b, must1(b.LessThan(x, y)))))

	// ConvertDType.
	require.True(t, MS(I32, 3, 5).Equal(opShape(t, b, must1(b.ConvertDType(x, I32)))))

	// IsNaN returns booleans and requires floats.
	require.True(t, MS(Bool, 3, 5).Equal(opShape(t, b, must1(b.IsNaN(x)))))
	_, err = b.IsNaN(must1(b.ConvertDType(x, I32)))
	require.ErrorIs(t, err, shapeinference.ErrDType)

	// Reductions.
	require.True(t, MS(F32, 3).Equal(opShape(t, b, must1(b.ReduceSum(x, 1)))))
	require.True(t, MS(F32).Equal(opShape(t, b, must1(b.ReduceMax(x)))))

	// Reshape.
	require.True(t, MS(F32, 5, 3).Equal(opShape(t, b, must1(b.Reshape(x, 5, 3)))))
	_, err = b.Reshape(x, 7)
	require.ErrorIs(t, err, shapeinference.ErrShapeMismatch)
}

func TestBuilderReduceWindow(t *testing.T) {
	b := New().Builder("pool")
	x := must1(b.Parameter("x", MS(F32, 1, 2, 4, 4)))
	pooled := must1(b.ReduceWindow(x, backends.ReduceOpMax,
		[]int{1, 1, 2, 2}, nil, nil, nil, nil))
	require.True(t, MS(F32, 1, 2, 2, 2).Equal(opShape(t, b, pooled)))

	_, err := b.ReduceWindow(x, backends.ReduceOpUndefined, []int{1, 1, 2, 2}, nil, nil, nil, nil)
	require.ErrorIs(t, err, shapeinference.ErrUnsupported)
}

func TestBuilderChecksOps(t *testing.T) {
	backend := New()
	b1 := backend.Builder("b1")
	b2 := backend.Builder("b2")
	x := must1(b1.Parameter("x", MS(F32, 2)))

	// Ops from another builder panic: it is a programming error.
	require.Panics(t, func() { _, _ = b2.Exp(x) })
	require.Panics(t, func() { _, _ = b1.Exp(nil) })
}
