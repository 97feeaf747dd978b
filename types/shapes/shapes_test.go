package shapes

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestMakeAndAccessors(t *testing.T) {
	s := Make(dtypes.Float32, 2, 3, 4)
	require.True(t, s.Ok())
	require.NoError(t, s.Validate())
	require.Equal(t, 3, s.Rank())
	require.Equal(t, 24, s.Size())
	require.Equal(t, uintptr(24*4), s.Memory())
	require.Equal(t, 4, s.Dim(-1))
	require.Equal(t, 2, s.Dim(0))
	require.False(t, s.IsScalar())
	require.Equal(t, "(Float32)[2 3 4]", s.String())

	scalar := Make(dtypes.Int32)
	require.True(t, scalar.IsScalar())
	require.Equal(t, 1, scalar.Size())

	require.True(t, Scalar[float64]().Equal(Make(dtypes.Float64)))

	// Zero-sized dimensions are allowed.
	empty := Make(dtypes.Float32, 0, 3)
	require.NoError(t, empty.Validate())
	require.Equal(t, 0, empty.Size())

	// Negative dimensions are a programming error.
	require.Panics(t, func() { Make(dtypes.Float32, -1, 3) })
}

func TestValidate(t *testing.T) {
	require.ErrorIs(t, Shape{}.Validate(), ErrInvalidShape)
	require.ErrorIs(t, Invalid().Validate(), ErrInvalidShape)
	require.False(t, Invalid().Ok())

	malformed := Shape{DType: dtypes.Float32, Dimensions: []int{2, -1}}
	require.ErrorIs(t, malformed.Validate(), ErrInvalidShape)

	tuple := MakeTuple([]Shape{Make(dtypes.Float32, 2), Make(dtypes.Int32)})
	require.NoError(t, tuple.Validate())
	badTuple := MakeTuple([]Shape{Make(dtypes.Float32, 2), Invalid()})
	require.ErrorIs(t, badTuple.Validate(), ErrInvalidShape)
}

func TestEqual(t *testing.T) {
	require.True(t, Make(dtypes.Float32, 2, 3).Equal(Make(dtypes.Float32, 2, 3)))
	require.False(t, Make(dtypes.Float32, 2, 3).Equal(Make(dtypes.Float32, 3, 2)))
	require.False(t, Make(dtypes.Float32, 2, 3).Equal(Make(dtypes.Float64, 2, 3)))
	require.False(t, Make(dtypes.Float32).Equal(Make(dtypes.Float32, 1)))

	t1 := MakeTuple([]Shape{Make(dtypes.Float32, 2), Make(dtypes.Int32)})
	t2 := MakeTuple([]Shape{Make(dtypes.Float32, 2), Make(dtypes.Int32)})
	t3 := MakeTuple([]Shape{Make(dtypes.Float32, 2), Make(dtypes.Int64)})
	require.True(t, t1.Equal(t2))
	require.False(t, t1.Equal(t3))
	require.False(t, t1.Equal(Make(dtypes.Float32, 2)))
}

func TestTuple(t *testing.T) {
	elements := []Shape{Make(dtypes.Float32, 2), Make(dtypes.Int32, 3)}
	tuple := MakeTuple(elements)
	require.True(t, tuple.IsTuple())
	require.Equal(t, 2, tuple.TupleSize())
	require.False(t, Make(dtypes.Float32, 2).IsTuple())

	// MakeTuple clones the slice: mutating the input doesn't change the tuple.
	elements[0] = Make(dtypes.Float64)
	require.True(t, tuple.TupleShapes[0].Equal(Make(dtypes.Float32, 2)))
}

func TestClone(t *testing.T) {
	s := Make(dtypes.Float32, 2, 3)
	clone := s.Clone()
	require.True(t, s.Equal(clone))
	clone.Dimensions[0] = 7
	require.Equal(t, 2, s.Dimensions[0])
}

func TestScalarFlat(t *testing.T) {
	require.Equal(t, []float32{1.5}, ScalarFlat(dtypes.Float32, 1.5))
	require.Equal(t, []int8{-1}, ScalarFlat(dtypes.Int8, -1))
	require.Equal(t, []bool{true}, ScalarFlat(dtypes.Bool, 1))
	require.Equal(t, []bool{false}, ScalarFlat(dtypes.Bool, 0))
	require.Equal(t, []complex64{complex(2, 0)}, ScalarFlat(dtypes.Complex64, 2))

	// Float16 and BFloat16 round-trip through their conversion packages.
	f16 := ScalarFlat(dtypes.Float16, 0.5)
	require.IsType(t, []float16.Float16{}, f16)
	require.Equal(t, float32(0.5), f16.([]float16.Float16)[0].Float32())

	require.Panics(t, func() { ScalarFlat(dtypes.InvalidDType, 0) })
}
