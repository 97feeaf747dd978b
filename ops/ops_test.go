package ops_test

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/lazygraph/backends/shapeinference"
	"github.com/gomlx/lazygraph/backends/simplego"
	"github.com/gomlx/lazygraph/ir"
	"github.com/gomlx/lazygraph/ops"
	"github.com/gomlx/lazygraph/types/shapes"
)

// Aliases
var (
	Bool = dtypes.Bool
	I32  = dtypes.Int32
	U32  = dtypes.Uint32
	F32  = dtypes.Float32

	MS = shapes.Make
)

func testGraph(t *testing.T, name string, paramShapes ...shapes.Shape) (*ir.Graph, []ir.Value) {
	g := ir.NewGraph(simplego.New(), name)
	values := make([]ir.Value, len(paramShapes))
	for ii, shape := range paramShapes {
		node, err := g.Parameter(string(rune('a'+ii)), shape)
		require.NoError(t, err)
		values[ii] = node.Output(0)
	}
	return g, values
}

func TestUnaryShapesPassThrough(t *testing.T) {
	_, vs := testGraph(t, "unary", MS(F32, 2, 3, 4))
	x := vs[0]
	for _, fn := range []func(ir.Value) (ir.Value, error){
		ops.Abs, ops.Acos, ops.Asin, ops.Atan, ops.Ceil, ops.Cos, ops.Cosh,
		ops.Erf, ops.Exp, ops.Expm1, ops.Floor, ops.Log, ops.Log1p,
		ops.Logistic, ops.Neg, ops.Reciprocal, ops.Round, ops.Rsqrt,
		ops.Sign, ops.Silu, ops.Sin, ops.Sinh, ops.Sqrt, ops.Tan, ops.Tanh,
	} {
		out, err := fn(x)
		require.NoError(t, err)
		require.True(t, x.Shape().Equal(out.Shape()),
			"op %s changed the shape from %s to %s", out.Node.Kind(), x.Shape(), out.Shape())
	}
}

func TestUnaryDTypeChecks(t *testing.T) {
	_, vs := testGraph(t, "unary_dtypes", MS(I32, 2), MS(Bool, 2))
	ints, bools := vs[0], vs[1]

	_, err := ops.Sqrt(ints)
	require.ErrorIs(t, err, shapeinference.ErrDType)
	_, err = ops.LogicalNot(ints)
	require.ErrorIs(t, err, shapeinference.ErrDType)

	out := must.M1(ops.LogicalNot(bools))
	require.True(t, MS(Bool, 2).Equal(out.Shape()))

	// Abs and Neg accept integers.
	require.True(t, MS(I32, 2).Equal(must.M1(ops.Abs(ints)).Shape()))
	require.True(t, MS(I32, 2).Equal(must.M1(ops.Neg(ints)).Shape()))
}

func TestIsNaN(t *testing.T) {
	_, vs := testGraph(t, "isnan", MS(F32, 3, 3), MS(I32, 3))
	out := must.M1(ops.IsNaN(vs[0]))
	require.True(t, MS(Bool, 3, 3).Equal(out.Shape()))

	_, err := ops.IsNaN(vs[1])
	require.ErrorIs(t, err, shapeinference.ErrDType)
}

func TestBinaryBroadcast(t *testing.T) {
	_, vs := testGraph(t, "broadcast", MS(F32, 5), MS(F32, 3, 5), MS(F32, 3, 4))
	vec, mat, other := vs[0], vs[1], vs[2]

	out := must.M1(ops.Max(vec, mat))
	require.True(t, MS(F32, 3, 5).Equal(out.Shape()))

	_, err := ops.Max(vec, other)
	require.ErrorIs(t, err, shapeinference.ErrShapeMismatch)

	// Min and Max resolve shapes identically.
	for _, pair := range [][2]ir.Value{{vec, mat}, {mat, vec}, {mat, mat}} {
		minOut := must.M1(ops.Min(pair[0], pair[1]))
		maxOut := must.M1(ops.Max(pair[0], pair[1]))
		require.True(t, minOut.Shape().Equal(maxOut.Shape()))
	}
}

func TestBinaryPromotion(t *testing.T) {
	_, vs := testGraph(t, "promotion", MS(F32, 2), MS(I32, 2), MS(U32, 2), MS(Bool, 2))
	floats, ints, uints, bools := vs[0], vs[1], vs[2], vs[3]

	// Float32 x Int32 -> Float32.
	out := must.M1(ops.Add(floats, ints))
	require.Equal(t, F32, out.Shape().DType)

	// Booleans promote to the other operand.
	out = must.M1(ops.Mul(bools, ints))
	require.Equal(t, I32, out.Shape().DType)

	// Int32 x Uint32 has no common promotion.
	_, err := ops.Add(ints, uints)
	require.ErrorIs(t, err, shapeinference.ErrTypePromotion)
}

func TestComparisons(t *testing.T) {
	_, vs := testGraph(t, "cmp", MS(F32, 2, 3), MS(I32, 3))
	floats, ints := vs[0], vs[1]

	for _, fn := range []func(lhs, rhs ir.Value) (ir.Value, error){
		ops.Equal, ops.NotEqual, ops.GreaterOrEqual, ops.GreaterThan,
		ops.LessOrEqual, ops.LessThan,
	} {
		// Broadcasts and promotes, returns booleans.
		out, err := fn(floats, ints)
		require.NoError(t, err)
		require.True(t, MS(Bool, 2, 3).Equal(out.Shape()))
	}
}

func TestLogDet(t *testing.T) {
	_, vs := testGraph(t, "logdet", MS(F32, 3, 4, 4), MS(F32, 5), MS(F32, 2, 3), MS(I32, 4, 4))

	// A batch of 3 4x4 matrices reduces to 3 values.
	out := must.M1(ops.LogDet(vs[0]))
	require.True(t, MS(F32, 3).Equal(out.Shape()))

	// Rank must be at least 2.
	_, err := ops.LogDet(vs[1])
	require.ErrorIs(t, err, shapeinference.ErrRank)

	// Matrices must be square.
	_, err = ops.LogDet(vs[2])
	require.ErrorIs(t, err, shapeinference.ErrShapeMismatch)

	// And of float (or complex) dtype.
	_, err = ops.LogDet(vs[3])
	require.ErrorIs(t, err, shapeinference.ErrDType)

	// A single matrix reduces to a scalar.
	_, vs = testGraph(t, "logdet_scalar", MS(F32, 4, 4))
	out = must.M1(ops.LogDet(vs[0]))
	require.True(t, MS(F32).Equal(out.Shape()))
}

func TestLogSigmoid(t *testing.T) {
	_, vs := testGraph(t, "log_sigmoid", MS(F32, 2, 5))
	output, buffer, err := ops.LogSigmoid(vs[0])
	require.NoError(t, err)
	require.Equal(t, output.Node, buffer.Node)
	require.Equal(t, 2, output.Node.NumOutputs())
	require.True(t, MS(F32, 2, 5).Equal(output.Shape()))
	require.True(t, MS(F32, 2, 5).Equal(buffer.Shape()))
}

func TestAll(t *testing.T) {
	_, vs := testGraph(t, "all", MS(Bool, 2, 3, 4), MS(F32, 2, 3))
	bools, floats := vs[0], vs[1]

	// Reduce selected axes.
	out := must.M1(ops.All(bools, false, 1))
	require.True(t, MS(Bool, 2, 4).Equal(out.Shape()))

	// Negative axes count from the end.
	out = must.M1(ops.All(bools, false, -1))
	require.True(t, MS(Bool, 2, 3).Equal(out.Shape()))

	// keepDims keeps the reduced axes with dimension 1.
	out = must.M1(ops.All(bools, true, 1))
	require.True(t, MS(Bool, 2, 1, 4).Equal(out.Shape()))

	// No axes: full reduction.
	out = must.M1(ops.All(bools, false))
	require.True(t, MS(Bool).Equal(out.Shape()))
	out = must.M1(ops.All(bools, true))
	require.True(t, MS(Bool, 1, 1, 1).Equal(out.Shape()))

	// Non-boolean operands are tested against zero first.
	out = must.M1(ops.All(floats, false, 0))
	require.True(t, MS(Bool, 3).Equal(out.Shape()))

	// Out-of-range axes fail.
	_, err := ops.All(bools, false, 3)
	require.ErrorIs(t, err, shapeinference.ErrRank)
}

func TestMaxPool2D(t *testing.T) {
	_, vs := testGraph(t, "max_pool", MS(F32, 2, 3, 8, 8), MS(F32, 8, 8))
	img := vs[0]

	// Stride defaults to the kernel: 8/2 = 4.
	out := must.M1(ops.MaxPool2D(img, [2]int{2, 2}, nil, [2]int{0, 0}))
	require.True(t, MS(F32, 2, 3, 4, 4).Equal(out.Shape()))

	// Explicit stride 1: (8-3)/1+1 = 6.
	strides := [2]int{1, 1}
	out = must.M1(ops.MaxPool2D(img, [2]int{3, 3}, &strides, [2]int{0, 0}))
	require.True(t, MS(F32, 2, 3, 6, 6).Equal(out.Shape()))

	// Symmetric padding: (8+2-3)/1+1 = 8.
	out = must.M1(ops.MaxPool2D(img, [2]int{3, 3}, &strides, [2]int{1, 1}))
	require.True(t, MS(F32, 2, 3, 8, 8).Equal(out.Shape()))

	// Rank must be 4.
	_, err := ops.MaxPool2D(vs[1], [2]int{2, 2}, nil, [2]int{0, 0})
	require.ErrorIs(t, err, shapeinference.ErrRank)
}

// TestLoweringMatchesConstruction lowers a mixed graph and checks every
// node's constructed shape against the shape the backend assigns to its
// lowered op.
func TestLoweringMatchesConstruction(t *testing.T) {
	g, vs := testGraph(t, "no_drift", MS(F32, 4, 4), MS(I32, 4))
	x, n := vs[0], vs[1]

	values := []ir.Value{
		must.M1(ops.Exp(x)),
		must.M1(ops.Add(x, n)),
		must.M1(ops.LessThan(x, n)),
		must.M1(ops.LogDet(x)),
		must.M1(ops.All(n, true, 0)),
		must.M1(ops.Silu(x)),
	}
	output, buffer, err := ops.LogSigmoid(x)
	require.NoError(t, err)
	values = append(values, output, buffer)

	ctx := ir.NewLoweringContext(g, "")
	for _, value := range values {
		op, err := ctx.Lower(value)
		require.NoError(t, err)
		lowered, err := ctx.Builder().OpShape(op)
		require.NoError(t, err)
		require.True(t, value.Shape().Equal(lowered),
			"op %s: constructed shape %s, lowered shape %s", value.Node.Kind(), value.Shape(), lowered)
	}
}
