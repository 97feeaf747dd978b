package ops

import (
	"github.com/gomlx/gopjrt/dtypes"

	"github.com/gomlx/lazygraph/backends"
	"github.com/gomlx/lazygraph/ir"
	"github.com/gomlx/lazygraph/types/shapes"
	"github.com/gomlx/lazygraph/types/xslices"
)

// KindAll is the kind of the All reduction.
var KindAll = ir.LazyOp("all")

// Attribute keys of the reduction ops.
const (
	attrAxes     = "axes"
	attrKeepDims = "keep_dims"
)

func init() {
	// All reduces with logical AND. Non-boolean operands are first tested
	// against zero. The shape, which depends on the axes and on keep_dims, is
	// resolved by trial lowering.
	registerComposite(KindAll, 1, func(b backends.Builder, operands []backends.Op, attrs ir.Attributes) ([]backends.Op, error) {
		x := operands[0]
		xShape, err := b.OpShape(x)
		if err != nil {
			return nil, err
		}
		if xShape.DType != dtypes.Bool {
			zero, err := b.Constant(shapes.ScalarFlat(xShape.DType, 0))
			if err != nil {
				return nil, err
			}
			if x, err = b.NotEqual(x, zero); err != nil {
				return nil, err
			}
		}
		axes := axesAttr(attrs, attrAxes)
		if len(axes) == 0 {
			// No axes means full reduction.
			axes = xslices.Iota(0, xShape.Rank())
		}
		reduced, err := b.ReduceLogicalAnd(x, axes...)
		if err != nil {
			return nil, err
		}
		keepDims, _ := attrs[attrKeepDims].(bool)
		if keepDims && xShape.Rank() > 0 {
			dims := append([]int(nil), xShape.Dimensions...)
			for _, axis := range axes {
				dims[axis] = 1
			}
			if reduced, err = b.Reshape(reduced, dims...); err != nil {
				return nil, err
			}
		}
		return []backends.Op{reduced}, nil
	})
}

// All reduces x with logical AND over the given axes, or over every axis if
// none is given. Negative axes count from the end. Non-boolean operands are
// first tested against zero, so All over numbers means "no element is zero".
// If keepDims is set, the reduced axes are kept with dimension 1.
func All(x ir.Value, keepDims bool, axes ...int) (ir.Value, error) {
	adjusted, err := adjustAxes(axes, x.Shape().Rank())
	if err != nil {
		return ir.Value{}, err
	}
	return newOp(KindAll, ir.Attributes{attrAxes: adjusted, attrKeepDims: keepDims}, x)
}
