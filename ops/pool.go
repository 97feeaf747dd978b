package ops

import (
	"github.com/pkg/errors"

	"github.com/gomlx/lazygraph/backends"
	"github.com/gomlx/lazygraph/backends/shapeinference"
	"github.com/gomlx/lazygraph/ir"
)

// KindMaxPool2D is the kind of the 2D max-pooling operation.
var KindMaxPool2D = ir.LazyOp("max_pool2d")

// Attribute keys of MaxPool2D.
const (
	attrKernel  = "kernel"
	attrStrides = "strides"
	attrPadding = "padding"
)

func init() {
	// MaxPool2D lowers to a ReduceWindow over the two spatial axes of a
	// [batch, channels, height, width] operand. The output's spatial
	// dimensions follow the backend's windowing rule, so the shape is
	// resolved by trial lowering.
	registerComposite(KindMaxPool2D, 1, func(b backends.Builder, operands []backends.Op, attrs ir.Attributes) ([]backends.Op, error) {
		kernel := axesAttr(attrs, attrKernel)
		strides := axesAttr(attrs, attrStrides)
		padding := axesAttr(attrs, attrPadding)
		window := []int{1, 1, kernel[0], kernel[1]}
		windowStrides := []int{1, 1, strides[0], strides[1]}
		paddings := [][2]int{{0, 0}, {0, 0}, {padding[0], padding[0]}, {padding[1], padding[1]}}
		return one(b.ReduceWindow(operands[0], backends.ReduceOpMax, window, windowStrides, nil, nil, paddings))
	})
}

// MaxPool2D max-pools x, shaped [batch, channels, height, width], with the
// given kernel (kernelH, kernelW) over the spatial axes. strides defaults to
// the kernel when nil; padding is symmetric per spatial axis and defaults to
// zero.
func MaxPool2D(x ir.Value, kernel [2]int, strides *[2]int, padding [2]int) (ir.Value, error) {
	if x.Shape().Rank() != 4 {
		return ir.Value{}, errors.Wrapf(shapeinference.ErrRank,
			"MaxPool2D requires a [batch, channels, height, width] operand, got %s", x.Shape())
	}
	if kernel[0] < 1 || kernel[1] < 1 {
		return ir.Value{}, errors.Wrapf(shapeinference.ErrShapeMismatch,
			"MaxPool2D kernel dimensions must be >= 1, got %v", kernel)
	}
	effectiveStrides := kernel
	if strides != nil {
		effectiveStrides = *strides
	}
	if padding[0] < 0 || padding[1] < 0 {
		return ir.Value{}, errors.Wrapf(shapeinference.ErrShapeMismatch,
			"MaxPool2D padding must be non-negative, got %v", padding)
	}
	return newOp(KindMaxPool2D, ir.Attributes{
		attrKernel:  kernel[:],
		attrStrides: effectiveStrides[:],
		attrPadding: padding[:],
	}, x)
}
