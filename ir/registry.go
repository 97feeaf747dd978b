package ir

import (
	"github.com/gomlx/exceptions"

	"github.com/gomlx/lazygraph/backends"
	"github.com/gomlx/lazygraph/types/shapes"
)

// ShapeFn resolves the output shapes of an op from its operands' shapes and
// attributes. The backend is available for trial lowering (see
// InferOutputShape); simple rules can ignore it.
type ShapeFn func(backend backends.Backend, operands []shapes.Shape, attrs Attributes) ([]shapes.Shape, error)

// LowerFn lowers a node to backend ops: operands holds the already-lowered
// inputs, one backends.Op per operand Value. It must return exactly
// node.NumOutputs() ops.
type LowerFn func(ctx *LoweringContext, node *Node, operands []backends.Op) ([]backends.Op, error)

// OpDef defines one operation kind: its arity and the two functions the graph
// machinery needs, shape resolution and lowering.
type OpDef struct {
	// NumOperands the op accepts, or -1 for variadic.
	NumOperands int

	// Shape resolves the output shapes at node construction time.
	Shape ShapeFn

	// Lower emits the backend ops for a node.
	Lower LowerFn
}

var opRegistry = map[OpKind]OpDef{}

// Register associates an OpDef with an OpKind. It is meant to be called from
// init functions (the ops package registers the standard catalogue) and
// panics if kind is already registered or the def is incomplete.
func Register(kind OpKind, def OpDef) {
	if _, found := opRegistry[kind]; found {
		exceptions.Panicf("ir.Register: op %s registered twice", kind)
	}
	if def.Shape == nil || def.Lower == nil {
		exceptions.Panicf("ir.Register: op %s needs both Shape and Lower functions", kind)
	}
	opRegistry[kind] = def
}

// Registered returns the OpDef for kind, and whether it was registered.
func Registered(kind OpKind) (OpDef, bool) {
	def, found := opRegistry[kind]
	return def, found
}
