package simplego

import (
	"reflect"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"

	"github.com/gomlx/lazygraph/backends"
	"github.com/gomlx/lazygraph/types/shapes"
)

// Builder keeps track of the computation graph being defined.
type Builder struct {
	name    string
	backend *Backend

	// nodes are only created when their inputs have already been created, so this is a natural
	// DAG (Directed Acyclic Graph) ordering of the graph.
	nodes []*Node

	// inputs will have parameter data.
	inputs []*Node
}

// Compile-time check.
var _ backends.Builder = (*Builder)(nil)

// Name implements backends.Builder.
func (b *Builder) Name() string {
	return b.name
}

// Node in the SimpleGo computation graph.
type Node struct {
	// builderIdx in Builder.nodes.
	builderIdx int
	inputs     []*Node

	opType  backends.OpType
	shape   shapes.Shape
	builder *Builder

	// data for the specific node type.
	data any
}

// parameterData is the data for OpTypeParameter nodes.
type parameterData struct {
	name   string
	handle int
}

// constantData is the data for OpTypeConstant nodes. The flat slice is aliased,
// not copied -- constants are only symbolic here.
type constantData struct {
	flat any
}

// newNode adds a new node of the given opType and shape to the Builder graph.
// It's used by the other ops when creating new nodes.
func (b *Builder) newNode(opType backends.OpType, shape shapes.Shape, inputs ...*Node) *Node {
	n := &Node{
		builder:    b,
		opType:     opType,
		builderIdx: len(b.nodes),
		shape:      shape,
		inputs:     slices.Clone(inputs),
	}
	b.nodes = append(b.nodes, n)
	return n
}

// checkOps validates that the ops are non-nil, from SimpleGo and from this builder.
// Misuse here is a programming error, not a recoverable input error, so it panics.
func (b *Builder) checkOps(opName string, ops ...backends.Op) []*Node {
	if b == nil {
		exceptions.Panicf("%s: Builder is nil (!?), cannot build a computation", opName)
	}
	nodes := make([]*Node, len(ops))
	var ok bool
	for idx, op := range ops {
		if op == nil {
			exceptions.Panicf("%s: input op #%d is nil!?", opName, idx)
		}
		nodes[idx], ok = op.(*Node)
		if !ok {
			exceptions.Panicf("%s: input op #%d was created on a different backend than %q", opName, idx, b.backend.Name())
		}
		if nodes[idx].builder != b {
			exceptions.Panicf("%s: input op #%d was created with a different builder (%q), cannot use it with builder %q",
				opName, idx, nodes[idx].builder.name, b.name)
		}
	}
	return nodes
}

// OpShape returns the shape of a computation Op.
// Notice this is not an operation and doesn't change the computation being built.
func (b *Builder) OpShape(op backends.Op) (shapes.Shape, error) {
	inputs := b.checkOps("OpShape", op)
	return inputs[0].shape, nil
}

// Parameter implements backends.Builder.
func (b *Builder) Parameter(name string, shape shapes.Shape) (backends.Op, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "Parameter(%q)", name)
	}
	if shape.IsTuple() {
		return nil, errors.WithMessagef(shapes.ErrInvalidShape, "Parameter(%q): tuple shapes are not valid parameter shapes", name)
	}
	node := b.newNode(backends.OpTypeParameter, shape)
	node.data = &parameterData{name: name, handle: len(b.inputs)}
	b.inputs = append(b.inputs, node)
	return node, nil
}

// Constant implements backends.Builder.
func (b *Builder) Constant(flat any, dims ...int) (backends.Op, error) {
	dtype, flatLen, err := checkFlat(flat)
	if err != nil {
		return nil, errors.WithMessagef(err, "Constant(%T, dims=%v)", flat, dims)
	}
	shape := shapes.Shape{DType: dtype, Dimensions: slices.Clone(dims)}
	if err := shape.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "Constant(%T, dims=%v)", flat, dims)
	}
	if shape.Size() != flatLen {
		return nil, errors.WithMessagef(shapes.ErrInvalidShape,
			"Constant(%T, dims=%v): flat has %d values, but dims describe a size of %d", flat, dims, flatLen, shape.Size())
	}
	node := b.newNode(backends.OpTypeConstant, shape)
	node.data = &constantData{flat: flat}
	return node, nil
}

// checkFlat returns an error if flat is not a slice of one of the dtypes supported.
// It returns the dtype and the length of the flat slice.
func checkFlat(flat any) (dtypes.DType, int, error) {
	flatType := reflect.TypeOf(flat)
	if flatType.Kind() != reflect.Slice {
		return dtypes.InvalidDType, 0, errors.Errorf("flat data should be a slice, not %s", flatType.Kind())
	}
	dtype := dtypes.FromGoType(flatType.Elem())
	if dtype == dtypes.InvalidDType {
		return dtypes.InvalidDType, 0, errors.Errorf("flat is a slice of %s, not a valid data type", flatType.Elem())
	}
	return dtype, reflect.ValueOf(flat).Len(), nil
}
