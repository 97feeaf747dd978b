package ir

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/gomlx/lazygraph/backends"
	"github.com/gomlx/lazygraph/backends/shapeinference"
	"github.com/gomlx/lazygraph/types"
	"github.com/gomlx/lazygraph/types/shapes"
	"github.com/gomlx/lazygraph/types/xslices"
)

// Built-in kinds for graph inputs. Everything else comes from the ops package.
var (
	KindParameter = LazyOp("parameter")
	KindConstant  = LazyOp("constant")
)

// Attribute keys used by the built-in kinds.
const (
	AttrName  = "name"
	AttrShape = "shape"
	AttrFlat  = "flat"
	AttrDims  = "dims"
)

// Graph owns the nodes of one computation. It is append-only: nodes are added
// with NewNode (or the Parameter/Constant shortcuts) and never removed, so a
// Value handed out stays valid for the graph's lifetime.
//
// A Graph is not safe for concurrent mutation.
type Graph struct {
	name       string
	backend    backends.Backend
	nodes      []*Node
	parameters []*Node
	paramNames types.Set[string]
}

// NewGraph creates an empty Graph that will lower to the given backend. If
// name is empty a unique one is generated.
func NewGraph(backend backends.Backend, name string) *Graph {
	if backend == nil {
		exceptions.Panicf("ir.NewGraph: backend is nil")
	}
	if name == "" {
		name = "graph-" + uuid.NewString()
	}
	return &Graph{
		name:       name,
		backend:    backend,
		paramNames: types.MakeSet[string](),
	}
}

// Name of the graph.
func (g *Graph) Name() string { return g.name }

// Backend the graph lowers to.
func (g *Graph) Backend() backends.Backend { return g.backend }

// NumNodes returns how many nodes the graph holds.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Parameters returns the graph's parameter nodes, in creation order.
func (g *Graph) Parameters() []*Node {
	return append([]*Node(nil), g.parameters...)
}

// NewNode creates a node of the given kind, resolving its output shapes with
// the kind's registered shape function. The returned node is immutable.
//
// It returns an error if kind is not registered, if the operand count does
// not match the registration, or if the shape function rejects the operands'
// shapes. Mixing operands from another graph is a bug in the caller and
// panics.
func (g *Graph) NewNode(kind OpKind, operands []Value, attrs Attributes) (*Node, error) {
	def, found := Registered(kind)
	if !found {
		return nil, errors.Wrapf(ErrUnknownOp, "op %s", kind)
	}
	if def.NumOperands >= 0 && len(operands) != def.NumOperands {
		return nil, errors.Wrapf(shapeinference.ErrUnsupported, "op %s takes %d operands, got %d",
			kind, def.NumOperands, len(operands))
	}
	operandShapes := xslices.Map(operands, func(v Value) shapes.Shape {
		if v.Node == nil {
			exceptions.Panicf("op %s: operand with nil node", kind)
		}
		if v.Node.graph != g {
			exceptions.Panicf("op %s: operand %s belongs to graph %q, not %q",
				kind, v.Node.kind, v.Node.graph.name, g.name)
		}
		return v.Shape()
	})
	outputShapes, err := def.Shape(g.backend, operandShapes, attrs)
	if err != nil {
		return nil, errors.WithMessagef(err, "while resolving shape of op %s", kind)
	}
	if len(outputShapes) == 0 {
		return nil, errors.Wrapf(ErrLoweringArity, "op %s resolved to zero outputs", kind)
	}
	node := &Node{
		id:       nodeIDCounter.Add(1),
		graph:    g,
		kind:     kind,
		operands: append([]Value(nil), operands...),
		attrs:    maps.Clone(attrs),
		shapes:   outputShapes,
	}
	node.hash = hashNode(kind, node.operands, attrs, outputShapes)
	g.nodes = append(g.nodes, node)
	return node, nil
}

// CloneNode creates a new node with the same kind and attributes as n but
// different operands, re-resolving the output shapes for the new operands'
// shapes.
func (g *Graph) CloneNode(n *Node, newOperands []Value) (*Node, error) {
	return g.NewNode(n.kind, newOperands, n.attrs)
}

// Parameter creates a named graph input with the given shape. Names must be
// unique within the graph, and tuple shapes are not accepted.
func (g *Graph) Parameter(name string, shape shapes.Shape) (*Node, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "Parameter(%q)", name)
	}
	if shape.IsTuple() {
		return nil, errors.Wrapf(shapes.ErrInvalidShape, "Parameter(%q) does not accept tuple shapes, got %s", name, shape)
	}
	if g.paramNames.Has(name) {
		return nil, errors.Wrapf(shapeinference.ErrUnsupported, "Parameter(%q) already exists in graph %q", name, g.name)
	}
	node, err := g.NewNode(KindParameter, nil, Attributes{AttrName: name, AttrShape: shape})
	if err != nil {
		return nil, err
	}
	g.paramNames.Insert(name)
	g.parameters = append(g.parameters, node)
	return node, nil
}

// Constant creates a node holding a literal value: flat is a slice with one
// element per entry (even for scalars), and dims are the dimensions of the
// shape. The dtype is taken from flat's element type.
func (g *Graph) Constant(flat any, dims ...int) (*Node, error) {
	dtype, flatLen, err := checkFlat(flat)
	if err != nil {
		return nil, err
	}
	shape := shapes.Shape{DType: dtype, Dimensions: slices.Clone(dims)}
	if err := shape.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "Constant(%T, dims=%v)", flat, dims)
	}
	if shape.Size() != flatLen {
		return nil, errors.Wrapf(shapes.ErrInvalidShape,
			"Constant got %d values for shape %s (size %d)", flatLen, shape, shape.Size())
	}
	return g.NewNode(KindConstant, nil, Attributes{AttrFlat: flat, AttrDims: dims})
}

// checkFlat verifies that flat is a slice of a supported dtype and returns
// the dtype and length.
func checkFlat(flat any) (dtypes.DType, int, error) {
	rv := reflect.ValueOf(flat)
	if rv.Kind() != reflect.Slice {
		return dtypes.InvalidDType, 0, errors.Wrapf(shapeinference.ErrDType,
			"Constant expects a flat slice of values, got %T", flat)
	}
	dtype := dtypes.FromGoType(rv.Type().Elem())
	if dtype == dtypes.InvalidDType {
		return dtypes.InvalidDType, 0, errors.Wrapf(shapeinference.ErrDType,
			"Constant got slice of unsupported type %s", rv.Type().Elem())
	}
	return dtype, rv.Len(), nil
}

// String prints the graph in creation order, one node per line.
func (g *Graph) String() string {
	var sb strings.Builder
	var totalBytes uintptr
	for _, node := range g.nodes {
		for _, s := range node.shapes {
			totalBytes += s.Memory()
		}
	}
	fmt.Fprintf(&sb, "Graph %q: %d nodes, %s\n", g.name, len(g.nodes), humanize.Bytes(uint64(totalBytes)))
	for _, node := range g.nodes {
		fmt.Fprintf(&sb, "\t%s\n", node)
	}
	return sb.String()
}

func init() {
	Register(KindParameter, OpDef{
		NumOperands: 0,
		Shape: func(_ backends.Backend, _ []shapes.Shape, attrs Attributes) ([]shapes.Shape, error) {
			shape, ok := attrs[AttrShape].(shapes.Shape)
			if !ok {
				return nil, errors.Wrapf(shapes.ErrInvalidShape, "parameter node missing %q attribute", AttrShape)
			}
			return []shapes.Shape{shape}, nil
		},
		Lower: func(ctx *LoweringContext, node *Node, _ []backends.Op) ([]backends.Op, error) {
			name := node.attrs[AttrName].(string)
			op, err := ctx.Builder().Parameter(name, node.Shape(0))
			if err != nil {
				return nil, err
			}
			return []backends.Op{op}, nil
		},
	})
	Register(KindConstant, OpDef{
		NumOperands: 0,
		Shape: func(_ backends.Backend, _ []shapes.Shape, attrs Attributes) ([]shapes.Shape, error) {
			dtype, flatLen, err := checkFlat(attrs[AttrFlat])
			if err != nil {
				return nil, err
			}
			dims, _ := attrs[AttrDims].([]int)
			shape := shapes.Shape{DType: dtype, Dimensions: slices.Clone(dims)}
			if err := shape.Validate(); err != nil {
				return nil, errors.WithMessagef(err, "constant node")
			}
			if shape.Size() != flatLen {
				return nil, errors.Wrapf(shapes.ErrInvalidShape,
					"constant node has %d values for shape %s", flatLen, shape)
			}
			return []shapes.Shape{shape}, nil
		},
		Lower: func(ctx *LoweringContext, node *Node, _ []backends.Op) ([]backends.Op, error) {
			dims, _ := node.attrs[AttrDims].([]int)
			op, err := ctx.Builder().Constant(node.attrs[AttrFlat], dims...)
			if err != nil {
				return nil, err
			}
			return []backends.Op{op}, nil
		},
	})
}
