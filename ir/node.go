package ir

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gomlx/lazygraph/types/shapes"
	"github.com/gomlx/lazygraph/types/xslices"
)

// Attributes holds the static (non-tensor) parameters of a node, keyed by
// name. Values must be one of the hashable types accepted by hashAttrValue:
// bool, int, int64, float64, string, []int, [][2]int, dtypes.DType or
// shapes.Shape. Attributes are part of the node's content hash.
type Attributes map[string]any

// Value is one output of a Node. Most nodes have a single output, in which
// case OutputIdx is 0.
type Value struct {
	Node      *Node
	OutputIdx int
}

// Shape of this output.
func (v Value) Shape() shapes.Shape {
	return v.Node.Shape(v.OutputIdx)
}

// Output returns the idx-th output of n as a Value. It panics (out of range)
// if idx is not in [0, NumOutputs).
func (n *Node) Output(idx int) Value {
	if idx < 0 || idx >= n.NumOutputs() {
		panic(fmt.Sprintf("node %s has %d outputs, requested output #%d", n.kind, n.NumOutputs(), idx))
	}
	return Value{Node: n, OutputIdx: idx}
}

// nodeIDCounter provides the unique ids used in Node.String. Ids have no
// semantic meaning, they only make printed graphs readable.
var nodeIDCounter atomic.Int64

// Node is one operation in a computation graph. Nodes are immutable after
// construction: kind, operands, attributes and output shapes are fixed, and
// the content hash is computed once. Create nodes with Graph.NewNode.
type Node struct {
	id       int64
	graph    *Graph
	kind     OpKind
	operands []Value
	attrs    Attributes
	shapes   []shapes.Shape
	hash     uint64
}

// Graph that owns this node.
func (n *Node) Graph() *Graph { return n.graph }

// Kind of the operation.
func (n *Node) Kind() OpKind { return n.kind }

// NumOperands returns the number of operands (inputs) of the node.
func (n *Node) NumOperands() int { return len(n.operands) }

// Operand returns the idx-th operand. Negative values of idx index from the
// end, as in xslices.At.
func (n *Node) Operand(idx int) Value {
	return xslices.At(n.operands, idx)
}

// Operands returns a copy of the node's operands.
func (n *Node) Operands() []Value {
	return append([]Value(nil), n.operands...)
}

// Attr returns the attribute value stored under key, or nil if not set.
func (n *Node) Attr(key string) any {
	return n.attrs[key]
}

// NumOutputs returns the number of outputs of the node. It is at least 1.
func (n *Node) NumOutputs() int { return len(n.shapes) }

// Shape of the idx-th output.
func (n *Node) Shape(idx int) shapes.Shape { return n.shapes[idx] }

// Shapes returns a copy of the output shapes, one per output.
func (n *Node) Shapes() []shapes.Shape {
	return append([]shapes.Shape(nil), n.shapes...)
}

// Hash is the structural content hash of the node: it covers the kind, the
// output shapes, the attributes and, recursively, the operands' hashes. Two
// nodes built from the same inputs hash the same, also across processes.
func (n *Node) Hash() uint64 { return n.hash }

// String implements fmt.Stringer. It prints one line per node, e.g.
// "%3 = lazy::add(%1, %2) -> (Float32)[2 3]".
func (n *Node) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%%%d = %s(", n.id, n.kind)
	for ii, operand := range n.operands {
		if ii > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%%%d", operand.Node.id)
		if operand.Node.NumOutputs() > 1 {
			fmt.Fprintf(&sb, ".%d", operand.OutputIdx)
		}
	}
	sb.WriteString(") -> ")
	if len(n.shapes) == 1 {
		sb.WriteString(n.shapes[0].String())
	} else {
		fmt.Fprintf(&sb, "%s", shapes.MakeTuple(n.shapes))
	}
	return sb.String()
}
