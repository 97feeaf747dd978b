package ir

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/lazygraph/backends"
)

type loweringState int

const (
	stateUnvisited loweringState = iota
	stateInProgress
	stateLowered
)

// LoweringContext lowers a graph's nodes to a backends.Builder program. Each
// node is lowered exactly once: shared sub-expressions are memoized, so a
// diamond-shaped graph emits each node a single time.
//
// A LoweringContext is single-use and not safe for concurrent use.
type LoweringContext struct {
	graph   *Graph
	builder backends.Builder
	state   map[*Node]loweringState
	lowered map[*Node][]backends.Op
}

// NewLoweringContext creates a LoweringContext for graph, with a fresh
// builder from the graph's backend. If builderName is empty the graph's name
// is used.
func NewLoweringContext(graph *Graph, builderName string) *LoweringContext {
	if builderName == "" {
		builderName = graph.Name()
	}
	return &LoweringContext{
		graph:   graph,
		builder: graph.Backend().Builder(builderName),
		state:   make(map[*Node]loweringState),
		lowered: make(map[*Node][]backends.Op),
	}
}

// Graph being lowered.
func (ctx *LoweringContext) Graph() *Graph { return ctx.graph }

// Builder receiving the lowered ops.
func (ctx *LoweringContext) Builder() backends.Builder { return ctx.builder }

// NumLowered returns how many nodes have been lowered so far. Memoized hits
// don't count twice.
func (ctx *LoweringContext) NumLowered() int { return len(ctx.lowered) }

// Lower returns the backend op for value, lowering its node and,
// recursively, any not-yet-lowered operands.
func (ctx *LoweringContext) Lower(value Value) (backends.Op, error) {
	ops, err := ctx.LowerNode(value.Node)
	if err != nil {
		return nil, err
	}
	return ops[value.OutputIdx], nil
}

// LowerNode lowers node and its transitive operands, returning one backend op
// per output. Repeated calls for the same node return the memoized ops.
func (ctx *LoweringContext) LowerNode(node *Node) ([]backends.Op, error) {
	if node.graph != ctx.graph {
		exceptions.Panicf("LoweringContext for graph %q asked to lower node %s of graph %q",
			ctx.graph.Name(), node.kind, node.graph.Name())
	}
	switch ctx.state[node] {
	case stateLowered:
		return ctx.lowered[node], nil
	case stateInProgress:
		return nil, errors.Wrapf(ErrMalformedGraph, "cycle through op %s", node.kind)
	}
	ctx.state[node] = stateInProgress
	operandOps := make([]backends.Op, len(node.operands))
	for ii, operand := range node.operands {
		var err error
		operandOps[ii], err = ctx.Lower(operand)
		if err != nil {
			return nil, err
		}
	}
	def, found := Registered(node.kind)
	if !found {
		return nil, errors.Wrapf(ErrUnknownOp, "op %s", node.kind)
	}
	outputs, err := def.Lower(ctx, node, operandOps)
	if err != nil {
		return nil, errors.WithMessagef(err, "while lowering op %s", node.kind)
	}
	if len(outputs) != node.NumOutputs() {
		return nil, errors.Wrapf(ErrLoweringArity, "op %s has %d outputs, lowering returned %d",
			node.kind, node.NumOutputs(), len(outputs))
	}
	ctx.state[node] = stateLowered
	ctx.lowered[node] = outputs
	klog.V(2).Infof("lowered %s", node)
	return outputs, nil
}
