// Package backends defines the interface of a target backend's
// operation-builder: the representation the lazy IR (package ir) is lowered
// into.
//
// A Backend creates Builders; a Builder accumulates backend operations (Op) and
// resolves their shapes as they are created. The IR uses Builders in two ways:
//
//  1. Lowering: a finished IR graph is translated into a Builder, one backend
//     operation (or a small composition of them) per IR node.
//  2. Trial-lowering shape inference: a throwaway Builder is fed placeholder
//     parameters, the op is built, and its shape is read back with
//     Builder.OpShape. See ir.InferOutputShape.
//
// Numeric kernels and execution of the built computation are out of scope of
// this module: a Builder here is purely a shape-resolving symbolic
// representation that downstream compilation pipelines consume.
package backends

// Op represents the output of an operation during computation building time.
//
// It is opaque from the lazygraph perspective: it is passed back as input to the
// other Builder methods.
type Op any

// Backend is the interface of a backend implementation. It is a factory of
// Builders: each Builder holds one independent computation being built.
type Backend interface {
	// Name returns the name of the backend implementation.
	Name() string

	// Builder creates a new computation builder with the given name.
	// If name is empty the backend assigns a unique one.
	Builder(name string) Builder
}
