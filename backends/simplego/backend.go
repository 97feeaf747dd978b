// Package simplego implements the reference lazygraph backend: a pure Go,
// in-process operation builder.
//
// It builds a symbolic computation: an append-only graph of backend nodes, each
// carrying its operation type and its shape, resolved at creation time with the
// rules in package shapeinference. It implements no numeric kernels -- it is the
// representation downstream compilation consumes, and the target used by the IR
// both for lowering and for trial-lowering shape inference.
package simplego

import (
	"fmt"

	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/gomlx/lazygraph/backends"
)

// BackendName to be used to create a simplego backend.
const BackendName = "go"

// Backend implements backends.Backend for the SimpleGo backend.
type Backend struct{}

// Compile-time check.
var _ backends.Backend = (*Backend)(nil)

// New creates a SimpleGo backend.
func New() *Backend {
	return &Backend{}
}

// Name implements backends.Backend.
func (b *Backend) Name() string {
	return BackendName
}

// Builder implements backends.Backend.
// If name is empty, a unique one is generated.
func (b *Backend) Builder(name string) backends.Builder {
	if name == "" {
		name = fmt.Sprintf("computation-%s", uuid.NewString())
	}
	klog.V(2).Infof("simplego: new builder %q", name)
	return &Builder{
		name:    name,
		backend: b,
	}
}
