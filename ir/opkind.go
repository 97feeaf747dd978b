package ir

import "fmt"

// OpKind identifies an operation: a namespace plus a name, e.g. "lazy::add".
// It is a comparable value type and can be used as a map key.
type OpKind struct {
	Namespace, Name string
}

// NamespaceLazy is the namespace of the built-in operations.
const NamespaceLazy = "lazy"

// LazyOp returns the OpKind for name under the built-in "lazy" namespace.
func LazyOp(name string) OpKind {
	return OpKind{Namespace: NamespaceLazy, Name: name}
}

// String implements fmt.Stringer, formatting as "namespace::name".
func (k OpKind) String() string {
	return fmt.Sprintf("%s::%s", k.Namespace, k.Name)
}
