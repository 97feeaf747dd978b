/*
 *	Copyright 2023 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

// Package shapes defines Shape and associated tools.
//
// Shape represents the shape (rank, dimensions and DType) of the value produced by
// an operation, either in the lazy IR (see package ir) or in a backend builder
// (see package backends). DType indicates the type of the unit element of such a
// value. The enumeration of DTypes is defined in github.com/gomlx/gopjrt/dtypes.
//
// Shapes are value types: their rank, dimensions and DType are fixed at creation
// and compared structurally. A Shape may also represent an ordered tuple of
// shapes, used by operations with more than one output.
//
// Go float16 support (commonly used by Nvidia GPUs) uses the
// github.com/x448/float16 implementation.
//
// ## Glossary
//
//   - Rank: number of axes (dimensions) of a value.
//   - Axis: is the index of a dimension. Sometimes used interchangeably with
//     Dimension, but here we try to refer to a dimension index as "axis"
//     (plural axes), and its size as its dimension.
//   - Dimension: the size of a value in one of its axes.
//   - Scalar: is a shape where there are no axes (or dimensions), only a single
//     value of the associated DType.
package shapes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	. "github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// ErrInvalidShape is the error kind reported when a malformed shape descriptor is
// given to an operation: a negative dimension or an invalid DType. Test with
// errors.Is.
var ErrInvalidShape = errors.New("invalid shape")

// Shape represents the shape of the value produced by a computation node, either
// in the lazy IR or in a backend builder.
//
// Use Make to create a new shape. See example in package shapes documentation.
type Shape struct {
	DType       DType
	Dimensions  []int
	TupleShapes []Shape // Shapes of the tuple, if this is a tuple.
}

// Make returns a Shape structure filled with the values given.
// It panics on negative dimensions: use Validate where the dimensions come from
// user input. See MakeTuple for tuple shapes.
func Make(dtype DType, dimensions ...int) Shape {
	s := Shape{Dimensions: slices.Clone(dimensions), DType: dtype}
	for _, dim := range dimensions {
		if dim < 0 {
			exceptions.Panicf("shapes.Make(%s): cannot create a shape with a negative dimension", s)
		}
	}
	return s
}

// Scalar returns a scalar Shape for the given type.
func Scalar[T NumberNotComplex]() Shape {
	return Shape{DType: FromGenericsType[T]()}
}

// Invalid returns an invalid shape.
//
// Invalid().Ok() == false.
func Invalid() Shape {
	return Shape{DType: InvalidDType}
}

// Ok returns whether this is a valid Shape. A "zero" shape, that is just instantiating it with Shape{} will be invalid.
func (s Shape) Ok() bool { return s.DType != InvalidDType || len(s.TupleShapes) > 0 }

// Validate checks the shape descriptor is well-formed: a valid DType and
// non-negative dimensions -- or a tuple of well-formed shapes. It returns an
// error matching ErrInvalidShape otherwise.
func (s Shape) Validate() error {
	if s.IsTuple() {
		if len(s.TupleShapes) == 0 {
			return errors.WithMessagef(ErrInvalidShape, "empty tuple shape %s", s)
		}
		for ii, subShape := range s.TupleShapes {
			if err := subShape.Validate(); err != nil {
				return errors.WithMessagef(err, "tuple element #%d of %s", ii, s)
			}
		}
		return nil
	}
	if s.DType == InvalidDType {
		return errors.WithMessagef(ErrInvalidShape, "shape has no DType")
	}
	for axis, dim := range s.Dimensions {
		if dim < 0 {
			return errors.WithMessagef(ErrInvalidShape, "axis #%d of %s has negative dimension", axis, s)
		}
	}
	return nil
}

// Rank of the shape, that is, the number of dimensions.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsScalar returns whether the shape represents a scalar, that is there are no dimensions (rank==0).
func (s Shape) IsScalar() bool { return s.Ok() && !s.IsTuple() && s.Rank() == 0 }

// Dim returns the dimension of the given axis. axis can take negative numbers, in which
// case it counts as starting from the end -- so axis=-1 refers to the last axis.
// Like with a slice indexing, it panics for an out-of-bound axis.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjustedAxis]
}

// Shape returns a shallow copy of itself. It implements the HasShape interface.
func (s Shape) Shape() Shape { return s }

// HasShape is an interface for objects that have an associated Shape: IR nodes,
// backend ops, tensors and Shape itself.
type HasShape interface {
	Shape() Shape
}

// String implements stringer, pretty-prints the shape.
func (s Shape) String() string {
	if s.TupleSize() > 0 {
		parts := make([]string, 0, s.TupleSize())
		for _, tuple := range s.TupleShapes {
			parts = append(parts, tuple.String())
		}
		return fmt.Sprintf("Tuple<%s>", strings.Join(parts, ", "))
	}
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	return fmt.Sprintf("(%s)%v", s.DType, s.Dimensions)
}

// Size returns the number of elements of DType are needed for this shape. It's the product of all dimensions.
func (s Shape) Size() (size int) {
	size = 1
	for _, d := range s.Dimensions {
		size *= d
	}
	return
}

// Memory returns the memory used to store an array of the given shape, the same as the size in bytes.
// Careful, so far all types in Go and on device seem to use the same sizes, but future type this is not guaranteed.
func (s Shape) Memory() uintptr {
	return s.DType.Memory() * uintptr(s.Size())
}

// MakeTuple returns a shape representing a tuple of elements with the given shapes.
func MakeTuple(elements []Shape) Shape {
	return Shape{DType: InvalidDType, Dimensions: nil, TupleShapes: slices.Clone(elements)}
}

// IsTuple returns whether the shape represents a tuple.
func (s Shape) IsTuple() bool {
	return s.DType == InvalidDType && len(s.TupleShapes) > 0
}

// TupleSize returns the number of elements in the tuple, if it is a tuple.
func (s Shape) TupleSize() int {
	return len(s.TupleShapes)
}

// Equal compares two shapes for equality: dtype and dimensions are compared.
func (s Shape) Equal(s2 Shape) bool {
	if s.DType != s2.DType {
		return false
	}
	if s.IsTuple() {
		if s.TupleSize() != s2.TupleSize() {
			return false
		}
		for ii, element := range s.TupleShapes {
			if !element.Equal(s2.TupleShapes[ii]) {
				return false
			}
		}
		return true
	}
	if s.Rank() != s2.Rank() {
		return false
	}
	if s.IsScalar() {
		return true
	}
	// For normal shapes just compare dimensions.
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// Clone returns a new deep copy of the shape.
func (s Shape) Clone() (s2 Shape) {
	s2.DType = s.DType
	s2.Dimensions = slices.Clone(s.Dimensions)
	if s.TupleSize() > 0 {
		s2.TupleShapes = make([]Shape, 0, len(s.TupleShapes))
		for _, subShape := range s.TupleShapes {
			s2.TupleShapes = append(s2.TupleShapes, subShape.Clone())
		}
	}
	return
}
