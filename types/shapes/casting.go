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

package shapes

import (
	"github.com/gomlx/exceptions"
	. "github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/x448/float16"
)

// ScalarFlat converts value to a flat (1-element) slice of the Go type
// corresponding to dtype. It is used to materialize scalar constants of an
// arbitrary DType in a backend builder -- e.g., the literal 1 used when lowering
// a sigmoid.
//
// It panics for dtypes with no Go scalar representation (tuples, opaque types):
// this is a programming error on the caller's side.
func ScalarFlat(dtype DType, value float64) any {
	switch dtype {
	case Bool:
		return []bool{value != 0}
	case Int8:
		return []int8{int8(value)}
	case Int16:
		return []int16{int16(value)}
	case Int32:
		return []int32{int32(value)}
	case Int64:
		return []int64{int64(value)}
	case Uint8:
		return []uint8{uint8(value)}
	case Uint16:
		return []uint16{uint16(value)}
	case Uint32:
		return []uint32{uint32(value)}
	case Uint64:
		return []uint64{uint64(value)}
	case Float16:
		return []float16.Float16{float16.Fromfloat32(float32(value))}
	case BFloat16:
		return []bfloat16.BFloat16{bfloat16.FromFloat32(float32(value))}
	case Float32:
		return []float32{float32(value)}
	case Float64:
		return []float64{value}
	case Complex64:
		return []complex64{complex(float32(value), 0)}
	case Complex128:
		return []complex128{complex(value, 0)}
	}
	exceptions.Panicf("shapes.ScalarFlat: dtype %s has no Go scalar representation", dtype)
	return nil
}
