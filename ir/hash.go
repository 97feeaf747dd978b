package ir

import (
	"encoding/binary"
	"math"
	"reflect"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"

	"github.com/gomlx/lazygraph/types/shapes"
)

// Node hashing: a node's hash is an xxhash over a canonical byte encoding of
// its kind, output shapes, attributes (in sorted key order) and the operands'
// hashes. Every component is length- or tag-prefixed, so distinct structures
// never collide by concatenation. The encoding has no map iteration or
// pointer values in it, so hashes are stable across processes.

func hashNode(kind OpKind, operands []Value, attrs Attributes, outputShapes []shapes.Shape) uint64 {
	d := xxhash.New()
	hashString(d, kind.Namespace)
	hashString(d, kind.Name)
	hashInt(d, len(outputShapes))
	for _, s := range outputShapes {
		hashShape(d, s)
	}
	hashInt(d, len(attrs))
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		hashString(d, key)
		hashAttrValue(d, kind, key, attrs[key])
	}
	hashInt(d, len(operands))
	for _, operand := range operands {
		hashUint64(d, operand.Node.hash)
		hashInt(d, operand.OutputIdx)
	}
	return d.Sum64()
}

func hashUint64(d *xxhash.Digest, value uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	_, _ = d.Write(buf[:])
}

func hashInt(d *xxhash.Digest, value int) {
	hashUint64(d, uint64(value))
}

func hashString(d *xxhash.Digest, value string) {
	hashInt(d, len(value))
	_, _ = d.WriteString(value)
}

func hashShape(d *xxhash.Digest, s shapes.Shape) {
	hashInt(d, int(s.DType))
	hashInt(d, s.Rank())
	for _, dim := range s.Dimensions {
		hashInt(d, dim)
	}
	hashInt(d, len(s.TupleShapes))
	for _, sub := range s.TupleShapes {
		hashShape(d, sub)
	}
}

// hashAttrValue encodes one attribute value, tagged by type.
func hashAttrValue(d *xxhash.Digest, kind OpKind, key string, value any) {
	switch v := value.(type) {
	case bool:
		hashInt(d, 1)
		if v {
			hashInt(d, 1)
		} else {
			hashInt(d, 0)
		}
	case int:
		hashInt(d, 2)
		hashInt(d, v)
	case int64:
		hashInt(d, 3)
		hashUint64(d, uint64(v))
	case float64:
		hashInt(d, 4)
		hashUint64(d, math.Float64bits(v))
	case string:
		hashInt(d, 5)
		hashString(d, v)
	case []int:
		hashInt(d, 6)
		hashInt(d, len(v))
		for _, elem := range v {
			hashInt(d, elem)
		}
	case [][2]int:
		hashInt(d, 7)
		hashInt(d, len(v))
		for _, pair := range v {
			hashInt(d, pair[0])
			hashInt(d, pair[1])
		}
	case dtypes.DType:
		hashInt(d, 8)
		hashInt(d, int(v))
	case shapes.Shape:
		hashInt(d, 9)
		hashShape(d, v)
	default:
		// Typed flat slices, as stored by constants.
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Size() > 0 {
			hashInt(d, 10)
			hashString(d, rv.Type().Elem().String())
			hashInt(d, rv.Len())
			if err := binary.Write(d, binary.LittleEndian, value); err == nil {
				return
			}
		}
		exceptions.Panicf("op %s: attribute %q has unhashable type %T", kind, key, value)
	}
}
