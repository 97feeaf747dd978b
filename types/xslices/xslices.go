// Package xslices provide missing functionality to the slices package.
package xslices

import (
	"golang.org/x/exp/constraints"
)

// Map executes the given function sequentially for every element on in, and returns a mapped slice.
func Map[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}

// At returns the element at the given position. It supports negative indexing: At(s, -1)
// returns the last element.
func At[T any](slice []T, pos int) T {
	if pos < 0 {
		pos = len(slice) + pos
	}
	return slice[pos]
}

// Last returns the last element of the slice.
func Last[T any](slice []T) T {
	return slice[len(slice)-1]
}

// SliceWithValue creates a slice of the given size with copies of the given value.
func SliceWithValue[T any](size int, value T) []T {
	s := make([]T, size)
	for ii := range s {
		s[ii] = value
	}
	return s
}

// Iota returns a slice of incremental int values, starting with start and of the given length.
// E.g.: Iota(3.0, 2) -> []float64{3.0, 4.0}
func Iota[T interface {
	constraints.Integer | constraints.Float
}](start T, length int) (slice []T) {
	slice = make([]T, length)
	for ii := range slice {
		slice[ii] = start + T(ii)
	}
	return
}
