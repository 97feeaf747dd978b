package xslices

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	require.Equal(t, []int{2, 4, 6}, Map([]int{1, 2, 3}, func(e int) int { return 2 * e }))
	require.Empty(t, Map(nil, func(e int) int { return e }))
}

func TestAt(t *testing.T) {
	s := []string{"a", "b", "c"}
	require.Equal(t, "a", At(s, 0))
	require.Equal(t, "c", At(s, -1))
	require.Equal(t, "b", At(s, -2))
	require.Equal(t, "c", Last(s))
	require.Panics(t, func() { At(s, 3) })
}

func TestSliceWithValue(t *testing.T) {
	require.Equal(t, []int{7, 7, 7}, SliceWithValue(3, 7))
	require.Empty(t, SliceWithValue(0, 7))
}

func TestIota(t *testing.T) {
	require.Equal(t, []float64{3, 4}, Iota(3.0, 2))
	require.Equal(t, []int{0, 1, 2}, Iota(0, 3))
}
