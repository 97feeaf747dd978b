package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	s := MakeSet[int]()
	require.False(t, s.Has(3))
	s.Insert(3, 5)
	require.True(t, s.Has(3))
	require.True(t, s.Has(5))
	require.Len(t, s, 2)

	s2 := SetWith("a", "b", "a")
	require.Len(t, s2, 2)
	require.True(t, s2.Has("a"))
	require.False(t, s2.Has("c"))
}
