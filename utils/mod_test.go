package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 2, FindIndex([]string{"a", "b", "c"}, "c"))
	require.Equal(t, -1, FindIndex([]string{"a", "b", "c"}, "d"))
	require.Equal(t, -1, FindIndex(nil, 1))
}

func TestRotateToFront(t *testing.T) {
	t.Run("rotates the prefix", func(t *testing.T) {
		s := []int{1, 2, 3, 4, 5}

		RotateToFront(s, 3)

		require.Equal(t, []int{4, 1, 2, 3, 5}, s)
	})

	t.Run("front and out of range are no-ops", func(t *testing.T) {
		s := []int{1, 2, 3}

		RotateToFront(s, 0)
		RotateToFront(s, -1)
		RotateToFront(s, 3)

		require.Equal(t, []int{1, 2, 3}, s)
	})
}
