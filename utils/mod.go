package utils

import "golang.org/x/exp/slices"

func FindIndex[T comparable](slice []T, item T) int {
	return slices.Index(slice, item)
}

// RotateToFront moves slice[i] to the front and shifts slice[:i] back by one,
// keeping the order of everything else.
func RotateToFront[T any](slice []T, i int) {
	if i <= 0 || i >= len(slice) {
		return
	}
	item := slice[i]
	copy(slice[1:i+1], slice[:i])
	slice[0] = item
}
