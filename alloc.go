package vector

import "unsafe"

// allocSlots returns n zero-valued slots with len == cap == n.
// Returns nil if n <= 0.
func allocSlots[T any](n int) []T {
	if n <= 0 {
		return nil
	}
	return make([]T, n)
}

// slotSize returns the size in bytes of one slot of type T.
func slotSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
