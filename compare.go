package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same size and equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a == b {
		return true
	}
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like Equal but uses eq to compare elements.
func EqualFunc[T1, T2 any](a *Vector[T1], b *Vector[T2], eq func(T1, T2) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare orders a and b lexicographically. The result is 0 if a == b,
// -1 if a < b, and +1 if a > b. A shorter vector that is a prefix of the
// other is the lesser one.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is like Compare but uses cmp to compare elements.
func CompareFunc[T1, T2 any](a *Vector[T1], b *Vector[T2], cmp func(T1, T2) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), cmp)
}

// Less reports whether a sorts before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}
