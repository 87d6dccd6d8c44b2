package vec

import (
	"cmp"
	"slices"
)

// Equal reports whether two Arrays hold the same elements in the same order.
// Capacity plays no part in equality.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is [Equal] with a caller-supplied element equality, for element
// types that are not comparable.
func EqualFunc[A, B any](a *Array[A], b *Array[B], eq func(A, B) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare orders two Arrays lexicographically, element by element. When one
// is a prefix of the other, the shorter orders first. The result follows the
// [cmp.Compare] convention: -1 when a orders before b, 0 when they are
// equal, +1 when a orders after b, so the sign also answers the derived
// relations (a < b, a <= b, a > b, a >= b).
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is [Compare] with a caller-supplied element ordering, for
// element types that are not ordered.
func CompareFunc[A, B any](a *Array[A], b *Array[B], compare func(A, B) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), compare)
}
