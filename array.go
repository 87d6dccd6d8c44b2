// Package vec provides a generic, contiguous, growable array container.
package vec

import (
	"errors"
	"iter"
	"slices"

	"github.com/teenjuna/vec/internal/block"
)

var (
	ErrOutOfRange = errors.New("index is out of range")
)

// Array is a growable sequence of elements stored in one contiguous block.
//
// An Array owns a single [block.Block] of capacity slots, of which the first
// size hold live values. Slots between size and capacity are allocated but
// carry no meaning: they hold zero values or remnants of removed elements.
// Every mutating operation keeps size <= capacity and capacity equal to the
// block length.
//
// Mutating operations that grow capacity replace the block, which invalidates
// any slice previously obtained from [Array.Slice] and any pointers into it.
//
// An Array is not thread-safe and each instance is used by a single owner.
type Array[T any] struct {
	items   block.Block[T]
	size    int
	stats   Stats
	metrics *metrics
}

// New returns an empty Array with no allocated storage.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// NewSized returns an Array of size zero-valued elements. Both size and
// capacity equal the requested size.
func NewSized[T any](size int) *Array[T] {
	if size < 0 {
		panic("size can't be < 0")
	}

	a := &Array[T]{items: block.New[T](size), size: size}
	if size > 0 {
		a.stats.Allocs++
	}
	return a
}

// NewFilled returns an Array of size elements, each set to a copy of value.
func NewFilled[T any](size int, value T) *Array[T] {
	a := NewSized[T](size)
	for i := range a.items.Slots() {
		a.items.Slots()[i] = value
	}
	return a
}

// Of returns an Array holding the given values in order. Both size and
// capacity equal the number of values.
func Of[T any](values ...T) *Array[T] {
	a := NewSized[T](len(values))
	copy(a.items.Slots(), values)
	return a
}

// Move transfers the contents of src into a new Array without touching any
// element. src is left empty with zero capacity.
func Move[T any](src *Array[T]) *Array[T] {
	a := &Array[T]{items: block.Take(&src.items), size: src.size}
	src.size = 0
	src.observe()
	return a
}

// Clone returns a copy of the Array holding the same elements in order.
//
// The copy's capacity equals the source's size: spare capacity of the source
// is intentionally not preserved, only its live elements are.
func (a *Array[T]) Clone() *Array[T] {
	c := NewSized[T](a.size)
	copy(c.items.Slots(), a.items.Slots()[:a.size])
	return c
}

// CopyFrom replaces the contents of the Array with a copy of other's
// elements. Copying from itself is a no-op.
//
// Like [Array.Clone], it adopts other's size as the new capacity.
func (a *Array[T]) CopyFrom(other *Array[T]) {
	if a == other {
		return
	}

	tmp := other.Clone()
	a.items.Swap(&tmp.items)
	a.size, tmp.size = tmp.size, a.size
	a.stats.Allocs += tmp.stats.Allocs
	a.observe()
}

// MoveFrom replaces the contents of the Array with other's, leaving other
// empty with zero capacity. No element is copied. Moving from itself is a
// no-op.
func (a *Array[T]) MoveFrom(other *Array[T]) {
	if a == other {
		return
	}

	tmp := Move(other)
	a.items.Swap(&tmp.items)
	a.size, tmp.size = tmp.size, a.size
	a.observe()
}

// Size returns the number of live elements.
func (a *Array[T]) Size() int {
	return a.size
}

// Capacity returns the number of allocated element slots.
func (a *Array[T]) Capacity() int {
	return a.items.Len()
}

// Empty reports whether the Array holds no live elements.
func (a *Array[T]) Empty() bool {
	return a.size == 0
}

// Get returns the element at index without validating it against the current
// size. Indexes in [size, capacity) read the unspecified contents of spare
// slots; indexes outside the allocated block panic.
func (a *Array[T]) Get(index int) T {
	return a.items.Slots()[index]
}

// Set stores value at index without validating it against the current size.
// Indexes in [size, capacity) overwrite spare slots; indexes outside the
// allocated block panic.
func (a *Array[T]) Set(index int, value T) {
	a.items.Slots()[index] = value
}

// At returns the element at index, or [ErrOutOfRange] when index is not in
// [0, size).
func (a *Array[T]) At(index int) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, ErrOutOfRange
	}
	return a.items.Slots()[index], nil
}

// SetAt stores value at index, or returns [ErrOutOfRange] when index is not
// in [0, size).
func (a *Array[T]) SetAt(index int, value T) error {
	if index < 0 || index >= a.size {
		return ErrOutOfRange
	}
	a.items.Slots()[index] = value
	return nil
}

// Slice returns the live elements as a contiguous, mutable slice.
//
// The slice aliases the Array's storage: writes through it are visible in the
// Array, and any capacity growth invalidates it.
func (a *Array[T]) Slice() []T {
	return a.items.Slots()[:a.size]
}

// Iter returns a sequence of the live elements in order.
func (a *Array[T]) Iter() iter.Seq[T] {
	return slices.Values(a.Slice())
}

// Swap exchanges the contents of two Arrays in constant time. No element is
// copied and no allocation happens.
func (a *Array[T]) Swap(other *Array[T]) {
	if a == other {
		return
	}

	a.items.Swap(&other.items)
	a.size, other.size = other.size, a.size
	a.observe()
	other.observe()
}
