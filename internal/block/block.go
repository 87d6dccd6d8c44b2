// This package contains [Block], the raw storage unit of an array.
package block

// Block exclusively owns one fixed-length run of element slots.
//
// A Block knows only how many slots it was allocated with; it has no notion
// of how many of them hold meaningful values. Slots start out at the zero
// value of the element type.
//
// Blocks must not be duplicated: assigning one to another would make two
// owners of the same slots. Ownership is transferred with [Take] or
// [Block.MoveFrom], or exchanged with [Block.Swap].
type Block[T any] struct {
	slots []T
}

// New allocates a Block of length slots. A zero length yields an empty Block
// that owns no memory.
func New[T any](length int) Block[T] {
	if length < 0 {
		panic("length can't be < 0")
	}
	if length == 0 {
		return Block[T]{}
	}
	return Block[T]{slots: make([]T, length)}
}

// Take transfers ownership of src's slots into a new Block, leaving src
// empty with zero length.
func Take[T any](src *Block[T]) Block[T] {
	b := Block[T]{slots: src.slots}
	src.slots = nil
	return b
}

// Len returns the number of allocated slots.
func (b *Block[T]) Len() int {
	return len(b.slots)
}

// Slots returns the raw slot sequence. It is nil for an empty Block.
func (b *Block[T]) Slots() []T {
	return b.slots
}

// Swap exchanges the owned slots of two Blocks in constant time. It never
// allocates.
func (b *Block[T]) Swap(other *Block[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// MoveFrom releases b's current slots and takes ownership of src's, leaving
// src empty with zero length.
func (b *Block[T]) MoveFrom(src *Block[T]) {
	if b == src {
		return
	}
	b.slots = src.slots
	src.slots = nil
}

// Release drops the owned slots, leaving the Block empty with zero length.
func (b *Block[T]) Release() {
	b.slots = nil
}
