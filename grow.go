package vec

import "github.com/teenjuna/vec/internal/block"

// Reserve grows capacity to exactly the requested value. When capacity is
// already sufficient it does nothing.
//
// Growing allocates a new block of capacity slots, relocates the live
// elements into it in order and releases the old block. Size does not change.
func (a *Array[T]) Reserve(capacity int) {
	if capacity < 0 {
		panic("capacity can't be < 0")
	}
	if capacity <= a.items.Len() {
		return
	}

	a.reallocate(capacity)
	a.observe()
}

// Resize sets the number of live elements to size.
//
// Shrinking is logical only: abandoned slots keep their last contents and
// become part of the spare region. Growing within capacity sets the new
// slots to the zero value. Growing past capacity relocates the elements into
// a new block of max(size, capacity*2) slots.
func (a *Array[T]) Resize(size int) {
	if size < 0 {
		panic("size can't be < 0")
	}

	switch {
	case size <= a.size:
		a.size = size
	case size <= a.items.Len():
		clear(a.items.Slots()[a.size:size])
		a.size = size
	default:
		a.reallocate(max(size, a.items.Len()*2))
		a.size = size
	}

	a.observe()
}

// Clear removes all live elements. Capacity does not change.
func (a *Array[T]) Clear() {
	a.Resize(0)
}

// reallocate replaces the block with a freshly allocated one of the given
// capacity, relocating the live elements in order. Slots past size start out
// at the zero value. The caller guarantees capacity >= size.
func (a *Array[T]) reallocate(capacity int) {
	next := block.New[T](capacity)
	moved := copy(next.Slots(), a.items.Slots()[:a.size])
	a.items.Swap(&next)
	next.Release()

	a.stats.Allocs++
	a.stats.Grows++
	a.stats.Moved += uint64(moved)
	if a.metrics != nil {
		a.metrics.grows.Inc()
		a.metrics.moved.Add(float64(moved))
	}
}

// grownCapacity implements the doubling policy of appends and insertions: an
// array without storage gets a single slot, everything else doubles.
func grownCapacity(capacity int) int {
	if capacity == 0 {
		return 1
	}
	return capacity * 2
}
