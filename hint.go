package vec

import "github.com/teenjuna/vec/internal/block"

// CapacityHint is an immutable request for pre-allocated capacity. It is
// built by [Reserve] and consumed by [NewReserved]; it has no identity
// beyond the value it carries.
type CapacityHint struct {
	capacity int
}

// Reserve returns a CapacityHint requesting the given capacity.
func Reserve(capacity int) CapacityHint {
	if capacity < 0 {
		panic("capacity can't be < 0")
	}
	return CapacityHint{capacity: capacity}
}

// Capacity returns the requested capacity.
func (h CapacityHint) Capacity() int {
	return h.capacity
}

// NewReserved returns an empty Array with the hinted capacity already
// allocated: size is 0, capacity equals the hint and all hinted slots hold
// the zero value. No live elements are created.
func NewReserved[T any](hint CapacityHint) *Array[T] {
	a := &Array[T]{items: block.New[T](hint.capacity)}
	if hint.capacity > 0 {
		a.stats.Allocs++
	}
	return a
}
