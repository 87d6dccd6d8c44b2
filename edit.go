package vec

// Push appends an element. When the Array is at capacity it first grows per
// the doubling policy, which relocates the existing elements into a new
// block.
func (a *Array[T]) Push(item T) {
	if a.size == a.items.Len() {
		a.reallocate(grownCapacity(a.items.Len()))
	}

	a.items.Slots()[a.size] = item
	a.size++

	a.stats.Pushes++
	if a.metrics != nil {
		a.metrics.pushes.Inc()
	}
	a.observe()
}

// Pop removes and returns the last element. The vacated slot keeps its
// contents and becomes part of the spare region; capacity does not change.
//
// Popping from an empty Array panics.
func (a *Array[T]) Pop() T {
	if a.size == 0 {
		panic("array is empty")
	}

	a.size--
	a.observe()
	return a.items.Slots()[a.size]
}

// Insert places item at index, shifting the elements at and after it one
// slot toward the tail. Inserting at index == size appends. When the Array
// is at capacity it first grows per the doubling policy.
//
// It returns the index of the inserted element. An index outside [0, size]
// panics.
func (a *Array[T]) Insert(index int, item T) int {
	if index < 0 || index > a.size {
		panic("index is out of range")
	}

	if a.size == a.items.Len() {
		a.reallocate(grownCapacity(a.items.Len()))
	}

	// copy handles the overlap of the two ranges like memmove would.
	slots := a.items.Slots()
	shifted := copy(slots[index+1:a.size+1], slots[index:a.size])
	slots[index] = item
	a.size++

	a.stats.Shifted += uint64(shifted)
	a.observe()
	return index
}

// Erase removes the element at index, shifting the elements after it one
// slot toward the head. The vacated tail slot keeps its contents and becomes
// part of the spare region; capacity does not change.
//
// It returns the index of the element that followed the erased one, which is
// the Array's size when the last element was erased. An index outside
// [0, size) panics.
func (a *Array[T]) Erase(index int) int {
	if index < 0 || index >= a.size {
		panic("index is out of range")
	}

	slots := a.items.Slots()
	shifted := copy(slots[index:a.size-1], slots[index+1:a.size])
	a.size--

	a.stats.Shifted += uint64(shifted)
	a.observe()
	return index
}
