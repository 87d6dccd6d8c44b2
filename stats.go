package vec

// Stats counts the storage events of an Array since its construction.
// Useful for verifying growth behaviour without attaching metrics.
type Stats struct {
	// Allocs is the number of blocks allocated.
	Allocs uint64
	// Grows is the number of capacity growths.
	Grows uint64
	// Moved is the number of elements relocated into a new block during
	// growths.
	Moved uint64
	// Shifted is the number of elements shifted within the block by Insert
	// and Erase.
	Shifted uint64
	// Pushes is the number of elements appended with Push.
	Pushes uint64
}

// Stats returns a snapshot of the Array's storage event counters.
func (a *Array[T]) Stats() Stats {
	return a.stats
}
