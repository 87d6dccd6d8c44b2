package vec_test

import (
	"slices"
	"testing"

	"github.com/teenjuna/vec"
	"github.com/teenjuna/vec/internal/testing/require"
)

func TestNew(t *testing.T) {
	run(t, "No storage", func(t *testing.T) {
		a := vec.New[int]()
		require.Equal(t, a.Size(), 0)
		require.Equal(t, a.Capacity(), 0)
		require.Equal(t, a.Empty(), true)
		require.Equal(t, len(slices.Collect(a.Iter())), 0)
	})
}

func TestNewSized(t *testing.T) {
	run(t, "Zero size", func(t *testing.T) {
		a := vec.NewSized[int](0)
		require.Equal(t, a.Size(), 0)
		require.Equal(t, a.Capacity(), 0)
	})

	run(t, "Zero values", func(t *testing.T) {
		a := vec.NewSized[string](3)
		require.Equal(t, a.Size(), 3)
		require.Equal(t, a.Capacity(), 3)
		require.Equal(t, a.Slice(), []string{"", "", ""})
	})

	run(t, "Negative size", func(t *testing.T) {
		require.PanicWithError(t, "size can't be < 0", func() {
			_ = vec.NewSized[int](-1)
		})
	})
}

func TestNewFilled(t *testing.T) {
	run(t, "All slots filled", func(t *testing.T) {
		a := vec.NewFilled(4, "x")
		require.Equal(t, a.Size(), 4)
		require.Equal(t, a.Capacity(), 4)
		require.Equal(t, a.Slice(), []string{"x", "x", "x", "x"})
	})
}

func TestOf(t *testing.T) {
	run(t, "Order preserved", func(t *testing.T) {
		a := vec.Of(1, 2, 3)
		require.Equal(t, a.Size(), 3)
		require.Equal(t, a.Capacity(), 3)
		require.Equal(t, a.Slice(), []int{1, 2, 3})
	})

	run(t, "No values", func(t *testing.T) {
		a := vec.Of[int]()
		require.Equal(t, a.Size(), 0)
		require.Equal(t, a.Capacity(), 0)
	})
}

func TestClone(t *testing.T) {
	run(t, "Spare capacity is dropped", func(t *testing.T) {
		a := vec.Of(1, 2, 3)
		a.Reserve(10)

		c := a.Clone()
		require.Equal(t, c.Slice(), []int{1, 2, 3})
		require.Equal(t, c.Capacity(), 3)
	})

	run(t, "Storage is independent", func(t *testing.T) {
		a := vec.Of(1, 2, 3)
		c := a.Clone()
		c.Set(0, 42)
		require.Equal(t, a.Get(0), 1)
	})
}

func TestMove(t *testing.T) {
	run(t, "Source is emptied", func(t *testing.T) {
		src := vec.Of(1, 2, 3)
		src.Reserve(8)

		dst := vec.Move(src)
		require.Equal(t, dst.Slice(), []int{1, 2, 3})
		require.Equal(t, dst.Capacity(), 8)
		require.Equal(t, src.Size(), 0)
		require.Equal(t, src.Capacity(), 0)
	})

	run(t, "No allocation", func(t *testing.T) {
		src := vec.Of(1, 2, 3)
		dst := vec.Move(src)
		require.Equal(t, dst.Stats().Allocs, uint64(0))
	})
}

func TestCopyFrom(t *testing.T) {
	run(t, "Contents replaced", func(t *testing.T) {
		a := vec.Of(9, 9)
		b := vec.Of(1, 2, 3)
		b.Reserve(10)

		a.CopyFrom(b)
		require.Equal(t, a.Slice(), []int{1, 2, 3})
		require.Equal(t, a.Capacity(), 3)
		require.Equal(t, b.Slice(), []int{1, 2, 3})
	})

	run(t, "Self copy", func(t *testing.T) {
		a := vec.Of(1, 2, 3)
		a.CopyFrom(a)
		require.Equal(t, a.Slice(), []int{1, 2, 3})
		require.Equal(t, a.Capacity(), 3)
	})
}

func TestMoveFrom(t *testing.T) {
	run(t, "Source is emptied", func(t *testing.T) {
		a := vec.Of(9, 9)
		b := vec.Of(1, 2, 3)

		a.MoveFrom(b)
		require.Equal(t, a.Slice(), []int{1, 2, 3})
		require.Equal(t, b.Size(), 0)
		require.Equal(t, b.Capacity(), 0)
	})

	run(t, "No allocation", func(t *testing.T) {
		a := vec.New[int]()
		b := vec.Of(1, 2, 3)

		a.MoveFrom(b)
		require.Equal(t, a.Stats().Allocs, uint64(0))
	})

	run(t, "Self move", func(t *testing.T) {
		a := vec.Of(1, 2, 3)
		a.MoveFrom(a)
		require.Equal(t, a.Slice(), []int{1, 2, 3})
	})
}

func TestAccess(t *testing.T) {
	run(t, "Checked and unchecked agree", func(t *testing.T) {
		a := vec.Of(10, 20, 30)
		for i := range a.Size() {
			v, err := a.At(i)
			require.Nil(t, err)
			require.Equal(t, v, a.Get(i))
		}
	})

	run(t, "At is out of range exactly past size", func(t *testing.T) {
		a := vec.Of(10, 20, 30)
		a.Reserve(10)

		_, err := a.At(2)
		require.Nil(t, err)
		_, err = a.At(3)
		require.ErrorIs(t, err, vec.ErrOutOfRange)
		_, err = a.At(-1)
		require.ErrorIs(t, err, vec.ErrOutOfRange)
	})

	run(t, "At on empty array", func(t *testing.T) {
		a := vec.New[int]()
		_, err := a.At(0)
		require.ErrorIs(t, err, vec.ErrOutOfRange)
	})

	run(t, "SetAt", func(t *testing.T) {
		a := vec.Of(10, 20, 30)
		require.Nil(t, a.SetAt(1, 42))
		require.Equal(t, a.Get(1), 42)
		require.ErrorIs(t, a.SetAt(3, 42), vec.ErrOutOfRange)
	})

	run(t, "Unchecked access reaches spare slots", func(t *testing.T) {
		a := vec.Of(10, 20, 30)
		a.Pop()
		require.Equal(t, a.Size(), 2)
		require.Equal(t, a.Get(2), 30)
	})

	run(t, "Unchecked access past capacity", func(t *testing.T) {
		a := vec.Of(10, 20, 30)
		require.Panic(t, func() {
			_ = a.Get(3)
		})
	})
}

func TestSlice(t *testing.T) {
	run(t, "Aliases the storage", func(t *testing.T) {
		a := vec.Of(1, 2, 3)
		s := a.Slice()
		s[1] = 42
		require.Equal(t, a.Get(1), 42)
	})
}

func TestIter(t *testing.T) {
	run(t, "Live elements in order", func(t *testing.T) {
		a := vec.Of(1, 2, 3)
		a.Reserve(10)
		require.Equal(t, slices.Collect(a.Iter()), []int{1, 2, 3})
	})
}

func TestSwap(t *testing.T) {
	run(t, "Contents exchanged", func(t *testing.T) {
		a := vec.Of(1, 2)
		a.Reserve(4)
		b := vec.Of(3, 4, 5)

		a.Swap(b)
		require.Equal(t, a.Slice(), []int{3, 4, 5})
		require.Equal(t, a.Capacity(), 3)
		require.Equal(t, b.Slice(), []int{1, 2})
		require.Equal(t, b.Capacity(), 4)
	})

	run(t, "Self swap", func(t *testing.T) {
		a := vec.Of(1, 2, 3)
		a.Swap(a)
		require.Equal(t, a.Slice(), []int{1, 2, 3})
	})
}
