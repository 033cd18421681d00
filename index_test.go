package exists_test

import (
	"math"
	"testing"

	"github.com/ptrkit/exists"
	"github.com/stretchr/testify/require"
)

func TestPositionIndexTotality(t *testing.T) {
	data := []int{10, 20, 30, 40, 50}
	s := exists.NewSlice(data)

	for p := -1; p <= len(data)+1; p++ {
		r, ok := s.Get(p)
		if p >= 0 && p < len(data) {
			require.True(t, ok, "position %d", p)
			require.Equal(t, data[p], r.Get())
		} else {
			require.False(t, ok, "position %d", p)
		}
	}
}

func TestRangeIndexTotality(t *testing.T) {
	s := exists.NewSlice([]int{10, 20, 30, 40, 50})

	for start := -1; start <= 6; start++ {
		for end := -1; end <= 6; end++ {
			sub, ok := s.GetRange(exists.Span{Start: start, End: end})
			if start >= 0 && start <= end && end <= s.Len() {
				require.True(t, ok, "range [%d, %d)", start, end)
				require.Equal(t, end-start, sub.Len())
			} else {
				require.False(t, ok, "range [%d, %d)", start, end)
			}
		}
	}
}

func TestRangeIndexContents(t *testing.T) {
	data := []int{10, 20, 30, 40, 50}
	s := exists.NewSlice(data)

	sub := s.IndexRange(exists.Span{Start: 1, End: 4})
	require.Equal(t, 3, sub.Len())
	require.Equal(t, 20, sub.Index(0).Get())
	require.Equal(t, 40, sub.Index(2).Get())

	head := s.IndexRange(exists.SpanTo{End: 2})
	require.Equal(t, 2, head.Len())
	require.Equal(t, 10, head.Index(0).Get())

	tail := s.IndexRange(exists.SpanFrom{Start: 3})
	require.Equal(t, 2, tail.Len())
	require.Equal(t, 50, tail.Index(1).Get())

	whole := s.IndexRange(exists.Full{})
	require.Equal(t, s.Len(), whole.Len())
	require.Equal(t, s.Addr(), whole.Addr())
}

func TestInclusiveRangeIndex(t *testing.T) {
	data := []int{10, 20, 30, 40, 50}
	s := exists.NewSlice(data)

	sub, ok := s.GetRange(exists.SpanInclusive{Start: 1, End: 3})
	require.True(t, ok)
	require.Equal(t, 3, sub.Len())
	require.Equal(t, 40, sub.Index(2).Get())

	// The closed end may be the last element, but no further.
	_, ok = s.GetRange(exists.SpanInclusive{Start: 0, End: 4})
	require.True(t, ok)
	_, ok = s.GetRange(exists.SpanInclusive{Start: 0, End: 5})
	require.False(t, ok)

	// An inclusive end at the top of the int range cannot be represented.
	_, ok = s.GetRange(exists.SpanInclusive{Start: 0, End: math.MaxInt})
	require.False(t, ok)
}

func TestIndexPanicMessages(t *testing.T) {
	s := exists.NewSlice([]int{10, 20, 30, 40, 50})

	require.PanicsWithValue(t, "index 5 out of range for slice of length 5", func() {
		s.Index(5)
	})
	require.PanicsWithValue(t, "slice index starts at 3 but ends at 2", func() {
		s.IndexRange(exists.Span{Start: 3, End: 2})
	})
	require.PanicsWithValue(t, "range start index 6 out of range for slice of length 5", func() {
		s.IndexRange(exists.SpanFrom{Start: 6})
	})
	require.PanicsWithValue(t, "range end index 6 out of range for slice of length 5", func() {
		s.IndexRange(exists.Span{Start: 0, End: 6})
	})
	require.PanicsWithValue(t, "inclusive range end exceeds the maximum representable index", func() {
		s.IndexRange(exists.SpanInclusive{Start: 0, End: math.MaxInt})
	})
}

func TestIndexMutPanicMessages(t *testing.T) {
	data := make([]int, 5)
	m := exists.NewMutSlice(data)

	require.PanicsWithValue(t, "index 7 out of range for slice of length 5", func() {
		m.IndexMut(7)
	})
	require.PanicsWithValue(t, "range end index 9 out of range for slice of length 5", func() {
		m.IndexRangeMut(exists.SpanTo{End: 9})
	})
}

func TestUncheckedIndexing(t *testing.T) {
	data := []int{10, 20, 30, 40, 50}
	s := exists.NewSlice(data)

	require.Equal(t, 30, s.GetUnchecked(2).Get())

	sub := s.GetRangeUnchecked(exists.Span{Start: 2, End: 5})
	require.Equal(t, 3, sub.Len())
	require.Equal(t, 30, sub.Index(0).Get())

	m := exists.NewMutSlice(data)
	m.GetUncheckedMut(0).Set(11)
	require.Equal(t, 11, data[0])

	subMut := m.GetRangeUncheckedMut(exists.SpanFrom{Start: 4})
	subMut.IndexMut(0).Set(55)
	require.Equal(t, 55, data[4])

	// The read-only unchecked forms are callable on a mutable handle too.
	require.Equal(t, 11, m.GetUnchecked(0).Get())
	readBack := m.GetRangeUnchecked(exists.Span{Start: 3, End: 5})
	require.Equal(t, 2, readBack.Len())
	require.Equal(t, 55, readBack.Index(1).Get())

	readSub, ok := m.GetRange(exists.SpanTo{End: 2})
	require.True(t, ok)
	require.Equal(t, 20, readSub.Index(1).Get())
}
