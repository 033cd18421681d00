package exists

import (
	"unsafe"
)

// Slice is the read-capable existence handle over a contiguous run of
// elements: an address plus an explicit length. A valid Slice certifies that
// Len() properly initialized, T-aligned values are readable starting at its
// address, all inside one allocation, with a total byte size that fits the
// addressable range.
//
// Indexing a Slice carves out sub-handles by pointer arithmetic alone; no
// element is read or copied until a scalar handle's Get runs.
type Slice[T any] struct {
	data   unsafe.Pointer
	length int
}

// MutSlice is the read-write-capable counterpart of Slice. Like Mut, it never
// asserts exclusivity: handles over overlapping runs may coexist, and the
// caller sequences the actual accesses.
type MutSlice[T any] struct {
	data   unsafe.Pointer
	length int
}

// NewSlice returns a read handle over the elements of s. An empty s yields an
// empty handle, which may carry a nil address.
func NewSlice[T any](s []T) Slice[T] {
	return Slice[T]{data: unsafe.Pointer(unsafe.SliceData(s)), length: len(s)}
}

// NewMutSlice returns a read-write handle over the elements of s.
func NewMutSlice[T any](s []T) MutSlice[T] {
	return MutSlice[T]{data: unsafe.Pointer(unsafe.SliceData(s)), length: len(s)}
}

// NewMutSliceFromCells returns a read-write handle over the contents of a run
// of cells. Cell is a bare wrapper over T, so the cells' payloads form a
// contiguous run of T. Handles made this way may alias each other freely, per
// the cells' own sharing rules.
func NewMutSliceFromCells[T any](cells []Cell[T]) MutSlice[T] {
	return MutSlice[T]{data: unsafe.Pointer(unsafe.SliceData(cells)), length: len(cells)}
}

// NewSliceUnsafe returns a read handle over length elements starting at p.
//
// The caller must guarantee that for the entire time the handle is in use, p
// is aligned for T and points at length contiguous initialized values of T,
// all within a single allocation, with length*sizeof(T) not exceeding the
// addressable range, and that none of them is mutated except through an
// interior-mutable path. p may be nil only when length is zero.
func NewSliceUnsafe[T any](p unsafe.Pointer, length int) Slice[T] {
	return Slice[T]{data: p, length: length}
}

// NewMutSliceUnsafe returns a read-write handle over length elements starting
// at p.
//
// The caller's obligations are those of NewSliceUnsafe, with the run
// additionally valid for writes, and with no ordinary pointer relied upon as
// exclusive over any part of it while the handle is used to write.
func NewMutSliceUnsafe[T any](p unsafe.Pointer, length int) MutSlice[T] {
	return MutSlice[T]{data: p, length: length}
}

// Len returns the number of elements the handle covers. No memory is read.
func (s Slice[T]) Len() int {
	return s.length
}

// IsEmpty returns true if the handle covers no elements.
func (s Slice[T]) IsEmpty() bool {
	return s.length == 0
}

// Addr returns the raw start address of the covered run.
func (s Slice[T]) Addr() unsafe.Pointer {
	return s.data
}

// Get returns a scalar read handle for position i, or ok=false when i is
// outside [0, Len()).
func (s Slice[T]) Get(i int) (Ref[T], bool) {
	if i < 0 || i >= s.length {
		return Ref[T]{}, false
	}
	return s.GetUnchecked(i), true
}

// GetUnchecked returns a scalar read handle for position i with no bounds
// check. The caller must guarantee 0 <= i < Len(); the result of violating
// that is invalid even if the handle is never used.
func (s Slice[T]) GetUnchecked(i int) Ref[T] {
	debugAssertIndex(i, s.length)
	return Ref[T]{data: unsafe.Add(s.data, uintptr(i)*sizeOf[T]())}
}

// Index returns a scalar read handle for position i, panicking with the fixed
// out-of-range diagnostic when i is outside [0, Len()).
func (s Slice[T]) Index(i int) Ref[T] {
	if i < 0 || i >= s.length {
		indexOutOfRange(i, s.length)
	}
	return s.GetUnchecked(i)
}

// GetRange returns a read handle over the window selected by r, or ok=false
// when the window is inverted or an endpoint falls outside [0, Len()].
func (s Slice[T]) GetRange(r RangeIndex) (Slice[T], bool) {
	start, end, ok := r.bounds(s.length)
	if !ok {
		return Slice[T]{}, false
	}
	return s.subslice(start, end), true
}

// GetRangeUnchecked returns a read handle over the window selected by r with
// no bounds check. The caller must guarantee the window is in bounds and not
// inverted.
func (s Slice[T]) GetRangeUnchecked(r RangeIndex) Slice[T] {
	start, end := r.rawBounds(s.length)
	debugAssertRange(start, end, s.length)
	return s.subslice(start, end)
}

// IndexRange returns a read handle over the window selected by r, panicking
// with the fixed diagnostics when the window is invalid.
func (s Slice[T]) IndexRange(r RangeIndex) Slice[T] {
	start, end := r.mustBounds(s.length)
	return s.subslice(start, end)
}

// SplitAt returns two read handles covering [0, i) and [i, Len()). It panics
// with the fixed range diagnostics when i is outside [0, Len()].
func (s Slice[T]) SplitAt(i int) (Slice[T], Slice[T]) {
	return s.IndexRange(SpanTo{End: i}), s.IndexRange(SpanFrom{Start: i})
}

// AssumeMutable asserts that the covered run is actually writable, upgrading
// the handle with no runtime check.
//
// The caller must guarantee the run genuinely has write provenance. If the
// result never performs a write, an unjustified AssumeMutable does no harm on
// its own.
func (s Slice[T]) AssumeMutable() MutSlice[T] {
	return MutSlice[T]{data: s.data, length: s.length}
}

// SliceUnchecked converts the handle back into an ordinary Go slice.
//
// This is the escape hatch for APIs that demand a []T. The caller must
// guarantee that, for as long as the result is in use, no element is written
// through any handle over the run.
func (s Slice[T]) SliceUnchecked() []T {
	return unsafe.Slice((*T)(s.data), s.length)
}

func (s Slice[T]) subslice(start, end int) Slice[T] {
	return Slice[T]{
		data:   unsafe.Add(s.data, uintptr(start)*sizeOf[T]()),
		length: end - start,
	}
}

// Slice downgrades the handle to its read-only form. Always safe.
func (m MutSlice[T]) Slice() Slice[T] {
	return Slice[T]{data: m.data, length: m.length}
}

// Len returns the number of elements the handle covers. No memory is read.
func (m MutSlice[T]) Len() int {
	return m.length
}

// IsEmpty returns true if the handle covers no elements.
func (m MutSlice[T]) IsEmpty() bool {
	return m.length == 0
}

// Addr returns the raw start address of the covered run.
func (m MutSlice[T]) Addr() unsafe.Pointer {
	return m.data
}

// Get returns a scalar read handle for position i, or ok=false when i is out
// of bounds.
func (m MutSlice[T]) Get(i int) (Ref[T], bool) {
	return m.Slice().Get(i)
}

// GetUnchecked returns a scalar read handle for position i with no bounds
// check. The caller must guarantee 0 <= i < Len().
func (m MutSlice[T]) GetUnchecked(i int) Ref[T] {
	return m.Slice().GetUnchecked(i)
}

// GetRange returns a read handle over the window selected by r, or ok=false
// when the window is invalid.
func (m MutSlice[T]) GetRange(r RangeIndex) (Slice[T], bool) {
	return m.Slice().GetRange(r)
}

// GetRangeUnchecked returns a read handle over the window selected by r with
// no bounds check. The caller must guarantee the window is in bounds and not
// inverted.
func (m MutSlice[T]) GetRangeUnchecked(r RangeIndex) Slice[T] {
	return m.Slice().GetRangeUnchecked(r)
}

// Index returns a scalar read handle for position i, panicking with the fixed
// out-of-range diagnostic when i is out of bounds.
func (m MutSlice[T]) Index(i int) Ref[T] {
	return m.Slice().Index(i)
}

// GetMut returns a scalar read-write handle for position i, or ok=false when
// i is outside [0, Len()).
func (m MutSlice[T]) GetMut(i int) (Mut[T], bool) {
	if i < 0 || i >= m.length {
		return Mut[T]{}, false
	}
	return m.GetUncheckedMut(i), true
}

// GetUncheckedMut returns a scalar read-write handle for position i with no
// bounds check. The caller must guarantee 0 <= i < Len().
func (m MutSlice[T]) GetUncheckedMut(i int) Mut[T] {
	debugAssertIndex(i, m.length)
	return Mut[T]{data: unsafe.Add(m.data, uintptr(i)*sizeOf[T]())}
}

// IndexMut returns a scalar read-write handle for position i, panicking with
// the fixed out-of-range diagnostic when i is out of bounds.
func (m MutSlice[T]) IndexMut(i int) Mut[T] {
	if i < 0 || i >= m.length {
		indexOutOfRange(i, m.length)
	}
	return m.GetUncheckedMut(i)
}

// GetRangeMut returns a read-write handle over the window selected by r, or
// ok=false when the window is invalid.
func (m MutSlice[T]) GetRangeMut(r RangeIndex) (MutSlice[T], bool) {
	start, end, ok := r.bounds(m.length)
	if !ok {
		return MutSlice[T]{}, false
	}
	return m.subslice(start, end), true
}

// GetRangeUncheckedMut returns a read-write handle over the window selected
// by r with no bounds check. The caller must guarantee the window is in
// bounds and not inverted.
func (m MutSlice[T]) GetRangeUncheckedMut(r RangeIndex) MutSlice[T] {
	start, end := r.rawBounds(m.length)
	debugAssertRange(start, end, m.length)
	return m.subslice(start, end)
}

// IndexRangeMut returns a read-write handle over the window selected by r,
// panicking with the fixed diagnostics when the window is invalid.
func (m MutSlice[T]) IndexRangeMut(r RangeIndex) MutSlice[T] {
	start, end := r.mustBounds(m.length)
	return m.subslice(start, end)
}

// SplitAtMut returns two read-write handles covering [0, i) and [i, Len()).
// It panics with the fixed range diagnostics when i is outside [0, Len()].
func (m MutSlice[T]) SplitAtMut(i int) (MutSlice[T], MutSlice[T]) {
	return m.IndexRangeMut(SpanTo{End: i}), m.IndexRangeMut(SpanFrom{Start: i})
}

// CopyMut returns n handles that all cover the same run. As with Mut.CopyMut,
// this is safe because the handle type never asserts exclusivity. Handles
// over overlapping-but-distinct windows should come from sub-slicing one
// parent, not from separate CopyMut calls.
func (m MutSlice[T]) CopyMut(n int) []MutSlice[T] {
	copies := make([]MutSlice[T], n)
	for i := range copies {
		copies[i] = m
	}
	return copies
}

// SliceUnchecked converts the handle back into an ordinary Go slice intended
// for exclusive use.
//
// The caller must guarantee that, for as long as the result is in use, no
// element of the run is read or written through anything else.
func (m MutSlice[T]) SliceUnchecked() []T {
	return unsafe.Slice((*T)(m.data), m.length)
}

func (m MutSlice[T]) subslice(start, end int) MutSlice[T] {
	return MutSlice[T]{
		data:   unsafe.Add(m.data, uintptr(start)*sizeOf[T]()),
		length: end - start,
	}
}
