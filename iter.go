package exists

import "unsafe"

// Iter walks a slice handle front to back, yielding a scalar read handle per
// element. The end address is fixed when the iterator is created; the cursor
// advances one element stride per step until it reaches it. Iterators are
// finite, forward-only, and not restartable.
//
// Zero-sized element types have a stride of zero, so the end address equals
// the start and the iterator yields nothing.
type Iter[T any] struct {
	cur unsafe.Pointer
	end unsafe.Pointer
}

// Iter returns an iterator over the handle's elements in address order.
func (s Slice[T]) Iter() *Iter[T] {
	return &Iter[T]{
		cur: s.data,
		end: unsafe.Add(s.data, uintptr(s.length)*sizeOf[T]()),
	}
}

// Next returns a read handle for the next element, or ok=false once the
// cursor has reached the end address.
func (it *Iter[T]) Next() (Ref[T], bool) {
	if uintptr(it.cur) >= uintptr(it.end) {
		return Ref[T]{}, false
	}
	r := Ref[T]{data: it.cur}
	it.cur = unsafe.Add(it.cur, sizeOf[T]())
	return r, true
}

// MutIter is Iter's read-write counterpart. Yielding a fresh handle per step
// is always sound here: the handles never assert exclusivity, and successive
// steps cover disjoint addresses.
type MutIter[T any] struct {
	cur unsafe.Pointer
	end unsafe.Pointer
}

// IterMut returns an iterator yielding read-write handles over the handle's
// elements in address order.
func (m MutSlice[T]) IterMut() *MutIter[T] {
	return &MutIter[T]{
		cur: m.data,
		end: unsafe.Add(m.data, uintptr(m.length)*sizeOf[T]()),
	}
}

// Next returns a read-write handle for the next element, or ok=false once the
// cursor has reached the end address.
func (it *MutIter[T]) Next() (Mut[T], bool) {
	if uintptr(it.cur) >= uintptr(it.end) {
		return Mut[T]{}, false
	}
	m := Mut[T]{data: it.cur}
	it.cur = unsafe.Add(it.cur, sizeOf[T]())
	return m, true
}

// ChunkIter yields successive non-overlapping sub-handles of at most chunkSize
// elements, in order, covering the whole slice. The final chunk may be
// shorter.
type ChunkIter[T any] struct {
	rest      Slice[T]
	chunkSize int
}

// Chunks returns an iterator over consecutive windows of at most chunkSize
// elements. chunkSize must be positive; Chunks panics otherwise.
func (s Slice[T]) Chunks(chunkSize int) *ChunkIter[T] {
	if chunkSize <= 0 {
		panic("chunk size must be non-zero")
	}
	return &ChunkIter[T]{rest: s, chunkSize: chunkSize}
}

// Next returns the next chunk, or ok=false once the slice is exhausted.
func (c *ChunkIter[T]) Next() (Slice[T], bool) {
	if c.rest.IsEmpty() {
		return Slice[T]{}, false
	}
	n := c.chunkSize
	if c.rest.length < n {
		n = c.rest.length
	}
	head, tail := c.rest.SplitAt(n)
	c.rest = tail
	return head, true
}
