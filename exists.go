package exists

import (
	"unsafe"
)

// Ref is a read-capable existence handle: a typed marker certifying that a
// properly initialized T is readable at its address for as long as the handle
// is in use. It does not certify exclusivity, and it is distinct from holding
// a *T: other handles over the same address may exist and may mutate the
// pointee between any two reads, but only through an interior-mutable path
// (a Cell or a Mut derived from one).
//
// A Ref obtained through the safe constructors always satisfies the handle
// invariants: non-nil, aligned for T, pointing at an initialized T. A Ref
// built with NewRefUnsafe satisfies them only if the caller did their part.
type Ref[T any] struct {
	data unsafe.Pointer
}

// Mut is a read-write-capable existence handle over a single T. Unlike a *T
// used as an exclusive reference, any number of Mut handles over the same
// address may be live simultaneously; the handle type never asserts
// exclusivity, only the caller's accesses have to avoid logically conflicting
// with each other.
type Mut[T any] struct {
	data unsafe.Pointer
}

// NewRef returns a read handle over the pointee of v. v must not be nil.
func NewRef[T any](v *T) Ref[T] {
	return Ref[T]{data: unsafe.Pointer(v)}
}

// NewMut returns a read-write handle over the pointee of v. v must not be nil.
func NewMut[T any](v *T) Mut[T] {
	return Mut[T]{data: unsafe.Pointer(v)}
}

// NewMutFromCell returns a read-write handle over the contents of c. Because a
// Cell permits mutation through shared pointers, any number of handles made
// this way from the same cell may alias freely.
func NewMutFromCell[T any](c *Cell[T]) Mut[T] {
	return Mut[T]{data: unsafe.Pointer(&c.value)}
}

// NewRefUnsafe returns a read handle over the address p.
//
// The caller must guarantee that for the entire time the handle is in use, p
// is non-nil, aligned for T, points at a properly initialized T, and that the
// pointee is not mutated except through an interior-mutable path. Violating
// any of these makes every subsequent use of the handle invalid, even uses
// that only take its address.
func NewRefUnsafe[T any](p unsafe.Pointer) Ref[T] {
	return Ref[T]{data: p}
}

// NewMutUnsafe returns a read-write handle over the address p.
//
// The caller must guarantee that for the entire time the handle is in use, p
// is non-nil, aligned for T, points at a properly initialized T, and is valid
// for both reads and writes of size T. No ordinary *T may be relied upon as
// exclusive over the same memory while the handle is used to write.
func NewMutUnsafe[T any](p unsafe.Pointer) Mut[T] {
	return Mut[T]{data: p}
}

// Addr returns the raw address the handle certifies. This performs no read.
func (r Ref[T]) Addr() unsafe.Pointer {
	return r.data
}

// Get copies the pointee out of memory. Equivalent to a raw typed load.
func (r Ref[T]) Get() T {
	return *(*T)(r.data)
}

// AssumeMut asserts that the memory behind this read handle is actually
// writable, upgrading it to a read-write handle with no runtime check.
//
// The caller must guarantee the handle's address genuinely has write
// provenance (it originated from writable memory, such as a *T not promised
// elsewhere to be read-only). If the result never performs a write, an
// unjustified AssumeMut does no harm on its own.
func (r Ref[T]) AssumeMut() Mut[T] {
	return Mut[T]{data: r.data}
}

// RefUnchecked converts the handle back into an ordinary pointer.
//
// This is the escape hatch for handing the pointee to APIs that demand a *T.
// The caller must guarantee that, for as long as the result is in use, the
// pointee is not written through any handle, including Set on an aliasing Mut;
// an ordinary pointer read concurrent with a handle write is a stale-value bug
// at best and a race at worst.
func (r Ref[T]) RefUnchecked() *T {
	return (*T)(r.data)
}

// Ref downgrades the handle to its read-only form. Always safe; read-write
// capability strictly contains read capability.
func (m Mut[T]) Ref() Ref[T] {
	return Ref[T]{data: m.data}
}

// Addr returns the raw address the handle certifies. This performs no read.
func (m Mut[T]) Addr() unsafe.Pointer {
	return m.data
}

// Get copies the pointee out of memory. Equivalent to a raw typed load.
func (m Mut[T]) Get() T {
	return *(*T)(m.data)
}

// Set overwrites the pointee with v. Equivalent to a raw typed store.
func (m Mut[T]) Set(v T) {
	*(*T)(m.data) = v
}

// Replace installs v and returns the value it displaced.
func (m Mut[T]) Replace(v T) T {
	old := *(*T)(m.data)
	*(*T)(m.data) = v
	return old
}

// Take replaces the pointee with the zero value of T and returns the prior
// value.
func (m Mut[T]) Take() T {
	var zero T
	return m.Replace(zero)
}

// Swap exchanges the contents of the two handles' addresses.
//
// Unlike a two-variable swap through exclusive pointers, this is defined even
// when the two handles alias: the value read from m is staged before other is
// copied over it, so swapping a handle with itself leaves the pointee
// unchanged, and for partially overlapping addresses the overlapped bytes come
// from m.
func (m Mut[T]) Swap(other Mut[T]) {
	tmp := *(*T)(m.data)
	*(*T)(m.data) = *(*T)(other.data)
	*(*T)(other.data) = tmp
}

// CopyMut returns n handles that all certify the same address. This is safe
// precisely because the handle type never asserts exclusivity: only the
// accesses performed through the copies can conflict, and ordering those is
// the caller's responsibility.
func (m Mut[T]) CopyMut(n int) []Mut[T] {
	copies := make([]Mut[T], n)
	for i := range copies {
		copies[i] = m
	}
	return copies
}

// MutUnchecked converts the handle back into an ordinary pointer intended for
// exclusive use.
//
// The caller must guarantee that, for as long as the result is in use, the
// pointee is not read or written through anything else: no aliasing handle,
// no cell, no other pointer. This is the strongest contract in the package;
// it is exactly the exclusivity the handle type was built to avoid asserting.
func (m Mut[T]) MutUnchecked() *T {
	return (*T)(m.data)
}

// CellUnchecked converts the handle into cell-shaped storage, permitting
// further shared mutation through the result.
//
// The caller must guarantee the pointee is valid for reads and writes for as
// long as the cell is in use, and that no ordinary *T is relied upon as
// exclusive over the same memory during that time.
func (m Mut[T]) CellUnchecked() *Cell[T] {
	// Cell is a bare wrapper over T, so the layouts coincide.
	return (*Cell[T])(m.data)
}
