// Package exists provides existence handles: typed markers that certify a value
// of some type T is currently valid at a memory address, without asserting
// whether that address is exclusively held or shared.
//
// An existence handle sits between an ordinary Go pointer and a bare
// unsafe.Pointer. Like a pointer, it is typed and supports safe reads and
// writes. Like a raw address, it never claims uniqueness: any number of
// mutable handles over the same address may be live at once, and sequencing
// their accesses is entirely the caller's job. This makes handles suitable for
// code that deliberately works with overlapping or doubly-referenced memory,
// where ordinary pointer-based APIs would bake in aliasing assumptions the
// caller cannot honor.
//
// Ref and Mut are the scalar handles. Slice and MutSlice generalize them to a
// contiguous run of elements with an explicit length, and support bounds-checked,
// unchecked, and panicking indexing, sub-slicing, iteration, and chunking. All
// sub-handle operations are pure pointer arithmetic; no element is ever read or
// copied to produce a handle.
//
// The package never allocates, frees, or synchronizes the memory it points
// into. Ownership of the backing storage stays with whatever produced the
// pointer a handle was built from, and a handle must not be used after that
// storage is gone. Because handles hold a live unsafe.Pointer, Go's garbage
// collector will keep heap-backed storage reachable for as long as a handle to
// it exists; handles over foreign or stack memory get no such help.
//
// Handles are plain values and are not safe for concurrent use over the same
// address without external synchronization.
package exists
