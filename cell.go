package exists

// Cell is a minimal interior-mutability wrapper: a container whose contents
// may be replaced through any pointer to the cell, shared or not. It exists so
// that code handing out multiple mutable handles over one location can say so
// in the type system: NewMutFromCell produces aliasing Mut handles that are
// legal by the cell's own sharing rules, and Mut.CellUnchecked converts a
// handle back into cell-shaped storage.
//
// A Cell provides no synchronization. Sharing one across goroutines without
// external coordination is a data race, exactly as with the handles
// themselves.
type Cell[T any] struct {
	value T
}

// NewCell returns a Cell holding value.
func NewCell[T any](value T) Cell[T] {
	return Cell[T]{value: value}
}

// Get returns a copy of the cell's current contents.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set replaces the cell's contents with value.
func (c *Cell[T]) Set(value T) {
	c.value = value
}

// Replace installs value and returns the contents it displaced.
func (c *Cell[T]) Replace(value T) T {
	old := c.value
	c.value = value
	return old
}

// Ptr returns a pointer to the cell's contents. The pointee may be overwritten
// through the cell or through any handle derived from it at any time.
func (c *Cell[T]) Ptr() *T {
	return &c.value
}
