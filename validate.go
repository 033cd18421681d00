package exists

import (
	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// Validatable is used by the DebugValidate method to allow it to act upon all
// types with a Validate method.
type Validatable interface {
	Validate() error
}

var debugLogger = slog.Default()

// SetDebugLogger replaces the logger that debug builds write to before
// panicking on a failed validation. It has no effect in non-debug builds.
func SetDebugLogger(logger *slog.Logger) {
	debugLogger = logger
}

// Validate checks the handle invariants that can be checked from the address
// alone: non-nil and aligned for T. Whether the pointee is a properly
// initialized T, and whether anything else is mutating it, remain the caller's
// preconditions and cannot be detected here.
func (r Ref[T]) Validate() error {
	if r.data == nil {
		return cerrors.Wrap(ErrNilAddress, "scalar handle")
	}
	if !IsAligned(r.data, alignOf[T]()) {
		return cerrors.Wrapf(ErrMisaligned, "scalar handle address %p, required alignment %d", r.data, alignOf[T]())
	}
	return nil
}

// Validate checks the handle invariants that can be checked from the address
// alone. See Ref.Validate.
func (m Mut[T]) Validate() error {
	return m.Ref().Validate()
}

// Validate checks the slice handle invariants that can be checked from the
// address and length alone: a non-nil address when the handle is non-empty,
// alignment for T, a non-negative length, and a total byte size within the
// addressable range.
func (s Slice[T]) Validate() error {
	if s.length < 0 {
		return cerrors.Wrapf(ErrNegativeLength, "slice handle length is %d", s.length)
	}
	if s.data == nil && s.length > 0 {
		return cerrors.Wrapf(ErrNilAddress, "slice handle of length %d", s.length)
	}
	if !IsAligned(s.data, alignOf[T]()) {
		return cerrors.Wrapf(ErrMisaligned, "slice handle address %p, required alignment %d", s.data, alignOf[T]())
	}
	if elem := int(sizeOf[T]()); elem > 0 && s.length > maxInt/elem {
		return cerrors.Wrapf(ErrSizeOverflow, "%d elements of %d bytes", s.length, elem)
	}
	return nil
}

// Validate checks the slice handle invariants that can be checked from the
// address and length alone. See Slice.Validate.
func (m MutSlice[T]) Validate() error {
	return m.Slice().Validate()
}
