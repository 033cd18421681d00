package exists

import (
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// CheckPow2 returns an error wrapping ErrPowerOfTwo if number is not a power
// of two. name identifies the offending value in the error message.
func CheckPow2[T constraints.Integer](number T, name string) error {
	if number == 0 || number&(number-1) != 0 {
		return cerrors.Wrapf(ErrPowerOfTwo, "%s is %d", name, number)
	}
	return nil
}

// AlignUp rounds value up to the nearest multiple of alignment. alignment
// must be a power of two.
func AlignUp[T constraints.Integer](value T, alignment T) T {
	return (value + alignment - 1) & ^(alignment - 1)
}

// AlignDown rounds value down to the nearest multiple of alignment. alignment
// must be a power of two.
func AlignDown[T constraints.Integer](value T, alignment T) T {
	return value & ^(alignment - 1)
}

// IsAligned returns true if addr is a multiple of alignment. alignment must
// be a power of two.
func IsAligned(addr unsafe.Pointer, alignment uintptr) bool {
	return uintptr(addr)&(alignment-1) == 0
}

// sizeOf and alignOf recover the layout of T without needing a value in hand.

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

func alignOf[T any]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}
