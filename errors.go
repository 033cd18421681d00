package exists

import "github.com/pkg/errors"

// ErrNilAddress is the error wrapped by Validate when a handle that must point
// at live memory carries a nil address.
var ErrNilAddress error = errors.New("handle address must not be nil")

// ErrMisaligned is the error wrapped by Validate when a handle's address is not
// aligned for its element type.
var ErrMisaligned error = errors.New("handle address must be aligned for its element type")

// ErrNegativeLength is the error wrapped by Validate when a slice handle
// carries a negative length.
var ErrNegativeLength error = errors.New("slice handle length must not be negative")

// ErrSizeOverflow is the error wrapped by Validate when a slice handle's total
// byte size exceeds the addressable range.
var ErrSizeOverflow error = errors.New("slice handle byte size must not exceed the addressable range")

// ErrPowerOfTwo is the error returned from CheckPow2 if the number being
// tested is not a power of two.
var ErrPowerOfTwo error = errors.New("number must be a power of two")
