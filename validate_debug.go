//go:build debug_exists_handles

package exists

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

// DebugValidate calls Validate on the provided object, logs any failure, and
// panics on it. This method no-ops unless the debug_exists_handles build tag
// is present.
func DebugValidate(v Validatable) {
	err := v.Validate()
	if err != nil {
		debugLogger.LogAttrs(context.Background(), slog.LevelError,
			"[INVALID HANDLE] handle invariant violated",
			slog.Any("error", err))
		panic(err)
	}
}

// DebugCheckPow2 verifies that the numerical value passed in is a power of
// two, and panics if it is not. This method no-ops unless the
// debug_exists_handles build tag is present.
func DebugCheckPow2(value uint, name string) {
	err := CheckPow2(value, name)
	if err != nil {
		panic(err)
	}
}

// debugAssertIndex and debugAssertRange back the unchecked indexing forms.
// In debug builds an out-of-bounds unchecked access trips immediately instead
// of corrupting memory later.

func debugAssertIndex(index, length int) {
	if index < 0 || index >= length {
		debugLogger.LogAttrs(context.Background(), slog.LevelError,
			"[INVALID HANDLE] unchecked index out of bounds",
			slog.Int("index", index),
			slog.Int("length", length))
		panic(fmt.Sprintf("unchecked index %d out of bounds for slice handle of length %d", index, length))
	}
}

func debugAssertRange(start, end, length int) {
	if start < 0 || start > end || end > length {
		debugLogger.LogAttrs(context.Background(), slog.LevelError,
			"[INVALID HANDLE] unchecked range out of bounds",
			slog.Int("start", start),
			slog.Int("end", end),
			slog.Int("length", length))
		panic(fmt.Sprintf("unchecked range [%d, %d) out of bounds for slice handle of length %d", start, end, length))
	}
}
