//go:build !debug_exists_handles

package exists

// DebugValidate calls Validate on the provided object and panics on failure.
// This method no-ops unless the debug_exists_handles build tag is present.
func DebugValidate(v Validatable) {
}

// DebugCheckPow2 verifies that the numerical value passed in is a power of
// two, and panics if it is not. This method no-ops unless the
// debug_exists_handles build tag is present.
func DebugCheckPow2(value uint, name string) {
}

func debugAssertIndex(index, length int) {
}

func debugAssertRange(start, end, length int) {
}
