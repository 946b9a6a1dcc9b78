// utils.go
// Purpose: Small utility helpers used across the simulation packages
// (slice copying). Kept minimal.
package common

// CopyBools returns an independent copy of a bool slice, preserving nil.
func CopyBools(b []bool) []bool {
	if b == nil {
		return nil
	}
	out := make([]bool, len(b))
	copy(out, b)
	return out
}
