package qprep

import "math/bits"

// QubitCount validates that length amplitudes can index the basis states of
// a qubit register and returns the register size n, where length == 2^n.
// The check is exact bit arithmetic; no floating-point log is involved, so
// there is no rounding to get wrong.
func QubitCount(length int) (int, error) {
	if length <= 0 || length&(length-1) != 0 {
		return 0, &InvalidDimensionError{Length: length}
	}
	return bits.TrailingZeros(uint(length)), nil
}
