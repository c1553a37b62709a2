package qprep

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"
)

// AmplitudeVector holds the complex coefficients of an n-qubit state in
// standard binary-index order, |0...0⟩ first. Real user input is carried as
// complex128 too, so normalization has a single code path.
type AmplitudeVector []complex128

// Clone returns an independent copy of the vector.
func (av AmplitudeVector) Clone() AmplitudeVector {
	out := make(AmplitudeVector, len(av))
	copy(out, av)
	return out
}

// NormSquared returns the sum of squared magnitudes, Σ|aᵢ|².
func (av AmplitudeVector) NormSquared() float64 {
	var sum float64
	for _, amplitude := range av {
		magnitude := cmplx.Abs(amplitude)
		sum += magnitude * magnitude
	}
	return sum
}

// imaginaryUnits rewrites the spellings of the imaginary unit users
// actually type into the "i" strconv.ParseComplex expects.
var imaginaryUnits = strings.NewReplacer("j", "i", "J", "i")

// ParseAmplitude converts user input into a complex amplitude. Plain reals
// ("0.5", "-3") and complex literals ("3+4i") are accepted; "j" and "J" are
// taken as alternate spellings of the imaginary unit.
func ParseAmplitude(input string) (complex128, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, fmt.Errorf("qprep: empty amplitude")
	}
	amplitude, err := strconv.ParseComplex(imaginaryUnits.Replace(trimmed), 128)
	if err != nil {
		return 0, fmt.Errorf("qprep: invalid amplitude %q: %w", input, err)
	}
	return amplitude, nil
}

// BasisLabel formats basis state index of an n-qubit register as a ket,
// e.g. index 2 of 3 qubits is "|010⟩".
func BasisLabel(index, qubits int) string {
	return fmt.Sprintf("|%0*b⟩", qubits, index)
}
