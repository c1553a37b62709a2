package qprep

import (
	"math"

	"github.com/theapemachine/errnie"
)

/*
Normalize enforces the unit-norm constraint a physical state must satisfy.

A vector whose squared norm falls below Config.ZeroEpsilon is rejected: it
carries no direction, and dividing by a near-zero norm would only produce
garbage. A vector already within Config.NormTolerance of unit norm passes
through unchanged, so valid input is not disturbed by extra rounding.
Anything else is rescaled by 1/√S, which preserves every relative phase and
magnitude ratio between amplitudes.

The input is never mutated; the result is always a fresh vector. Passing a
nil config selects the defaults from NewConfig.
*/
func Normalize(amplitudes AmplitudeVector, config *Config) (AmplitudeVector, error) {
	if config == nil {
		config = NewConfig()
	}

	normSquared := amplitudes.NormSquared()
	if normSquared <= config.ZeroEpsilon {
		return nil, &ZeroVectorError{NormSquared: normSquared, Epsilon: config.ZeroEpsilon}
	}

	if math.Abs(normSquared-1) <= config.NormTolerance {
		return amplitudes.Clone(), nil
	}

	errnie.Info(
		"Normalize - rescaling %d amplitudes, sum of squared magnitudes %f",
		len(amplitudes),
		normSquared,
	)

	scale := complex(1/math.Sqrt(normSquared), 0)
	normalized := make(AmplitudeVector, len(amplitudes))
	for i, amplitude := range amplitudes {
		normalized[i] = amplitude * scale
	}
	return normalized, nil
}
