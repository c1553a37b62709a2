package qprep

// Config carries the numeric tolerances used by the preparation pipeline.
type Config struct {
	// NormTolerance is how close a squared norm must be to 1.0 for the
	// vector to be accepted as already normalized.
	NormTolerance float64
	// ZeroEpsilon is the squared-norm threshold below which a vector is
	// considered degenerate.
	ZeroEpsilon float64
}

func NewConfig() *Config {
	return &Config{
		NormTolerance: 1e-9,
		ZeroEpsilon:   1e-10,
	}
}
