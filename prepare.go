package qprep

import "context"

// StateBackend is the external state-construction capability. It receives a
// vector that already passed dimension validation and normalization and
// either commits it as an n-qubit state or reports why it could not.
// The call is a single synchronous request/response; cancellation and
// timeouts, where needed, belong to the backend's context handling.
type StateBackend interface {
	Prepare(ctx context.Context, amplitudes AmplitudeVector, qubits int) (*PreparedState, error)
}

// PreparedState is the opaque handle to a state committed to a backend.
// Ownership transfers to the caller on return; the handle itself never
// changes afterwards.
type PreparedState struct {
	id         string
	qubits     int
	amplitudes AmplitudeVector
}

// NewPreparedState builds a handle. Intended for StateBackend
// implementations; the amplitudes are copied so the handle stays immutable.
func NewPreparedState(id string, qubits int, amplitudes AmplitudeVector) *PreparedState {
	return &PreparedState{
		id:         id,
		qubits:     qubits,
		amplitudes: amplitudes.Clone(),
	}
}

func (ps *PreparedState) ID() string { return ps.id }

func (ps *PreparedState) Qubits() int { return ps.qubits }

// Amplitudes returns a copy of the normalized vector behind the handle.
func (ps *PreparedState) Amplitudes() AmplitudeVector {
	return ps.amplitudes.Clone()
}

// Preparer runs the full preparation pipeline against a backend.
type Preparer struct {
	backend StateBackend
	config  *Config
}

// NewPreparer wires a backend to the pipeline. A nil config selects the
// defaults from NewConfig.
func NewPreparer(backend StateBackend, config *Config) *Preparer {
	if config == nil {
		config = NewConfig()
	}
	return &Preparer{
		backend: backend,
		config:  config,
	}
}

/*
PrepareState takes raw amplitudes through dimension validation,
normalization, and backend construction, in that order. Each stage fails
fast: a bad dimension is reported before any normalization arithmetic runs,
and the backend is only reached with a validated unit vector.

Every call is an independent transaction; the Preparer holds no state
between calls, so concurrent callers need no coordination as long as each
supplies its own vector.
*/
func (p *Preparer) PrepareState(ctx context.Context, amplitudes AmplitudeVector) (*PreparedState, error) {
	qubits, err := QubitCount(len(amplitudes))
	if err != nil {
		return nil, err
	}

	normalized, err := Normalize(amplitudes, p.config)
	if err != nil {
		return nil, err
	}

	state, err := p.backend.Prepare(ctx, normalized, qubits)
	if err != nil {
		return nil, &StatePreparationError{Qubits: qubits, Err: err}
	}
	return state, nil
}
