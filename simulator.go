package qprep

import (
	"context"
	"fmt"
	"math/bits"
	"math/cmplx"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

/*
SimulatorBackend is an in-process StateBackend for callers that have no
quantum device to delegate to. Prepared states live in a registry guarded
by a read-write mutex; each handle is independent, so concurrent callers
may prepare and measure without coordinating with each other.
*/
type SimulatorBackend struct {
	mu     sync.RWMutex
	states map[string]AmplitudeVector
}

func NewSimulatorBackend() *SimulatorBackend {
	return &SimulatorBackend{
		states: make(map[string]AmplitudeVector),
	}
}

// Prepare registers the normalized amplitudes under a fresh handle. The
// vector is expected to come from the pipeline already validated; the only
// check here is internal consistency between the vector and the declared
// qubit count.
func (sb *SimulatorBackend) Prepare(ctx context.Context, amplitudes AmplitudeVector, qubits int) (*PreparedState, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if qubits < 0 || len(amplitudes) != 1<<qubits {
		return nil, fmt.Errorf("amplitude count %d does not match %d qubit(s)", len(amplitudes), qubits)
	}

	id := uuid.NewString()
	sb.mu.Lock()
	sb.states[id] = amplitudes.Clone()
	sb.mu.Unlock()

	errnie.Info("SimulatorBackend - registered %d-qubit state %s", qubits, id)
	return NewPreparedState(id, qubits, amplitudes), nil
}

// Measure performs a single Born-rule measurement and collapses the stored
// state onto the observed basis state. Returns the measured basis index.
func (sb *SimulatorBackend) Measure(id string) (int, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	vector, ok := sb.states[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownState, id)
	}

	measured := draw(vector, rand.Float64())

	collapsed := make(AmplitudeVector, len(vector))
	collapsed[measured] = 1
	sb.states[id] = collapsed

	return measured, nil
}

// Sample draws shots independent measurements without collapsing the state
// and returns counts keyed by basis label.
func (sb *SimulatorBackend) Sample(id string, shots int) (map[string]int, error) {
	sb.mu.RLock()
	vector, ok := sb.states[id]
	sb.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownState, id)
	}

	qubits := bits.TrailingZeros(uint(len(vector)))
	counts := make(map[string]int)
	for shot := 0; shot < shots; shot++ {
		counts[BasisLabel(draw(vector, rand.Float64()), qubits)]++
	}
	return counts, nil
}

// State returns a copy of the vector currently stored under the handle.
func (sb *SimulatorBackend) State(id string) (AmplitudeVector, error) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	vector, ok := sb.states[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownState, id)
	}
	return vector.Clone(), nil
}

// Discard releases the handle and its stored state.
func (sb *SimulatorBackend) Discard(id string) {
	sb.mu.Lock()
	delete(sb.states, id)
	sb.mu.Unlock()
}

// draw maps a uniform r in [0,1) onto a basis index weighted by the squared
// magnitudes of the vector.
func draw(vector AmplitudeVector, r float64) int {
	probs := make([]float64, len(vector))
	total := 0.0
	for i, amplitude := range vector {
		prob := cmplx.Abs(amplitude)
		prob *= prob
		probs[i] = prob
		total += prob
	}

	cumulative := 0.0
	for i, prob := range probs {
		cumulative += prob / total
		if r <= cumulative {
			return i
		}
	}
	return len(vector) - 1
}
