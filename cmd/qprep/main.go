package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/statekit/qprep"
)

// maxQubits caps the interactive register size. 2^30 amplitudes is already
// 16 GiB of complex128; anything past that would overflow the shift or the
// allocation long before it made physical sense to type in by hand.
const maxQubits = 30

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		tolerance float64
		epsilon   float64
		shots     int
	)

	cmd := &cobra.Command{
		Use:   "qprep [amplitudes...]",
		Short: "Prepare n-qubit quantum states from amplitude lists",
		Long: `qprep turns a list of complex amplitudes into a valid n-qubit quantum
state: the amplitude count must be a power of two, the vector must not be
numerically zero, and anything off unit norm is rescaled before the state
is registered with the in-process simulator backend.

With amplitude arguments the state is prepared in one shot; without
arguments an interactive prompt collects the qubit count and one amplitude
per basis state.`,
		Example: `  # Prepare |+⟩ from an unnormalized vector
  qprep 1 1

  # Complex amplitudes, then sample the result
  qprep --shots 100 3+4i 0

  # Interactive session
  qprep`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := qprep.NewConfig()
			config.NormTolerance = tolerance
			config.ZeroEpsilon = epsilon

			if len(args) > 0 {
				return runOnce(cmd.Context(), cmd.OutOrStdout(), config, args, shots)
			}
			return runInteractive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), config, shots)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaults := qprep.NewConfig()
	cmd.Flags().Float64Var(&tolerance, "tolerance", defaults.NormTolerance,
		"how close a squared norm must be to 1.0 to skip rescaling")
	cmd.Flags().Float64Var(&epsilon, "epsilon", defaults.ZeroEpsilon,
		"squared-norm threshold below which a vector counts as degenerate")
	cmd.Flags().IntVar(&shots, "shots", 0,
		"sample the prepared state this many times and print counts")

	return cmd
}

// runOnce prepares a single state from command-line arguments.
func runOnce(ctx context.Context, out io.Writer, config *qprep.Config, args []string, shots int) error {
	amplitudes := make(qprep.AmplitudeVector, 0, len(args))
	for _, arg := range args {
		amplitude, err := qprep.ParseAmplitude(arg)
		if err != nil {
			return err
		}
		amplitudes = append(amplitudes, amplitude)
	}

	backend := qprep.NewSimulatorBackend()
	state, err := qprep.NewPreparer(backend, config).PrepareState(ctx, amplitudes)
	if err != nil {
		return err
	}
	return printPrepared(out, backend, state, shots)
}

// runInteractive drives the prompt loop. All invariants live in the
// library; this layer only collects input and formats outcomes.
func runInteractive(ctx context.Context, in io.Reader, out io.Writer, config *qprep.Config, shots int) error {
	backend := qprep.NewSimulatorBackend()
	preparer := qprep.NewPreparer(backend, config)
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "--- Interactive n-qubit state preparation ---")
	for {
		fmt.Fprint(out, "\nNumber of qubits (empty to quit): ")
		line, ok := readLine(scanner)
		if !ok || line == "" {
			return nil
		}
		qubits, err := strconv.Atoi(line)
		if err != nil || qubits < 0 {
			fmt.Fprintln(out, "Enter a non-negative integer.")
			continue
		}
		if qubits > maxQubits {
			fmt.Fprintf(out, "A register that large cannot be simulated here; enter at most %d qubits.\n", maxQubits)
			continue
		}

		count := 1 << qubits
		fmt.Fprintf(out, "A %d-qubit state takes %d amplitude(s). Use 'i' for the imaginary unit, e.g. 3+4i.\n",
			qubits, count)

		amplitudes := make(qprep.AmplitudeVector, 0, count)
		for i := 0; i < count; i++ {
			for {
				fmt.Fprintf(out, "  amplitude for %s: ", qprep.BasisLabel(i, qubits))
				line, ok := readLine(scanner)
				if !ok {
					return nil
				}
				amplitude, err := qprep.ParseAmplitude(line)
				if err != nil {
					fmt.Fprintf(out, "  %v\n", err)
					continue
				}
				amplitudes = append(amplitudes, amplitude)
				break
			}
		}

		state, err := preparer.PrepareState(ctx, amplitudes)
		if err != nil {
			reportError(out, err)
			continue
		}
		if err := printPrepared(out, backend, state, shots); err != nil {
			return err
		}
	}
}

func printPrepared(out io.Writer, backend *qprep.SimulatorBackend, state *qprep.PreparedState, shots int) error {
	fmt.Fprintf(out, "\nPrepared state %s (%d qubit(s)):\n", state.ID(), state.Qubits())

	normalized := state.Amplitudes()
	for i, amplitude := range normalized {
		fmt.Fprintf(out, "  %s  %.6f%+.6fi\n",
			qprep.BasisLabel(i, state.Qubits()), real(amplitude), imag(amplitude))
	}
	fmt.Fprintf(out, "Sum of squared magnitudes: %.6f\n", normalized.NormSquared())

	if shots > 0 {
		counts, err := backend.Sample(state.ID(), shots)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Counts over %d shot(s):\n", shots)
		for label, n := range counts {
			fmt.Fprintf(out, "  %s  %d\n", label, n)
		}
	}
	return nil
}

// reportError names each failure kind distinctly so interactive users see
// which constraint was violated, matching how programmatic callers branch
// with errors.Is.
func reportError(out io.Writer, err error) {
	switch {
	case errors.Is(err, qprep.ErrInvalidDimension):
		fmt.Fprintf(out, "Dimension error: %v\n", err)
	case errors.Is(err, qprep.ErrZeroVector):
		fmt.Fprintf(out, "Zero vector: %v\n", err)
	case errors.Is(err, qprep.ErrStatePreparation):
		fmt.Fprintf(out, "Backend error: %v\n", err)
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
