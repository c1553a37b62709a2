package qprep

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSimulatorBackend(t *testing.T) {
	Convey("Given an in-process simulator backend", t, func() {
		ctx := context.Background()
		backend := NewSimulatorBackend()
		preparer := NewPreparer(backend, nil)

		Convey("Preparing a state yields a usable handle", func() {
			state, err := preparer.PrepareState(ctx, AmplitudeVector{1, 1})

			So(err, ShouldBeNil)
			So(state.ID(), ShouldNotBeEmpty)

			stored, err := backend.State(state.ID())
			So(err, ShouldBeNil)
			So(stored.NormSquared(), ShouldAlmostEqual, 1.0)
		})

		Convey("Measuring a basis state always returns its index", func() {
			state, err := preparer.PrepareState(ctx, AmplitudeVector{0, 0, 1, 0})
			So(err, ShouldBeNil)

			for i := 0; i < 20; i++ {
				measured, err := backend.Measure(state.ID())
				So(err, ShouldBeNil)
				So(measured, ShouldEqual, 2)
			}
		})

		Convey("Measurement collapses the stored vector", func() {
			state, err := preparer.PrepareState(ctx, AmplitudeVector{1, 1})
			So(err, ShouldBeNil)

			measured, err := backend.Measure(state.ID())
			So(err, ShouldBeNil)
			So(measured, ShouldBeBetweenOrEqual, 0, 1)

			collapsed, err := backend.State(state.ID())
			So(err, ShouldBeNil)
			So(collapsed[measured], ShouldEqual, complex(1, 0))
			So(collapsed[1-measured], ShouldEqual, complex(0, 0))
		})

		Convey("Sampling a basis state puts every shot on its label", func() {
			state, err := preparer.PrepareState(ctx, AmplitudeVector{0, 1})
			So(err, ShouldBeNil)

			counts, err := backend.Sample(state.ID(), 50)
			So(err, ShouldBeNil)
			So(counts["|1⟩"], ShouldEqual, 50)
			So(len(counts), ShouldEqual, 1)
		})

		Convey("Sampling a superposition covers both outcomes eventually", func() {
			state, err := preparer.PrepareState(ctx, AmplitudeVector{1, 1})
			So(err, ShouldBeNil)

			counts, err := backend.Sample(state.ID(), 2000)
			So(err, ShouldBeNil)
			So(counts["|0⟩"]+counts["|1⟩"], ShouldEqual, 2000)
			So(counts["|0⟩"], ShouldBeGreaterThan, 0)
			So(counts["|1⟩"], ShouldBeGreaterThan, 0)
		})

		Convey("Unknown handles are reported", func() {
			_, err := backend.Measure("no-such-handle")
			So(errors.Is(err, ErrUnknownState), ShouldBeTrue)

			_, err = backend.Sample("no-such-handle", 1)
			So(errors.Is(err, ErrUnknownState), ShouldBeTrue)

			_, err = backend.State("no-such-handle")
			So(errors.Is(err, ErrUnknownState), ShouldBeTrue)
		})

		Convey("Discard releases the handle", func() {
			state, err := preparer.PrepareState(ctx, AmplitudeVector{1, 0})
			So(err, ShouldBeNil)

			backend.Discard(state.ID())
			_, err = backend.State(state.ID())
			So(errors.Is(err, ErrUnknownState), ShouldBeTrue)
		})

		Convey("An inconsistent qubit count is rejected by the backend", func() {
			_, err := backend.Prepare(ctx, AmplitudeVector{1, 0}, 2)
			So(err, ShouldNotBeNil)
		})

		Convey("A cancelled context stops preparation", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			state, err := preparer.PrepareState(cancelled, AmplitudeVector{1, 0})
			So(state, ShouldBeNil)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
			So(errors.Is(err, ErrStatePreparation), ShouldBeTrue)
		})
	})
}
