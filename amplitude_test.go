package qprep

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseAmplitude(t *testing.T) {
	Convey("Given user-supplied amplitude strings", t, func() {
		Convey("Plain reals parse as complex values", func() {
			for input, expected := range map[string]complex128{
				"0.5":  0.5,
				"-3":   -3,
				" 1 ":  1,
				"1e-2": 0.01,
			} {
				amplitude, err := ParseAmplitude(input)
				So(err, ShouldBeNil)
				So(amplitude, ShouldEqual, expected)
			}
		})

		Convey("Complex literals parse with either imaginary unit", func() {
			for input, expected := range map[string]complex128{
				"3+4i":  3 + 4i,
				"3+4j":  3 + 4i,
				"3+4J":  3 + 4i,
				"1i":    1i,
				"1J":    1i,
				"-0.5i": -0.5i,
			} {
				amplitude, err := ParseAmplitude(input)
				So(err, ShouldBeNil)
				So(amplitude, ShouldEqual, expected)
			}
		})

		Convey("Garbage and empty input are rejected", func() {
			for _, input := range []string{"", "   ", "banana", "1+", "i+i+i"} {
				_, err := ParseAmplitude(input)
				So(err, ShouldNotBeNil)
			}
		})
	})
}

func TestBasisLabel(t *testing.T) {
	Convey("Given basis state indices", t, func() {
		Convey("Labels are zero-padded binary kets", func() {
			So(BasisLabel(0, 1), ShouldEqual, "|0⟩")
			So(BasisLabel(1, 1), ShouldEqual, "|1⟩")
			So(BasisLabel(2, 3), ShouldEqual, "|010⟩")
			So(BasisLabel(7, 3), ShouldEqual, "|111⟩")
			So(BasisLabel(5, 4), ShouldEqual, "|0101⟩")
		})
	})
}

func TestAmplitudeVector(t *testing.T) {
	Convey("Given an amplitude vector", t, func() {
		vector := AmplitudeVector{3, 4i}

		Convey("NormSquared sums the squared magnitudes", func() {
			So(vector.NormSquared(), ShouldAlmostEqual, 25.0)
		})

		Convey("Clone is independent of the original", func() {
			cloned := vector.Clone()
			cloned[0] = 0

			So(vector[0], ShouldEqual, complex(3, 0))
			So(cloned[1], ShouldEqual, vector[1])
		})
	})
}
