package qsim

import (
	"math"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantumState(t *testing.T) {
	Convey("Given a fresh two-qubit state", t, func() {
		qs := NewQuantumState(2)

		Convey("It should start in |00⟩", func() {
			So(qs.Vector, ShouldHaveLength, 4)
			So(qs.Probability(0), ShouldEqual, 1.0)
			So(qs.Norm(), ShouldEqual, 1.0)
		})

		Convey("PauliX should flip the addressed bit only", func() {
			qs.Apply(PauliX(1))
			So(qs.Probability(2), ShouldEqual, 1.0)
		})

		Convey("Hadamard should split the amplitude evenly", func() {
			qs.Apply(Hadamard(0))
			So(real(qs.Vector[0]), ShouldAlmostEqual, 1/math.Sqrt2, 1e-12)
			So(real(qs.Vector[1]), ShouldAlmostEqual, 1/math.Sqrt2, 1e-12)

			Convey("And undo itself when applied twice", func() {
				qs.Apply(Hadamard(0))
				So(qs.Probability(0), ShouldAlmostEqual, 1.0, 1e-12)
				So(qs.Probability(1), ShouldAlmostEqual, 0.0, 1e-12)
			})
		})

		Convey("Hadamard on |1⟩ should produce a negative amplitude", func() {
			qs.Apply(PauliX(0))
			qs.Apply(Hadamard(0))
			So(real(qs.Vector[0]), ShouldAlmostEqual, 1/math.Sqrt2, 1e-12)
			So(real(qs.Vector[1]), ShouldAlmostEqual, -1/math.Sqrt2, 1e-12)
		})

		Convey("ControlledNot should only act when the control is set", func() {
			qs.Apply(ControlledNot(0, 1))
			So(qs.Probability(0), ShouldEqual, 1.0)

			qs.Apply(PauliX(0))
			qs.Apply(ControlledNot(0, 1))
			So(qs.Probability(3), ShouldEqual, 1.0)
		})

		Convey("A Bell pair should put half the mass on |00⟩ and |11⟩", func() {
			qs.Apply(Hadamard(0))
			qs.Apply(ControlledNot(0, 1))
			So(qs.Probability(0), ShouldAlmostEqual, 0.5, 1e-12)
			So(qs.Probability(3), ShouldAlmostEqual, 0.5, 1e-12)
			So(qs.Probability(1), ShouldEqual, 0.0)
			So(qs.Probability(2), ShouldEqual, 0.0)
		})

		Convey("A gate outside the state should panic", func() {
			So(func() { qs.Apply(Hadamard(2)) }, ShouldPanic)
		})
	})

	Convey("Given Bernstein–Vazirani circuits of every length from 1 to 12", t, func() {
		for n := 1; n <= 12; n++ {
			for _, secret := range []string{
				strings.Repeat("0", n),
				strings.Repeat("1", n),
				alternating(n),
			} {
				c, err := NewBernsteinVazirani(secret)
				So(err, ShouldBeNil)

				qs := NewQuantumState(c.Register().Size()).Evolve(c)

				So(qs.Vector, ShouldHaveLength, 1<<(n+1))
				So(qs.Norm(), ShouldAlmostEqual, 1.0, 1e-9)
			}
		}
	})

	Convey("Given a circuit over a different register", t, func() {
		c, _ := NewBernsteinVazirani("11")
		So(func() { NewQuantumState(2).Evolve(c) }, ShouldPanic)
	})
}

func alternating(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
