package qsim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRunAlgorithm(t *testing.T) {
	ctx := context.Background()

	Convey("Given the secret 1111 and 1024 shots", t, func() {
		result, err := RunAlgorithm(ctx, "1111", 1024, WithSeed(1))
		So(err, ShouldBeNil)

		Convey("Every shot should land on the secret", func() {
			So(result.FoundString, ShouldEqual, "1111")
			So(result.Counts, ShouldResemble, Counts{"1111": 1024})
			So(result.Report.Match, ShouldBeTrue)
		})

		Convey("The circuit info should describe the register", func() {
			So(result.Info.Qubits, ShouldEqual, 5)
			So(result.Info.Clbits, ShouldEqual, 4)
			So(result.Info.Gates, ShouldEqual, 2+4+4+4)
		})

		Convey("The admitted state footprint should be reported", func() {
			So(result.StateBytes, ShouldEqual, StateBytes(5))
		})
	})

	Convey("Given every secret up to length 8", t, func() {
		for n := 1; n <= 8; n++ {
			for v := 0; v < 1<<n; v++ {
				secret := fmt.Sprintf("%0*b", n, v)

				result, err := RunAlgorithm(ctx, secret, 1, WithWorkers(1))
				So(err, ShouldBeNil)
				So(result.FoundString, ShouldEqual, secret)
			}
		}
	})

	Convey("Given sampled secrets of length 9 to 12", t, func() {
		rng := rand.New(rand.NewPCG(2024, 10))

		for n := 9; n <= 12; n++ {
			for trial := 0; trial < 16; trial++ {
				secret := fmt.Sprintf("%0*b", n, rng.IntN(1<<n))

				result, err := RunAlgorithm(ctx, secret, 1, WithWorkers(1))
				So(err, ShouldBeNil)
				So(result.FoundString, ShouldEqual, secret)
			}
		}
	})

	Convey("Given various shot counts", t, func() {
		for _, shots := range []int{1, 1024, 10000} {
			result, err := RunAlgorithm(ctx, "0110", shots, WithBatchSize(333))
			So(err, ShouldBeNil)
			So(result.Counts.Total(), ShouldEqual, shots)
			So(result.Report.Shots, ShouldEqual, shots)
		}
	})

	Convey("Given two runs with the same seed", t, func() {
		a, err := RunAlgorithm(ctx, "10011", 2048, WithSeed(99))
		So(err, ShouldBeNil)
		b, err := RunAlgorithm(ctx, "10011", 2048, WithSeed(99))
		So(err, ShouldBeNil)

		So(a.Counts, ShouldResemble, b.Counts)
		So(a.ID, ShouldNotEqual, b.ID)
	})

	Convey("Given invalid input", t, func() {
		Convey("An empty secret should be rejected", func() {
			_, err := RunAlgorithm(ctx, "", 1024)
			So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)
		})

		Convey("Zero shots should be rejected", func() {
			_, err := RunAlgorithm(ctx, "101", 0)
			So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)
		})

		Convey("A non-binary secret should name the offending character", func() {
			_, err := RunAlgorithm(ctx, "10a1", 10)
			So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "position 2")
		})

		Convey("A multi-byte character should be reported by its character position", func() {
			_, err := RunAlgorithm(ctx, "10é1", 10)
			So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "position 2")
		})

		Convey("Zero workers should be rejected", func() {
			_, err := RunAlgorithm(ctx, "1", 10, WithWorkers(0))
			So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)
		})
	})

	Convey("Given a register beyond the budget", t, func() {
		Convey("A secret longer than the qubit limit should fail cleanly", func() {
			_, err := RunAlgorithm(ctx, strings.Repeat("1", 40), 1)
			So(errors.Is(err, ErrResourceLimit), ShouldBeTrue)
		})

		Convey("A very long secret should be refused without building its circuit", func() {
			start := time.Now()
			_, err := RunAlgorithm(ctx, strings.Repeat("1", 5_000_000), 1)
			So(errors.Is(err, ErrResourceLimit), ShouldBeTrue)
			So(time.Since(start), ShouldBeLessThan, 2*time.Second)
		})

		Convey("A tiny byte budget should refuse even small registers", func() {
			cfg := NewConfig()
			cfg.MaxStateBytes = 64

			_, err := RunAlgorithm(ctx, "101", 1, WithConfig(cfg))
			So(errors.Is(err, ErrResourceLimit), ShouldBeTrue)
			if !errors.Is(err, ErrResourceLimit) {
				t.Log(spew.Sdump(err))
			}
		})
	})
}
