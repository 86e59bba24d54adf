package qsim

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/goleak"
)

func TestQuantumPool(t *testing.T) {
	Convey("Given a new quantum pool", t, func(c C) {
		ctx, cancel := context.WithCancel(context.Background())
		q := NewQ(ctx, 2, NewConfig())

		Reset(func() {
			q.Close()
			cancel()
		})

		Convey("When scheduling a simple job", func(c C) {
			result := q.Schedule("test-job", func() (any, error) {
				return "success", nil
			})

			value := <-result
			c.So(value.Error, ShouldBeNil)
			c.So(value.Value, ShouldEqual, "success")
		})

		Convey("When scheduling more jobs than workers", func(c C) {
			results := make([]chan QuantumValue, 20)
			for i := range results {
				i := i
				results[i] = q.Schedule(fmt.Sprintf("job-%d", i), func() (any, error) {
					return i * i, nil
				})
			}

			for i, ch := range results {
				value := <-ch
				c.So(value.Error, ShouldBeNil)
				c.So(value.Value, ShouldEqual, i*i)
			}

			c.So(q.Metrics().ExportMetrics()["jobs"], ShouldEqual, int64(20))
		})

		Convey("When a job fails", func(c C) {
			value := <-q.Schedule("failing-job", func() (any, error) {
				return nil, errors.New("boom")
			})

			c.So(value.Error, ShouldNotBeNil)
			c.So(value.Error.Error(), ShouldEqual, "boom")
		})

		Convey("When a job fails with a wrapped error", func(c C) {
			value := <-q.Schedule("panicking-job", func() (any, error) {
				panic("lost amplitude")
			})

			c.So(value.Error, ShouldNotBeNil)
			c.So(value.Error.Error(), ShouldContainSubstring, "job panicking-job panicked")
		})

		Convey("When scheduling on a closed pool", func(c C) {
			q.Close()

			value := <-q.Schedule("late-job", func() (any, error) {
				return "never", nil
			})

			c.So(value.Error, ShouldNotBeNil)
			c.So(errors.Is(value.Error, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestQuantumPoolSlowJobs(t *testing.T) {
	Convey("Given a single worker and a scheduling timeout shorter than each job", t, func(c C) {
		q := NewQ(context.Background(), 1, &Config{SchedulingTimeout: 10 * time.Millisecond})

		Reset(func() {
			q.Close()
		})

		Convey("Queued jobs should wait for the worker instead of failing", func(c C) {
			results := make([]chan QuantumValue, 3)
			for i := range results {
				i := i
				results[i] = q.Schedule(fmt.Sprintf("slow-%d", i), func() (any, error) {
					time.Sleep(50 * time.Millisecond)
					return i, nil
				})
			}

			for i, ch := range results {
				value := <-ch
				c.So(value.Error, ShouldBeNil)
				c.So(value.Value, ShouldEqual, i)
			}

			metrics := q.Metrics().ExportMetrics()
			c.So(metrics["scheduling_failures"], ShouldEqual, int64(0))
			c.So(metrics["scheduling_delays"], ShouldBeGreaterThan, int64(0))
		})
	})
}

func TestQuantumPoolClose(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	q := NewQ(context.Background(), 4, &Config{SchedulingTimeout: time.Second})

	for i := 0; i < 8; i++ {
		value := <-q.Schedule(fmt.Sprintf("leak-%d", i), func() (any, error) {
			return i, nil
		})
		if value.Error != nil {
			t.Fatalf("job %d failed: %v", i, value.Error)
		}
	}

	q.Close()
}
