package qsim

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantumSpace(t *testing.T) {
	Convey("Given a quantum space", t, func() {
		qs := newQuantumSpace()

		Convey("When a value is stored before anyone awaits it", func() {
			qs.Store("test-key", "test-value", nil)
			So(qs.Pending(), ShouldEqual, 1)

			Convey("Await should hand it over once", func() {
				value := <-qs.Await("test-key")
				So(value.Value, ShouldEqual, "test-value")
				So(value.Error, ShouldBeNil)
				So(qs.Pending(), ShouldEqual, 0)
			})
		})

		Convey("When an observer awaits before the value is stored", func() {
			ch := qs.Await("later")
			qs.Store("later", 42, nil)

			value, ok := <-ch
			So(ok, ShouldBeTrue)
			So(value.Value, ShouldEqual, 42)

			_, ok = <-ch
			So(ok, ShouldBeFalse)
			So(qs.Pending(), ShouldEqual, 0)
		})
	})
}
