package util

import (
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "violation", "violations"), ShouldEqual, "1 violation")
		So(Quantify(2, "violation", "violations"), ShouldEqual, "2 violations")
		So(Quantify(0, "violation", "violations"), ShouldEqual, "0 violations")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("accent"), ShouldEqual, "Accent")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<l>[\d.]+)\s+(?P<c>[\d.]+)\s+(?P<h>[\d.]+)`)

		Convey("Should map named groups", func() {
			groups := ReGroups(re, "0.30 0.03 260")
			So(groups["l"], ShouldEqual, "0.30")
			So(groups["c"], ShouldEqual, "0.03")
			So(groups["h"], ShouldEqual, "260")
		})

		Convey("Should return nil on no match", func() {
			So(ReGroups(re, "not a color"), ShouldBeNil)
		})
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1.0, 5.0, 2.0), ShouldEqual, 5.0)
		So(Min(1.0, 5.0, 2.0), ShouldEqual, 1.0)
	})
}
