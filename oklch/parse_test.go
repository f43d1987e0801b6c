package oklch

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should decode #rrggbb literals", func() {
			c, err := Parse("#336699")
			So(err, ShouldBeNil)
			So(c.RGB.R, ShouldAlmostEqual, 0x33/255.0, 1e-9)
			So(c.RGB.G, ShouldAlmostEqual, 0x66/255.0, 1e-9)
			So(c.RGB.B, ShouldAlmostEqual, 0x99/255.0, 1e-9)
			So(c.RGB.A, ShouldEqual, 1.0)
			So(c.InGamut, ShouldBeTrue)
		})

		Convey("Should decode #rgb shorthand", func() {
			c, err := Parse("#369")
			So(err, ShouldBeNil)
			So(c.RGB.Hex(), ShouldEqual, "#336699")
		})

		Convey("Should decode #rrggbbaa literals", func() {
			c, err := Parse("#33669980")
			So(err, ShouldBeNil)
			So(c.RGB.A, ShouldAlmostEqual, 0x80/255.0, 1e-9)
		})

		Convey("Should decode functional oklch notation", func() {
			c, err := Parse("oklch(0.30 0.03 260)")
			So(err, ShouldBeNil)
			So(c.LCH.L, ShouldEqual, 0.30)
			So(c.LCH.C, ShouldEqual, 0.03)
			So(c.LCH.H, ShouldEqual, 260.0)
			So(c.InGamut, ShouldBeTrue)
		})

		Convey("Should accept percentage lightness", func() {
			c, err := Parse("oklch(30% 0.03 260)")
			So(err, ShouldBeNil)
			So(c.LCH.L, ShouldEqual, 0.30)
		})

		Convey("Should accept an alpha component", func() {
			c, err := Parse("oklch(0.97 0 0 / 0.5)")
			So(err, ShouldBeNil)
			So(c.LCH.A, ShouldEqual, 0.5)

			c, err = Parse("oklch(0.97 0 0 / 50%)")
			So(err, ShouldBeNil)
			So(c.LCH.A, ShouldEqual, 0.5)
		})

		Convey("Should flag out-of-gamut oklch tokens", func() {
			c, err := Parse("oklch(0.6 0.4 140)")
			So(err, ShouldBeNil)
			So(c.InGamut, ShouldBeFalse)
		})

		Convey("Should reject out-of-range lightness", func() {
			_, err := Parse("oklch(1.3 0.03 260)")
			So(err, ShouldNotBeNil)
			So(err, ShouldHaveSameTypeAs, &DomainError{})
		})

		Convey("Should reject malformed literals", func() {
			for _, bad := range []string{"", "#33669", "rgb(1 2 3)", "oklch()", "oklch(0.3)", "#33zz99"} {
				_, err := Parse(bad)
				So(err, ShouldNotBeNil)
			}
		})

		Convey("Hex should round-trip through Parse", func() {
			c, err := Parse("oklch(0.30 0.03 260)")
			So(err, ShouldBeNil)

			again, err := Parse(c.RGB.Hex())
			So(err, ShouldBeNil)
			So(again.LCH.L, ShouldAlmostEqual, 0.30, 0.01)
			So(again.LCH.H, ShouldAlmostEqual, 260, 2.0)
		})
	})
}

func TestFormat(t *testing.T) {
	Convey("Formatting", t, func() {
		Convey("LCH String uses functional notation", func() {
			c, _ := NewLCH(0.3, 0.03, 260)
			So(c.String(), ShouldEqual, "oklch(0.3000 0.0300 260.0)")
		})

		Convey("LCH String includes alpha when translucent", func() {
			c, _ := NewLCHA(0.3, 0.03, 260, 0.5)
			So(c.String(), ShouldEqual, "oklch(0.3000 0.0300 260.0 / 0.50)")
		})

		Convey("Hex clamps out-of-gamut channels for display", func() {
			c := RGB{R: 1.2, G: -0.1, B: 0.5, A: 1}
			So(c.Hex(), ShouldEqual, "#ff0080")
		})
	})
}
