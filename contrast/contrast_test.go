package contrast

import (
	"testing"

	"github.com/oklint-cli/oklint/oklch"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func mustParse(s string) oklch.RGB {
	return lo.Must(oklch.Parse(s)).RGB
}

func TestRatio(t *testing.T) {
	Convey("Ratio", t, func() {
		white := mustParse("#ffffff")
		black := mustParse("#000000")

		Convey("White on black should be exactly 21", func() {
			So(Ratio(white, black), ShouldAlmostEqual, 21.0, 0.01)
		})

		Convey("Should be symmetric", func() {
			pairs := [][2]string{
				{"#336699", "#f7f7f7"},
				{"#000000", "#ffffff"},
				{"#a6e3a1", "#1e1e2e"},
			}
			for _, pair := range pairs {
				a, b := mustParse(pair[0]), mustParse(pair[1])
				So(Ratio(a, b), ShouldEqual, Ratio(b, a))
			}
		})

		Convey("Identical colors should yield exactly 1", func() {
			So(Ratio(white, white), ShouldEqual, 1.0)
		})

		Convey("Should never be below 1", func() {
			for _, pair := range [][2]string{
				{"#808080", "#808081"},
				{"#ff0000", "#00ff00"},
			} {
				So(Ratio(mustParse(pair[0]), mustParse(pair[1])), ShouldBeGreaterThanOrEqualTo, 1.0)
			}
		})

		Convey("Increasing lightness separation should never decrease the ratio", func() {
			bg := mustParse("#202020")
			prev := 0.0
			for _, fg := range []string{"#303030", "#505050", "#808080", "#b0b0b0", "#e0e0e0", "#ffffff"} {
				r := Ratio(mustParse(fg), bg)
				So(r, ShouldBeGreaterThanOrEqualTo, prev)
				prev = r
			}
		})
	})
}

func TestLuminance(t *testing.T) {
	Convey("Luminance", t, func() {
		So(Luminance(mustParse("#ffffff")), ShouldAlmostEqual, 1.0, 1e-9)
		So(Luminance(mustParse("#000000")), ShouldEqual, 0.0)

		Convey("Green should dominate the weighting", func() {
			green := Luminance(mustParse("#00ff00"))
			red := Luminance(mustParse("#ff0000"))
			blue := Luminance(mustParse("#0000ff"))
			So(green, ShouldBeGreaterThan, red)
			So(red, ShouldBeGreaterThan, blue)
		})
	})
}

func TestEvaluate(t *testing.T) {
	Convey("Evaluate", t, func() {
		policy := DefaultPolicy()
		white := mustParse("#ffffff")
		black := mustParse("#000000")

		Convey("White on black should pass both contexts", func() {
			for _, ctx := range []Context{Body, Large} {
				ev, err := Evaluate(white, black, ctx, policy)
				So(err, ShouldBeNil)
				So(ev.Pass, ShouldBeTrue)
				So(ev.Ratio, ShouldAlmostEqual, 21.0, 0.01)
			}
		})

		Convey("The documented fg/bg token pair should pass body context", func() {
			fg := mustParse("oklch(0.30 0.03 260)")
			bg := mustParse("oklch(0.97 0 0)")
			ev, err := Evaluate(fg, bg, Body, policy)
			So(err, ShouldBeNil)
			So(ev.Ratio, ShouldBeGreaterThanOrEqualTo, 4.5)
			So(ev.Pass, ShouldBeTrue)
		})

		Convey("Identical colors should fail both default thresholds", func() {
			for _, ctx := range []Context{Body, Large} {
				ev, err := Evaluate(white, white, ctx, policy)
				So(err, ShouldBeNil)
				So(ev.Ratio, ShouldEqual, 1.0)
				So(ev.Pass, ShouldBeFalse)
			}
		})

		Convey("A threshold of exactly 1 accepts identical colors when configured", func() {
			ev, err := Evaluate(white, white, Body, Policy{Body: 1.0, Large: 1.0})
			So(err, ShouldBeNil)
			So(ev.Pass, ShouldBeTrue)
		})

		Convey("Large context should use the large threshold", func() {
			fg := mustParse("#767676")
			ev, err := Evaluate(fg, white, Large, policy)
			So(err, ShouldBeNil)
			So(ev.Threshold, ShouldEqual, 3.0)
			So(ev.Pass, ShouldBeTrue)

			ev, err = Evaluate(fg, white, Body, policy)
			So(err, ShouldBeNil)
			So(ev.Threshold, ShouldEqual, 4.5)
			So(ev.Pass, ShouldBeTrue)
		})

		Convey("Transparent foreground should be rejected", func() {
			transparent := lo.Must(oklch.Parse("#ffffff00")).RGB
			_, err := Evaluate(transparent, black, Body, policy)
			So(err, ShouldNotBeNil)
			So(err, ShouldHaveSameTypeAs, &InvalidInputError{})
		})

		Convey("Non-positive thresholds should be rejected", func() {
			_, err := Evaluate(white, black, Body, Policy{Body: 0, Large: 3})
			So(err, ShouldHaveSameTypeAs, &ConfigError{})

			_, err = Evaluate(white, black, Large, Policy{Body: 4.5, Large: -1})
			So(err, ShouldHaveSameTypeAs, &ConfigError{})
		})
	})
}

func TestParseContext(t *testing.T) {
	Convey("ParseContext", t, func() {
		ctx, err := ParseContext("body")
		So(err, ShouldBeNil)
		So(ctx, ShouldEqual, Body)

		ctx, err = ParseContext("large")
		So(err, ShouldBeNil)
		So(ctx, ShouldEqual, Large)

		_, err = ParseContext("huge")
		So(err, ShouldHaveSameTypeAs, &ConfigError{})
	})
}
