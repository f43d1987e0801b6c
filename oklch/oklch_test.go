package oklch

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewRGB(t *testing.T) {
	Convey("NewRGB", t, func() {
		Convey("Should accept in-range channels", func() {
			c, err := NewRGB(0.2, 0.4, 0.6)
			So(err, ShouldBeNil)
			So(c.A, ShouldEqual, 1.0)
		})

		Convey("Should reject out-of-range channels with a DomainError", func() {
			for _, bad := range [][3]float64{
				{-0.1, 0, 0},
				{0, 1.1, 0},
				{0, 0, 2},
			} {
				_, err := NewRGB(bad[0], bad[1], bad[2])
				So(err, ShouldNotBeNil)
				So(err, ShouldHaveSameTypeAs, &DomainError{})
			}
		})

		Convey("DomainError should name the offending channel", func() {
			_, err := NewRGB(0, 1.5, 0)
			domainErr := err.(*DomainError)
			So(domainErr.Channel, ShouldEqual, "g")
			So(domainErr.Value, ShouldEqual, 1.5)
		})
	})
}

func TestNewLCH(t *testing.T) {
	Convey("NewLCH", t, func() {
		Convey("Should normalize hue into [0,360)", func() {
			c, err := NewLCH(0.5, 0.1, 380)
			So(err, ShouldBeNil)
			So(c.H, ShouldAlmostEqual, 20, 1e-9)

			c, err = NewLCH(0.5, 0.1, -90)
			So(err, ShouldBeNil)
			So(c.H, ShouldAlmostEqual, 270, 1e-9)
		})

		Convey("Should reject lightness outside [0,1]", func() {
			_, err := NewLCH(1.2, 0.1, 0)
			So(err, ShouldHaveSameTypeAs, &DomainError{})
		})

		Convey("Should reject negative chroma", func() {
			_, err := NewLCH(0.5, -0.1, 0)
			So(err, ShouldHaveSameTypeAs, &DomainError{})
		})
	})
}

func TestConversion(t *testing.T) {
	Convey("sRGB to OKLCH conversion", t, func() {
		Convey("White should map to L=1, C=0", func() {
			white, _ := NewRGB(1, 1, 1)
			lch, err := white.LCH()
			So(err, ShouldBeNil)
			So(lch.L, ShouldAlmostEqual, 1.0, 1e-4)
			So(lch.C, ShouldAlmostEqual, 0.0, 1e-4)
		})

		Convey("Black should map to L=0, C=0", func() {
			black, _ := NewRGB(0, 0, 0)
			lch, err := black.LCH()
			So(err, ShouldBeNil)
			So(lch.L, ShouldAlmostEqual, 0.0, 1e-4)
			So(lch.C, ShouldAlmostEqual, 0.0, 1e-4)
		})

		Convey("Out-of-range input should fail with a DomainError", func() {
			_, err := RGB{R: 1.5, G: 0, B: 0, A: 1}.LCH()
			So(err, ShouldHaveSameTypeAs, &DomainError{})
		})

		Convey("Round-trip should stay within 1e-4 per channel", func() {
			steps := []float64{0, 0.125, 0.25, 0.5, 0.625, 0.75, 0.875, 1}
			for _, r := range steps {
				for _, g := range steps {
					for _, b := range steps {
						in, _ := NewRGB(r, g, b)
						lch, err := in.LCH()
						So(err, ShouldBeNil)
						out, inGamut := lch.RGB()
						So(inGamut, ShouldBeTrue)
						So(out.R, ShouldAlmostEqual, in.R, 1e-4)
						So(out.G, ShouldAlmostEqual, in.G, 1e-4)
						So(out.B, ShouldAlmostEqual, in.B, 1e-4)
					}
				}
			}
		})

		Convey("Saturated colors with zero channels should stay in gamut", func() {
			// Zero channels pick up the largest conversion noise, landing
			// a hair below 0 or above 1 after the round trip.
			corners := []RGB{
				{R: 0, G: 1, B: 0, A: 1},
				{R: 1, G: 0, B: 0, A: 1},
				{R: 0, G: 0, B: 1, A: 1},
				{R: 1, G: 1, B: 0, A: 1},
				{R: 0.2, G: 0, B: 0, A: 1},
			}
			for _, in := range corners {
				lch, err := in.LCH()
				So(err, ShouldBeNil)
				out, inGamut := lch.RGB()
				So(inGamut, ShouldBeTrue)
				So(out.InGamut(), ShouldBeTrue)
			}
		})

		Convey("Out-of-gamut OKLCH should be reported, not clamped", func() {
			// High chroma green far outside what sRGB can represent.
			loud, _ := NewLCH(0.6, 0.4, 140)
			rgb, inGamut := loud.RGB()
			So(inGamut, ShouldBeFalse)
			So(rgb.InGamut(), ShouldBeFalse)

			clamped := rgb.Clamp()
			So(clamped.InGamut(), ShouldBeTrue)
		})

		Convey("Linearize should invert the gamma encoding", func() {
			c, _ := NewRGB(0.5, 0.5, 0.5)
			r, g, b := c.Linearize()
			So(r, ShouldAlmostEqual, math.Pow((0.5+0.055)/1.055, 2.4), 1e-12)
			So(g, ShouldEqual, r)
			So(b, ShouldEqual, r)
		})
	})
}
