// Package oklch implements bidirectional conversion between sRGB and the
// OKLCH perceptual color space.
//
// The conversion follows the standard OKLab transform chain: sRGB gamma
// decoding, a fixed linear-to-LMS matrix, a cube-root nonlinearity, a fixed
// LMS'-to-Lab matrix, then a Cartesian-to-polar projection for the chroma and
// hue axes. Conversions never clamp: out-of-gamut results are reported, not
// clipped, so upstream token decisions stay visible.
package oklch

import (
	"fmt"
	"math"
)

// DomainError reports a channel value outside its defined range at construction time.
type DomainError struct {
	Channel string
	Value   float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("channel %s out of range: %v", e.Channel, e.Value)
}

// RGB is a color in the sRGB encoding. Channels are normalized to [0,1].
// Values are immutable; conversions produce new values.
type RGB struct {
	R, G, B float64
	A       float64
}

// LCH is a color in the OKLCH polar form: Lightness in [0,1], Chroma >= 0,
// Hue in degrees normalized to [0,360).
type LCH struct {
	L, C, H float64
	A       float64
}

// NewRGB constructs an opaque sRGB color, validating every channel.
// Out-of-range input fails with a DomainError rather than clamping, since
// silent clamping would corrupt downstream contrast computations.
func NewRGB(r, g, b float64) (RGB, error) {
	return NewRGBA(r, g, b, 1)
}

// NewRGBA constructs an sRGB color with an explicit alpha channel.
func NewRGBA(r, g, b, a float64) (RGB, error) {
	for _, ch := range []struct {
		name  string
		value float64
	}{{"r", r}, {"g", g}, {"b", b}, {"a", a}} {
		if ch.value < 0 || ch.value > 1 || math.IsNaN(ch.value) {
			return RGB{}, &DomainError{Channel: ch.name, Value: ch.value}
		}
	}
	return RGB{R: r, G: g, B: b, A: a}, nil
}

// NewLCH constructs an OKLCH color. Lightness must lie in [0,1] and chroma
// must be non-negative; hue is normalized into [0,360).
func NewLCH(l, c, h float64) (LCH, error) {
	return NewLCHA(l, c, h, 1)
}

// NewLCHA constructs an OKLCH color with an explicit alpha channel.
func NewLCHA(l, c, h, a float64) (LCH, error) {
	if l < 0 || l > 1 || math.IsNaN(l) {
		return LCH{}, &DomainError{Channel: "l", Value: l}
	}
	if c < 0 || math.IsNaN(c) {
		return LCH{}, &DomainError{Channel: "c", Value: c}
	}
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return LCH{}, &DomainError{Channel: "h", Value: h}
	}
	if a < 0 || a > 1 || math.IsNaN(a) {
		return LCH{}, &DomainError{Channel: "a", Value: a}
	}
	return LCH{L: l, C: c, H: normalizeHue(h), A: a}, nil
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// LCH converts the color to the OKLCH polar form. Input channels outside
// [0,1] fail with a DomainError.
func (c RGB) LCH() (LCH, error) {
	for _, ch := range []struct {
		name  string
		value float64
	}{{"r", c.R}, {"g", c.G}, {"b", c.B}} {
		if ch.value < 0 || ch.value > 1 || math.IsNaN(ch.value) {
			return LCH{}, &DomainError{Channel: ch.name, Value: ch.value}
		}
	}

	rl, gl, bl := srgbToLinear(c.R), srgbToLinear(c.G), srgbToLinear(c.B)

	// linear sRGB -> LMS
	l := 0.4122214708*rl + 0.5363325363*gl + 0.0514459929*bl
	m := 0.2119034982*rl + 0.6806995451*gl + 0.1073969566*bl
	s := 0.0883024619*rl + 0.2817188376*gl + 0.6299787005*bl

	l_, m_, s_ := math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)

	// LMS' -> OKLab
	L := 0.2104542553*l_ + 0.7936177850*m_ - 0.0040720468*s_
	a := 1.9779984951*l_ - 2.4285922050*m_ + 0.4505937099*s_
	b := 0.0259040371*l_ + 0.7827717662*m_ - 0.8086757660*s_

	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}

	return LCH{L: L, C: math.Hypot(a, b), H: h, A: c.A}, nil
}

// RGB converts the color back to the sRGB encoding through the exact inverse
// chain. The second result reports whether the converted color lies inside
// the sRGB gamut; channels are never clamped.
func (c LCH) RGB() (RGB, bool) {
	h := c.H * math.Pi / 180
	a := c.C * math.Cos(h)
	b := c.C * math.Sin(h)

	// OKLab -> LMS'
	l_ := c.L + 0.3963377774*a + 0.2158037573*b
	m_ := c.L - 0.1055613458*a - 0.0638541728*b
	s_ := c.L - 0.0894841775*a - 1.2914855480*b

	l, m, s := l_*l_*l_, m_*m_*m_, s_*s_*s_

	// LMS -> linear sRGB
	rl := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	gl := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	out := RGB{
		R: linearToSrgb(rl),
		G: linearToSrgb(gl),
		B: linearToSrgb(bl),
		A: c.A,
	}
	return out, out.InGamut()
}

// InGamut reports whether every channel lies inside [0,1]. The tolerance
// absorbs the conversion chain's numeric noise (~1e-6 on zero channels), so
// colors that entered as valid sRGB never read as out of gamut after a
// round trip.
func (c RGB) InGamut() bool {
	const eps = 1e-4
	inRange := func(v float64) bool { return v >= -eps && v <= 1+eps }
	return inRange(c.R) && inRange(c.G) && inRange(c.B)
}

// Clamp returns a copy with every channel clipped into [0,1]. Intended for
// display purposes only; contrast math operates on unclamped values.
func (c RGB) Clamp() RGB {
	clip := func(v float64) float64 {
		return math.Max(0, math.Min(1, v))
	}
	return RGB{R: clip(c.R), G: clip(c.G), B: clip(c.B), A: clip(c.A)}
}

// Linearize returns the gamma-decoded linear-light channel values.
func (c RGB) Linearize() (r, g, b float64) {
	return srgbToLinear(c.R), srgbToLinear(c.G), srgbToLinear(c.B)
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func linearToSrgb(v float64) float64 {
	// Mirrored around zero so out-of-gamut negative channels stay finite
	// and ordered instead of collapsing to NaN.
	if v < 0 {
		return -linearToSrgb(-v)
	}
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}
