package oklch

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/oklint-cli/oklint/util"
)

// Color is a parsed color literal carrying both representations. Parsing is
// the boundary adapter for token files; the conversion math itself never
// touches notation strings.
type Color struct {
	// RGB is the device representation. Unclamped: channels may fall
	// outside [0,1] when the literal was an out-of-gamut oklch() token.
	RGB RGB
	// LCH is the perceptual representation.
	LCH LCH
	// InGamut reports whether RGB lies inside the sRGB gamut.
	InGamut bool
}

var (
	hexPattern = regexp.MustCompile(`^#(?P<hex>[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

	number = `[+-]?(?:\d+\.?\d*|\.\d+)`

	oklchPattern = regexp.MustCompile(
		`^oklch\(\s*(?P<l>` + number + `%?)\s+(?P<c>` + number + `)\s+(?P<h>` + number + `)(?:deg)?\s*(?:/\s*(?P<a>` + number + `%?)\s*)?\)$`)
)

// Parse decodes a color literal in either hex (#rgb, #rrggbb, #rrggbbaa) or
// functional OKLCH notation (oklch(L C h [/ a]), L bare or percentage).
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)

	if groups := util.ReGroups(hexPattern, s); groups != nil {
		rgb, err := parseHex(groups["hex"])
		if err != nil {
			return Color{}, err
		}
		lch, err := rgb.LCH()
		if err != nil {
			return Color{}, err
		}
		return Color{RGB: rgb, LCH: lch, InGamut: true}, nil
	}

	if groups := util.ReGroups(oklchPattern, strings.ToLower(s)); groups != nil {
		lch, err := parseOklch(groups)
		if err != nil {
			return Color{}, err
		}
		rgb, inGamut := lch.RGB()
		return Color{RGB: rgb, LCH: lch, InGamut: inGamut}, nil
	}

	return Color{}, fmt.Errorf("unrecognized color literal %q", s)
}

func parseHex(h string) (RGB, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}

	byteAt := func(i int) float64 {
		v, _ := strconv.ParseUint(h[i:i+2], 16, 8)
		return float64(v) / 255
	}

	a := 1.0
	if len(h) == 8 {
		a = byteAt(6)
	}
	return NewRGBA(byteAt(0), byteAt(2), byteAt(4), a)
}

func parseOklch(groups map[string]string) (LCH, error) {
	l, err := parseComponent(groups["l"])
	if err != nil {
		return LCH{}, err
	}

	c, err := strconv.ParseFloat(groups["c"], 64)
	if err != nil {
		return LCH{}, fmt.Errorf("invalid chroma %q: %w", groups["c"], err)
	}

	h, err := strconv.ParseFloat(groups["h"], 64)
	if err != nil {
		return LCH{}, fmt.Errorf("invalid hue %q: %w", groups["h"], err)
	}

	a := 1.0
	if raw, ok := groups["a"]; ok && raw != "" {
		a, err = parseComponent(raw)
		if err != nil {
			return LCH{}, err
		}
	}

	return NewLCHA(l, c, h, a)
}

// parseComponent decodes a bare number or a percentage into a [0,1] fraction.
func parseComponent(s string) (float64, error) {
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid percentage %q: %w", s, err)
		}
		return v / 100, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid component %q: %w", s, err)
	}
	return v, nil
}

// Hex formats the color as #rrggbb, or #rrggbbaa when the alpha channel is
// not fully opaque. Channels are clamped for display.
func (c RGB) Hex() string {
	clamped := c.Clamp()
	toByte := func(v float64) uint8 {
		return uint8(math.Round(v * 255))
	}

	if clamped.A < 1 {
		return fmt.Sprintf("#%02x%02x%02x%02x", toByte(clamped.R), toByte(clamped.G), toByte(clamped.B), toByte(clamped.A))
	}
	return fmt.Sprintf("#%02x%02x%02x", toByte(clamped.R), toByte(clamped.G), toByte(clamped.B))
}

// String formats the color in functional OKLCH notation.
func (c LCH) String() string {
	if c.A < 1 {
		return fmt.Sprintf("oklch(%.4f %.4f %.1f / %.2f)", c.L, c.C, c.H, c.A)
	}
	return fmt.Sprintf("oklch(%.4f %.4f %.1f)", c.L, c.C, c.H)
}
