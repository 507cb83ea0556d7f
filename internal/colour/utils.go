package colour

import (
	"fmt"
	"math"
)

// HSL is a colour in hue/saturation/lightness form.
// H is in degrees [0, 360), S and L are percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the colour in CSS notation, e.g. "hsl(207.6, 69.2%, 42.0%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", c.H, c.S, c.L)
}

// Hex converts the colour back to a "#rrggbb" string.
func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

// HexToHSL converts "#RGB" or "#RRGGBB" to HSL.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}

// RGBToHSL converts RGB to HSL colour space.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l := (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	// Saturation.
	var s float64
	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	// Hue.
	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	return HSL{
		H: NormaliseHue(h * 60),
		S: s * 100,
		L: l * 100,
	}
}

// HSLToHex converts HSL to a "#rrggbb" string.
// h is hue in degrees (any value, wrapped into [0, 360)), s and l are
// percentages clamped into [0, 100].
func HSLToHex(h, s, l float64) string {
	return HSLToRGB(h, s, l).Hex()
}

// HSLToRGB converts HSL to RGB using the chroma form of the conversion.
func HSLToRGB(h, s, l float64) RGB {
	h = NormaliseHue(h)
	s = clampPercent(s) / 100
	l = clampPercent(l) / 100

	a := s * math.Min(l, 1-l)
	k := func(n float64) float64 {
		return math.Mod(n+h/30, 12)
	}
	f := func(n float64) float64 {
		kn := k(n)
		return l - a*math.Max(math.Min(math.Min(kn-3, 9-kn), 1), -1)
	}

	return RGB{
		R: toChannel(f(0)),
		G: toChannel(f(8)),
		B: toChannel(f(4)),
	}
}

// NormaliseHue wraps a hue in degrees into [0, 360).
func NormaliseHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// Mod of a tiny negative value can round back up to 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// ForwardHueDistance returns how far h lies clockwise from start, in [0, 360).
func ForwardHueDistance(start, h float64) float64 {
	return NormaliseHue(h - start)
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}

func toChannel(v float64) uint8 {
	c := math.Round(v * 255)
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return uint8(c)
}
