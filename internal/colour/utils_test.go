package colour

import (
	"errors"
	"math"
	"testing"
)

const hslTolerance = 0.05

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// angularDiff returns the signed smallest difference b-a in degrees.
func angularDiff(a, b float64) float64 {
	d := NormaliseHue(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		hex  string
		want HSL
	}{
		{hex: "#ff0000", want: HSL{H: 0, S: 100, L: 50}},
		{hex: "#00ff00", want: HSL{H: 120, S: 100, L: 50}},
		{hex: "#0000ff", want: HSL{H: 240, S: 100, L: 50}},
		{hex: "#ff00ff", want: HSL{H: 300, S: 100, L: 50}},
		{hex: "#ffffff", want: HSL{H: 0, S: 0, L: 100}},
		{hex: "#000", want: HSL{H: 0, S: 0, L: 0}},
		{hex: "#808080", want: HSL{H: 0, S: 0, L: 50.196}},
		// r=33 g=113 b=181: blue is maximal, hue = 60*((r-g)/d + 4).
		{hex: "#2171B5", want: HSL{H: 207.568, S: 69.159, L: 41.961}},
		{hex: "#FFA600", want: HSL{H: 39.059, S: 100, L: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := HexToHSL(tt.hex)
			if err != nil {
				t.Fatalf("HexToHSL(%q) error: %v", tt.hex, err)
			}
			if !approxEqual(got.H, tt.want.H, hslTolerance) ||
				!approxEqual(got.S, tt.want.S, hslTolerance) ||
				!approxEqual(got.L, tt.want.L, hslTolerance) {
				t.Errorf("HexToHSL(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
			if got.H < 0 || got.H >= 360 {
				t.Errorf("hue %f outside [0,360)", got.H)
			}
		})
	}
}

func TestHexToHSLRejectsMalformed(t *testing.T) {
	for _, hex := range []string{"", "#", "#12", "#12345", "#1234567", "123456", "#gggggg"} {
		t.Run(hex, func(t *testing.T) {
			got, err := HexToHSL(hex)
			if !errors.Is(err, ErrInvalidColorFormat) {
				t.Fatalf("HexToHSL(%q) error = %v, want ErrInvalidColorFormat", hex, err)
			}
			if math.IsNaN(got.H) || math.IsNaN(got.S) || math.IsNaN(got.L) {
				t.Errorf("HexToHSL(%q) returned NaN: %+v", hex, got)
			}
		})
	}
}

func TestHSLToHex(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    string
	}{
		{name: "red", h: 0, s: 100, l: 50, want: "#ff0000"},
		{name: "green", h: 120, s: 100, l: 50, want: "#00ff00"},
		{name: "blue", h: 240, s: 100, l: 50, want: "#0000ff"},
		{name: "white", h: 0, s: 0, l: 100, want: "#ffffff"},
		{name: "black", h: 200, s: 50, l: 0, want: "#000000"},
		{name: "hue 360 wraps to red", h: 360, s: 100, l: 50, want: "#ff0000"},
		{name: "negative hue wraps", h: -120, s: 100, l: 50, want: "#0000ff"},
		{name: "saturation clamped", h: 0, s: 150, l: 50, want: "#ff0000"},
		{name: "lightness clamped", h: 0, s: 100, l: 120, want: "#ffffff"},
		{name: "negative lightness clamped", h: 0, s: 100, l: -5, want: "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToHex(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("HSLToHex(%v, %v, %v) = %s, want %s", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	check := func(t *testing.T, hex string) {
		t.Helper()
		hsl, err := HexToHSL(hex)
		if err != nil {
			t.Fatalf("HexToHSL(%q): %v", hex, err)
		}
		assertChannelsWithin(t, hex, hsl.Hex(), 1)
	}

	for _, hex := range []string{"#2171B5", "#016C59", "#7A5195", "#BC5090", "#EF5675", "#FFA600", "#abc", "#fff", "#000"} {
		check(t, hex)
	}

	// Coarse sweep through the RGB cube.
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 51 {
				check(t, RGB{R: uint8(r), G: uint8(g), B: uint8(b)}.Hex())
			}
		}
	}
}

func TestNormaliseHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{in: 0, want: 0},
		{in: 359.5, want: 359.5},
		{in: 360, want: 0},
		{in: 725, want: 5},
		{in: -30, want: 330},
		{in: math.NaN(), want: 0},
		{in: math.Inf(1), want: 0},
	}
	for _, tt := range tests {
		if got := NormaliseHue(tt.in); !approxEqual(got, tt.want, 1e-9) {
			t.Errorf("NormaliseHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestForwardHueDistance(t *testing.T) {
	if got := ForwardHueDistance(350, 20); !approxEqual(got, 30, 1e-9) {
		t.Errorf("ForwardHueDistance(350, 20) = %v, want 30", got)
	}
	if got := ForwardHueDistance(20, 350); !approxEqual(got, 330, 1e-9) {
		t.Errorf("ForwardHueDistance(20, 350) = %v, want 330", got)
	}
}

func assertChannelsWithin(t *testing.T, want, got string, tol int) {
	t.Helper()
	w, err := ParseHex(want)
	if err != nil {
		t.Fatalf("ParseHex(%q): %v", want, err)
	}
	g, err := ParseHex(got)
	if err != nil {
		t.Fatalf("ParseHex(%q): %v", got, err)
	}
	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			return -d
		}
		return d
	}
	if diff(w.R, g.R) > tol || diff(w.G, g.G) > tol || diff(w.B, g.B) > tol {
		t.Errorf("round trip %s -> %s exceeds ±%d per channel", want, got, tol)
	}
}
