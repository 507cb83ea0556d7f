package colour

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// DarkText is used on swatches lighter than the threshold.
	DarkText = "#000"
	// LightText is used on swatches at or below the threshold.
	LightText = "#fff"

	textLightnessThreshold = 50.0
)

// TextColour picks the foreground for a swatch: dark text when its HSL
// lightness is above 50%, light text otherwise.
func TextColour(hex string) (string, error) {
	hsl, err := HexToHSL(hex)
	if err != nil {
		return "", err
	}
	return TextColourFor(hsl), nil
}

// TextColourFor applies the lightness threshold to an already converted colour.
func TextColourFor(hsl HSL) string {
	if hsl.L > textLightnessThreshold {
		return DarkText
	}
	return LightText
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	// Convert from 16-bit to 8-bit.
	rf := gammaCorrect(float64(r>>8) / 255.0)
	gf := gammaCorrect(float64(g>>8) / 255.0)
	bf := gammaCorrect(float64(b>>8) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 color.Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// Distance returns the CIEDE2000 colour difference between two hex colours.
// Values around 2 are barely perceptible; above 10 reads as a distinct colour.
func Distance(hex1, hex2 string) (float64, error) {
	c1, err := toColorful(hex1)
	if err != nil {
		return 0, err
	}
	c2, err := toColorful(hex2)
	if err != nil {
		return 0, err
	}
	return c1.DistanceCIEDE2000(c2) * 100, nil
}

// MinStepDistance returns the smallest CIEDE2000 difference between adjacent
// colours of a sequence, or 0 when there are fewer than two colours.
func MinStepDistance(hexes []string) (float64, error) {
	if len(hexes) < 2 {
		return 0, nil
	}
	minDist := math.Inf(1)
	for i := 1; i < len(hexes); i++ {
		d, err := Distance(hexes[i-1], hexes[i])
		if err != nil {
			return 0, err
		}
		minDist = math.Min(minDist, d)
	}
	return minDist, nil
}

func toColorful(hex string) (colorful.Color, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return colorful.Color{}, err
	}
	c, _ := colorful.MakeColor(rgb.Color())
	return c, nil
}
