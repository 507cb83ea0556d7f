// Package colour provides the colour-space maths behind devpalette: hex and HSL
// conversion, variation generators and the text-contrast rule.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
)

var (
	// ErrInvalidColorFormat is returned for hex strings that are not #RGB or #RRGGBB.
	ErrInvalidColorFormat = errors.New("invalid colour format")

	// ErrInvalidVariationCount is returned when fewer than two variations are requested.
	ErrInvalidVariationCount = errors.New("invalid variation count")

	// ErrUnknownVariationMethod is returned for a method outside the four known ones.
	ErrUnknownVariationMethod = errors.New("unknown variation method")
)

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Color converts the value to a color.Color with full opacity.
func (rgb RGB) Color() color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ParseHex parses "#RGB" or "#RRGGBB" into its channels.
// Shorthand is expanded by duplicating each nibble.
func ParseHex(hex string) (RGB, error) {
	var digits string
	switch {
	case len(hex) == 4 && hex[0] == '#':
		digits = string([]byte{hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	case len(hex) == 7 && hex[0] == '#':
		digits = hex[1:]
	default:
		return RGB{}, fmt.Errorf("%w: %q (expected #RGB or #RRGGBB)", ErrInvalidColorFormat, hex)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidColorFormat, hex)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
