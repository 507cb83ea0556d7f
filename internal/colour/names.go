package colour

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// ResolveColour accepts "#RGB", "#RRGGBB", the same without the leading '#',
// or an SVG 1.1 colour name ("steelblue") and returns a '#'-prefixed hex.
// Hex input is returned with its original digits so labels keep their casing.
func ResolveColour(s string) (string, error) {
	value := strings.TrimSpace(s)
	if value == "" {
		return "", fmt.Errorf("%w: empty colour", ErrInvalidColorFormat)
	}

	if strings.HasPrefix(value, "#") {
		if _, err := ParseHex(value); err != nil {
			return "", err
		}
		return value, nil
	}

	if len(value) == 3 || len(value) == 6 {
		if _, err := ParseHex("#" + value); err == nil {
			return "#" + value, nil
		}
	}

	if named, ok := colornames.Map[strings.ToLower(value)]; ok {
		return ToRGB(named).Hex(), nil
	}

	return "", fmt.Errorf("%w: %q is neither a hex colour nor a known colour name", ErrInvalidColorFormat, s)
}
