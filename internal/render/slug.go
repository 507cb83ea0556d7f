package render

import (
	"strings"
	"unicode"
)

// Slug turns a device type label into a lower-case identifier suitable for
// CSS custom properties and file names ("Mesh/Gateway" -> "mesh-gateway").
func Slug(label string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
