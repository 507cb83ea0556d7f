package colour

import (
	"fmt"
	"strings"
)

// Method selects how variations of a base colour are produced.
type Method int

const (
	// MethodLightness sweeps lightness from the base towards 95%.
	MethodLightness Method = iota
	// MethodHue spreads hues evenly around the full colour wheel.
	MethodHue
	// MethodMultiHue spreads hues across a 60 degree arc from the base hue.
	MethodMultiHue
	// MethodSaturation sweeps saturation from the base to base+20 (mod 100).
	MethodSaturation
)

var methodNames = map[Method]string{
	MethodLightness:  "lightness",
	MethodHue:        "hue",
	MethodMultiHue:   "multiHue",
	MethodSaturation: "saturation",
}

// Methods returns every variation method in display order.
func Methods() []Method {
	return []Method{MethodLightness, MethodHue, MethodMultiHue, MethodSaturation}
}

// MethodNames returns the string form of every method.
func MethodNames() []string {
	names := make([]string, 0, len(methodNames))
	for _, m := range Methods() {
		names = append(names, m.String())
	}
	return names
}

// String returns the method name as used on the command line and in URLs.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Valid reports whether m is one of the four known methods.
func (m Method) Valid() bool {
	_, ok := methodNames[m]
	return ok
}

// Next returns the method after m, wrapping around.
func (m Method) Next() Method {
	all := Methods()
	for i, candidate := range all {
		if candidate == m {
			return all[(i+1)%len(all)]
		}
	}
	return MethodLightness
}

// ParseMethod resolves a method name. Matching is case-insensitive and
// accepts "multi-hue" for multiHue.
func ParseMethod(s string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", "")
	key = strings.ReplaceAll(key, "_", "")

	for m, name := range methodNames {
		if strings.ToLower(name) == key {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownVariationMethod, s, strings.Join(MethodNames(), ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariationMethod, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
