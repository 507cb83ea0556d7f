// Package palette builds device-type palettes: one sequence of colour
// variations per base colour, ready for rendering.
package palette

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/devpalette/internal/colour"
)

// BaseColour pairs a base hex colour with the device type it represents.
type BaseColour struct {
	Hex        string `json:"hex"`
	DeviceType string `json:"deviceType"`
}

var defaultBaseColours = []BaseColour{
	{Hex: "#2171B5", DeviceType: "Pressure Controller"},
	{Hex: "#016C59", DeviceType: "Sensor"},
	{Hex: "#7A5195", DeviceType: "Pumping Station"},
	{Hex: "#BC5090", DeviceType: "Flow meter"},
	{Hex: "#EF5675", DeviceType: "Mesh/Repeater"},
	{Hex: "#FFA600", DeviceType: "Mesh/Gateway"},
}

// DefaultBaseColours returns a copy of the built-in device colours.
func DefaultBaseColours() []BaseColour {
	out := make([]BaseColour, len(defaultBaseColours))
	copy(out, defaultBaseColours)
	return out
}

// ParseBaseSpec parses "Device Type=#hex". The colour may also be a bare hex
// value or a colour name. Only a missing '=' or an empty label is an error: a
// colour that does not resolve is kept as written, and Build reports it on
// that device's section.
func ParseBaseSpec(spec string) (BaseColour, error) {
	label, value, ok := strings.Cut(spec, "=")
	if !ok {
		return BaseColour{}, fmt.Errorf("invalid base colour %q: expected 'label=colour'", spec)
	}

	label = strings.TrimSpace(label)
	if label == "" {
		return BaseColour{}, fmt.Errorf("invalid base colour %q: empty label", spec)
	}

	return BaseColour{Hex: resolveOrRaw(value), DeviceType: label}, nil
}

// resolveOrRaw normalises a colour value, falling back to the trimmed input.
func resolveOrRaw(value string) string {
	if hex, err := colour.ResolveColour(value); err == nil {
		return hex
	}
	return strings.TrimSpace(value)
}

// ParseBaseSpecs parses a list of specs, keeping first-seen order. A label that
// appears again replaces the earlier colour.
func ParseBaseSpecs(specs []string) ([]BaseColour, error) {
	bases := make([]BaseColour, 0, len(specs))
	for _, spec := range specs {
		base, err := ParseBaseSpec(spec)
		if err != nil {
			return nil, err
		}
		bases = Merge(bases, base)
	}
	return bases, nil
}

// Merge returns bases with each override applied: an override with a known
// device type replaces that entry in place, others are appended.
func Merge(bases []BaseColour, overrides ...BaseColour) []BaseColour {
	out := make([]BaseColour, len(bases), len(bases)+len(overrides))
	copy(out, bases)

	for _, o := range overrides {
		replaced := false
		for i := range out {
			if out[i].DeviceType == o.DeviceType {
				out[i].Hex = o.Hex
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return out
}
