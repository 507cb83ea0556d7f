package palette

import (
	"github.com/jmylchreest/devpalette/internal/colour"
)

// Swatch is one generated colour with the text colour to draw on it.
type Swatch struct {
	Hex  string     `json:"hex"`
	Text string     `json:"text"`
	HSL  colour.HSL `json:"hsl"`
}

// Section holds the swatches generated for one base colour. Err is set when
// that base colour could not be expanded; Swatches is then empty.
type Section struct {
	DeviceType string
	Base       string
	Swatches   []Swatch
	Err        error
}

// OK reports whether the section was generated without error.
func (s Section) OK() bool {
	return s.Err == nil
}

// Hexes returns the swatch colours in order.
func (s Section) Hexes() []string {
	out := make([]string, len(s.Swatches))
	for i, sw := range s.Swatches {
		out[i] = sw.Hex
	}
	return out
}

// Result is a fully generated palette, one section per base colour.
type Result struct {
	Params   Params
	Sections []Section
}

// Build generates every section for the given base colours. A failing base
// colour only affects its own section.
func Build(bases []BaseColour, params Params) *Result {
	result := &Result{
		Params:   params,
		Sections: make([]Section, 0, len(bases)),
	}

	for _, base := range bases {
		result.Sections = append(result.Sections, buildSection(base, params))
	}

	return result
}

func buildSection(base BaseColour, params Params) Section {
	section := Section{DeviceType: base.DeviceType, Base: base.Hex}

	hexes, err := colour.Variations(params.Method, base.Hex, params.Count)
	if err != nil {
		section.Err = err
		return section
	}

	section.Swatches = make([]Swatch, 0, len(hexes))
	for _, hex := range hexes {
		hsl, err := colour.HexToHSL(hex)
		if err != nil {
			section.Swatches = nil
			section.Err = err
			return section
		}
		section.Swatches = append(section.Swatches, Swatch{
			Hex:  hex,
			Text: colour.TextColourFor(hsl),
			HSL:  hsl,
		})
	}

	return section
}

// Map returns device type to swatches for every successful section.
func (r *Result) Map() map[string][]Swatch {
	m := make(map[string][]Swatch, len(r.Sections))
	for _, s := range r.Sections {
		if s.OK() {
			m[s.DeviceType] = s.Swatches
		}
	}
	return m
}

// Failed returns the sections that could not be generated.
func (r *Result) Failed() []Section {
	var failed []Section
	for _, s := range r.Sections {
		if !s.OK() {
			failed = append(failed, s)
		}
	}
	return failed
}
