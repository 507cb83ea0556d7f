// Package jsonout renders a palette as a JSON document.
package jsonout

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/devpalette/internal/colour"
	"github.com/jmylchreest/devpalette/internal/palette"
)

// Document is the JSON shape of a generated palette.
type Document struct {
	Count    int               `json:"count"`
	Method   colour.Method     `json:"method"`
	Sections []SectionDocument `json:"sections"`
}

// SectionDocument is one device type. Error is set instead of swatches when
// the base colour could not be expanded.
type SectionDocument struct {
	DeviceType string           `json:"deviceType"`
	Base       string           `json:"base"`
	Swatches   []SwatchDocument `json:"swatches"`
	Error      string           `json:"error,omitempty"`
}

// SwatchDocument is one generated colour.
type SwatchDocument struct {
	Hex  string `json:"hex"`
	Text string `json:"text"`
}

// NewDocument converts a result to its JSON document.
func NewDocument(result *palette.Result) Document {
	doc := Document{
		Count:    result.Params.Count,
		Method:   result.Params.Method,
		Sections: make([]SectionDocument, 0, len(result.Sections)),
	}
	for _, s := range result.Sections {
		sd := SectionDocument{
			DeviceType: s.DeviceType,
			Base:       s.Base,
			Swatches:   make([]SwatchDocument, 0, len(s.Swatches)),
		}
		if s.Err != nil {
			sd.Error = s.Err.Error()
		}
		for _, sw := range s.Swatches {
			sd.Swatches = append(sd.Swatches, SwatchDocument{Hex: sw.Hex, Text: sw.Text})
		}
		doc.Sections = append(doc.Sections, sd)
	}
	return doc
}

// Renderer implements render.Renderer for JSON.
type Renderer struct {
	compact bool
}

// New creates a JSON renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the renderer name.
func (r *Renderer) Name() string {
	return "json"
}

// Description returns the renderer description.
func (r *Renderer) Description() string {
	return "JSON document with every section and swatch"
}

// RegisterFlags registers renderer-specific flags with the cobra command.
func (r *Renderer) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&r.compact, "json.compact", false, "Write compact JSON without indentation")
}

// Validate checks if the renderer configuration is valid.
func (r *Renderer) Validate() error {
	return nil
}

// Render creates palette.json.
func (r *Renderer) Render(result *palette.Result) (map[string][]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("palette cannot be nil")
	}

	var (
		data []byte
		err  error
	)
	if r.compact {
		data, err = json.Marshal(NewDocument(result))
	} else {
		data, err = json.MarshalIndent(NewDocument(result), "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal palette: %w", err)
	}

	return map[string][]byte{"palette.json": append(data, '\n')}, nil
}
