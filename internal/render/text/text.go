// Package text renders a palette for the terminal.
package text

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/devpalette/internal/colour"
	"github.com/jmylchreest/devpalette/internal/palette"
)

const (
	defaultSwatchWidth = 10
	defaultLineWidth   = 80
	minSwatchWidth     = 7
)

// Renderer implements render.Renderer for ANSI terminal output.
type Renderer struct {
	swatchWidth int
	lineWidth   int
	noColour    bool
}

// New creates a text renderer with colour enabled.
func New() *Renderer {
	return &Renderer{
		swatchWidth: defaultSwatchWidth,
		lineWidth:   defaultLineWidth,
	}
}

// WithTerminal adapts the output to a terminal of the given width. Colour is
// turned off when colour is false (e.g. output is not a TTY); it is never
// turned back on once disabled by flag.
func (r *Renderer) WithTerminal(width int, colour bool) *Renderer {
	if width > 0 {
		r.lineWidth = width
	}
	if !colour {
		r.noColour = true
	}
	return r
}

// Name returns the renderer name.
func (r *Renderer) Name() string {
	return "text"
}

// Description returns the renderer description.
func (r *Renderer) Description() string {
	return "Terminal swatches using 24-bit ANSI colour, or a plain hex listing"
}

// RegisterFlags registers renderer-specific flags with the cobra command.
func (r *Renderer) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&r.swatchWidth, "text.width", defaultSwatchWidth, "Width of each swatch in characters")
	cmd.Flags().BoolVar(&r.noColour, "text.no-color", false, "Print a plain hex listing without ANSI colour")
}

// Validate checks if the renderer configuration is valid.
func (r *Renderer) Validate() error {
	if r.swatchWidth < minSwatchWidth {
		return fmt.Errorf("text width must be at least %d to fit a hex code, got %d", minSwatchWidth, r.swatchWidth)
	}
	return nil
}

// Render creates palette.txt.
func (r *Renderer) Render(result *palette.Result) (map[string][]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("palette cannot be nil")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d %s variations\n", result.Params.Count, result.Params.Method)

	for _, s := range result.Sections {
		b.WriteString("\n")
		r.writeTitle(&b, s)

		if !s.OK() {
			fmt.Fprintf(&b, "  error: %v\n", s.Err)
			continue
		}

		if r.noColour {
			for i, sw := range s.Swatches {
				fmt.Fprintf(&b, "  %2d. %s  text %s\n", i+1, sw.Hex, sw.Text)
			}
			continue
		}
		r.writeSwatches(&b, s.Swatches)
	}

	return map[string][]byte{"palette.txt": []byte(b.String())}, nil
}

func (r *Renderer) writeTitle(b *strings.Builder, s palette.Section) {
	title := fmt.Sprintf("%s (%s)", s.DeviceType, s.Base)
	if r.noColour {
		b.WriteString(title + "\n")
		return
	}
	if rgb, err := colour.ParseHex(s.Base); err == nil {
		b.WriteString(colour.ColourPreview(rgb, 2) + " " + title + "\n")
		return
	}
	b.WriteString(title + "\n")
}

// writeSwatches lays swatches out in rows that fit the line width.
func (r *Renderer) writeSwatches(b *strings.Builder, swatches []palette.Swatch) {
	perRow := max(1, (r.lineWidth-2)/(r.swatchWidth+1))

	for start := 0; start < len(swatches); start += perRow {
		end := min(start+perRow, len(swatches))
		b.WriteString("  ")
		for i, sw := range swatches[start:end] {
			if i > 0 {
				b.WriteString(" ")
			}
			rgb, err := colour.ParseHex(sw.Hex)
			if err != nil {
				b.WriteString(sw.Hex)
				continue
			}
			b.WriteString(colour.ColourPreviewWithText(rgb, sw.Hex, r.swatchWidth))
		}
		b.WriteString("\n")
	}
}
